package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/element"
	"github.com/minkyu-lab/site-factory/internal/utils"
)

// Options 스캐너 옵션. 예: Options{PageSlug: "home", MaxCandidates: 300}
type Options struct {
	PageSlug      string
	TemplateID    string
	MaxCandidates int
	MaxDepth      int
}

// Candidate 추출된 주입 후보. 생성 후에는 변경하지 않는다.
type Candidate struct {
	ElementID  string    `json:"element_id"`
	CSSID      string    `json:"css_id,omitempty"`
	WidgetType string    `json:"widget_type,omitempty"`
	FieldType  FieldType `json:"field_type"`
	Path       string    `json:"path"`
	Preview    string    `json:"preview"`
}

// Stats 스캔 통계
type Stats struct {
	ElementCount          int  `json:"element_count"`
	CandidateLimitReached bool `json:"candidate_limit_reached"`
	SkippedText           int  `json:"skipped_text"`
}

// Manifest 스캔 산출물
type Manifest struct {
	SourceFile  string       `json:"source_file"`
	GeneratedAt string       `json:"generated_at"`
	TemplateID  string       `json:"template_id"`
	PageSlug    string       `json:"page_slug"`
	Stats       Stats        `json:"stats"`
	Candidates  []Candidate  `json:"candidates"`
	FilterStats *FilterStats `json:"filter_stats,omitempty"`
	CoreStats   *CoreStats   `json:"core_stats,omitempty"`
}

// Scan elements 트리를 순회하며 주입 후보를 수집한다.
// (element_id, path) 기준으로 중복을 제거하고 MaxCandidates에 도달하면
// 즉시 순회를 멈춘다 — 남은 요소는 방문하지 않는다.
func Scan(doc *element.Document, opts Options) ([]Candidate, Stats) {
	candidates := []Candidate{}
	seen := map[string]bool{}
	stats := Stats{}

	element.Walk(doc.Root(), opts.MaxDepth, func(_ *element.List, _ int, el map[string]interface{}) bool {
		stats.ElementCount++

		elementID := element.ElementID(el)
		settings := element.Settings(el)
		if elementID == "" || settings == nil {
			return true
		}

		widgetType := element.WidgetType(el)
		cssID := element.ExtractCSSID(settings)

		for _, item := range extractFromSettings(settings, elementID, widgetType, cssID, &stats) {
			dedupKey := item.ElementID + "\x00" + item.Path
			if seen[dedupKey] {
				continue
			}
			seen[dedupKey] = true
			candidates = append(candidates, item)

			if len(candidates) >= opts.MaxCandidates {
				stats.CandidateLimitReached = true
				return false
			}
		}
		return true
	})

	return candidates, stats
}

// extractFromSettings settings의 모든 키에서 후보를 뽑는다.
// 맵 순회 순서가 비결정적이므로 키를 정렬해 결과를 재현 가능하게 한다.
func extractFromSettings(
	settings map[string]interface{},
	elementID element.ID,
	widgetType string,
	cssID element.CSSID,
	stats *Stats,
) []Candidate {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var candidates []Candidate
	for _, key := range keys {
		if IsIgnoredSettingKey(key) {
			continue
		}
		basePath := "settings." + key
		candidates = append(candidates, extractFromValue(
			settings[key], elementID, widgetType, cssID, basePath, key, stats,
		)...)
	}
	return candidates
}

// extractFromValue settings 값 하나에서 후보를 뽑는다. 값의 형태에 따라
// 문자열 / url을 가진 객체 / 레코드 리스트 세 가지를 처리한다.
func extractFromValue(
	value interface{},
	elementID element.ID,
	widgetType string,
	cssID element.CSSID,
	basePath string,
	keyName string,
	stats *Stats,
) []Candidate {
	switch typed := value.(type) {
	case string:
		fieldType, ok := Classify(keyName, typed, false)
		if !ok {
			stats.SkippedText++
			return nil
		}
		return []Candidate{newCandidate(elementID, widgetType, cssID, fieldType, basePath, typed)}

	case map[string]interface{}:
		// url이 있는 경우 링크/이미지 후보로 간주한다.
		urlValue, ok := typed["url"].(string)
		if !ok || urlValue == "" {
			return nil
		}
		fieldType, ok := Classify(keyName, urlValue, true)
		if !ok {
			return nil
		}
		return []Candidate{newCandidate(elementID, widgetType, cssID, fieldType, basePath+".url", urlValue)}

	case []interface{}:
		var candidates []Candidate
		for index, item := range typed {
			record, ok := item.(map[string]interface{})
			if !ok {
				continue
			}

			subKeys := make([]string, 0, len(record))
			for subKey := range record {
				subKeys = append(subKeys, subKey)
			}
			sort.Strings(subKeys)

			for _, subKey := range subKeys {
				subValue, ok := record[subKey].(string)
				if !ok {
					continue
				}
				fieldType, ok := Classify(subKey, subValue, false)
				if !ok {
					continue
				}
				path := fmt.Sprintf("%s.%d.%s", basePath, index, subKey)
				candidates = append(candidates, newCandidate(elementID, widgetType, cssID, fieldType, path, subValue))
			}
		}
		return candidates
	}

	return nil
}

func newCandidate(
	elementID element.ID,
	widgetType string,
	cssID element.CSSID,
	fieldType FieldType,
	path, preview string,
) Candidate {
	return Candidate{
		ElementID:  string(elementID),
		CSSID:      string(cssID),
		WidgetType: widgetType,
		FieldType:  fieldType,
		Path:       path,
		Preview:    truncatePreview(preview),
	}
}

// truncatePreview 미리보기를 다듬고 120자(117자 + "...")로 자른다
func truncatePreview(preview string) string {
	trimmed := []rune(strings.TrimSpace(preview))
	if len(trimmed) > 120 {
		return string(trimmed[:117]) + "..."
	}
	return string(trimmed)
}

// Result 스캔 실행 결과 요약
type Result struct {
	ManifestPath        string `json:"manifest_path"`
	AdapterSkeletonPath string `json:"adapter_skeleton_path"`
	CandidateCount      int    `json:"candidate_count"`
	Stats               Stats  `json:"stats"`
}

// ScanFile Elementor JSON 파일을 스캔해 manifest와 어댑터 스켈레톤을
// outputDir에 저장한다. 예: ScanFile("elementor.json", "output", opts)
func ScanFile(inputPath, outputDir string, opts Options) (*Result, error) {
	var raw interface{}
	if err := utils.ReadJSONFile(inputPath, &raw); err != nil {
		return nil, fmt.Errorf("Elementor JSON을 읽을 수 없습니다: %w", err)
	}

	doc := element.NewDocument(raw)
	if doc.Root() == nil {
		return nil, fmt.Errorf("Elementor JSON에서 elements 루트를 찾을 수 없습니다.")
	}

	candidates, stats := Scan(doc, opts)

	manifest := BuildManifest(inputPath, opts, candidates, stats)
	skeleton := BuildAdapterSkeleton(opts, candidates)

	if err := utils.EnsureDir(outputDir); err != nil {
		return nil, err
	}
	manifestPath := filepath.Join(outputDir, "manifest.json")
	skeletonPath := filepath.Join(outputDir, "adapter_skeleton.json")

	if err := utils.WriteJSONFile(manifestPath, manifest); err != nil {
		return nil, err
	}
	if err := utils.WriteJSONFile(skeletonPath, skeleton); err != nil {
		return nil, err
	}

	return &Result{
		ManifestPath:        manifestPath,
		AdapterSkeletonPath: skeletonPath,
		CandidateCount:      len(candidates),
		Stats:               stats,
	}, nil
}

// BuildManifest manifest.json 내용을 생성한다
func BuildManifest(inputPath string, opts Options, candidates []Candidate, stats Stats) *Manifest {
	return &Manifest{
		SourceFile:  inputPath,
		GeneratedAt: utils.NowISO(),
		TemplateID:  opts.TemplateID,
		PageSlug:    opts.PageSlug,
		Stats:       stats,
		Candidates:  candidates,
	}
}

// BuildAdapterSkeleton key가 TODO 플레이스홀더인 어댑터 스켈레톤을 만든다.
// 운영자가 key를 site_spec 경로로 바꿔서 완성한다.
func BuildAdapterSkeleton(opts Options, candidates []Candidate) *adapter.Adapter {
	patches := make([]adapter.Patch, 0, len(candidates))
	for index, candidate := range candidates {
		patches = append(patches, adapter.Patch{
			Key:       fmt.Sprintf("TODO.value_%d", index+1),
			ElementID: candidate.ElementID,
			Path:      candidate.Path,
			Op:        fieldTypeToOp(candidate.FieldType),
		})
	}

	return &adapter.Adapter{
		TemplateID: opts.TemplateID,
		Pages: []adapter.Page{
			{PostSlug: opts.PageSlug, Patches: patches},
		},
		Globals: map[string]interface{}{},
		Notes:   "TODO: key 값을 site_spec 경로로 교체하세요.",
	}
}

func fieldTypeToOp(fieldType FieldType) string {
	switch fieldType {
	case FieldImage:
		return adapter.OpSetImageURL
	case FieldLink:
		return adapter.OpSetURL
	default:
		return adapter.OpSetText
	}
}
