package scanner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// 1단계: 기계 생성/CSS성 노이즈 제거 → "의미 있는" 후보
// 2단계: 실제 사용자에게 보이는 핵심 위젯만 → "핵심" 콘텐츠

// FilterStats 1단계 필터링 통계
type FilterStats struct {
	OriginalCount  int `json:"original_count"`
	FilteredCount  int `json:"filtered_count"`
	HasCSSID       int `json:"has_css_id"`
	MeaningfulText int `json:"meaningful_text"`
	Images         int `json:"images"`
	Links          int `json:"links"`
}

// CoreStats 2단계 필터링 통계
type CoreStats struct {
	TotalCount      int `json:"total_count"`
	Heading         int `json:"heading"`
	TextEditor      int `json:"text_editor"`
	Button          int `json:"button"`
	HighlightedText int `json:"highlighted_text"`
	IconList        int `json:"icon_list"`
	Image           int `json:"image"`
	Other           int `json:"other"`
}

// coreWidgets 핵심 콘텐츠로 인정하는 위젯 타입
var coreWidgets = map[string]bool{
	"heading":          true,
	"text-editor":      true,
	"button":           true,
	"highlighted-text": true,
	"icon-list":        true,
	"image":            true,
}

// excludePatterns 위젯 기본값/장식용 텍스트 패턴 (앞부분 일치)
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^This is Tooltip$`),
	regexp.MustCompile(`(?i)^my-header$`),
	regexp.MustCompile(`(?i)^left,right`),
	regexp.MustCompile(`(?i)^square\|circle`),
	regexp.MustCompile(`(?i)^🎃\|🎄\|💜`),
	regexp.MustCompile(`(?i)^M\d+`), // SVG path 데이터
	regexp.MustCompile(`(?i)^(center|left|right|top|bottom)$`),
	regexp.MustCompile(`(?i)^(yes|no)$`),
	regexp.MustCompile(`(?i)^(full|contain|cover|auto)$`),
	regexp.MustCompile(`(?i)^(fadeIn|fadeOut|zoom|slide)`), // 애니메이션 이름
	regexp.MustCompile(`(?i)^(fast|slow|normal)$`),
	regexp.MustCompile(`(?i)^(custom|default|classic)$`),
	regexp.MustCompile(`(?i)^(solid|dashed|dotted)$`),
	regexp.MustCompile(`(?i)^(row|column)$`),
	regexp.MustCompile(`(?i)^(space-between|center|flex-)`),
	regexp.MustCompile(`(?i)^(grow|none|initial|inherit)$`),
	regexp.MustCompile(`(?i)^(uppercase|lowercase)$`),
}

// FilterMeaningful 1단계 필터. CSS ID가 있거나 이미지/링크면 무조건
// 통과시키고, 텍스트는 의미 있는 것만 남긴다.
func FilterMeaningful(manifest *Manifest) *Manifest {
	filtered := []Candidate{}
	stats := FilterStats{OriginalCount: len(manifest.Candidates)}

	for _, candidate := range manifest.Candidates {
		switch {
		case candidate.CSSID != "":
			filtered = append(filtered, candidate)
			stats.HasCSSID++
		case candidate.FieldType == FieldImage:
			filtered = append(filtered, candidate)
			stats.Images++
		case candidate.FieldType == FieldLink:
			filtered = append(filtered, candidate)
			stats.Links++
		case candidate.FieldType == FieldText && isMeaningfulText(candidate.Preview):
			filtered = append(filtered, candidate)
			stats.MeaningfulText++
		}
	}

	stats.FilteredCount = len(filtered)
	result := *manifest
	result.Candidates = filtered
	result.FilterStats = &stats
	return &result
}

// isMeaningfulText 사람이 쓴 텍스트로 볼 만한지 판단한다
func isMeaningfulText(preview string) bool {
	if utf8.RuneCountInString(preview) < 3 {
		return false
	}

	// 숫자만 있으면 제외
	if isAllDigits(preview) {
		return false
	}

	// 요소 id 토큰 제외 (예: 32bd91f)
	if len(preview) == 7 && isLowerHex(preview) {
		return false
	}

	// 색상 코드/색상 목록 제외
	if strings.HasPrefix(preview, "#") {
		return false
	}
	if strings.Contains(preview, ",") && containsOnly(preview, "#0123456789ABCDEF, ") {
		return false
	}

	// transition, easing 등 CSS 속성값 제외
	return !looksLikeCSSValue(preview)
}

// FilterCore 2단계 필터. 핵심 위젯 타입의 실제 작성 콘텐츠만 남긴다.
func FilterCore(manifest *Manifest) *Manifest {
	core := []Candidate{}
	stats := CoreStats{}

	for _, candidate := range manifest.Candidates {
		if !isCoreContent(candidate) {
			continue
		}
		core = append(core, candidate)

		switch candidate.WidgetType {
		case "heading":
			stats.Heading++
		case "text-editor":
			stats.TextEditor++
		case "button":
			stats.Button++
		case "highlighted-text":
			stats.HighlightedText++
		case "icon-list":
			stats.IconList++
		case "image":
			stats.Image++
		default:
			stats.Other++
		}
	}

	stats.TotalCount = len(core)
	result := *manifest
	result.Candidates = core
	result.CoreStats = &stats
	return &result
}

// isCoreContent 최종 사용자에게 보이는 콘텐츠인지 판단한다.
// 한글이 있으면 실제 작성 콘텐츠로 보고, 영문은 단어 2개 이상을 요구한다.
func isCoreContent(candidate Candidate) bool {
	if candidate.WidgetType != "" && !coreWidgets[candidate.WidgetType] {
		return false
	}

	// 이미지는 무조건 포함
	if candidate.FieldType == FieldImage {
		return true
	}

	preview := candidate.Preview
	if utf8.RuneCountInString(preview) < 2 {
		return false
	}

	for _, pattern := range excludePatterns {
		if pattern.MatchString(preview) {
			return false
		}
	}

	if containsHangul(preview) {
		return true
	}

	if len(strings.Fields(preview)) >= 2 && containsLatin(preview) {
		return true
	}

	return false
}

func isAllDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, char := range value {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isLowerHex(value string) bool {
	for _, char := range value {
		if !strings.ContainsRune("0123456789abcdef", char) {
			return false
		}
	}
	return true
}

func containsOnly(value, allowed string) bool {
	for _, char := range value {
		if !strings.ContainsRune(allowed, char) {
			return false
		}
	}
	return true
}

func containsHangul(value string) bool {
	for _, char := range value {
		if char >= 0xAC00 && char <= 0xD7A3 {
			return true
		}
	}
	return false
}

func containsLatin(value string) bool {
	for _, char := range value {
		if unicode.Is(unicode.Latin, char) {
			return true
		}
	}
	return false
}
