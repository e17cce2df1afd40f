package scanner

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/element"
)

// 섹션 단위 스캐너. 페이지를 섹션별로 분석해 주입 가능한 위젯을 뽑고
// 선택 결과로 어댑터를 만든다.

// injectableWidgets 주입 가능한 위젯 타입과 한국어 이름
var injectableWidgets = map[string]string{
	"heading":          "제목",
	"text-editor":      "본문",
	"button":           "버튼",
	"image":            "이미지",
	"icon":             "아이콘",
	"icon-list":        "아이콘 리스트",
	"highlighted-text": "강조 텍스트",
}

// sectionPathMap 위젯 타입별 기본 주입 경로
var sectionPathMap = map[string]string{
	"heading":          "settings.title",
	"text-editor":      "settings.editor",
	"button":           "settings.text",
	"image":            "settings.image.url",
	"highlighted-text": "settings.content",
}

// stripPolicy 미리보기용 HTML 태그 제거 정책
var stripPolicy = bluemonday.StrictPolicy()

// SectionWidget 섹션 안의 위젯 정보
type SectionWidget struct {
	Index        int    `json:"index"`
	ElementID    string `json:"element_id"`
	WidgetType   string `json:"widget_type"`
	WidgetTypeKR string `json:"widget_type_kr"`
	Preview      string `json:"preview"`
	Path         string `json:"path"`
	Injectable   bool   `json:"injectable"`
}

// Section 최상위 섹션 하나의 구조
type Section struct {
	Index         int             `json:"index"`
	ElementID     string          `json:"element_id"`
	Name          string          `json:"name"`
	SuggestedName string          `json:"suggested_name"`
	Widgets       []SectionWidget `json:"widgets"`
}

// ScanSections 페이지를 최상위 섹션 단위로 분석한다.
// 위젯이 하나라도 있는 섹션만 반환한다.
func ScanSections(doc *element.Document) []Section {
	sections := []Section{}
	root := doc.Root()
	if root == nil {
		return sections
	}

	sectionIndex := 0
	for _, item := range root.Items() {
		el, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if element.ElType(el) != "section" {
			continue
		}

		section := extractSection(el, sectionIndex)
		if len(section.Widgets) == 0 {
			continue
		}
		sections = append(sections, section)
		sectionIndex++
	}

	return sections
}

func extractSection(sectionEl map[string]interface{}, index int) Section {
	section := Section{
		Index:         index,
		ElementID:     string(element.ElementID(sectionEl)),
		Name:          fmt.Sprintf("section_%d", index),
		SuggestedName: suggestSectionName(sectionEl, index),
		Widgets:       []SectionWidget{},
	}

	for widgetIndex, widget := range collectWidgets(sectionEl) {
		widgetType := element.WidgetType(widget)
		section.Widgets = append(section.Widgets, SectionWidget{
			Index:        widgetIndex,
			ElementID:    string(element.ElementID(widget)),
			WidgetType:   widgetType,
			WidgetTypeKR: widgetTypeKR(widgetType),
			Preview:      widgetPreview(widget),
			Path:         widgetPath(widgetType),
			Injectable:   injectableWidgets[widgetType] != "",
		})
	}

	return section
}

// suggestSectionName 위젯 미리보기의 키워드로 섹션 이름을 추천한다.
// 첫 번째 섹션은 보통 Hero다.
func suggestSectionName(sectionEl map[string]interface{}, index int) string {
	if index == 0 {
		return "hero"
	}

	for _, widget := range collectWidgets(sectionEl) {
		preview := strings.ToLower(widgetPreview(widget))
		switch {
		case containsAny(preview, "price", "가격", "plan", "요금"):
			return "pricing"
		case containsAny(preview, "feature", "기능", "특징"):
			return "features"
		case containsAny(preview, "about", "소개", "회사"):
			return "about"
		case containsAny(preview, "contact", "연락", "문의"):
			return "contact"
		}
	}

	return fmt.Sprintf("section_%d", index)
}

// collectWidgets 섹션 아래의 모든 위젯을 재귀적으로 모은다 (컬럼/컨테이너 포함)
func collectWidgets(el map[string]interface{}) []map[string]interface{} {
	var widgets []map[string]interface{}

	if element.WidgetType(el) != "" {
		widgets = append(widgets, el)
	}

	children, _ := el["elements"].([]interface{})
	for _, child := range children {
		childEl, ok := child.(map[string]interface{})
		if !ok {
			continue
		}
		widgets = append(widgets, collectWidgets(childEl)...)
	}

	return widgets
}

// widgetPreview 위젯 타입별 미리보기 텍스트를 만든다
func widgetPreview(widget map[string]interface{}) string {
	widgetType := element.WidgetType(widget)
	settings := element.Settings(widget)

	switch widgetType {
	case "heading":
		if title, ok := settings["title"].(string); ok && title != "" {
			return title
		}
		return "(제목 없음)"

	case "text-editor":
		editor, _ := settings["editor"].(string)
		text := strings.TrimSpace(stripPolicy.Sanitize(editor))
		runes := []rune(text)
		if len(runes) > 50 {
			return string(runes[:50]) + "..."
		}
		return text

	case "button":
		if text, ok := settings["text"].(string); ok && text != "" {
			return text
		}
		return "(버튼 텍스트 없음)"

	case "image":
		image, _ := settings["image"].(map[string]interface{})
		url, _ := image["url"].(string)
		if url == "" {
			return "(이미지 없음)"
		}
		parts := strings.Split(url, "/")
		return parts[len(parts)-1]

	case "highlighted-text":
		content, _ := settings["content"].([]interface{})
		var texts []string
		for _, item := range content {
			record, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if text, ok := record["text"].(string); ok {
				texts = append(texts, text)
			}
		}
		if len(texts) > 0 {
			return strings.Join(texts, " ")
		}
		return "(강조 텍스트 없음)"
	}

	return fmt.Sprintf("(%s)", widgetType)
}

func widgetPath(widgetType string) string {
	if path, ok := sectionPathMap[widgetType]; ok {
		return path
	}
	return "settings"
}

func widgetTypeKR(widgetType string) string {
	if name, ok := injectableWidgets[widgetType]; ok {
		return name
	}
	return widgetType
}

func containsAny(value string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}

// SelectedInjection 대화형 선택 결과 한 건
type SelectedInjection struct {
	Section      string `json:"section"`
	SectionIndex int    `json:"section_index"`
	WidgetIndex  int    `json:"widget_index"`
	ElementID    string `json:"element_id"`
	WidgetType   string `json:"widget_type"`
	Path         string `json:"path"`
	Preview      string `json:"preview"`
}

// GenerateFromSelection 선택된 주입 포인트로 어댑터를 만든다.
// site_spec 키는 "<섹션>.<위젯타입>_<번호>" 규칙으로 생성한다.
func GenerateFromSelection(selections []SelectedInjection, templateID, pageSlug string) *adapter.Adapter {
	patches := make([]adapter.Patch, 0, len(selections))

	for _, injection := range selections {
		op := adapter.OpSetText
		if injection.WidgetType == "image" {
			op = adapter.OpSetImage
		}

		patches = append(patches, adapter.Patch{
			Key:       fmt.Sprintf("%s.%s_%d", injection.Section, injection.WidgetType, injection.WidgetIndex),
			ElementID: injection.ElementID,
			Path:      injection.Path,
			Op:        op,
			Comment:   injection.Preview,
		})
	}

	return &adapter.Adapter{
		TemplateID: templateID,
		Pages: []adapter.Page{
			{PostSlug: pageSlug, Patches: patches},
		},
	}
}
