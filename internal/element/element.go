package element

import "strings"

// Elementor JSON은 스키마가 고정되어 있지 않으므로 요소 트리를 디코딩된
// 형태(map/slice) 그대로 다룬다. 알 수 없는 필드도 그대로 보존되어
// 패치 후 다시 저장할 때 구조가 달라지지 않는다.

// ID Elementor 요소의 고유 id (트리 전체에서 유일)
type ID string

// CSSID 사용자가 settings에 직접 지정한 CSS ID. 요소 id와는 별개의
// 식별 체계이므로 타입을 분리해 혼용을 막는다.
type CSSID string

// cssIDKeys settings에서 CSS ID를 찾을 때 확인하는 키 (우선순위 순)
var cssIDKeys = []string{"_css_id", "css_id", "cssId", "cssid"}

// ElementID 요소의 id를 반환한다. 예: ElementID(el)
func ElementID(el map[string]interface{}) ID {
	id, _ := el["id"].(string)
	return ID(id)
}

// WidgetType 위젯 타입을 반환한다. widgetType/widget_type 둘 다 허용한다.
func WidgetType(el map[string]interface{}) string {
	if wt, ok := el["widgetType"].(string); ok && wt != "" {
		return wt
	}
	wt, _ := el["widget_type"].(string)
	return wt
}

// ElType 구조 역할 태그(section/container/widget/column)를 반환한다.
func ElType(el map[string]interface{}) string {
	et, _ := el["elType"].(string)
	return et
}

// Settings 요소의 settings 맵을 반환한다. 없거나 맵이 아니면 nil.
func Settings(el map[string]interface{}) map[string]interface{} {
	settings, _ := el["settings"].(map[string]interface{})
	return settings
}

// ExtractCSSID settings에서 CSS ID를 추출한다. 예: ExtractCSSID(settings)
func ExtractCSSID(settings map[string]interface{}) CSSID {
	if settings == nil {
		return ""
	}
	for _, key := range cssIDKeys {
		if value, ok := settings[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return CSSID(trimmed)
			}
		}
	}
	return ""
}

// MatchesCSSID settings의 CSS ID가 주어진 값과 일치하는지 확인한다.
func MatchesCSSID(settings map[string]interface{}, cssID CSSID) bool {
	if settings == nil || cssID == "" {
		return false
	}
	for _, key := range cssIDKeys {
		if value, ok := settings[key].(string); ok {
			if strings.TrimSpace(value) == string(cssID) {
				return true
			}
		}
	}
	return false
}
