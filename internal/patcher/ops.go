package patcher

import (
	"fmt"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/element"
)

// op별 구조적 병합 전략. 단순 op는 patch.path에 그대로 쓰고,
// 복합 op는 위젯 구조에 맞춰 부분 병합한다. 알 수 없는 op는
// 명시적 폴백으로 경로 쓰기를 수행한다.

// counterKeys set_counter가 복사하는 settings 키
var counterKeys = []string{"number", "suffix", "title"}

// iconBoxKeys set_iconbox가 복사하는 settings 키
var iconBoxKeys = []string{"title", "subtitle", "description", "button_text", "button_url", "icon", "image"}

// applyOp 해석된 요소에 op별 전략으로 값을 적용한다.
// 실패 시 메시지와 함께 ok=false.
func applyOp(el map[string]interface{}, patch adapter.Patch, value interface{}, strict bool) (string, bool) {
	switch patch.Op {
	case adapter.OpSetHighlightedText:
		return applyListMerge(el, patch, value, "content", strict)
	case adapter.OpSetIconList:
		return applyListMerge(el, patch, value, "icon_list", strict)
	case adapter.OpSetCounter:
		return applyCounter(el, value)
	case adapter.OpSetIconBox:
		return applyIconBox(el, patch, value, strict)
	default:
		// set_text/set_html/set_image 및 알 수 없는 op: 경로에 그대로 쓴다.
		return applyRawWrite(el, patch.Path, value, strict)
	}
}

func applyRawWrite(el map[string]interface{}, path string, value interface{}, strict bool) (string, bool) {
	if !element.SetPath(el, path, value, strict) {
		return fmt.Sprintf("경로 설정 실패: %s", path), false
	}
	return "", true
}

// applyListMerge settings.<field>의 레코드 리스트에 값을 위치 기반으로
// 병합한다. 값이 문자열이면 첫 레코드의 text만, 리스트면 짧은 쪽 길이까지
// 순서대로 덮어쓴다. 기존 구조가 없거나 깨져 있으면 경로 쓰기로 폴백한다.
func applyListMerge(el map[string]interface{}, patch adapter.Patch, value interface{}, field string, strict bool) (string, bool) {
	settings := element.Settings(el)
	records, _ := settings[field].([]interface{})
	if len(records) == 0 {
		return applyRawWrite(el, "settings."+field, value, strict)
	}

	switch typed := value.(type) {
	case string:
		if !setRecordText(records[0], typed) {
			return applyRawWrite(el, "settings."+field, value, strict)
		}
		return "", true

	case []interface{}:
		limit := len(typed)
		if len(records) < limit {
			limit = len(records)
		}
		for index := 0; index < limit; index++ {
			text, ok := typed[index].(string)
			if !ok {
				continue
			}
			setRecordText(records[index], text)
		}
		return "", true
	}

	return applyRawWrite(el, "settings."+field, value, strict)
}

func setRecordText(record interface{}, text string) bool {
	typed, ok := record.(map[string]interface{})
	if !ok {
		return false
	}
	if _, hasText := typed["text"]; !hasText {
		return false
	}
	typed["text"] = text
	return true
}

// applyCounter number/suffix/title만 복사하고 나머지 settings 키는
// 건드리지 않는다. 문자열 값은 number로만 취급한다.
func applyCounter(el map[string]interface{}, value interface{}) (string, bool) {
	settings := element.Settings(el)
	if settings == nil {
		settings = map[string]interface{}{}
		el["settings"] = settings
	}

	switch typed := value.(type) {
	case map[string]interface{}:
		for _, key := range counterKeys {
			if fieldValue, ok := typed[key]; ok {
				settings[key] = fieldValue
			}
		}
		return "", true
	case string:
		settings["number"] = typed
		return "", true
	}

	return "set_counter 값은 객체 또는 문자열이어야 합니다.", false
}

// applyIconBox 인식하는 키만 복사한다. 객체가 아닌 값은 의도적으로
// 관대한 탈출구로 경로 쓰기에 폴백한다.
func applyIconBox(el map[string]interface{}, patch adapter.Patch, value interface{}, strict bool) (string, bool) {
	typed, ok := value.(map[string]interface{})
	if !ok {
		return applyRawWrite(el, patch.Path, value, strict)
	}

	settings := element.Settings(el)
	if settings == nil {
		settings = map[string]interface{}{}
		el["settings"] = settings
	}

	for _, key := range iconBoxKeys {
		if fieldValue, ok := typed[key]; ok {
			settings[key] = fieldValue
		}
	}
	return "", true
}
