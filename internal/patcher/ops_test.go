package patcher_test

import (
	"testing"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/element"
	"github.com/minkyu-lab/site-factory/internal/testutil"
)

func patchedElement(t *testing.T, patched interface{}, id string) map[string]interface{} {
	t.Helper()
	match, ok := element.Find(element.NewDocument(patched), element.ID(id), "", 12)
	if !ok {
		t.Fatalf("요소를 찾지 못했습니다: %s", id)
	}
	return match.Element
}

func TestSetHighlightedTextPositionalMerge(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("ht1", "highlighted-text", map[string]interface{}{
			"content": []interface{}{
				map[string]interface{}{"text": "기존 1", "color": "#111111"},
				map[string]interface{}{"text": "기존 2", "color": "#222222"},
				map[string]interface{}{"text": "기존 3", "color": "#333333"},
			},
		}),
	}
	spec := map[string]interface{}{
		"highlights": []interface{}{"새 텍스트 1", "새 텍스트 2"},
	}

	patched, results := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "highlights",
		ElementID: "ht1",
		Path:      "settings.content",
		Op:        adapter.OpSetHighlightedText,
	})

	if results[0].Status != adapter.StatusApplied {
		t.Fatalf("결과가 다릅니다: %+v", results[0])
	}

	el := patchedElement(t, patched, "ht1")
	records, _ := element.GetPath(el, "settings.content").([]interface{})
	if len(records) != 3 {
		t.Fatalf("레코드 수가 바뀌었습니다: %d", len(records))
	}

	wantTexts := []string{"새 텍스트 1", "새 텍스트 2", "기존 3"}
	for index, want := range wantTexts {
		record, _ := records[index].(map[string]interface{})
		if record["text"] != want {
			t.Errorf("records[%d].text = %v, want %q", index, record["text"], want)
		}
		// text 외의 키는 보존된다
		if record["color"] == nil {
			t.Errorf("records[%d]의 color가 사라졌습니다", index)
		}
	}
}

func TestSetHighlightedTextStringValue(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("ht1", "highlighted-text", map[string]interface{}{
			"content": []interface{}{
				map[string]interface{}{"text": "기존 1"},
				map[string]interface{}{"text": "기존 2"},
			},
		}),
	}
	spec := map[string]interface{}{"highlight": "하나만 바꾼다"}

	patched, _ := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "highlight",
		ElementID: "ht1",
		Path:      "settings.content",
		Op:        adapter.OpSetHighlightedText,
	})

	el := patchedElement(t, patched, "ht1")
	records, _ := element.GetPath(el, "settings.content").([]interface{})
	first, _ := records[0].(map[string]interface{})
	second, _ := records[1].(map[string]interface{})
	if first["text"] != "하나만 바꾼다" {
		t.Errorf("첫 레코드가 바뀌지 않았습니다: %v", first["text"])
	}
	if second["text"] != "기존 2" {
		t.Errorf("둘째 레코드가 바뀌면 안 됩니다: %v", second["text"])
	}
}

func TestSetHighlightedTextEmptyRecordsFallsBack(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("ht1", "highlighted-text", map[string]interface{}{}),
	}
	spec := map[string]interface{}{"highlight": "폴백 값"}

	patched, results := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "highlight",
		ElementID: "ht1",
		Path:      "settings.content",
		Op:        adapter.OpSetHighlightedText,
	})

	if results[0].Status != adapter.StatusApplied {
		t.Fatalf("결과가 다릅니다: %+v", results[0])
	}
	el := patchedElement(t, patched, "ht1")
	if got := element.GetPath(el, "settings.content"); got != "폴백 값" {
		t.Errorf("폴백 경로 쓰기가 되지 않았습니다: %v", got)
	}
}

func TestSetIconList(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("il1", "icon-list", map[string]interface{}{
			"icon_list": []interface{}{
				map[string]interface{}{"text": "항목 1", "selected_icon": map[string]interface{}{"value": "fa-check"}},
				map[string]interface{}{"text": "항목 2", "selected_icon": map[string]interface{}{"value": "fa-star"}},
			},
		}),
	}
	spec := map[string]interface{}{
		"features": []interface{}{"빠른 제작", "합리적 가격"},
	}

	patched, _ := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "features",
		ElementID: "il1",
		Path:      "settings.icon_list",
		Op:        adapter.OpSetIconList,
	})

	el := patchedElement(t, patched, "il1")
	records, _ := element.GetPath(el, "settings.icon_list").([]interface{})
	first, _ := records[0].(map[string]interface{})
	if first["text"] != "빠른 제작" {
		t.Errorf("records[0].text = %v", first["text"])
	}
	// 아이콘 설정은 보존된다
	if got := element.GetPath(el, "settings.icon_list.0.selected_icon.value"); got != "fa-check" {
		t.Errorf("selected_icon이 사라졌습니다: %v", got)
	}
}

func TestSetCounterPartialMerge(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("c1", "uicore-counter", map[string]interface{}{
			"number":             "10",
			"suffix":             "+",
			"title":              "기존 제목",
			"animation_duration": "2000",
		}),
	}
	spec := map[string]interface{}{
		"counter": map[string]interface{}{
			"number": "95",
			"title":  "고객 만족도",
		},
	}

	patched, results := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "counter",
		ElementID: "c1",
		Path:      "settings",
		Op:        adapter.OpSetCounter,
	})

	if results[0].Status != adapter.StatusApplied {
		t.Fatalf("결과가 다릅니다: %+v", results[0])
	}

	el := patchedElement(t, patched, "c1")
	settings := element.Settings(el)
	if settings["number"] != "95" || settings["title"] != "고객 만족도" {
		t.Errorf("counter 병합이 다릅니다: %v", settings)
	}
	// 값에 없는 키와 인식하지 않는 키는 유지된다
	if settings["suffix"] != "+" || settings["animation_duration"] != "2000" {
		t.Errorf("기존 settings가 사라졌습니다: %v", settings)
	}
}

func TestSetCounterStringValue(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("c1", "uicore-counter", map[string]interface{}{"number": "10", "title": "제목"}),
	}
	spec := map[string]interface{}{"counter": "42"}

	patched, _ := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "counter",
		ElementID: "c1",
		Path:      "settings",
		Op:        adapter.OpSetCounter,
	})

	settings := element.Settings(patchedElement(t, patched, "c1"))
	if settings["number"] != "42" {
		t.Errorf("number = %v, want 42", settings["number"])
	}
	if settings["title"] != "제목" {
		t.Errorf("문자열 값은 number만 바꿔야 합니다: %v", settings["title"])
	}
}

func TestSetCounterRejectsOtherTypes(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("c1", "uicore-counter", map[string]interface{}{"number": "10"}),
	}
	spec := map[string]interface{}{"counter": []interface{}{"잘못된", "타입"}}

	_, results := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "counter",
		ElementID: "c1",
		Path:      "settings",
		Op:        adapter.OpSetCounter,
	})

	if results[0].Status != adapter.StatusError {
		t.Errorf("status = %q, want error", results[0].Status)
	}
}

func TestSetIconBox(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("ib1", "uicore-icon-box", map[string]interface{}{
			"title":       "기존 제목",
			"description": "기존 설명",
			"icon_color":  "#ff0000",
		}),
	}
	spec := map[string]interface{}{
		"box": map[string]interface{}{
			"title":       "새 제목",
			"button_text": "자세히 보기",
			"unknown_key": "무시된다",
		},
	}

	patched, _ := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "box",
		ElementID: "ib1",
		Path:      "settings",
		Op:        adapter.OpSetIconBox,
	})

	settings := element.Settings(patchedElement(t, patched, "ib1"))
	if settings["title"] != "새 제목" || settings["button_text"] != "자세히 보기" {
		t.Errorf("iconbox 병합이 다릅니다: %v", settings)
	}
	if settings["description"] != "기존 설명" || settings["icon_color"] != "#ff0000" {
		t.Errorf("기존 settings가 사라졌습니다: %v", settings)
	}
	if _, ok := settings["unknown_key"]; ok {
		t.Error("인식하지 않는 키가 복사되었습니다")
	}
}

func TestSetIconBoxScalarFallsBackToPathWrite(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("ib1", "uicore-icon-box", map[string]interface{}{"title": "기존"}),
	}
	spec := map[string]interface{}{"box_title": "스칼라 값"}

	patched, results := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "box_title",
		ElementID: "ib1",
		Path:      "settings.title",
		Op:        adapter.OpSetIconBox,
	})

	if results[0].Status != adapter.StatusApplied {
		t.Fatalf("결과가 다릅니다: %+v", results[0])
	}
	settings := element.Settings(patchedElement(t, patched, "ib1"))
	if settings["title"] != "스칼라 값" {
		t.Errorf("폴백 경로 쓰기가 되지 않았습니다: %v", settings["title"])
	}
}

func TestUnknownOpFallsBackToPathWrite(t *testing.T) {
	raw := []interface{}{
		testutil.Widget("w1", "heading", map[string]interface{}{"title": "기존"}),
	}
	spec := map[string]interface{}{"title": "새 값"}

	patched, results := applyPatches(t, raw, spec, adapter.Patch{
		Key:       "title",
		ElementID: "w1",
		Path:      "settings.title",
		Op:        "set_future_op",
	})

	if results[0].Status != adapter.StatusApplied {
		t.Fatalf("알 수 없는 op는 경로 쓰기로 처리되어야 합니다: %+v", results[0])
	}
	settings := element.Settings(patchedElement(t, patched, "w1"))
	if settings["title"] != "새 값" {
		t.Errorf("값이 설정되지 않았습니다: %v", settings["title"])
	}
}
