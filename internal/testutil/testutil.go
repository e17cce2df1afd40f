package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Elementor 요소 트리 테스트 픽스처 빌더

// Widget 위젯 요소를 만든다. 예: Widget("h1", "heading", map[string]interface{}{"title": "안녕"})
func Widget(id, widgetType string, settings map[string]interface{}) map[string]interface{} {
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return map[string]interface{}{
		"id":         id,
		"elType":     "widget",
		"widgetType": widgetType,
		"settings":   settings,
		"elements":   []interface{}{},
	}
}

// Container 자식을 가진 구조 요소를 만든다
func Container(id, elType string, children ...interface{}) map[string]interface{} {
	return map[string]interface{}{
		"id":       id,
		"elType":   elType,
		"settings": map[string]interface{}{},
		"elements": children,
	}
}

// Section 섹션 요소를 만든다
func Section(id string, children ...interface{}) map[string]interface{} {
	return Container(id, "section", children...)
}

// WriteJSON 임시 JSON 파일을 만든다. 예: WriteJSON(t, dir, "spec.json", spec)
func WriteJSON(t *testing.T, dir, name string, v interface{}) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("JSON 직렬화 실패: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("디렉터리 생성 실패: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("파일 생성 실패: %v", err)
	}
	return path
}

// ReadJSON JSON 파일을 읽어 디코딩한다
func ReadJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("파일 읽기 실패: %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("JSON 파싱 실패: %s: %v", path, err)
	}
}

// Roundtrip JSON 인코딩/디코딩을 거쳐 map/slice 형태로 정규화한다.
// 테스트 픽스처를 실제 디코딩 결과와 같은 타입으로 맞출 때 쓴다.
func Roundtrip(t *testing.T, v interface{}) interface{} {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("JSON 직렬화 실패: %v", err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("JSON 파싱 실패: %v", err)
	}
	return out
}
