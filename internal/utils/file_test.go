package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadWriteJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	data := map[string]interface{}{
		"title":  "제목",
		"editor": "<p>본문</p>",
	}

	if err := WriteJSONFile(path, data); err != nil {
		t.Fatalf("저장 실패: %v", err)
	}

	var loaded map[string]interface{}
	if err := ReadJSONFile(path, &loaded); err != nil {
		t.Fatalf("읽기 실패: %v", err)
	}
	if loaded["title"] != "제목" || loaded["editor"] != "<p>본문</p>" {
		t.Errorf("값이 다릅니다: %v", loaded)
	}
}

// 에디터 필드의 HTML이 <로 이스케이프되면 안 된다
func TestWriteJSONFileDoesNotEscapeHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteJSONFile(path, map[string]interface{}{"editor": "<p>본문</p>"}); err != nil {
		t.Fatalf("저장 실패: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("파일 읽기 실패: %v", err)
	}
	if strings.Contains(string(raw), `<`) {
		t.Errorf("HTML이 이스케이프되었습니다: %s", raw)
	}
	if !strings.Contains(string(raw), "<p>본문</p>") {
		t.Errorf("HTML이 그대로 저장되어야 합니다: %s", raw)
	}
}

func TestReadJSONFileErrors(t *testing.T) {
	dir := t.TempDir()

	var v interface{}
	if err := ReadJSONFile(filepath.Join(dir, "없는파일.json"), &v); err == nil {
		t.Error("없는 파일이 읽혔습니다")
	}

	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{깨진 JSON"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ReadJSONFile(badPath, &v); err == nil {
		t.Error("깨진 JSON이 통과되었습니다")
	}
}

func TestEnsureDirAndFileExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("디렉터리 생성 실패: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Errorf("이미 있는 디렉터리에서 실패했습니다: %v", err)
	}

	if FileExists(filepath.Join(dir, "없음.json")) {
		t.Error("없는 파일이 있다고 보고되었습니다")
	}
	path := filepath.Join(dir, "있음.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("있는 파일이 없다고 보고되었습니다")
	}
}
