package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileExists 파일 존재 여부를 확인한다
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir 디렉터리를 생성/보장한다. 예: EnsureDir("output")
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("디렉터리를 생성할 수 없습니다: %w", err)
	}
	return nil
}

// ReadJSONFile JSON 파일을 읽는다
func ReadJSONFile(path string, v interface{}) error {
	if !FileExists(path) {
		return fmt.Errorf("JSON 파일을 찾을 수 없습니다: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("JSON 파일을 읽을 수 없습니다: %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("JSON 파싱에 실패했습니다: %s: %w", path, err)
	}

	return nil
}

// WriteJSONFile JSON 파일을 저장한다. 상위 디렉터리가 없으면 만든다.
// 에디터 필드의 HTML이 깨지지 않도록 HTML 이스케이프를 끈다.
func WriteJSONFile(path string, data interface{}) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("JSON 직렬화에 실패했습니다: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("디렉터리를 생성할 수 없습니다: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("JSON 파일을 저장할 수 없습니다: %s: %w", path, err)
	}

	return nil
}
