package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// printJSON 결과 요약을 콘솔에 JSON으로 표시한다
func printJSON(cmd interface{ Println(...interface{}) }, v interface{}) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("결과 직렬화에 실패했습니다: %w", err)
	}
	cmd.Println(buf.String())
	return nil
}
