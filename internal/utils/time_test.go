package utils

import (
	"testing"
	"time"
)

func TestNowISO(t *testing.T) {
	value := NowISO()

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("RFC3339 형식이 아닙니다: %q: %v", value, err)
	}
	if parsed.Location() != time.UTC {
		t.Errorf("UTC가 아닙니다: %v", parsed.Location())
	}
}
