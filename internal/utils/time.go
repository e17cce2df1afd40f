package utils

import "time"

// NowISO UTC 기준 ISO(RFC3339) 타임스탬프를 생성한다.
// 서버/로컬 시간 차이를 줄이기 위해 UTC로 고정한다.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
