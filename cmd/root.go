package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "site-factory",
	Short: "Elementor 템플릿 스캔/패치 파이프라인 CLI",
	Long: `site-factory 는 하나의 Elementor 템플릿 페이지에서 사이트 변형을
생성하는 파이프라인 도구입니다.

사용 방법:
  site-factory scan          템플릿에서 주입 후보를 추출
  site-factory filter        manifest에서 의미 있는 후보만 필터링
  site-factory section-scan  섹션 단위 분석 및 대화형 선택
  site-factory adapter       어댑터 자동 생성 (auto / cssid)
  site-factory run           어댑터 패치 적용 파이프라인 실행`,
}

// Execute CLI 엔트리 포인트. 설정 오류는 비정상 종료 코드와 함께
// 사용자용 메시지로만 출력한다.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[오류] %v\n", err)
		os.Exit(1)
	}
}
