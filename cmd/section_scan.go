package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/minkyu-lab/site-factory/internal/scanner"
	"github.com/minkyu-lab/site-factory/internal/tui"
	"github.com/minkyu-lab/site-factory/internal/utils"
)

var (
	sectionInput      string
	sectionOutput     string
	sectionAdapterOut string
	sectionTemplateID string
	sectionPageSlug   string
	sectionNoPrompt   bool
)

var sectionScanCmd = &cobra.Command{
	Use:   "section-scan",
	Short: "섹션 단위 분석 및 대화형 주입 포인트 선택",
	Long: `Elementor 페이지를 섹션별로 분석해 주입 가능한 위젯을 추출합니다.
터미널에서 실행하면 대화형으로 주입 포인트를 선택해 어댑터를 만들 수 있습니다.

예시:
  site-factory section-scan --input data/elementor-home.json \
    --output sections/t1_home.json --adapter-out adapters/t1_home.json \
    --template-id t1 --page-slug home`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadElementorDoc(sectionInput)
		if err != nil {
			return err
		}

		sections := scanner.ScanSections(doc)
		if sectionOutput != "" {
			if err := utils.WriteJSONFile(sectionOutput, map[string]interface{}{"sections": sections}); err != nil {
				return err
			}
			cmd.Printf("✓ 섹션 구조 저장 완료: %s (%d개 섹션)\n", sectionOutput, len(sections))
		}

		// 터미널이 아니면(파이프/CI) 구조 저장까지만 수행한다.
		interactive := !sectionNoPrompt && term.IsTerminal(int(os.Stdin.Fd()))
		if !interactive || sectionAdapterOut == "" {
			return nil
		}

		selections, err := tui.RunSectionPicker(sections)
		if err != nil {
			return err
		}
		if len(selections) == 0 {
			cmd.Println("선택된 주입 포인트가 없습니다.")
			return nil
		}

		generated := scanner.GenerateFromSelection(selections, sectionTemplateID, sectionPageSlug)
		if err := utils.WriteJSONFile(sectionAdapterOut, generated); err != nil {
			return err
		}

		cmd.Printf("✓ 총 %d개 주입 포인트 선택됨\n", len(selections))
		cmd.Printf("✓ 어댑터 생성 완료: %s\n", sectionAdapterOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionScanCmd)

	sectionScanCmd.Flags().StringVar(&sectionInput, "input", "", "Elementor JSON 입력 파일 경로")
	sectionScanCmd.Flags().StringVar(&sectionOutput, "output", "", "섹션 구조 출력 파일 경로")
	sectionScanCmd.Flags().StringVar(&sectionAdapterOut, "adapter-out", "", "선택 결과 어댑터 출력 경로")
	sectionScanCmd.Flags().StringVar(&sectionTemplateID, "template-id", "unknown", "템플릿 ID")
	sectionScanCmd.Flags().StringVar(&sectionPageSlug, "page-slug", "home", "페이지 슬러그")
	sectionScanCmd.Flags().BoolVar(&sectionNoPrompt, "no-prompt", false, "대화형 선택 건너뛰기")
	sectionScanCmd.MarkFlagRequired("input")
}
