package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minkyu-lab/site-factory/internal/scanner"
)

var (
	scanInput         string
	scanOutputDir     string
	scanPageSlug      string
	scanTemplateID    string
	scanMaxCandidates int
	scanMaxDepth      int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Elementor JSON에서 주입 후보를 추출",
	Long: `Elementor JSON을 스캔해 텍스트/링크/이미지 주입 후보를 추출하고
manifest.json과 adapter_skeleton.json을 생성합니다.

예시:
  site-factory scan --input data/elementor-home.json --output-dir output \
    --page-slug home --template-id t1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := scanner.ScanFile(scanInput, scanOutputDir, scanner.Options{
			PageSlug:      scanPageSlug,
			TemplateID:    scanTemplateID,
			MaxCandidates: scanMaxCandidates,
			MaxDepth:      scanMaxDepth,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanInput, "input", "", "Elementor JSON 입력 파일 경로")
	scanCmd.Flags().StringVar(&scanOutputDir, "output-dir", "output", "결과 저장 디렉터리")
	scanCmd.Flags().StringVar(&scanPageSlug, "page-slug", "home", "페이지 슬러그")
	scanCmd.Flags().StringVar(&scanTemplateID, "template-id", "unknown", "템플릿 ID")
	scanCmd.Flags().IntVar(&scanMaxCandidates, "max-candidates", 300, "추출 후보 최대 개수")
	scanCmd.Flags().IntVar(&scanMaxDepth, "max-depth", 12, "트리 최대 탐색 깊이")
	scanCmd.MarkFlagRequired("input")
}
