package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minkyu-lab/site-factory/internal/scanner"
	"github.com/minkyu-lab/site-factory/internal/utils"
)

var filterStage string

var filterCmd = &cobra.Command{
	Use:   "filter <입력 manifest> <출력 manifest>",
	Short: "manifest에서 의미 있는 후보만 필터링",
	Long: `스캔 결과 manifest를 필터링합니다.

단계:
  meaningful  CSS성 노이즈/기본값을 제거한 의미 있는 후보 (1단계)
  core        핵심 위젯의 실제 사용자 노출 콘텐츠만 (2단계)

예시:
  site-factory filter output/manifest.json output/filtered_manifest.json
  site-factory filter output/filtered_manifest.json output/core_content.json --stage core`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, outputPath := args[0], args[1]

		manifest := &scanner.Manifest{}
		if err := utils.ReadJSONFile(inputPath, manifest); err != nil {
			return err
		}

		var filtered *scanner.Manifest
		switch filterStage {
		case "meaningful":
			filtered = scanner.FilterMeaningful(manifest)
		case "core":
			filtered = scanner.FilterCore(manifest)
		default:
			return fmt.Errorf("지원하지 않는 필터 단계입니다: %s (meaningful/core)", filterStage)
		}

		if err := utils.WriteJSONFile(outputPath, filtered); err != nil {
			return err
		}

		cmd.Println("✓ 필터링 완료:")
		cmd.Printf("   원본: %d개\n", len(manifest.Candidates))
		cmd.Printf("   필터: %d개\n", len(filtered.Candidates))
		if stats := filtered.FilterStats; stats != nil {
			cmd.Printf("   - CSS ID: %d개\n", stats.HasCSSID)
			cmd.Printf("   - 텍스트: %d개\n", stats.MeaningfulText)
			cmd.Printf("   - 이미지: %d개\n", stats.Images)
			cmd.Printf("   - 링크: %d개\n", stats.Links)
		}
		if stats := filtered.CoreStats; stats != nil {
			cmd.Printf("   - Heading: %d개\n", stats.Heading)
			cmd.Printf("   - Text Editor: %d개\n", stats.TextEditor)
			cmd.Printf("   - Button: %d개\n", stats.Button)
			cmd.Printf("   - Highlighted Text: %d개\n", stats.HighlightedText)
			cmd.Printf("   - Icon List: %d개\n", stats.IconList)
			cmd.Printf("   - Image: %d개\n", stats.Image)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterStage, "stage", "meaningful", "필터 단계 (meaningful/core)")
}
