package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/element"
	"github.com/minkyu-lab/site-factory/internal/utils"
)

var (
	adapterInput      string
	adapterOutput     string
	adapterTemplateID string
	adapterPageSlug   string
	adapterMaxDepth   int
)

var adapterCmd = &cobra.Command{
	Use:   "adapter",
	Short: "어댑터 자동 생성 (auto / cssid)",
	Long: `어댑터를 자동으로 생성합니다.

전략:
  auto   위젯 타입별 등장 순서 기반 매칭 (어댑터 수동 작성 불필요)
  cssid  settings의 CSS ID(_element_id) 기반 매칭`,
}

var adapterAutoCmd = &cobra.Command{
	Use:   "auto",
	Short: "위젯 타입 기반 자동 매칭 어댑터 생성",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadElementorDoc(adapterInput)
		if err != nil {
			return err
		}

		generated := adapter.GenerateAuto(doc, adapterPageSlug, adapterTemplateID, adapterMaxDepth)
		if err := utils.WriteJSONFile(adapterOutput, generated); err != nil {
			return err
		}

		patches := generated.Pages[0].Patches
		cmd.Printf("✓ 어댑터 생성 완료: %s\n", adapterOutput)
		cmd.Printf("   총 %d개 패치 자동 생성\n", len(patches))
		return nil
	},
}

var adapterCSSIDCmd = &cobra.Command{
	Use:   "cssid",
	Short: "CSS ID 기반 어댑터 생성",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadElementorDoc(adapterInput)
		if err != nil {
			return err
		}

		generated := adapter.GenerateCSSID(doc, adapterPageSlug, adapterTemplateID, adapterMaxDepth)
		if err := utils.WriteJSONFile(adapterOutput, generated); err != nil {
			return err
		}

		patches := generated.Pages[0].Patches
		cmd.Printf("✓ 어댑터 생성 완료: %s\n", adapterOutput)
		cmd.Printf("   총 %d개 CSS ID 발견\n", len(patches))
		cmd.Println("\nCSS ID 목록:")
		for _, patch := range patches {
			cmd.Printf("   - %-25s (%s)\n", patch.Key, patch.WidgetType)
		}
		return nil
	},
}

// loadElementorDoc Elementor JSON을 읽어 문서를 만든다
func loadElementorDoc(path string) (*element.Document, error) {
	var raw interface{}
	if err := utils.ReadJSONFile(path, &raw); err != nil {
		return nil, err
	}

	doc := element.NewDocument(raw)
	if doc.Root() == nil {
		return nil, fmt.Errorf("Elementor JSON에서 elements 루트를 찾을 수 없습니다.")
	}
	return doc, nil
}

func init() {
	rootCmd.AddCommand(adapterCmd)
	adapterCmd.AddCommand(adapterAutoCmd)
	adapterCmd.AddCommand(adapterCSSIDCmd)

	adapterCmd.PersistentFlags().StringVar(&adapterInput, "input", "", "Elementor JSON 입력 파일 경로")
	adapterCmd.PersistentFlags().StringVar(&adapterOutput, "output", "", "출력 어댑터 파일 경로")
	adapterCmd.PersistentFlags().StringVar(&adapterTemplateID, "template-id", "", "템플릿 ID")
	adapterCmd.PersistentFlags().StringVar(&adapterPageSlug, "page-slug", "", "페이지 슬러그")
	adapterCmd.PersistentFlags().IntVar(&adapterMaxDepth, "max-depth", 12, "트리 최대 탐색 깊이")
	adapterCmd.MarkPersistentFlagRequired("input")
	adapterCmd.MarkPersistentFlagRequired("output")
	adapterCmd.MarkPersistentFlagRequired("template-id")
	adapterCmd.MarkPersistentFlagRequired("page-slug")
}
