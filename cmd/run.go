package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minkyu-lab/site-factory/internal/pipeline"
)

var (
	runConfig    string
	runSiteSpec  string
	runAdapter   string
	runElementor string
	runOutputDir string
	runUseMock   bool
	runLenient   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "어댑터 패치 적용 파이프라인 실행",
	Long: `site_spec과 어댑터를 검증한 뒤 Elementor JSON에 패치를 적용하고
patched_elementor.json / patch_results.json / run_report.json을 생성합니다.

예시:
  site-factory run --config config.sample.json --use-mock
  site-factory run --config config.yaml --site-spec spec.json \
    --adapter adapter.json --elementor elementor.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := pipeline.Run(pipeline.Options{
			ConfigPath:    runConfig,
			SiteSpecPath:  runSiteSpec,
			AdapterPath:   runAdapter,
			ElementorPath: runElementor,
			OutputDir:     runOutputDir,
			UseMock:       runUseMock,
			StrictPath:    !runLenient,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, report)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runConfig, "config", "", "설정 파일 경로 (json/yaml)")
	runCmd.Flags().StringVar(&runSiteSpec, "site-spec", "", "site_spec.json 경로")
	runCmd.Flags().StringVar(&runAdapter, "adapter", "", "template_adapter.json 경로")
	runCmd.Flags().StringVar(&runElementor, "elementor", "", "Elementor JSON 경로")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "output", "결과 저장 디렉터리")
	runCmd.Flags().BoolVar(&runUseMock, "use-mock", false, "Mock 데이터로 실행")
	runCmd.Flags().BoolVar(&runLenient, "lenient-path", false, "중간 경로가 없으면 만들어서 쓴다")
	runCmd.MarkFlagRequired("config")
}
