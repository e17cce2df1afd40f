package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/patcher"
	"github.com/minkyu-lab/site-factory/internal/sitespec"
	"github.com/minkyu-lab/site-factory/internal/utils"
)

// Mock 실행에 쓰이는 샘플 데이터 경로
const (
	MockSiteSpecPath  = "data/mock/site_spec.sample.json"
	MockAdapterPath   = "data/mock/template_adapter.sample.json"
	MockElementorPath = "data/mock/elementor.sample.json"
)

// Options 파이프라인 실행 옵션
type Options struct {
	ConfigPath    string
	SiteSpecPath  string
	AdapterPath   string
	ElementorPath string
	OutputDir     string
	UseMock       bool
	StrictPath    bool
}

// Run 전체 파이프라인을 실행한다: 설정/입력 로드 → 검증 → 패치 적용 →
// 결과물 저장 → 리포트 생성. 검증 실패는 즉시 전체 실행을 중단시키고,
// 패치 단위 실패는 결과 레코드로만 남는다.
func Run(opts Options) (*RunReport, error) {
	config, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.UseMock {
		opts.SiteSpecPath = MockSiteSpecPath
		opts.AdapterPath = MockAdapterPath
		opts.ElementorPath = MockElementorPath
	}

	if opts.SiteSpecPath == "" || opts.AdapterPath == "" || opts.ElementorPath == "" {
		return nil, fmt.Errorf("site_spec, adapter, elementor 경로가 필요합니다. --use-mock 또는 경로를 지정해주세요.")
	}

	spec := sitespec.Spec{}
	if err := utils.ReadJSONFile(opts.SiteSpecPath, &spec); err != nil {
		return nil, err
	}

	templateAdapter := &adapter.Adapter{}
	if err := utils.ReadJSONFile(opts.AdapterPath, templateAdapter); err != nil {
		return nil, err
	}

	var elementorData interface{}
	if err := utils.ReadJSONFile(opts.ElementorPath, &elementorData); err != nil {
		return nil, err
	}

	if err := sitespec.Validate(spec); err != nil {
		return nil, err
	}
	if err := adapter.Validate(templateAdapter); err != nil {
		return nil, err
	}

	patched, results := patcher.Apply(elementorData, templateAdapter, spec, patcher.Options{
		StrictPath: opts.StrictPath,
	})

	if err := utils.EnsureDir(opts.OutputDir); err != nil {
		return nil, err
	}

	patchedPath := filepath.Join(opts.OutputDir, "patched_elementor.json")
	resultsPath := filepath.Join(opts.OutputDir, "patch_results.json")
	reportPath := filepath.Join(opts.OutputDir, "run_report.json")

	if err := utils.WriteJSONFile(patchedPath, patched); err != nil {
		return nil, err
	}
	if err := utils.WriteJSONFile(resultsPath, map[string]interface{}{"results": results}); err != nil {
		return nil, err
	}

	report := BuildRunReport(config, opts, results)
	if err := utils.WriteJSONFile(reportPath, report); err != nil {
		return nil, err
	}

	return report, nil
}
