package pipeline

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/utils"
)

// Summary 패치 결과 집계
type Summary struct {
	TotalPatches int `json:"total_patches"`
	Applied      int `json:"applied"`
	Skipped      int `json:"skipped"`
	Errors       int `json:"errors"`
	Deleted      int `json:"deleted"`
}

// RunReport 파이프라인 실행 리포트
type RunReport struct {
	Status    string                 `json:"status"`
	RunID     string                 `json:"run_id"`
	Timestamp string                 `json:"timestamp"`
	Config    map[string]interface{} `json:"config"`
	Inputs    map[string]string      `json:"inputs"`
	Outputs   map[string]string      `json:"outputs"`
	Summary   Summary                `json:"summary"`
}

// BuildRunReport 실행 리포트를 생성한다. 설정은 project/paths 섹션만
// 스냅샷으로 남긴다.
func BuildRunReport(config Config, opts Options, results []adapter.PatchResult) *RunReport {
	return &RunReport{
		Status:    "completed",
		RunID:     uuid.New().String(),
		Timestamp: utils.NowISO(),
		Config: map[string]interface{}{
			"project": config.Section("project"),
			"paths":   config.Section("paths"),
		},
		Inputs: map[string]string{
			"site_spec_path": opts.SiteSpecPath,
			"adapter_path":   opts.AdapterPath,
			"elementor_path": opts.ElementorPath,
		},
		Outputs: map[string]string{
			"output_dir":        opts.OutputDir,
			"patched_elementor": filepath.Join(opts.OutputDir, "patched_elementor.json"),
			"patch_results":     filepath.Join(opts.OutputDir, "patch_results.json"),
		},
		Summary: Summarize(results),
	}
}

// Summarize 결과 리스트를 상태별로 집계한다
func Summarize(results []adapter.PatchResult) Summary {
	summary := Summary{TotalPatches: len(results)}
	for _, item := range results {
		switch item.Status {
		case adapter.StatusApplied:
			summary.Applied++
		case adapter.StatusSkipped:
			summary.Skipped++
		case adapter.StatusError:
			summary.Errors++
		case adapter.StatusDeleted:
			summary.Deleted++
		}
	}
	return summary
}
