package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/scanner"
	"github.com/minkyu-lab/site-factory/internal/testutil"
	"github.com/minkyu-lab/site-factory/internal/utils"
)

// executeCommand 루트 커맨드를 인자와 함께 실행하고 출력을 돌려준다
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func sampleElementor() []interface{} {
	return []interface{}{
		testutil.Section("sec1",
			testutil.Widget("h1el", "heading", map[string]interface{}{"title": "기본 제목"}),
			testutil.Widget("btn1", "button", map[string]interface{}{"text": "기본 버튼"}),
			testutil.Widget("c1", "uicore-counter", map[string]interface{}{
				"_element_id": "home_counter_1",
				"number":      "95",
			}),
		),
	}
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	inputPath := testutil.WriteJSON(t, dir, "elementor.json", sampleElementor())

	output, err := executeCommand(t,
		"scan", "--input", inputPath, "--output-dir", dir,
		"--page-slug", "home", "--template-id", "t1")
	if err != nil {
		t.Fatalf("scan 실패: %v", err)
	}

	if !strings.Contains(output, "manifest_path") {
		t.Errorf("결과 요약이 출력되지 않았습니다: %s", output)
	}
	for _, name := range []string{"manifest.json", "adapter_skeleton.json"} {
		if !utils.FileExists(filepath.Join(dir, name)) {
			t.Errorf("결과 파일이 없습니다: %s", name)
		}
	}
}

func TestScanCommandMissingInputFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := executeCommand(t,
		"scan", "--input", filepath.Join(dir, "없음.json"), "--output-dir", dir,
		"--page-slug", "home", "--template-id", "t1"); err == nil {
		t.Error("없는 입력 파일인데 성공했습니다")
	}
}

func TestFilterCommand(t *testing.T) {
	dir := t.TempDir()
	manifest := &scanner.Manifest{
		SourceFile: "elementor.json",
		TemplateID: "t1",
		PageSlug:   "home",
		Candidates: []scanner.Candidate{
			{ElementID: "a", FieldType: scanner.FieldText, Path: "settings.title", Preview: "실제 작성 제목"},
			{ElementID: "b", FieldType: scanner.FieldText, Path: "settings.align", Preview: "0.3s linear"},
		},
	}
	inputPath := testutil.WriteJSON(t, dir, "manifest.json", manifest)
	outputPath := filepath.Join(dir, "filtered.json")

	output, err := executeCommand(t, "filter", inputPath, outputPath, "--stage", "meaningful")
	if err != nil {
		t.Fatalf("filter 실패: %v", err)
	}
	if !strings.Contains(output, "필터링 완료") {
		t.Errorf("요약이 출력되지 않았습니다: %s", output)
	}

	var filtered scanner.Manifest
	testutil.ReadJSON(t, outputPath, &filtered)
	if len(filtered.Candidates) != 1 {
		t.Errorf("필터 결과 수 = %d, want 1", len(filtered.Candidates))
	}
	if filtered.FilterStats == nil {
		t.Error("filter_stats가 저장되지 않았습니다")
	}
}

func TestFilterCommandUnknownStage(t *testing.T) {
	dir := t.TempDir()
	inputPath := testutil.WriteJSON(t, dir, "manifest.json", &scanner.Manifest{})

	_, err := executeCommand(t, "filter", inputPath, filepath.Join(dir, "out.json"), "--stage", "엉뚱한단계")
	if err == nil {
		t.Fatal("지원하지 않는 단계가 통과되었습니다")
	}
	if !strings.Contains(err.Error(), "지원하지 않는 필터 단계") {
		t.Errorf("에러 메시지가 다릅니다: %v", err)
	}
}

func TestAdapterAutoCommand(t *testing.T) {
	dir := t.TempDir()
	inputPath := testutil.WriteJSON(t, dir, "elementor.json", sampleElementor())
	outputPath := filepath.Join(dir, "adapter.json")

	output, err := executeCommand(t,
		"adapter", "auto", "--input", inputPath, "--output", outputPath,
		"--template-id", "t1", "--page-slug", "home")
	if err != nil {
		t.Fatalf("adapter auto 실패: %v", err)
	}
	if !strings.Contains(output, "어댑터 생성 완료") {
		t.Errorf("요약이 출력되지 않았습니다: %s", output)
	}

	var generated adapter.Adapter
	testutil.ReadJSON(t, outputPath, &generated)
	if !generated.AutoGenerated {
		t.Error("auto_generated 플래그가 없습니다")
	}
	// heading + button = 2개 (counter는 자동 매핑 대상이 아니다)
	if len(generated.Pages[0].Patches) != 2 {
		t.Errorf("패치 수 = %d, want 2", len(generated.Pages[0].Patches))
	}
}

func TestAdapterCSSIDCommand(t *testing.T) {
	dir := t.TempDir()
	inputPath := testutil.WriteJSON(t, dir, "elementor.json", sampleElementor())
	outputPath := filepath.Join(dir, "adapter.json")

	output, err := executeCommand(t,
		"adapter", "cssid", "--input", inputPath, "--output", outputPath,
		"--template-id", "t1", "--page-slug", "home")
	if err != nil {
		t.Fatalf("adapter cssid 실패: %v", err)
	}
	if !strings.Contains(output, "home_counter_1") {
		t.Errorf("CSS ID 목록이 출력되지 않았습니다: %s", output)
	}

	var generated adapter.Adapter
	testutil.ReadJSON(t, outputPath, &generated)
	patches := generated.Pages[0].Patches
	if len(patches) != 1 || patches[0].Op != adapter.OpSetCounter {
		t.Errorf("cssid 패치가 다릅니다: %+v", patches)
	}
}

func TestSectionScanCommand(t *testing.T) {
	dir := t.TempDir()
	inputPath := testutil.WriteJSON(t, dir, "elementor.json", sampleElementor())
	outputPath := filepath.Join(dir, "sections.json")

	output, err := executeCommand(t,
		"section-scan", "--input", inputPath, "--output", outputPath, "--no-prompt")
	if err != nil {
		t.Fatalf("section-scan 실패: %v", err)
	}
	if !strings.Contains(output, "섹션 구조 저장 완료") {
		t.Errorf("요약이 출력되지 않았습니다: %s", output)
	}

	var saved struct {
		Sections []scanner.Section `json:"sections"`
	}
	testutil.ReadJSON(t, outputPath, &saved)
	if len(saved.Sections) != 1 {
		t.Fatalf("섹션 수 = %d, want 1", len(saved.Sections))
	}
	if saved.Sections[0].SuggestedName != "hero" {
		t.Errorf("추천 이름이 다릅니다: %q", saved.Sections[0].SuggestedName)
	}
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()

	siteSpec := map[string]interface{}{
		"brand": map[string]interface{}{
			"name": "한빛", "tagline": "웹사이트",
			"contact": map[string]interface{}{"email": "a@b.c"},
		},
		"design": map[string]interface{}{
			"colors": map[string]interface{}{"primary": "#111111", "secondary": "#222222", "accent": "#333333"},
			"fonts":  map[string]interface{}{"heading": "P", "body": "N"},
		},
		"pages": map[string]interface{}{
			"home": map[string]interface{}{
				"hero": map[string]interface{}{
					"h1": "새 제목", "sub": "부제", "cta_text": "시작", "cta_url": "https://x.y",
				},
			},
		},
		"seo": map[string]interface{}{
			"home":         map[string]interface{}{"title": "t", "description": "d"},
			"organization": map[string]interface{}{"name": "n", "url": "https://x.y"},
		},
	}
	templateAdapter := &adapter.Adapter{
		TemplateID: "t1",
		Pages: []adapter.Page{
			{
				PostSlug: "home",
				Patches: []adapter.Patch{
					{Key: "pages.home.hero.h1", ElementID: "h1el", Path: "settings.title", Op: adapter.OpSetText},
				},
			},
		},
	}

	outputDir := filepath.Join(dir, "output")
	output, err := executeCommand(t, "run",
		"--config", testutil.WriteJSON(t, dir, "config.json", map[string]interface{}{"project": map[string]interface{}{"name": "site-factory"}}),
		"--site-spec", testutil.WriteJSON(t, dir, "site_spec.json", siteSpec),
		"--adapter", testutil.WriteJSON(t, dir, "adapter.json", templateAdapter),
		"--elementor", testutil.WriteJSON(t, dir, "elementor.json", sampleElementor()),
		"--output-dir", outputDir)
	if err != nil {
		t.Fatalf("run 실패: %v", err)
	}

	if !strings.Contains(output, `"status": "completed"`) {
		t.Errorf("리포트가 출력되지 않았습니다: %s", output)
	}
	for _, name := range []string{"patched_elementor.json", "patch_results.json", "run_report.json"} {
		if !utils.FileExists(filepath.Join(outputDir, name)) {
			t.Errorf("결과 파일이 없습니다: %s", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version 실패: %v", err)
	}
	if !strings.Contains(output, "site-factory 버전") {
		t.Errorf("버전 정보가 출력되지 않았습니다: %s", output)
	}
}
