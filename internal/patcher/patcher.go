package patcher

import (
	"fmt"

	"github.com/minkyu-lab/site-factory/internal/adapter"
	"github.com/minkyu-lab/site-factory/internal/element"
	"github.com/minkyu-lab/site-factory/internal/sitespec"
)

// DefaultMaxDepth 요소 탐색 기본 깊이 제한
const DefaultMaxDepth = 12

// Options 패치 적용 옵션
type Options struct {
	// StrictPath true면 중간 경로가 없을 때 에러로 처리한다 (기본 동작)
	StrictPath bool
	// MaxDepth 요소 해석 시 트리 탐색 깊이 제한. 0이면 DefaultMaxDepth.
	MaxDepth int
}

// Apply 어댑터의 모든 패치를 순서대로 적용한다. 입력 문서는 절대 변경하지
// 않고 깊은 복사본 위에서만 동작한다. 패치 하나가 실패해도 배치는 계속
// 진행되며, 패치당 정확히 하나의 결과가 입력 순서 그대로 쌓인다.
func Apply(raw interface{}, a *adapter.Adapter, spec sitespec.Spec, opts Options) (interface{}, []adapter.PatchResult) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	patched := element.Clone(raw)
	doc := element.NewDocument(patched)
	results := []adapter.PatchResult{}

	for _, page := range a.Pages {
		for _, patch := range page.Patches {
			results = append(results, applyOne(doc, patch, spec, opts.StrictPath, maxDepth))
		}
	}

	return doc.Raw(), results
}

func applyOne(doc *element.Document, patch adapter.Patch, spec sitespec.Spec, strictPath bool, maxDepth int) adapter.PatchResult {
	if patch.Op == "" || patch.Key == "" || patch.Path == "" || (patch.ElementID == "" && patch.CSSID == "") {
		return result(adapter.StatusError, "patch 필수 필드가 누락되었습니다.", patch)
	}

	match, found := element.Find(doc, element.ID(patch.ElementID), element.CSSID(patch.CSSID), maxDepth)
	if !found {
		identity := patch.ElementID
		if identity == "" {
			identity = patch.CSSID
		}
		return result(adapter.StatusError, fmt.Sprintf("요소를 찾을 수 없습니다: %s", identity), patch)
	}

	if patch.Op == adapter.OpDelete {
		// 삭제는 요소 자체를 부모 리스트에서 제거한다.
		match.Parent.Remove(match.Index)
		return result(adapter.StatusDeleted, "요소를 삭제했습니다.", patch)
	}

	value := spec.Lookup(patch.Key)
	if value == nil {
		return result(adapter.StatusSkipped, fmt.Sprintf("site_spec 값이 없어 건너뜁니다: %s", patch.Key), patch)
	}

	if message, ok := applyOp(match.Element, patch, value, strictPath); !ok {
		return result(adapter.StatusError, message, patch)
	}

	return result(adapter.StatusApplied, "패치가 적용되었습니다.", patch)
}

func result(status, message string, patch adapter.Patch) adapter.PatchResult {
	return adapter.PatchResult{Status: status, Message: message, Patch: patch}
}
