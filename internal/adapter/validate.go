package adapter

import (
	"fmt"
	"strings"
)

// Validate 어댑터의 기본 구조를 검증한다. 패치 적용 전에 호출되며
// 실패하면 전체 실행을 중단시킨다.
func Validate(a *Adapter) error {
	var problems []string

	if a.TemplateID == "" {
		problems = append(problems, "adapter.template_id가 필요합니다.")
	}

	if len(a.Pages) == 0 {
		problems = append(problems, "adapter.pages는 비어있지 않은 리스트여야 합니다.")
	}

	for pageIndex, page := range a.Pages {
		if page.Patches == nil {
			problems = append(problems, fmt.Sprintf("pages[%d].patches는 리스트여야 합니다.", pageIndex))
			continue
		}

		for patchIndex, patch := range page.Patches {
			if patch.Key == "" {
				problems = append(problems, fmt.Sprintf("patches[%d]에 'key'가 필요합니다.", patchIndex))
			}
			if patch.ElementID == "" && patch.CSSID == "" {
				problems = append(problems, fmt.Sprintf("patches[%d]에 'element_id' 또는 'css_id'가 필요합니다.", patchIndex))
			}
			if patch.Path == "" {
				problems = append(problems, fmt.Sprintf("patches[%d]에 'path'가 필요합니다.", patchIndex))
			}
			if patch.Op == "" {
				problems = append(problems, fmt.Sprintf("patches[%d]에 'op'가 필요합니다.", patchIndex))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return nil
}
