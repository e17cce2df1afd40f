package sitespec

import (
	"fmt"
	"strings"

	"github.com/minkyu-lab/site-factory/internal/element"
)

// Spec 사이트 콘텐츠 스펙. 점 구분 키로 실제 콘텐츠 값을 공급한다.
// 코어 입장에서는 읽기 전용이다.
type Spec map[string]interface{}

// RequiredKeys site_spec이 반드시 갖춰야 하는 키 목록
var RequiredKeys = []string{
	"brand.name",
	"brand.tagline",
	"brand.contact.email",
	"design.colors.primary",
	"design.colors.secondary",
	"design.colors.accent",
	"design.fonts.heading",
	"design.fonts.body",
	"pages.home.hero.h1",
	"pages.home.hero.sub",
	"pages.home.hero.cta_text",
	"pages.home.hero.cta_url",
	"seo.home.title",
	"seo.home.description",
	"seo.organization.name",
	"seo.organization.url",
}

// Lookup 점 구분 키로 값을 조회한다. 자동 매칭이 만드는 "content.titles[0]"
// 형태의 인덱스 표기도 허용한다. 없으면 nil.
func (s Spec) Lookup(key string) interface{} {
	return element.GetPath(map[string]interface{}(s), key)
}

// Has 키 존재 여부를 확인한다. 예: spec.Has("seo.home.title")
func (s Spec) Has(key string) bool {
	return element.HasPath(map[string]interface{}(s), key)
}

// Validate 필수 키를 검증한다. 누락 키가 있으면 전체 실행을 중단시킨다.
func Validate(spec Spec) error {
	var missing []string
	for _, key := range RequiredKeys {
		if !spec.Has(key) {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("site_spec 필수 키가 누락되었습니다: %s", strings.Join(missing, ", "))
	}

	return nil
}
