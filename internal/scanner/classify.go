package scanner

import (
	"strings"
	"unicode/utf8"
)

// FieldType 주입 후보의 의미 타입
type FieldType string

const (
	FieldText  FieldType = "text"
	FieldLink  FieldType = "link"
	FieldImage FieldType = "image"
)

// ignoredSettingKeys 후보로 삼지 않는 settings 키.
// CSS ID/클래스/커스텀 CSS는 콘텐츠가 아니라 식별/스타일 정보다.
var ignoredSettingKeys = map[string]bool{
	"_css_id":     true,
	"css_id":      true,
	"cssId":       true,
	"cssid":       true,
	"_element_id": true,
	"_custom_css": true,
	"custom_css":  true,
	"css_classes": true,
	"css_class":   true,
	"classes":     true,
	"class":       true,
}

// textKeywords 키 이름에 들어 있으면 텍스트 후보로 보는 단어들
var textKeywords = []string{"title", "text", "desc", "content", "editor", "heading", "label"}

// cssValueKeywords transition/easing/단위 등 CSS 속성값으로 보이는 조각들
var cssValueKeywords = []string{"linear", "ease", "all", "box", "border", "px", "em", "rem"}

// IsIgnoredSettingKey 무시할 settings 키인지 확인한다
func IsIgnoredSettingKey(key string) bool {
	return ignoredSettingKeys[key]
}

// Classify 키 이름과 문자열 값으로 필드 타입을 추정한다.
// 스키마가 없는 사용자 작성 settings에 대한 최선의 휴리스틱이므로
// 정밀도보다 재현율을 우선하고, 다운스트림 필터가 걸러낸다.
// 무시해야 하는 값이면 ok=false.
func Classify(keyName, value string, assumeURL bool) (FieldType, bool) {
	normalizedKey := strings.ToLower(keyName)
	normalizedValue := strings.TrimSpace(value)

	if IsIgnoredSettingKey(keyName) {
		return "", false
	}

	if normalizedValue == "" {
		return "", false
	}

	if looksLikeColor(normalizedValue) {
		return "", false
	}

	if assumeURL || looksLikeURL(normalizedValue) {
		if strings.Contains(normalizedKey, "image") || strings.Contains(normalizedKey, "bg") {
			return FieldImage, true
		}
		return FieldLink, true
	}

	if strings.Contains(normalizedKey, "url") || strings.Contains(normalizedKey, "link") {
		return FieldLink, true
	}

	for _, keyword := range textKeywords {
		if strings.Contains(normalizedKey, keyword) {
			return FieldText, true
		}
	}

	// 기본은 텍스트로 처리하되 너무 짧거나 CSS 속성값처럼 보이면 제외한다.
	if utf8.RuneCountInString(normalizedValue) < 3 {
		return "", false
	}
	if looksLikeCSSValue(normalizedValue) {
		return "", false
	}

	return FieldText, true
}

// looksLikeURL URL 형태인지 간단히 판단한다. 마침표와 슬래시를 모두 가진
// 일반 문장도 URL로 오판할 수 있으나 원 동작을 유지한다.
func looksLikeURL(value string) bool {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") || strings.HasPrefix(value, "//") {
		return true
	}
	return strings.Contains(value, ".") && strings.Contains(value, "/")
}

// looksLikeColor #에 3/6/8자리 16진수가 붙은 컬러 코드인지 판단한다
func looksLikeColor(value string) bool {
	if !strings.HasPrefix(value, "#") {
		return false
	}
	hexDigits := value[1:]
	if len(hexDigits) != 3 && len(hexDigits) != 6 && len(hexDigits) != 8 {
		return false
	}
	for _, char := range hexDigits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", char) {
			return false
		}
	}
	return true
}

// looksLikeCSSValue CSS 속성값으로 보이는 텍스트인지 판단한다
func looksLikeCSSValue(value string) bool {
	lowered := strings.ToLower(value)
	for _, keyword := range cssValueKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
