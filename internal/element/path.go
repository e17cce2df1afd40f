package element

import (
	"strconv"
	"strings"
)

// 점(.)으로 구분된 중첩 경로 조회/설정. 리스트 인덱스는 숫자 세그먼트로
// 표현한다. 예: "settings.icon_list.0.text"

// GetPath 중첩 경로의 값을 조회한다. 없으면 nil. 예: GetPath(spec, "brand.name")
func GetPath(data interface{}, path string) interface{} {
	value, ok := lookupPath(data, path)
	if !ok {
		return nil
	}
	return value
}

// HasPath 중첩 경로가 존재하는지 확인한다. 값이 null이어도 존재로 본다.
func HasPath(data interface{}, path string) bool {
	_, ok := lookupPath(data, path)
	return ok
}

func lookupPath(data interface{}, path string) (interface{}, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, false
	}

	current := data
	for _, segment := range segments {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}

// SetPath 중첩 경로에 값을 설정한다. strict가 false면 중간 경로가 없을 때
// 빈 맵을 만들어 내려간다. 성공 여부를 반환한다.
func SetPath(data interface{}, path string, value interface{}, strict bool) bool {
	segments := splitPath(path)
	if len(segments) == 0 {
		return false
	}

	current := data
	for _, segment := range segments[:len(segments)-1] {
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[segment]
			if ok {
				current = next
				continue
			}
			if strict {
				return false
			}
			created := map[string]interface{}{}
			node[segment] = created
			current = created
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return false
			}
			current = node[index]
		default:
			return false
		}
	}

	last := segments[len(segments)-1]
	switch node := current.(type) {
	case map[string]interface{}:
		node[last] = value
		return true
	case []interface{}:
		index, err := strconv.Atoi(last)
		if err != nil || index < 0 || index >= len(node) {
			return false
		}
		node[index] = value
		return true
	}
	return false
}

// splitPath 경로를 분할한다. "arr[0]" 형태의 인덱스는 ".0"으로 정규화한다.
func splitPath(path string) []string {
	normalized := strings.NewReplacer("[", ".", "]", "").Replace(path)

	var segments []string
	for _, segment := range strings.Split(normalized, ".") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// Clone 문서를 깊은 복사한다. 패처는 항상 복사본 위에서만 동작한다.
func Clone(value interface{}) interface{} {
	switch node := value.(type) {
	case map[string]interface{}:
		copied := make(map[string]interface{}, len(node))
		for key, item := range node {
			copied[key] = Clone(item)
		}
		return copied
	case []interface{}:
		copied := make([]interface{}, len(node))
		for index, item := range node {
			copied[index] = Clone(item)
		}
		return copied
	default:
		return value
	}
}
