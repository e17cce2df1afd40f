package element

// Document 하나의 Elementor JSON 문서. 루트가 배열인 경우와
// {"elements": [...]} 형태인 경우를 모두 감싼다.
type Document struct {
	raw interface{}
}

// NewDocument 디코딩된 JSON에서 문서를 만든다. 예: NewDocument(raw)
func NewDocument(raw interface{}) *Document {
	return &Document{raw: raw}
}

// Raw 현재 문서 데이터를 반환한다 (저장용).
func (d *Document) Raw() interface{} {
	return d.raw
}

// List 부모 elements 리스트에 대한 핸들. 삭제 시 슬라이스를 다시
// 소유자(map 또는 문서 루트)에 할당해야 하므로 assign을 함께 들고 다닌다.
type List struct {
	items  []interface{}
	assign func([]interface{})
}

// Items 리스트 항목을 반환한다.
func (l *List) Items() []interface{} {
	return l.items
}

// Len 리스트 길이를 반환한다.
func (l *List) Len() int {
	return len(l.items)
}

// Remove index 위치의 요소를 제거하고 소유자에 반영한다.
func (l *List) Remove(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	if l.assign != nil {
		l.assign(l.items)
	}
	return true
}

// Root 문서의 elements 루트 리스트를 찾는다. 루트가 배열이거나
// elements 키를 가진 객체, 또는 요소 리스트처럼 보이는 값을 가진
// 객체(얕은 탐색)를 허용한다. 찾지 못하면 nil.
func (d *Document) Root() *List {
	if items, ok := d.raw.([]interface{}); ok {
		return &List{items: items, assign: func(updated []interface{}) { d.raw = updated }}
	}

	data, ok := d.raw.(map[string]interface{})
	if !ok {
		return nil
	}

	if items, ok := data["elements"].([]interface{}); ok {
		return &List{items: items, assign: func(updated []interface{}) { data["elements"] = updated }}
	}

	// 일부 JSON은 다른 키에 elements가 들어 있으므로 얕은 탐색만 수행한다.
	for key, value := range data {
		items, ok := value.([]interface{})
		if !ok || len(items) == 0 {
			continue
		}
		if looksLikeElementList(items) {
			boundKey := key
			return &List{items: items, assign: func(updated []interface{}) { data[boundKey] = updated }}
		}
	}

	return nil
}

// looksLikeElementList 앞쪽 항목 몇 개만 보고 요소 리스트인지 추정한다.
func looksLikeElementList(items []interface{}) bool {
	limit := len(items)
	if limit > 5 {
		limit = 5
	}
	for _, item := range items[:limit] {
		el, ok := item.(map[string]interface{})
		if !ok {
			return false
		}
		if _, hasID := el["id"]; !hasID {
			return false
		}
		if _, hasChildren := el["elements"]; !hasChildren {
			return false
		}
	}
	return true
}

// VisitFunc 순회 콜백. false를 반환하면 순회를 즉시 중단한다.
// parent와 index를 함께 넘기므로 재탐색 없이 제자리 삭제가 가능하다.
type VisitFunc func(parent *List, index int, el map[string]interface{}) bool

// Walk elements 트리를 깊이 우선(부모 먼저) 순서로 순회한다.
// maxDepth를 넘는 요소는 조용히 건너뛰고, map이 아닌 항목은 무시한다.
// 전체를 순회했으면 true, 콜백이 중단시켰으면 false를 반환한다.
func Walk(root *List, maxDepth int, visit VisitFunc) bool {
	if root == nil {
		return true
	}
	return walkList(root, 0, maxDepth, visit)
}

func walkList(list *List, depth, maxDepth int, visit VisitFunc) bool {
	if depth > maxDepth {
		return true
	}

	for index := 0; index < len(list.items); index++ {
		el, ok := list.items[index].(map[string]interface{})
		if !ok {
			continue
		}

		before := len(list.items)
		if !visit(list, index, el) {
			return false
		}
		if len(list.items) < before {
			// 콜백이 현재 요소를 삭제한 경우 같은 index를 다시 본다.
			index--
			continue
		}

		if children, ok := el["elements"].([]interface{}); ok {
			childList := &List{
				items:  children,
				assign: func(updated []interface{}) { el["elements"] = updated },
			}
			if !walkList(childList, depth+1, maxDepth, visit) {
				return false
			}
		}
	}

	return true
}
