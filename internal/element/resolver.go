package element

// Match 트리에서 찾은 요소와 그 부모 컨텍스트
type Match struct {
	Parent  *List
	Index   int
	Element map[string]interface{}
}

// Find 요소 id 또는 CSS ID로 요소를 찾는다. 둘 다 주어지면 순회 순서상
// 먼저 만나는 쪽이 이긴다 (id를 우선하지 않는다). 못 찾으면 ok=false —
// 이는 정상 결과이며 호출자가 패치 단위로 상태를 보고할 수 있게 한다.
func Find(doc *Document, id ID, cssID CSSID, maxDepth int) (Match, bool) {
	var found Match
	ok := false

	Walk(doc.Root(), maxDepth, func(parent *List, index int, el map[string]interface{}) bool {
		if id != "" && ElementID(el) == id {
			found = Match{Parent: parent, Index: index, Element: el}
			ok = true
			return false
		}
		if cssID != "" && MatchesCSSID(Settings(el), cssID) {
			found = Match{Parent: parent, Index: index, Element: el}
			ok = true
			return false
		}
		return true
	})

	return found, ok
}
