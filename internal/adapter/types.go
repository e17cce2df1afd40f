package adapter

// 패치 op 태그. op가 패처의 구조적 병합 전략을 결정한다.
const (
	OpSetText            = "set_text"
	OpSetHTML            = "set_html"
	OpSetURL             = "set_url"
	OpSetImage           = "set_image"
	OpSetImageURL        = "set_image_url"
	OpSetHighlightedText = "set_highlighted_text"
	OpSetIconList        = "set_icon_list"
	OpSetCounter         = "set_counter"
	OpSetIconBox         = "set_iconbox"
	OpDelete             = "delete"
)

// Patch 하나의 주입 지시. element_id 또는 css_id 중 하나는 반드시 있어야 한다.
type Patch struct {
	Key         string `json:"key"`
	ElementID   string `json:"element_id,omitempty"`
	CSSID       string `json:"css_id,omitempty"`
	Path        string `json:"path"`
	Op          string `json:"op"`
	WidgetType  string `json:"widget_type,omitempty"`
	Comment     string `json:"comment,omitempty"`
	AutoMatched bool   `json:"auto_matched,omitempty"`
	Index       int    `json:"index,omitempty"`
}

// Page 페이지 하나에 적용할 패치 묶음
type Page struct {
	PostSlug string  `json:"post_slug"`
	Patches  []Patch `json:"patches"`
}

// Adapter 템플릿 하나에 대한 패치 소유 컨테이너
type Adapter struct {
	TemplateID    string                 `json:"template_id"`
	AutoGenerated bool                   `json:"auto_generated,omitempty"`
	Pages         []Page                 `json:"pages"`
	Globals       map[string]interface{} `json:"globals,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
}

// 패치 결과 상태
const (
	StatusApplied = "applied"
	StatusSkipped = "skipped"
	StatusError   = "error"
	StatusDeleted = "deleted"
)

// PatchResult 패치 하나당 정확히 하나 생성되는 결과 레코드.
// 입력 패치 순서를 그대로 따른다.
type PatchResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Patch   Patch  `json:"patch"`
}
