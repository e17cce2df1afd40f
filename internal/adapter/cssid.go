package adapter

import (
	"github.com/minkyu-lab/site-factory/internal/element"
)

// cssIDPathMap 위젯 타입별 기본 주입 경로. counter/icon-box 계열은
// 복합 필드이므로 settings 전체를 대상으로 한다.
var cssIDPathMap = map[string]string{
	"heading":          "settings.title",
	"text-editor":      "settings.editor",
	"button":           "settings.text",
	"image":            "settings.image.url",
	"icon-list":        "settings.icon_list",
	"highlighted-text": "settings.content",
	"uicore-counter":   "settings",
	"uicore-icon-box":  "settings",
}

// cssIDOpMap 위젯 타입별 기본 op
var cssIDOpMap = map[string]string{
	"heading":          OpSetText,
	"text-editor":      OpSetHTML,
	"button":           OpSetText,
	"image":            OpSetImage,
	"icon-list":        OpSetText,
	"highlighted-text": OpSetText,
	"uicore-counter":   OpSetCounter,
	"uicore-icon-box":  OpSetIconBox,
}

// GenerateCSSID settings의 _element_id(CSS ID)가 지정된 위젯만 모아
// 어댑터를 생성한다. CSS ID가 site_spec 키이자 해석 식별자가 된다.
func GenerateCSSID(doc *element.Document, pageSlug, templateID string, maxDepth int) *Adapter {
	var patches []Patch

	element.Walk(doc.Root(), maxDepth, func(_ *element.List, _ int, el map[string]interface{}) bool {
		settings := element.Settings(el)
		if settings == nil {
			return true
		}
		cssID, _ := settings["_element_id"].(string)
		if cssID == "" {
			return true
		}

		widgetType := element.WidgetType(el)
		if widgetType == "" {
			widgetType = element.ElType(el)
		}

		path, ok := cssIDPathMap[widgetType]
		if !ok {
			path = "settings"
		}
		op, ok := cssIDOpMap[widgetType]
		if !ok {
			op = OpSetText
		}

		patches = append(patches, Patch{
			Key:        cssID,
			ElementID:  string(element.ElementID(el)),
			Path:       path,
			Op:         op,
			WidgetType: widgetType,
		})
		return true
	})

	return &Adapter{
		TemplateID: templateID,
		Pages: []Page{
			{PostSlug: pageSlug, Patches: patches},
		},
	}
}
