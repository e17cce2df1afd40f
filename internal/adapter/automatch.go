package adapter

import (
	"fmt"

	"github.com/minkyu-lab/site-factory/internal/element"
)

// widgetMapping 위젯 타입 → site_spec 배열/대상 경로/op 매핑
type widgetMapping struct {
	SpecArray  string
	TargetPath string
	Op         string
}

// autoMappings 자동 매칭이 인식하는 위젯 타입
var autoMappings = map[string]widgetMapping{
	"heading":          {SpecArray: "content.titles", TargetPath: "settings.title", Op: OpSetText},
	"text-editor":      {SpecArray: "content.paragraphs", TargetPath: "settings.editor", Op: OpSetHTML},
	"button":           {SpecArray: "content.ctas", TargetPath: "settings.text", Op: OpSetText},
	"highlighted-text": {SpecArray: "content.highlights", TargetPath: "settings.content", Op: OpSetText},
	"image":            {SpecArray: "images.list", TargetPath: "settings.image.url", Op: OpSetImage},
}

// GenerateAuto 위젯 타입별 등장 순서를 기준으로 어댑터를 자동 생성한다.
// 같은 타입의 N번째 위젯이 해당 배열의 index N-1에 매칭된다.
// 카운터는 타입별로 독립적이다.
func GenerateAuto(doc *element.Document, pageSlug, templateID string, maxDepth int) *Adapter {
	var patches []Patch
	counters := map[string]int{}

	element.Walk(doc.Root(), maxDepth, func(_ *element.List, _ int, el map[string]interface{}) bool {
		widgetType := element.WidgetType(el)
		elementID := element.ElementID(el)
		if widgetType == "" || elementID == "" {
			return true
		}

		mapping, ok := autoMappings[widgetType]
		if !ok {
			return true
		}

		index := counters[widgetType]
		counters[widgetType]++

		patches = append(patches, Patch{
			Key:         fmt.Sprintf("%s[%d]", mapping.SpecArray, index),
			ElementID:   string(elementID),
			Path:        mapping.TargetPath,
			Op:          mapping.Op,
			WidgetType:  widgetType,
			AutoMatched: true,
			Index:       index,
		})
		return true
	})

	return &Adapter{
		TemplateID:    templateID,
		AutoGenerated: true,
		Pages: []Page{
			{PostSlug: pageSlug, Patches: patches},
		},
	}
}
