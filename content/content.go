// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package content defines the polymorphic document-content tree carried by
// document objects, together with reference collection over it. Nodes are a
// closed set of kinds; every node type participates in the recursive
// reference walk, including nested content lists inside tables, areas and
// conditional branches. Adding a node kind without extending the walk breaks
// usage tracking, so the kind registry below is covered by an exhaustiveness
// test.
package content

// Kind discriminates content node types in serialized form.
type Kind string

const (
	KindParagraph         Kind = "paragraph"
	KindTable             Kind = "table"
	KindImageRef          Kind = "imageRef"
	KindDocumentObjectRef Kind = "documentObjectRef"
	KindArea              Kind = "area"
	KindFlowArea          Kind = "flowArea"
	KindFirstMatch        Kind = "firstMatch"
	KindSelectByLanguage  Kind = "selectByLanguage"
)

// Kinds is the closed registry of content node kinds.
var Kinds = []Kind{
	KindParagraph,
	KindTable,
	KindImageRef,
	KindDocumentObjectRef,
	KindArea,
	KindFlowArea,
	KindFirstMatch,
	KindSelectByLanguage,
}

// Node is a single node of the document-content tree.
type Node interface {
	Kind() Kind
	collectRefs(acc *[]Ref)
}

// NodeList is an ordered list of content nodes with polymorphic JSON
// encoding (see json.go).
type NodeList []Node

// TextRun is a styled run of text inside a paragraph.
type TextRun struct {
	Text         string `json:"text"`
	TextStyleRef string `json:"textStyleRef,omitempty"`
}

// Paragraph is a sequence of styled text runs.
type Paragraph struct {
	ParagraphStyleRef string    `json:"paragraphStyleRef,omitempty"`
	Runs              []TextRun `json:"runs"`
}

func (p *Paragraph) Kind() Kind { return KindParagraph }

func (p *Paragraph) collectRefs(acc *[]Ref) {
	addRef(acc, RefParagraphStyle, p.ParagraphStyleRef)
	for _, run := range p.Runs {
		addRef(acc, RefTextStyle, run.TextStyleRef)
	}
}

// TableCell holds a nested content list.
type TableCell struct {
	Content NodeList `json:"content"`
	ColSpan int      `json:"colSpan,omitempty"`
}

// TableRow is a row of cells, optionally gated by a display rule.
type TableRow struct {
	Cells          []TableCell `json:"cells"`
	DisplayRuleRef string      `json:"displayRuleRef,omitempty"`
}

// Table is rows of cells; column widths are optional.
type Table struct {
	Rows         []TableRow `json:"rows"`
	ColumnWidths []Size     `json:"columnWidths,omitempty"`
}

func (t *Table) Kind() Kind { return KindTable }

func (t *Table) collectRefs(acc *[]Ref) {
	for _, row := range t.Rows {
		addRef(acc, RefDisplayRule, row.DisplayRuleRef)
		for _, cell := range row.Cells {
			for _, n := range cell.Content {
				n.collectRefs(acc)
			}
		}
	}
}

// ImageRef places an image by id.
type ImageRef struct {
	ImageID string `json:"imageId"`
}

func (i *ImageRef) Kind() Kind { return KindImageRef }

func (i *ImageRef) collectRefs(acc *[]Ref) {
	addRef(acc, RefImage, i.ImageID)
}

// DocumentObjectRef embeds another document object, optionally gated by a
// display rule.
type DocumentObjectRef struct {
	ObjectID       string `json:"objectId"`
	DisplayRuleRef string `json:"displayRuleRef,omitempty"`
}

func (d *DocumentObjectRef) Kind() Kind { return KindDocumentObjectRef }

func (d *DocumentObjectRef) collectRefs(acc *[]Ref) {
	addRef(acc, RefDocumentObject, d.ObjectID)
	addRef(acc, RefDisplayRule, d.DisplayRuleRef)
}

// Area is a positioned region on a page.
type Area struct {
	X       Size     `json:"x"`
	Y       Size     `json:"y"`
	Width   Size     `json:"width"`
	Height  Size     `json:"height"`
	Content NodeList `json:"content"`
}

func (a *Area) Kind() Kind { return KindArea }

func (a *Area) collectRefs(acc *[]Ref) {
	for _, n := range a.Content {
		n.collectRefs(acc)
	}
}

// FlowArea is a positioned region whose content flows to the next linked
// area when it overruns.
type FlowArea struct {
	X       Size     `json:"x"`
	Y       Size     `json:"y"`
	Width   Size     `json:"width"`
	Height  Size     `json:"height"`
	Content NodeList `json:"content"`
}

func (f *FlowArea) Kind() Kind { return KindFlowArea }

func (f *FlowArea) collectRefs(acc *[]Ref) {
	for _, n := range f.Content {
		n.collectRefs(acc)
	}
}

// FirstMatchCase pairs an inline condition with the content rendered when
// the condition is the first to match.
type FirstMatchCase struct {
	Condition *RuleGroup `json:"condition,omitempty"`
	Content   NodeList   `json:"content"`
}

// FirstMatch renders the content of the first case whose condition matches,
// falling back to Default. Mirrors if/elseif/else.
type FirstMatch struct {
	Cases   []FirstMatchCase `json:"cases"`
	Default NodeList         `json:"default,omitempty"`
}

func (f *FirstMatch) Kind() Kind { return KindFirstMatch }

func (f *FirstMatch) collectRefs(acc *[]Ref) {
	for _, c := range f.Cases {
		if c.Condition != nil {
			c.Condition.collectRefs(acc)
		}
		for _, n := range c.Content {
			n.collectRefs(acc)
		}
	}
	for _, n := range f.Default {
		n.collectRefs(acc)
	}
}

// LanguageCase pairs a language tag with content.
type LanguageCase struct {
	Language string   `json:"language"`
	Content  NodeList `json:"content"`
}

// SelectByLanguage renders the case matching the rendering language.
type SelectByLanguage struct {
	Cases []LanguageCase `json:"cases"`
}

func (s *SelectByLanguage) Kind() Kind { return KindSelectByLanguage }

func (s *SelectByLanguage) collectRefs(acc *[]Ref) {
	for _, c := range s.Cases {
		for _, n := range c.Content {
			n.collectRefs(acc)
		}
	}
}
