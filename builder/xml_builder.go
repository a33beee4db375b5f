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

package builder

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/wso2/doc-migration-platform/migration-service/content"
	"github.com/wso2/doc-migration-platform/migration-service/models"
)

// XMLLayoutBuilder emits the XML design format consumed by the composition
// server's xml2wfd import.
type XMLLayoutBuilder struct{}

// NewXMLLayoutBuilder creates the XML layout builder
func NewXMLLayoutBuilder() LayoutBuilder {
	return &XMLLayoutBuilder{}
}

func (b *XMLLayoutBuilder) BuildDocumentObject(obj *models.DocumentObject, inlined map[string]*models.DocumentObject) ([]byte, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	w := &xmlWriter{}
	w.raw(xml.Header)
	w.open("documentObject",
		"id", obj.ID,
		"name", obj.DisplayName(),
		"type", string(obj.Type))

	if obj.BaseTemplate != "" {
		w.leaf("baseTemplate", "ref", obj.BaseTemplate)
	}
	if obj.DisplayRuleRef != "" {
		w.leaf("displayRule", "ref", obj.DisplayRuleRef)
	}
	if obj.VariableStructureRef != "" {
		w.leaf("variableStructure", "ref", obj.VariableStructureRef)
	}
	if obj.Options != nil {
		w.leaf("pageOptions",
			"width", obj.Options.Width.String(),
			"height", obj.Options.Height.String(),
			"marginTop", obj.Options.MarginTop.String(),
			"marginBottom", obj.Options.MarginBottom.String(),
			"marginLeft", obj.Options.MarginLeft.String(),
			"marginRight", obj.Options.MarginRight.String(),
			"orientation", obj.Options.Orientation)
	}

	if obj.Skip != nil && *obj.Skip {
		w.open("placeholder")
		w.text(obj.DisplayName())
		w.close("placeholder")
	} else {
		visiting := map[string]bool{obj.ID: true}
		if err := b.writeNodes(w, obj.Content, inlined, visiting); err != nil {
			return nil, err
		}
	}

	w.close("documentObject")
	return w.bytes()
}

func (b *XMLLayoutBuilder) writeNodes(w *xmlWriter, nodes content.NodeList, inlined map[string]*models.DocumentObject, visiting map[string]bool) error {
	for _, node := range nodes {
		if err := b.writeNode(w, node, inlined, visiting); err != nil {
			return err
		}
	}
	return nil
}

func (b *XMLLayoutBuilder) writeNode(w *xmlWriter, node content.Node, inlined map[string]*models.DocumentObject, visiting map[string]bool) error {
	switch n := node.(type) {
	case *content.Paragraph:
		w.open("paragraph", "styleRef", n.ParagraphStyleRef)
		for _, run := range n.Runs {
			w.open("text", "styleRef", run.TextStyleRef)
			w.text(run.Text)
			w.close("text")
		}
		w.close("paragraph")

	case *content.Table:
		widths := make([]string, 0, len(n.ColumnWidths))
		for _, cw := range n.ColumnWidths {
			widths = append(widths, cw.String())
		}
		w.open("table", "columnWidths", strings.Join(widths, " "))
		for _, row := range n.Rows {
			w.open("row", "displayRuleRef", row.DisplayRuleRef)
			for _, cell := range row.Cells {
				attrs := []string{}
				if cell.ColSpan > 1 {
					attrs = append(attrs, "colSpan", strconv.Itoa(cell.ColSpan))
				}
				w.open("cell", attrs...)
				if err := b.writeNodes(w, cell.Content, inlined, visiting); err != nil {
					return err
				}
				w.close("cell")
			}
			w.close("row")
		}
		w.close("table")

	case *content.ImageRef:
		w.leaf("image", "ref", n.ImageID)

	case *content.DocumentObjectRef:
		return b.writeObjectRef(w, n, inlined, visiting)

	case *content.Area, *content.FlowArea:
		return b.writeArea(w, node, inlined, visiting)

	case *content.FirstMatch:
		w.open("firstMatch")
		for _, c := range n.Cases {
			w.open("case")
			if c.Condition != nil {
				writeRuleGroup(w, c.Condition)
			}
			if err := b.writeNodes(w, c.Content, inlined, visiting); err != nil {
				return err
			}
			w.close("case")
		}
		if len(n.Default) > 0 {
			w.open("default")
			if err := b.writeNodes(w, n.Default, inlined, visiting); err != nil {
				return err
			}
			w.close("default")
		}
		w.close("firstMatch")

	case *content.SelectByLanguage:
		w.open("selectByLanguage")
		for _, c := range n.Cases {
			w.open("case", "language", c.Language)
			if err := b.writeNodes(w, c.Content, inlined, visiting); err != nil {
				return err
			}
			w.close("case")
		}
		w.close("selectByLanguage")

	default:
		return fmt.Errorf("builder: unknown content node kind %q", node.Kind())
	}
	return nil
}

// writeObjectRef inlines internal dependencies and emits a plain reference
// for everything else. Inlining is cycle guarded: a reference back into an
// object currently being inlined degrades to a plain reference.
func (b *XMLLayoutBuilder) writeObjectRef(w *xmlWriter, ref *content.DocumentObjectRef, inlined map[string]*models.DocumentObject, visiting map[string]bool) error {
	dep, ok := inlined[ref.ObjectID]
	if !ok || !dep.Internal || visiting[ref.ObjectID] {
		w.open("objectRef", "ref", ref.ObjectID, "displayRuleRef", ref.DisplayRuleRef)
		w.close("objectRef")
		return nil
	}

	visiting[ref.ObjectID] = true
	defer delete(visiting, ref.ObjectID)

	w.open("inline", "ref", ref.ObjectID, "displayRuleRef", ref.DisplayRuleRef)
	if err := b.writeNodes(w, dep.Content, inlined, visiting); err != nil {
		return err
	}
	w.close("inline")
	return nil
}

func (b *XMLLayoutBuilder) writeArea(w *xmlWriter, node content.Node, inlined map[string]*models.DocumentObject, visiting map[string]bool) error {
	var tag string
	var x, y, width, height content.Size
	var nested content.NodeList
	switch a := node.(type) {
	case *content.Area:
		tag, x, y, width, height, nested = "area", a.X, a.Y, a.Width, a.Height, a.Content
	case *content.FlowArea:
		tag, x, y, width, height, nested = "flowArea", a.X, a.Y, a.Width, a.Height, a.Content
	}
	w.open(tag,
		"x", x.String(),
		"y", y.String(),
		"width", width.String(),
		"height", height.String())
	if err := b.writeNodes(w, nested, inlined, visiting); err != nil {
		return err
	}
	w.close(tag)
	return nil
}

func writeRuleGroup(w *xmlWriter, g *content.RuleGroup) {
	w.open("condition",
		"operator", string(g.Operator),
		"negated", boolAttr(g.Negated))
	for _, term := range g.Terms {
		switch t := term.(type) {
		case *content.RuleGroup:
			writeRuleGroup(w, t)
		case *content.RuleBinary:
			w.open("compare", "operator", string(t.Operator))
			writeRuleLiteral(w, t.Left)
			writeRuleLiteral(w, t.Right)
			w.close("compare")
		}
	}
	w.close("condition")
}

func writeRuleLiteral(w *xmlWriter, l content.RuleLiteral) {
	switch l.Kind {
	case content.LiteralString:
		w.leaf("literal", "kind", "string", "value", l.Text)
	case content.LiteralNumber:
		w.leaf("literal", "kind", "number", "value", strconv.FormatFloat(l.Number, 'f', -1, 64))
	case content.LiteralBoolean:
		w.leaf("literal", "kind", "boolean", "value", boolAttr(l.Bool))
	case content.LiteralVariable:
		w.leaf("literal", "kind", "variable", "ref", l.Variable)
	}
}

func (b *XMLLayoutBuilder) BuildStyles(textStyles []*models.TextStyle, paragraphStyles []*models.ParagraphStyle) ([]byte, error) {
	w := &xmlWriter{}
	w.raw(xml.Header)
	w.open("styleDefinition")

	for _, ts := range textStyles {
		attrs := []string{
			"id", ts.ID,
			"name", ts.DisplayName(),
			"fontFamily", ts.FontFamily,
			"color", string(ts.Color),
			"bold", boolAttr(ts.Bold),
			"italic", boolAttr(ts.Italic),
			"underline", boolAttr(ts.Underline),
			"strikeThrough", boolAttr(ts.StrikeThrough),
		}
		if ts.FontSize != nil {
			attrs = append(attrs, "fontSize", ts.FontSize.String())
		}
		w.leaf("textStyle", attrs...)
	}

	for _, ps := range paragraphStyles {
		attrs := []string{
			"id", ps.ID,
			"name", ps.DisplayName(),
			"alignment", string(ps.Alignment),
			"defaultTextRef", ps.DefaultTextRef,
		}
		if ps.LineSpacing != 0 {
			attrs = append(attrs, "lineSpacing", strconv.FormatFloat(ps.LineSpacing, 'f', -1, 64))
		}
		attrs = appendSizeAttr(attrs, "spaceBefore", ps.SpaceBefore)
		attrs = appendSizeAttr(attrs, "spaceAfter", ps.SpaceAfter)
		attrs = appendSizeAttr(attrs, "leftIndent", ps.LeftIndent)
		attrs = appendSizeAttr(attrs, "rightIndent", ps.RightIndent)
		attrs = appendSizeAttr(attrs, "firstLineIndent", ps.FirstLineIndent)
		w.leaf("paragraphStyle", attrs...)
	}

	w.close("styleDefinition")
	return w.bytes()
}

func appendSizeAttr(attrs []string, name string, size *content.Size) []string {
	if size == nil {
		return attrs
	}
	return append(attrs, name, size.String())
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return ""
}

// xmlWriter is a minimal element writer. Attributes with empty values are
// omitted; text and attribute values are XML-escaped.
type xmlWriter struct {
	b strings.Builder
}

func (w *xmlWriter) raw(s string) { w.b.WriteString(s) }

func (w *xmlWriter) open(tag string, attrPairs ...string) {
	w.b.WriteByte('<')
	w.b.WriteString(tag)
	w.writeAttrs(attrPairs)
	w.b.WriteByte('>')
}

func (w *xmlWriter) leaf(tag string, attrPairs ...string) {
	w.b.WriteByte('<')
	w.b.WriteString(tag)
	w.writeAttrs(attrPairs)
	w.b.WriteString("/>")
}

func (w *xmlWriter) close(tag string) {
	w.b.WriteString("</")
	w.b.WriteString(tag)
	w.b.WriteByte('>')
}

func (w *xmlWriter) text(s string) {
	xml.EscapeText(&w.b, []byte(s))
}

func (w *xmlWriter) writeAttrs(pairs []string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		w.b.WriteByte(' ')
		w.b.WriteString(pairs[i])
		w.b.WriteString(`="`)
		xml.EscapeText(&w.b, []byte(pairs[i+1]))
		w.b.WriteByte('"')
	}
}

func (w *xmlWriter) bytes() ([]byte, error) {
	return []byte(w.b.String()), nil
}
