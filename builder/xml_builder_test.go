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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/doc-migration-platform/migration-service/content"
	"github.com/wso2/doc-migration-platform/migration-service/models"
)

func blockObject(id string, nodes ...content.Node) *models.DocumentObject {
	return &models.DocumentObject{
		ObjectMeta: models.ObjectMeta{ID: id, ProjectName: "proj"},
		Type:       models.DocumentObjectTypeBlock,
		Content:    nodes,
	}
}

func TestBuildDocumentObjectEmitsParagraphs(t *testing.T) {
	obj := blockObject("welcome",
		&content.Paragraph{
			ParagraphStyleRef: "body",
			Runs: []content.TextRun{
				{Text: "Dear customer,", TextStyleRef: "emphasis"},
				{Text: " welcome & goodbye"},
			},
		})
	obj.Name = "Welcome Letter"
	obj.DisplayRuleRef = "rule-1"

	out, err := NewXMLLayoutBuilder().BuildDocumentObject(obj, nil)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<documentObject id="welcome" name="Welcome Letter" type="block">`)
	assert.Contains(t, xml, `<displayRule ref="rule-1"/>`)
	assert.Contains(t, xml, `<paragraph styleRef="body">`)
	assert.Contains(t, xml, `<text styleRef="emphasis">Dear customer,</text>`)
	// text content is escaped
	assert.Contains(t, xml, `welcome &amp; goodbye`)
}

func TestBuildDocumentObjectSkipRendersPlaceholder(t *testing.T) {
	skip := true
	obj := blockObject("legacy",
		&content.Paragraph{Runs: []content.TextRun{{Text: "never emitted"}}})
	obj.Skip = &skip

	out, err := NewXMLLayoutBuilder().BuildDocumentObject(obj, nil)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<placeholder>legacy</placeholder>`)
	assert.NotContains(t, xml, "never emitted")
}

func TestBuildDocumentObjectRejectsInvalidObject(t *testing.T) {
	obj := blockObject("bad")
	obj.Options = &models.PageOptions{}

	_, err := NewXMLLayoutBuilder().BuildDocumentObject(obj, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page options")
}

func TestBuildDocumentObjectInlinesInternalRefs(t *testing.T) {
	dep := blockObject("footer",
		&content.Paragraph{Runs: []content.TextRun{{Text: "footer text"}}})
	dep.Internal = true

	obj := blockObject("letter",
		&content.DocumentObjectRef{ObjectID: "footer", DisplayRuleRef: "show-footer"},
		&content.DocumentObjectRef{ObjectID: "external-dep"})

	out, err := NewXMLLayoutBuilder().BuildDocumentObject(obj, map[string]*models.DocumentObject{
		"footer": dep,
	})
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<inline ref="footer" displayRuleRef="show-footer">`)
	assert.Contains(t, xml, "footer text")
	// unknown dependencies degrade to a plain reference
	assert.Contains(t, xml, `<objectRef ref="external-dep"></objectRef>`)
}

func TestBuildDocumentObjectGuardsInlineCycles(t *testing.T) {
	a := blockObject("a", &content.DocumentObjectRef{ObjectID: "b"})
	a.Internal = true
	b := blockObject("b", &content.DocumentObjectRef{ObjectID: "a"})
	b.Internal = true

	inlined := map[string]*models.DocumentObject{"a": a, "b": b}

	out, err := NewXMLLayoutBuilder().BuildDocumentObject(a, inlined)
	require.NoError(t, err)

	xml := string(out)
	// b is inlined, but its reference back to a degrades to a plain ref
	assert.Contains(t, xml, `<inline ref="b">`)
	assert.Contains(t, xml, `<objectRef ref="a"></objectRef>`)
}

func TestBuildDocumentObjectNestedStructures(t *testing.T) {
	width, _ := content.ParseSize("50mm")
	obj := blockObject("grid",
		&content.Table{
			ColumnWidths: []content.Size{width, width},
			Rows: []content.TableRow{{
				DisplayRuleRef: "only-eu",
				Cells: []content.TableCell{
					{ColSpan: 2, Content: content.NodeList{
						&content.ImageRef{ImageID: "img-logo"},
					}},
				},
			}},
		},
		&content.FirstMatch{
			Cases: []content.FirstMatchCase{{
				Condition: &content.RuleGroup{
					Operator: content.RuleAnd,
					Terms: []content.RuleTerm{
						&content.RuleBinary{
							Operator: content.CompareEqual,
							Left:     content.RuleLiteral{Kind: content.LiteralVariable, Variable: "country"},
							Right:    content.RuleLiteral{Kind: content.LiteralString, Text: "DE"},
						},
					},
				},
				Content: content.NodeList{&content.Paragraph{Runs: []content.TextRun{{Text: "Hallo"}}}},
			}},
			Default: content.NodeList{&content.Paragraph{Runs: []content.TextRun{{Text: "Hello"}}}},
		})

	out, err := NewXMLLayoutBuilder().BuildDocumentObject(obj, nil)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<table columnWidths="50mm 50mm">`)
	assert.Contains(t, xml, `<row displayRuleRef="only-eu">`)
	assert.Contains(t, xml, `<cell colSpan="2">`)
	assert.Contains(t, xml, `<image ref="img-logo"/>`)
	assert.Contains(t, xml, `<literal kind="variable" ref="country"/>`)
	assert.Contains(t, xml, `<literal kind="string" value="DE"/>`)
	assert.Contains(t, xml, `<default><paragraph>`)
}

func TestBuildStyles(t *testing.T) {
	size, _ := content.ParseSize("12pt")
	before, _ := content.ParseSize("2mm")
	textStyles := []*models.TextStyle{{
		ObjectMeta: models.ObjectMeta{ID: "emphasis", ProjectName: "proj", Name: "Emphasis"},
		FontFamily: "Inter",
		FontSize:   &size,
		Bold:       true,
	}}
	paragraphStyles := []*models.ParagraphStyle{{
		ObjectMeta:  models.ObjectMeta{ID: "body", ProjectName: "proj"},
		Alignment:   models.AlignJustify,
		SpaceBefore: &before,
	}}

	out, err := NewXMLLayoutBuilder().BuildStyles(textStyles, paragraphStyles)
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<styleDefinition>`)
	assert.Contains(t, xml, `<textStyle id="emphasis" name="Emphasis" fontFamily="Inter" bold="true" fontSize="12pt"/>`)
	assert.Contains(t, xml, `<paragraphStyle id="body" name="body" alignment="justify" spaceBefore="2mm"/>`)
}
