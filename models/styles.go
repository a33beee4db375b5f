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

package models

import "github.com/wso2/doc-migration-platform/migration-service/content"

// TextStyle is a character-level style applied to text runs.
type TextStyle struct {
	ObjectMeta    `gorm:"embedded"`
	FontFamily    string        `gorm:"column:font_family" json:"fontFamily,omitempty"`
	FontSize      *content.Size `gorm:"column:font_size;type:jsonb;serializer:json" json:"fontSize,omitempty"`
	Color         content.Color `gorm:"column:color" json:"color,omitempty"`
	Bold          bool          `gorm:"column:bold" json:"bold,omitempty"`
	Italic        bool          `gorm:"column:italic" json:"italic,omitempty"`
	Underline     bool          `gorm:"column:underline" json:"underline,omitempty"`
	StrikeThrough bool          `gorm:"column:strike_through" json:"strikeThrough,omitempty"`
}

// TableName returns the table name for the TextStyle model
func (TextStyle) TableName() string { return "text_styles" }

func (*TextStyle) ResourceType() ResourceType { return ResourceTypeTextStyle }

// ParagraphAlignment is the horizontal alignment of a paragraph.
type ParagraphAlignment string

const (
	AlignLeft    ParagraphAlignment = "left"
	AlignRight   ParagraphAlignment = "right"
	AlignCenter  ParagraphAlignment = "center"
	AlignJustify ParagraphAlignment = "justify"
)

// ParagraphStyle is a block-level style applied to paragraphs.
type ParagraphStyle struct {
	ObjectMeta      `gorm:"embedded"`
	Alignment       ParagraphAlignment `gorm:"column:alignment" json:"alignment,omitempty"`
	SpaceBefore     *content.Size      `gorm:"column:space_before;type:jsonb;serializer:json" json:"spaceBefore,omitempty"`
	SpaceAfter      *content.Size      `gorm:"column:space_after;type:jsonb;serializer:json" json:"spaceAfter,omitempty"`
	LineSpacing     float64            `gorm:"column:line_spacing" json:"lineSpacing,omitempty"`
	LeftIndent      *content.Size      `gorm:"column:left_indent;type:jsonb;serializer:json" json:"leftIndent,omitempty"`
	RightIndent     *content.Size      `gorm:"column:right_indent;type:jsonb;serializer:json" json:"rightIndent,omitempty"`
	FirstLineIndent *content.Size      `gorm:"column:first_line_indent;type:jsonb;serializer:json" json:"firstLineIndent,omitempty"`
	DefaultTextRef  string             `gorm:"column:default_text_ref" json:"defaultTextRef,omitempty"`
}

// TableName returns the table name for the ParagraphStyle model
func (ParagraphStyle) TableName() string { return "paragraph_styles" }

func (*ParagraphStyle) ResourceType() ResourceType { return ResourceTypeParagraphStyle }
