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

// ImageType is the source format of a migrated image. Unknown types are
// skipped with a warning at deploy time.
type ImageType string

const (
	ImageTypePNG     ImageType = "png"
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypeBMP     ImageType = "bmp"
	ImageTypeSVG     ImageType = "svg"
	ImageTypeTIFF    ImageType = "tiff"
	ImageTypeUnknown ImageType = "unknown"
)

// KnownImageType reports whether the type is one the deploy pipeline can
// upload.
func KnownImageType(t ImageType) bool {
	switch t {
	case ImageTypePNG, ImageTypeJPEG, ImageTypeBMP, ImageTypeSVG, ImageTypeTIFF:
		return true
	}
	return false
}

// Image is a migrated image asset. SourcePath addresses the bytes in the
// storage collaborator; TargetFolder overrides the default placement.
type Image struct {
	ObjectMeta   `gorm:"embedded"`
	Type         ImageType `gorm:"column:type" json:"type"`
	SourcePath   string    `gorm:"column:source_path" json:"sourcePath,omitempty"`
	TargetFolder string    `gorm:"column:target_folder" json:"targetFolder,omitempty"`
}

// TableName returns the table name for the Image model
func (Image) TableName() string { return "images" }

func (*Image) ResourceType() ResourceType { return ResourceTypeImage }

// File is an auxiliary migrated file (fonts, data files) carried along with
// the documents.
type File struct {
	ObjectMeta   `gorm:"embedded"`
	SourcePath   string `gorm:"column:source_path" json:"sourcePath,omitempty"`
	TargetFolder string `gorm:"column:target_folder" json:"targetFolder,omitempty"`
}

// TableName returns the table name for the File model
func (File) TableName() string { return "files" }

func (*File) ResourceType() ResourceType { return ResourceTypeFile }

// Attachment is a document attachment (for example a static PDF enclosure).
type Attachment struct {
	ObjectMeta `gorm:"embedded"`
	SourcePath string `gorm:"column:source_path" json:"sourcePath,omitempty"`
	MimeType   string `gorm:"column:mime_type" json:"mimeType,omitempty"`
}

// TableName returns the table name for the Attachment model
func (Attachment) TableName() string { return "attachments" }

func (*Attachment) ResourceType() ResourceType { return ResourceTypeAttachment }
