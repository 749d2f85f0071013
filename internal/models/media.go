package models

import "time"

// Media is an uploaded file. URL is the storage-relative path under the
// public uploads directory. Rows are referenced (never owned) by work images
// and career resumes; the application-level guard blocks deletion while any
// reference exists.
type Media struct {
	ID      uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	MediaID string `gorm:"column:media_id;type:uuid;uniqueIndex" json:"mediaId"`
	Name    string `gorm:"column:name;type:text" json:"name"`
	Type    string `gorm:"column:type;type:text" json:"type"`
	Size    int64  `gorm:"column:size" json:"size"`
	URL     string `gorm:"column:url;type:text" json:"url"`
	Mime    string `gorm:"column:mime;type:text" json:"mime"`
	Height  *int   `gorm:"column:height" json:"height,omitempty"`
	Width   *int   `gorm:"column:width" json:"width,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Media) TableName() string { return "media" }
