package models

import "time"

// Work is a portfolio entry. Slug is derived from the name and disambiguated
// with a numeric suffix on collision.
type Work struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	WorkID         string `gorm:"column:work_id;type:uuid;uniqueIndex" json:"workId"`
	Name           string `gorm:"column:name;type:text" json:"name"`
	LandscapeImage string `gorm:"column:landscape_image;type:uuid" json:"landscapeImage"`
	VerticalImage  string `gorm:"column:vertical_image;type:uuid" json:"verticalImage"`
	SquareImage    string `gorm:"column:square_image;type:uuid" json:"squareImage"`
	Data           string `gorm:"column:data;type:text" json:"data"`
	WebsiteLink    string `gorm:"column:website_link;type:text" json:"websiteLink"`
	Slug           string `gorm:"column:slug;type:text;uniqueIndex" json:"slug"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	LandscapeImageData *Media       `gorm:"foreignKey:LandscapeImage;references:MediaID" json:"landscapeImageData,omitempty"`
	VerticalImageData  *Media       `gorm:"foreignKey:VerticalImage;references:MediaID" json:"verticalImageData,omitempty"`
	SquareImageData    *Media       `gorm:"foreignKey:SquareImage;references:MediaID" json:"squareImageData,omitempty"`
	WorkDetails        []WorkDetail `gorm:"foreignKey:WorkID;references:WorkID" json:"workDetails,omitempty"`
}

func (Work) TableName() string { return "work_data" }

// WorkDetail is a sub-entry of a Work (video, description, attached media).
type WorkDetail struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	WorkDetailID string `gorm:"column:work_detail_id;type:uuid;uniqueIndex" json:"workDetailId"`
	VideoURL     string `gorm:"column:video_url;type:text" json:"videoUrl"`
	Description  string `gorm:"column:description;type:text" json:"description"`
	Name         string `gorm:"column:name;type:text" json:"name"`
	Media        string `gorm:"column:media;type:uuid" json:"media"`
	WorkID       string `gorm:"column:work_id;type:uuid;index" json:"workId"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	MediaData *Media `gorm:"foreignKey:Media;references:MediaID" json:"mediaData,omitempty"`
}

func (WorkDetail) TableName() string { return "work_detail_data" }
