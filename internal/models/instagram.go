package models

import "time"

// InstagramPost is a stored link to an external post.
type InstagramPost struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PostID string `gorm:"column:post_id;type:uuid;uniqueIndex" json:"postId"`
	Link   string `gorm:"column:link;type:text" json:"link"`
	Name   string `gorm:"column:name;type:text" json:"name"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (InstagramPost) TableName() string { return "instagram_posts" }
