package model

import "time"

type Post struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(100);not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorName string    `gorm:"type:varchar(50);not null" json:"author_name"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
