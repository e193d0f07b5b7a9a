package model

import "time"

type Post struct {
	ID        uint64  `gorm:"primaryKey"`
	Text      string  `gorm:"type:text;not null"`
	AuthorID  uint64  `gorm:"not null;index:idx_author_time"`
	GroupID   *uint64 `gorm:"index"`
	Image     string  `gorm:"size:255"`
	CreatedAt time.Time `gorm:"index:idx_author_time"`
	UpdatedAt time.Time

	Author User   `gorm:"foreignKey:AuthorID"`
	Group  *Group `gorm:"foreignKey:GroupID"`
}

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	Text      string `gorm:"type:text;not null"`
	AuthorID  uint64 `gorm:"not null;index"`
	PostID    uint64 `gorm:"not null;index"`
	CreatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID"`
}
