package model

import "time"

// Follow is a directed edge: UserID follows AuthorID. At most one row
// per ordered pair; self-follows are rejected at the service layer,
// not by the schema.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_author"`
	AuthorID  uint64 `gorm:"not null;index;uniqueIndex:uk_user_author"`
	CreatedAt time.Time
}

func (Follow) TableName() string {
	return "follows"
}
