package model

import "time"

type Question struct {
	ID      uint64    `gorm:"primaryKey"`
	Text    string    `gorm:"size:200;not null"`
	PubDate time.Time `gorm:"index"`

	Choices []Choice `gorm:"foreignKey:QuestionID"`
}

// WasPublishedRecently reports whether the question went out within
// the last day. Display only, nothing is gated on it.
func (q Question) WasPublishedRecently() bool {
	now := time.Now()
	return q.PubDate.After(now.Add(-24*time.Hour)) && !q.PubDate.After(now)
}

type Choice struct {
	ID         uint64 `gorm:"primaryKey"`
	QuestionID uint64 `gorm:"not null;index"`
	Text       string `gorm:"size:200;not null"`
	Votes      int64  `gorm:"not null;default:0"`
}
