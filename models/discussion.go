package models

import (
	"time"
)

type Discussion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	PoemID    uint      `gorm:"not null;index" json:"poemId"`
	Poem      Poem      `gorm:"foreignKey:PoemID" json:"-"`
	AuthorID  uint      `gorm:"not null" json:"authorId"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Content   string    `gorm:"not null;type:text" json:"content"`
}
