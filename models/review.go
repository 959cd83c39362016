package models

import (
	"time"
)

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	PoemID    uint      `gorm:"not null;index" json:"poemId"`
	Poem      Poem      `gorm:"foreignKey:PoemID" json:"-"`
	AuthorID  uint      `gorm:"not null" json:"authorId"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Rating    int       `gorm:"not null;check:rating between 1 and 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
}
