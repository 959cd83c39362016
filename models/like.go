package models

import (
	"time"
)

type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PoemID    uint      `gorm:"not null;uniqueIndex:idx_likes_poem_user" json:"poemId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_poem_user" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Poem Poem `gorm:"foreignKey:PoemID" json:"-"`
}
