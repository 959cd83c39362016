package models

import (
	"time"
)

// Favourite is a caller-specific bookmark of a poem.
type Favourite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favourites_user_poem" json:"userId"`
	PoemID    uint      `gorm:"not null;uniqueIndex:idx_favourites_user_poem" json:"poemId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Poem Poem `gorm:"foreignKey:PoemID" json:"-"`
}
