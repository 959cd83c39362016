package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"` // Don't expose password in JSON
	Bio            string         `gorm:"type:text" json:"bio"`
	ProfilePicture string         `json:"profilePicture"`
	Provider       string         `gorm:"default:'email'" json:"-"`
	GoogleID       *string        `gorm:"uniqueIndex" json:"-"`
	TotalLikes     int64          `gorm:"default:0;check:total_likes >= 0" json:"totalLikes"`
	Poems          []Poem         `gorm:"foreignKey:AuthorID" json:"poems,omitempty"`
	Reviews        []Review       `gorm:"foreignKey:AuthorID" json:"-"`
	Discussions    []Discussion   `gorm:"foreignKey:AuthorID" json:"-"`
	Favourites     []Favourite    `gorm:"foreignKey:UserID" json:"-"`
}
