package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Poem struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Title      string         `gorm:"not null" json:"title"`
	Content    string         `gorm:"not null;type:text" json:"content"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	Visibility bool           `gorm:"default:true" json:"visibility"` // true = public, false = private
	AIInsight  string         `gorm:"column:ai_insight;type:text" json:"aiInsight,omitempty"`
	AuthorID   uint           `gorm:"not null;index" json:"authorId"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"author"`
	Likes      []Like         `gorm:"foreignKey:PoemID" json:"likes,omitempty"`
	Reviews    []Review       `gorm:"foreignKey:PoemID" json:"reviews,omitempty"`
}
