package domain

import "time"

type Article struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"size:1000;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	AuthorID    uint      `json:"-" gorm:"not null"`
	Author      User      `json:"author" gorm:"foreignKey:AuthorID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortField pairs a column with a direction. Listing applies sort fields
// in slice order, so earlier fields take precedence.
type SortField struct {
	Field     string
	Direction SortDirection
}
