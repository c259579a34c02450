package store

import (
	"github.com/rs/xid"
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model

	PublicID     string `gorm:"uniqueIndex"`
	Name         string
	EmailAddress string `gorm:"index"`
	Rating       int    `gorm:"index"`
	Comment      string `gorm:"type:text"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.PublicID == "" {
		r.PublicID = xid.New().String()
	}

	return nil
}

func NewReview(name, emailAddress string, rating int, comment string) *Review {
	return &Review{
		Name:         name,
		EmailAddress: emailAddress,
		Rating:       rating,
		Comment:      comment,
	}
}

const (
	MinRating = 1
	MaxRating = 5
)

var ratingLabels = map[int]string{
	1: "Bad",
	2: "Poor",
	3: "Average",
	4: "Good",
	5: "Excellent",
}

// RatingLabel returns the human readable label of a rating
func RatingLabel(rating int) string {
	return ratingLabels[rating]
}
