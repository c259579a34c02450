package store

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReviewRecord is the portable representation of a review
type ReviewRecord struct {
	ID           string    `yaml:"id,omitempty"`
	Name         string    `yaml:"name"`
	EmailAddress string    `yaml:"email_address"`
	Rating       int       `yaml:"rating"`
	Comment      string    `yaml:"comment"`
	CreatedAt    time.Time `yaml:"created_at,omitempty"`
}

func (r ReviewRecord) Review() *Review {
	review := NewReview(r.Name, r.EmailAddress, r.Rating, r.Comment)
	review.PublicID = r.ID
	review.CreatedAt = r.CreatedAt
	return review
}

func NewReviewRecord(review *Review) ReviewRecord {
	return ReviewRecord{
		ID:           review.PublicID,
		Name:         review.Name,
		EmailAddress: review.EmailAddress,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}

type reviewDocument struct {
	Reviews []ReviewRecord `yaml:"reviews"`
}

// ReadReviewRecords decodes a YAML document holding a list of reviews
func ReadReviewRecords(r io.Reader) ([]ReviewRecord, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc reviewDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []ReviewRecord{}, nil
		}

		return nil, errors.Wrap(err, "could not decode reviews")
	}

	return doc.Reviews, nil
}

// WriteReviewRecords encodes the given reviews as a YAML document
// readable by ReadReviewRecords
func WriteReviewRecords(w io.Writer, reviews []*Review) error {
	doc := reviewDocument{
		Reviews: make([]ReviewRecord, 0, len(reviews)),
	}

	for _, r := range reviews {
		doc.Reviews = append(doc.Reviews, NewReviewRecord(r))
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return errors.WithStack(err)
	}

	if err := encoder.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
