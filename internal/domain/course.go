package domain

import (
	"errors"
	"time"
)

// ErrInvalidID is returned when a record carries a non-positive id.
var ErrInvalidID = errors.New("id must be greater than zero")

// Course is an offered class or topic that students enroll in.
// JSON names match the snapshots written by earlier versions of the tool.
type Course struct {
	ID          int       `json:"id"        yaml:"id"`
	Title       string    `json:"title"     yaml:"title"`
	Description string    `json:"desc"      yaml:"desc"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// NewCourse builds a course from a draft. The draft is validated; the id and
// creation time are supplied by the owning store.
func NewCourse(id int, draft CourseDraft, createdAt time.Time) (*Course, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	course := &Course{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		CreatedAt:   createdAt,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks that a stored course still satisfies the field rules.
func (c *Course) Validate() error {
	if c.ID <= 0 {
		return ErrInvalidID
	}
	return CourseDraft{Title: c.Title, Description: c.Description}.Validate()
}

// Apply replaces the editable fields with the draft's. The caller validates
// the draft first.
func (c *Course) Apply(draft CourseDraft) {
	c.Title = draft.Title
	c.Description = draft.Description
}
