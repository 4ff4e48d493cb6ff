package domain

import "time"

// Enrollment links one student, identified by name and email, to one course.
// The course is referenced by id only.
type Enrollment struct {
	ID           int       `json:"id"        yaml:"id"`
	CourseID     int       `json:"courseId"  yaml:"courseId"`
	StudentName  string    `json:"name"      yaml:"name"`
	StudentEmail string    `json:"email"     yaml:"email"`
	CreatedAt    time.Time `json:"createdAt" yaml:"createdAt"`
}

// NewEnrollment builds an enrollment from a draft. Only the field rules are
// checked here; whether the course exists and whether the email is already
// enrolled are decided by the owning store.
func NewEnrollment(id int, draft EnrollmentDraft, createdAt time.Time) (*Enrollment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	enrollment := &Enrollment{
		ID:           id,
		CourseID:     draft.CourseID,
		StudentName:  draft.StudentName,
		StudentEmail: draft.StudentEmail,
		CreatedAt:    createdAt,
	}

	if err := enrollment.Validate(); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// Validate checks that a stored enrollment still satisfies the field rules.
func (e *Enrollment) Validate() error {
	if e.ID <= 0 {
		return ErrInvalidID
	}
	return EnrollmentDraft{
		CourseID:     e.CourseID,
		StudentName:  e.StudentName,
		StudentEmail: e.StudentEmail,
	}.Validate()
}

// Apply replaces the editable fields with the draft's. The caller validates
// the draft first.
func (e *Enrollment) Apply(draft EnrollmentDraft) {
	e.CourseID = draft.CourseID
	e.StudentName = draft.StudentName
	e.StudentEmail = draft.StudentEmail
}

// SameStudent reports whether e enrolls email in the course with courseID.
// Emails are compared exactly as stored, without case folding.
func (e *Enrollment) SameStudent(courseID int, email string) bool {
	return e.CourseID == courseID && e.StudentEmail == email
}
