package store

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/phrazzld/coursebook/internal/domain"
	"github.com/phrazzld/coursebook/internal/platform/logger"
)

// CourseLookup resolves course ids. CourseStore implements it.
type CourseLookup interface {
	Get(id int) (domain.Course, bool)
}

// EnrollmentStore owns the enrollment collection. It refers to courses by id
// through a CourseLookup and never holds course records itself.
type EnrollmentStore struct {
	gw          Gateway
	courses     CourseLookup
	enrollments []domain.Enrollment
	ids         IDAllocator
	now         func() time.Time
	logger      *slog.Logger
}

// NewEnrollmentStore creates an empty EnrollmentStore that persists through gw
// and resolves course ids with courses.
func NewEnrollmentStore(gw Gateway, courses CourseLookup, opts ...Option) *EnrollmentStore {
	o := newOptions(opts)
	return &EnrollmentStore{
		gw:      gw,
		courses: courses,
		now:     o.now,
		logger:  o.logger.With("component", "enrollment_store"),
	}
}

// Load replaces the in-memory collection with the stored snapshot.
// A missing snapshot loads as an empty collection.
func (s *EnrollmentStore) Load(ctx context.Context) error {
	var enrollments []domain.Enrollment
	found, err := s.gw.Load(ctx, EnrollmentsKey, &enrollments)
	if err != nil {
		return NewStoreError("enrollment", "load", "failed to load snapshot", err)
	}

	s.enrollments = enrollments
	for _, e := range enrollments {
		s.ids.Observe(e.ID)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("loaded enrollments",
		"found", found,
		"count", len(enrollments),
		"last_id", s.ids.Last())
	return nil
}

// Create enrolls a student in a course.
//
// Checks run in a fixed order and the first failure is returned: field rules,
// then the course must exist, then the email must not already be enrolled in
// that course.
func (s *EnrollmentStore) Create(ctx context.Context, courseID int, studentName, studentEmail string) (domain.Enrollment, error) {
	draft := domain.NewEnrollmentDraft(courseID, studentName, studentEmail)
	if err := draft.Validate(); err != nil {
		return domain.Enrollment{}, err
	}

	if _, ok := s.courses.Get(draft.CourseID); !ok {
		return domain.Enrollment{}, domain.ErrCourseNotFound
	}

	if s.isEnrolled(draft.CourseID, draft.StudentEmail, 0) {
		return domain.Enrollment{}, domain.ErrDuplicateEnrollment
	}

	enrollment, err := domain.NewEnrollment(s.ids.Next(), draft, s.now().UTC())
	if err != nil {
		return domain.Enrollment{}, err
	}

	next := append(slices.Clone(s.enrollments), *enrollment)
	if err := s.commit(ctx, "create", next); err != nil {
		return domain.Enrollment{}, err
	}
	s.ids.Observe(enrollment.ID)

	logger.FromContextOrDefault(ctx, s.logger).Info("enrollment created",
		"enrollment_id", enrollment.ID,
		"course_id", enrollment.CourseID)
	return *enrollment, nil
}

// Update changes the course, name and email of an existing enrollment.
// The duplicate check ignores the enrollment being updated, so saving a
// record with its own email unchanged succeeds.
func (s *EnrollmentStore) Update(ctx context.Context, id, courseID int, studentName, studentEmail string) (domain.Enrollment, error) {
	draft := domain.NewEnrollmentDraft(courseID, studentName, studentEmail)
	if err := draft.Validate(); err != nil {
		return domain.Enrollment{}, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Enrollment{}, domain.ErrEnrollmentNotFound
	}

	if _, ok := s.courses.Get(draft.CourseID); !ok {
		return domain.Enrollment{}, domain.ErrCourseNotFound
	}

	if s.isEnrolled(draft.CourseID, draft.StudentEmail, id) {
		return domain.Enrollment{}, domain.ErrDuplicateEnrollment
	}

	next := slices.Clone(s.enrollments)
	next[idx].Apply(draft)
	if err := s.commit(ctx, "update", next); err != nil {
		return domain.Enrollment{}, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("enrollment updated",
		"enrollment_id", id,
		"course_id", draft.CourseID)
	return next[idx], nil
}

// Delete removes an enrollment.
func (s *EnrollmentStore) Delete(ctx context.Context, id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.ErrEnrollmentNotFound
	}

	next := slices.Delete(slices.Clone(s.enrollments), idx, idx+1)
	if err := s.commit(ctx, "delete", next); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("enrollment deleted", "enrollment_id", id)
	return nil
}

// List returns the enrollments in insertion order. The slice is a copy.
func (s *EnrollmentStore) List() []domain.Enrollment {
	return slices.Clone(s.enrollments)
}

// Get returns the enrollment with the given id.
func (s *EnrollmentStore) Get(id int) (domain.Enrollment, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Enrollment{}, false
	}
	return s.enrollments[idx], true
}

// ReferencesCourse reports whether any enrollment points at courseID.
func (s *EnrollmentStore) ReferencesCourse(courseID int) bool {
	return slices.ContainsFunc(s.enrollments, func(e domain.Enrollment) bool {
		return e.CourseID == courseID
	})
}

// CountForCourse returns how many enrollments point at courseID.
func (s *EnrollmentStore) CountForCourse(courseID int) int {
	n := 0
	for _, e := range s.enrollments {
		if e.CourseID == courseID {
			n++
		}
	}
	return n
}

// LastID returns the highest enrollment id allocated or loaded in this session.
func (s *EnrollmentStore) LastID() int {
	return s.ids.Last()
}

func (s *EnrollmentStore) indexOf(id int) int {
	return slices.IndexFunc(s.enrollments, func(e domain.Enrollment) bool {
		return e.ID == id
	})
}

// isEnrolled reports whether email is enrolled in courseID by a record other
// than exceptID.
func (s *EnrollmentStore) isEnrolled(courseID int, email string, exceptID int) bool {
	return slices.ContainsFunc(s.enrollments, func(e domain.Enrollment) bool {
		return e.ID != exceptID && e.SameStudent(courseID, email)
	})
}

// commit writes next and only then makes it the in-memory collection.
func (s *EnrollmentStore) commit(ctx context.Context, operation string, next []domain.Enrollment) error {
	if next == nil {
		next = []domain.Enrollment{}
	}

	if err := s.gw.Save(ctx, EnrollmentsKey, next); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to save enrollments",
			"operation", operation,
			"error", err)
		return NewStoreError("enrollment", operation, "failed to save snapshot", err)
	}

	s.enrollments = next
	return nil
}
