package store

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/phrazzld/coursebook/internal/domain"
	"github.com/phrazzld/coursebook/internal/platform/logger"
)

// CourseReferences answers whether any record still points at a course.
// EnrollmentStore implements it.
type CourseReferences interface {
	ReferencesCourse(courseID int) bool
}

// CourseStore owns the course collection.
type CourseStore struct {
	gw      Gateway
	courses []domain.Course
	ids     IDAllocator
	refs    CourseReferences
	now     func() time.Time
	logger  *slog.Logger
}

// NewCourseStore creates an empty CourseStore that persists through gw.
// Call Load to restore the stored snapshot. Until BindReferences is called,
// no course is considered referenced.
func NewCourseStore(gw Gateway, opts ...Option) *CourseStore {
	o := newOptions(opts)
	return &CourseStore{
		gw:     gw,
		now:    o.now,
		logger: o.logger.With("component", "course_store"),
	}
}

// BindReferences sets the collection consulted before a course is deleted.
func (s *CourseStore) BindReferences(refs CourseReferences) {
	s.refs = refs
}

// Load replaces the in-memory collection with the stored snapshot.
// A missing snapshot loads as an empty collection.
func (s *CourseStore) Load(ctx context.Context) error {
	var courses []domain.Course
	found, err := s.gw.Load(ctx, CoursesKey, &courses)
	if err != nil {
		return NewStoreError("course", "load", "failed to load snapshot", err)
	}

	s.courses = courses
	for _, c := range courses {
		s.ids.Observe(c.ID)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("loaded courses",
		"found", found,
		"count", len(courses),
		"last_id", s.ids.Last())
	return nil
}

// Create validates the input, assigns the next id and persists the new course.
func (s *CourseStore) Create(ctx context.Context, title, description string) (domain.Course, error) {
	course, err := domain.NewCourse(s.ids.Next(), domain.NewCourseDraft(title, description), s.now().UTC())
	if err != nil {
		return domain.Course{}, err
	}

	next := append(slices.Clone(s.courses), *course)
	if err := s.commit(ctx, "create", next); err != nil {
		return domain.Course{}, err
	}
	s.ids.Observe(course.ID)

	logger.FromContextOrDefault(ctx, s.logger).Info("course created", "course_id", course.ID)
	return *course, nil
}

// Update replaces the title and description of an existing course.
func (s *CourseStore) Update(ctx context.Context, id int, title, description string) (domain.Course, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Course{}, domain.ErrCourseNotFound
	}

	draft := domain.NewCourseDraft(title, description)
	if err := draft.Validate(); err != nil {
		return domain.Course{}, err
	}

	next := slices.Clone(s.courses)
	next[idx].Apply(draft)
	if err := s.commit(ctx, "update", next); err != nil {
		return domain.Course{}, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("course updated", "course_id", id)
	return next[idx], nil
}

// Delete removes a course. It is refused while any enrollment refers to it.
func (s *CourseStore) Delete(ctx context.Context, id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.ErrCourseNotFound
	}

	if s.refs != nil && s.refs.ReferencesCourse(id) {
		return domain.ErrCourseHasEnrollments
	}

	next := slices.Delete(slices.Clone(s.courses), idx, idx+1)
	if err := s.commit(ctx, "delete", next); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("course deleted", "course_id", id)
	return nil
}

// List returns the courses in insertion order. The slice is a copy.
func (s *CourseStore) List() []domain.Course {
	return slices.Clone(s.courses)
}

// Get returns the course with the given id.
func (s *CourseStore) Get(id int) (domain.Course, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Course{}, false
	}
	return s.courses[idx], true
}

// LastID returns the highest course id allocated or loaded in this session.
func (s *CourseStore) LastID() int {
	return s.ids.Last()
}

func (s *CourseStore) indexOf(id int) int {
	return slices.IndexFunc(s.courses, func(c domain.Course) bool {
		return c.ID == id
	})
}

// commit writes next and only then makes it the in-memory collection, so a
// failed write leaves the store unchanged.
func (s *CourseStore) commit(ctx context.Context, operation string, next []domain.Course) error {
	if next == nil {
		next = []domain.Course{}
	}

	if err := s.gw.Save(ctx, CoursesKey, next); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to save courses",
			"operation", operation,
			"error", err)
		return NewStoreError("course", operation, "failed to save snapshot", err)
	}

	s.courses = next
	return nil
}
