package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/coursebook/internal/domain"
)

// Catalog is the pair of stores sharing one Gateway, wired so that a course
// cannot be deleted while enrollments point at it.
type Catalog struct {
	Courses     *CourseStore
	Enrollments *EnrollmentStore
	logger      *slog.Logger
}

// Open builds both stores on gw and loads their snapshots.
//
// Integrity problems found in the loaded data (for example a snapshot edited
// by hand) are logged as warnings; Open does not repair them. Use Check to
// inspect them.
func Open(ctx context.Context, gw Gateway, opts ...Option) (*Catalog, error) {
	if gw == nil {
		return nil, fmt.Errorf("open catalog: gateway cannot be nil")
	}

	o := newOptions(opts)
	courses := NewCourseStore(gw, opts...)
	enrollments := NewEnrollmentStore(gw, courses, opts...)
	courses.BindReferences(enrollments)

	if err := courses.Load(ctx); err != nil {
		return nil, err
	}
	if err := enrollments.Load(ctx); err != nil {
		return nil, err
	}

	c := &Catalog{
		Courses:     courses,
		Enrollments: enrollments,
		logger:      o.logger.With("component", "catalog"),
	}

	for _, issue := range c.Check() {
		c.logger.Warn("integrity issue in stored data",
			"collection", issue.Collection,
			"record_id", issue.RecordID,
			"problem", issue.Problem)
	}

	return c, nil
}

// IntegrityIssue describes one record that breaks a rule in loaded data.
type IntegrityIssue struct {
	Collection string
	RecordID   int
	Problem    string
}

// String implements fmt.Stringer.
func (i IntegrityIssue) String() string {
	return fmt.Sprintf("%s %d: %s", i.Collection, i.RecordID, i.Problem)
}

// Check reports every record that breaks a field rule, repeats an id, points
// at a missing course, or repeats an email within a course. Operations on the
// stores never produce such records; they can only come from stored data.
func (c *Catalog) Check() []IntegrityIssue {
	var issues []IntegrityIssue

	seenCourses := make(map[int]bool)
	for _, course := range c.Courses.List() {
		if err := course.Validate(); err != nil {
			issues = append(issues, IntegrityIssue{CoursesKey, course.ID, err.Error()})
		}
		if seenCourses[course.ID] {
			issues = append(issues, IntegrityIssue{CoursesKey, course.ID, "duplicate id"})
		}
		seenCourses[course.ID] = true
	}

	type student struct {
		courseID int
		email    string
	}
	seenEnrollments := make(map[int]bool)
	seenStudents := make(map[student]bool)
	for _, e := range c.Enrollments.List() {
		if err := e.Validate(); err != nil {
			issues = append(issues, IntegrityIssue{EnrollmentsKey, e.ID, err.Error()})
		}
		if seenEnrollments[e.ID] {
			issues = append(issues, IntegrityIssue{EnrollmentsKey, e.ID, "duplicate id"})
		}
		seenEnrollments[e.ID] = true

		if !seenCourses[e.CourseID] {
			issues = append(issues, IntegrityIssue{EnrollmentsKey, e.ID, domain.ErrCourseNotFound.Error()})
		}

		key := student{e.CourseID, e.StudentEmail}
		if seenStudents[key] {
			issues = append(issues, IntegrityIssue{EnrollmentsKey, e.ID, domain.ErrDuplicateEnrollment.Error()})
		}
		seenStudents[key] = true
	}

	return issues
}
