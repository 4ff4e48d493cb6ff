package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/coursebook/internal/domain"
	"github.com/phrazzld/coursebook/internal/events"
	"github.com/phrazzld/coursebook/internal/platform/logger"
	"github.com/phrazzld/coursebook/internal/redact"
	"github.com/phrazzld/coursebook/internal/store"
)

// Session is the form state of the tool. A zero id means the form is in
// "new" mode.
type Session struct {
	EditingCourseID     int `json:"editingCourseId"`
	EditingEnrollmentID int `json:"editingEnrollmentId"`
}

// Dispatcher executes commands against a Catalog.
type Dispatcher struct {
	mu      sync.Mutex
	catalog *store.Catalog
	emitter events.EventEmitter
	session Session
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher. The emitter receives one ChangeEvent
// per committed mutation.
func NewDispatcher(catalog *store.Catalog, emitter events.EventEmitter, logger *slog.Logger) (*Dispatcher, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if emitter == nil {
		return nil, fmt.Errorf("event emitter cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		catalog: catalog,
		emitter: emitter,
		logger:  logger.With("component", "dispatcher"),
	}, nil
}

// Session returns the current form state.
func (d *Dispatcher) Session() Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session
}

// Execute runs cmd to completion and reports its outcome. Failures are
// reported in the Result, never as a panic or a separate error.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) Result {
	if cmd == nil {
		return failure(ErrNilCommand)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	log := logger.FromContextOrDefault(ctx, d.logger)
	ctx = logger.WithLogger(ctx, log)

	res := d.execute(ctx, cmd)
	if !res.OK() {
		level := slog.LevelWarn
		if domain.Kind(res.Err) == nil {
			level = slog.LevelError
		}
		log.Log(ctx, level, "command failed",
			"command", cmd.commandName(),
			"error", redact.Error(res.Err))
	}
	return res
}

func (d *Dispatcher) execute(ctx context.Context, cmd Command) Result {
	switch c := cmd.(type) {
	case SaveCourse:
		return d.saveCourse(ctx, c)
	case EditCourse:
		return d.editCourse(c)
	case ResetCourseForm:
		d.session.EditingCourseID = 0
		return info("")
	case DeleteCourse:
		return d.deleteCourse(ctx, c.ID)
	case SaveEnrollment:
		return d.saveEnrollment(ctx, c)
	case EditEnrollment:
		return d.editEnrollment(c)
	case ResetEnrollmentForm:
		d.session.EditingEnrollmentID = 0
		return info("")
	case DeleteEnrollment:
		return d.deleteEnrollment(ctx, c.ID)
	case ListCourses:
		return Result{Status: StatusInfo, Courses: d.courseRows()}
	case ListCourseOptions:
		return Result{Status: StatusInfo, Options: d.courseOptions()}
	case ListEnrollments:
		return Result{Status: StatusInfo, Enrollments: d.enrollmentRows()}
	case CreateCourse:
		return d.createCourse(ctx, c.Title, c.Description)
	case UpdateCourse:
		return d.updateCourse(ctx, c.ID, c.Title, c.Description)
	case GetCourse:
		course, ok := d.catalog.Courses.Get(c.ID)
		if !ok {
			return failure(domain.ErrCourseNotFound)
		}
		return Result{Status: StatusInfo, Course: &course}
	case CreateEnrollment:
		return d.createEnrollment(ctx, c.CourseID, c.StudentName, c.StudentEmail)
	case UpdateEnrollment:
		return d.updateEnrollment(ctx, c.ID, c.CourseID, c.StudentName, c.StudentEmail)
	case GetEnrollment:
		enrollment, ok := d.catalog.Enrollments.Get(c.ID)
		if !ok {
			return failure(domain.ErrEnrollmentNotFound)
		}
		return Result{Status: StatusInfo, Enrollment: &enrollment}
	default:
		return failure(fmt.Errorf("%w: %T", ErrUnknownCommand, cmd))
	}
}

// saveCourse updates the course being edited, or creates one when nothing is
// being edited or the edited course no longer exists.
func (d *Dispatcher) saveCourse(ctx context.Context, c SaveCourse) Result {
	var res Result
	if id := d.session.EditingCourseID; id != 0 && d.courseExists(id) {
		res = d.updateCourse(ctx, id, c.Title, c.Description)
	} else {
		res = d.createCourse(ctx, c.Title, c.Description)
	}

	if res.OK() {
		d.session.EditingCourseID = 0
	}
	return res
}

func (d *Dispatcher) editCourse(c EditCourse) Result {
	course, ok := d.catalog.Courses.Get(c.ID)
	if !ok {
		return failure(domain.ErrCourseNotFound)
	}

	d.session.EditingCourseID = course.ID
	res := info(fmt.Sprintf("Editing course ID %d", course.ID))
	res.Course = &course
	return res
}

func (d *Dispatcher) createCourse(ctx context.Context, title, description string) Result {
	course, err := d.catalog.Courses.Create(ctx, title, description)
	if err != nil {
		return failure(err)
	}

	d.emit(ctx, store.CoursesKey, events.ActionCreated, course.ID, courseRefresh)
	res := success("Course created successfully")
	res.Course = &course
	res.Refresh = courseRefresh
	return res
}

func (d *Dispatcher) updateCourse(ctx context.Context, id int, title, description string) Result {
	course, err := d.catalog.Courses.Update(ctx, id, title, description)
	if err != nil {
		return failure(err)
	}

	d.emit(ctx, store.CoursesKey, events.ActionUpdated, course.ID, courseRefresh)
	res := success("Course updated successfully")
	res.Course = &course
	res.Refresh = courseRefresh
	return res
}

func (d *Dispatcher) deleteCourse(ctx context.Context, id int) Result {
	if err := d.catalog.Courses.Delete(ctx, id); err != nil {
		return failure(err)
	}

	d.emit(ctx, store.CoursesKey, events.ActionDeleted, id, courseRefresh)
	res := success("Course deleted")
	res.Refresh = courseRefresh
	return res
}

// saveEnrollment updates the enrollment being edited, or creates one when
// nothing is being edited.
func (d *Dispatcher) saveEnrollment(ctx context.Context, c SaveEnrollment) Result {
	var res Result
	if id := d.session.EditingEnrollmentID; id != 0 {
		res = d.updateEnrollment(ctx, id, c.CourseID, c.StudentName, c.StudentEmail)
	} else {
		res = d.createEnrollment(ctx, c.CourseID, c.StudentName, c.StudentEmail)
	}

	if res.OK() {
		d.session.EditingEnrollmentID = 0
	}
	return res
}

func (d *Dispatcher) editEnrollment(c EditEnrollment) Result {
	enrollment, ok := d.catalog.Enrollments.Get(c.ID)
	if !ok {
		return failure(domain.ErrEnrollmentNotFound)
	}

	d.session.EditingEnrollmentID = enrollment.ID
	res := info(fmt.Sprintf("Editing enrollment ID %d", enrollment.ID))
	res.Enrollment = &enrollment
	return res
}

func (d *Dispatcher) createEnrollment(ctx context.Context, courseID int, name, email string) Result {
	enrollment, err := d.catalog.Enrollments.Create(ctx, courseID, name, email)
	if err != nil {
		return failure(err)
	}

	d.emit(ctx, store.EnrollmentsKey, events.ActionCreated, enrollment.ID, enrollmentRefresh)
	res := success("Student enrolled successfully")
	res.Enrollment = &enrollment
	res.Refresh = enrollmentRefresh
	return res
}

func (d *Dispatcher) updateEnrollment(ctx context.Context, id, courseID int, name, email string) Result {
	enrollment, err := d.catalog.Enrollments.Update(ctx, id, courseID, name, email)
	if err != nil {
		return failure(err)
	}

	d.emit(ctx, store.EnrollmentsKey, events.ActionUpdated, enrollment.ID, enrollmentRefresh)
	res := success("Enrollment updated")
	res.Enrollment = &enrollment
	res.Refresh = enrollmentRefresh
	return res
}

func (d *Dispatcher) deleteEnrollment(ctx context.Context, id int) Result {
	if err := d.catalog.Enrollments.Delete(ctx, id); err != nil {
		return failure(err)
	}

	d.emit(ctx, store.EnrollmentsKey, events.ActionDeleted, id, enrollmentRefresh)
	res := success("Enrollment deleted")
	res.Refresh = enrollmentRefresh
	return res
}

func (d *Dispatcher) courseExists(id int) bool {
	_, ok := d.catalog.Courses.Get(id)
	return ok
}

func (d *Dispatcher) courseRows() []CourseRow {
	courses := d.catalog.Courses.List()
	rows := make([]CourseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, CourseRow{
			Course:      c,
			Enrollments: d.catalog.Enrollments.CountForCourse(c.ID),
		})
	}
	return rows
}

func (d *Dispatcher) courseOptions() []CourseOption {
	courses := d.catalog.Courses.List()
	options := make([]CourseOption, 0, len(courses))
	for _, c := range courses {
		options = append(options, courseOption(c))
	}
	return options
}

func (d *Dispatcher) enrollmentRows() []EnrollmentRow {
	enrollments := d.catalog.Enrollments.List()
	rows := make([]EnrollmentRow, 0, len(enrollments))
	for _, e := range enrollments {
		title := UnknownCourseTitle
		if course, ok := d.catalog.Courses.Get(e.CourseID); ok {
			title = course.Title
		}
		rows = append(rows, EnrollmentRow{Enrollment: e, CourseTitle: title})
	}
	return rows
}

// emit publishes a change. The mutation is already committed, so a failing
// listener is logged and does not change the Result.
func (d *Dispatcher) emit(ctx context.Context, collection string, action events.Action, id int, refresh []events.View) {
	event := events.NewChangeEvent(collection, action, id, refresh)
	if err := d.emitter.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, d.logger).Warn("change listener failed",
			"event_id", event.ID,
			"collection", collection,
			"action", action,
			"error", redact.Error(err))
	}
}
