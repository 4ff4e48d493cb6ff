package service

// Command is a request to the Dispatcher. The concrete types below are the
// complete set; Execute rejects anything else.
type Command interface {
	commandName() string
}

// SaveCourse submits the course form. It creates a course unless a course is
// being edited, in which case that course is updated.
type SaveCourse struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
}

// EditCourse puts the course form into edit mode for ID.
type EditCourse struct {
	ID int `json:"id"`
}

// ResetCourseForm leaves course edit mode.
type ResetCourseForm struct{}

// DeleteCourse removes a course that has no enrollments.
type DeleteCourse struct {
	ID int `json:"id"`
}

// SaveEnrollment submits the enrollment form. It creates an enrollment unless
// one is being edited, in which case that enrollment is updated.
type SaveEnrollment struct {
	CourseID     int    `json:"courseId"`
	StudentName  string `json:"name"`
	StudentEmail string `json:"email"`
}

// EditEnrollment puts the enrollment form into edit mode for ID.
type EditEnrollment struct {
	ID int `json:"id"`
}

// ResetEnrollmentForm leaves enrollment edit mode.
type ResetEnrollmentForm struct{}

// DeleteEnrollment removes an enrollment.
type DeleteEnrollment struct {
	ID int `json:"id"`
}

// ListCourses returns course rows with their enrollment counts.
type ListCourses struct{}

// ListCourseOptions returns the entries of the course picker.
type ListCourseOptions struct{}

// ListEnrollments returns enrollment rows with their course titles.
type ListEnrollments struct{}

// The commands below address a record directly and ignore the form session.
// The HTTP API uses them.

// CreateCourse adds a course.
type CreateCourse struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
}

// UpdateCourse replaces the title and description of course ID.
type UpdateCourse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
}

// GetCourse returns one course.
type GetCourse struct {
	ID int `json:"id"`
}

// CreateEnrollment enrolls a student.
type CreateEnrollment struct {
	CourseID     int    `json:"courseId"`
	StudentName  string `json:"name"`
	StudentEmail string `json:"email"`
}

// UpdateEnrollment replaces the fields of enrollment ID.
type UpdateEnrollment struct {
	ID           int    `json:"id"`
	CourseID     int    `json:"courseId"`
	StudentName  string `json:"name"`
	StudentEmail string `json:"email"`
}

// GetEnrollment returns one enrollment.
type GetEnrollment struct {
	ID int `json:"id"`
}

func (SaveCourse) commandName() string          { return "save_course" }
func (EditCourse) commandName() string          { return "edit_course" }
func (ResetCourseForm) commandName() string     { return "reset_course_form" }
func (DeleteCourse) commandName() string        { return "delete_course" }
func (SaveEnrollment) commandName() string      { return "save_enrollment" }
func (EditEnrollment) commandName() string      { return "edit_enrollment" }
func (ResetEnrollmentForm) commandName() string { return "reset_enrollment_form" }
func (DeleteEnrollment) commandName() string    { return "delete_enrollment" }
func (ListCourses) commandName() string         { return "list_courses" }
func (ListCourseOptions) commandName() string   { return "list_course_options" }
func (ListEnrollments) commandName() string     { return "list_enrollments" }
func (CreateCourse) commandName() string        { return "create_course" }
func (UpdateCourse) commandName() string        { return "update_course" }
func (GetCourse) commandName() string           { return "get_course" }
func (CreateEnrollment) commandName() string    { return "create_enrollment" }
func (UpdateEnrollment) commandName() string    { return "update_enrollment" }
func (GetEnrollment) commandName() string       { return "get_enrollment" }
