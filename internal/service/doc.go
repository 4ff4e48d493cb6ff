// Package service contains the application-level command interface that
// presentation layers drive.
//
// A presentation layer never calls the stores directly. It builds a Command
// value, passes it to Dispatcher.Execute, and renders the returned Result:
//
//   - Status and Message are what the user should be told.
//   - Course/Enrollment carry the record a form should show.
//   - Courses/Enrollments carry rows for list views.
//   - Refresh names the views that are stale after the command.
//
// The Dispatcher also keeps the form session of the tool, that is which
// course and which enrollment (if any) are currently being edited, so that a
// "save" means create or update depending on that state.
//
// Commands run one at a time. Execute takes a lock around each command,
// including its persistence write, because the stores underneath are not safe
// for concurrent use.
package service
