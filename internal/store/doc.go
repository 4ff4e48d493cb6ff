// Package store owns the course and enrollment collections. CourseStore and
// EnrollmentStore enforce the rules that tie the two together and write a
// full snapshot of their collection through a Gateway after every change.
//
// Stores are not safe for concurrent use. Callers that serve several clients
// serialize access themselves (see the app package).
package store
