// Package events announces committed changes to the course and enrollment
// collections. The dispatcher emits a ChangeEvent after every successful
// mutation; presentation components register handlers to learn which views
// they must re-render.
package events
