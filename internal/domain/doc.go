// Package domain contains the course and enrollment entities, the field rules
// they must satisfy, and the error values that describe why an operation on
// them was rejected. It has no knowledge of storage or presentation.
package domain
