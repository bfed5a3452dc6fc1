// Package app contains shared application-layer constants used across the
// coursebook server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgAccessDenied is returned for every authentication failure. It is
	// deliberately the only body an unauthenticated caller ever sees, so
	// that the response never reveals which part of the credentials was
	// wrong.
	MsgAccessDenied = "Access Denied"

	// MsgNotCourseOwner is returned when an authenticated user attempts to
	// modify a course that belongs to a different user.
	MsgNotCourseOwner = "You are not authorized to modify this course"

	// MsgRouteNotFound is the fallback body for any request that matches no
	// registered route or method.
	MsgRouteNotFound = "Route Not Found"

	// MsgNotFound is returned when a requested record does not exist.
	MsgNotFound = "Not Found"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"
)
