// Package workers provides the client's background jobs and a small
// aggregate for running them together.
package workers

import "context"

// Worker is a background job. Run blocks until the given context is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}
