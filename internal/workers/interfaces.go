// Package workers provides the application's background workers.
// It defines the Worker interface, a Workers aggregate that runs them in a
// unified way, and the share retention worker that purges expired one-time
// share copies.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn their goroutines internally and
// return promptly; cancellation is delivered through the context given to
// the worker's constructor.
type Worker interface {
	Run()
}
