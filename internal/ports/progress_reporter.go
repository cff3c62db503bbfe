package ports

// ProgressReporter receives incremental output while a session is polled.
type ProgressReporter interface {
	OperationStarted(op string)
	PollFailed(attempt int, err error)
}
