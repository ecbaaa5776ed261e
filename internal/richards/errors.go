package richards

import "errors"

var (
	// ErrUnknownTask is raised when a packet or release targets an identity
	// with no registered task.
	ErrUnknownTask = errors.New("findTask failed")

	// ErrEmptyQueue is raised when a task expects a packet that is not there.
	ErrEmptyQueue = errors.New("empty packet queue")

	// ErrVerification is returned when a run ends with unexpected counters.
	ErrVerification = errors.New("verification failed")
)

type fatal struct {
	err error
}
