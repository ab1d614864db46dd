package domain

import "errors"

var (
	// ErrTokenNotFound is returned when an event assumes a token row
	// that does not exist.
	ErrTokenNotFound = errors.New("token not found")

	// ErrHolderNotFound is returned when an event assumes a holder row
	// that does not exist.
	ErrHolderNotFound = errors.New("token holder not found")

	// ErrBalanceUnderflow is returned when applying an event would make
	// a balance or supply negative.
	ErrBalanceUnderflow = errors.New("balance underflow")

	// ErrContractExists is returned on an init call for an address that
	// already has a contract row. Duplicate inits indicate a bug, not a
	// recoverable condition.
	ErrContractExists = errors.New("contract already exists")

	// ErrContractNotFound is returned when a tracked contract row is
	// expected but missing.
	ErrContractNotFound = errors.New("contract not found")

	// ErrEventDecode is returned when event bytes for a recognized
	// contract kind cannot be decoded.
	ErrEventDecode = errors.New("event decode failed")

	// ErrStreamStalled is returned when the finalized-block stream
	// yields nothing within the configured timeout.
	ErrStreamStalled = errors.New("finalized block stream stalled")

	// ErrStreamEnded is returned when the finalized-block stream closes
	// before the consumer is cancelled.
	ErrStreamEnded = errors.New("finalized block stream ended")
)

// RetryableError marks a transport or infrastructure failure the outer
// supervision loop may retry by resuming from the last persisted height.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// Retryable wraps err as retryable. A nil err returns nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}
