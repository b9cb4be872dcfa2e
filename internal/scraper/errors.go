package scraper

import (
	"errors"
	"fmt"
)

// TimeoutMessage is the fixed operator-facing notice pushed to the board
// when the source site does not answer, so nobody trusts stale numbers.
const TimeoutMessage = "kitco.com website down. Precious metals SPOT PRICES are NOT UP TO DATE."

// ErrorKind distinguishes the two extraction failure modes callers care about.
type ErrorKind int

const (
	// KindExtractionFailed covers structural drift (expected data missing
	// from the page) and generic network failures.
	KindExtractionFailed ErrorKind = iota
	// KindTimeout means the source did not answer within the fetch deadline.
	KindTimeout
)

// ExtractionError is the typed failure of a price fetch.
type ExtractionError struct {
	Kind  ErrorKind
	Metal string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Kind == KindTimeout {
		return TimeoutMessage
	}
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %v", e.Metal, e.Err)
	}
	return fmt.Sprintf("extract %s: price data not found", e.Metal)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is a source timeout, as opposed to a
// structural or generic network failure.
func IsTimeout(err error) bool {
	var ee *ExtractionError
	return errors.As(err, &ee) && ee.Kind == KindTimeout
}
