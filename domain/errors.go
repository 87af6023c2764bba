// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// Transient failures (timeouts, connection errors, 429 and 5xx) are retried.
	Transient = ErrorKind(iota)
	// Remote failures are rejections by the service, e.g. a 4xx other than 429.
	Remote
	// Malformed responses could not be decoded.
	Malformed
	// Exhausted means every attempt failed transiently.
	Exhausted
)

func (k ErrorKind) String() string {
	switch k {
	case Transient:
		return "transient"
	case Remote:
		return "remote"
	case Malformed:
		return "malformed"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type ApiError struct {
	Kind     ErrorKind
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *ApiError) Error() string {
	msg := fmt.Sprintf("%s error calling %s", e.Kind, e.Endpoint)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	if len(e.Message) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must abort the running session instead of
// being reported for a single item.
func IsFatal(err error) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == Exhausted
	}
	return false
}

// IsTransient reports whether err is worth another attempt.
func IsTransient(err error) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == Transient
	}
	return false
}
