package trading

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrExternalService = errors.New("trading service error")

// Failure is the reason the trading service gave for refusing a call.
type Failure struct {
	Status int
	Reason string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("trading service responded %d: %s", f.Status, f.Reason)
}

func (f *Failure) Unwrap() error {
	return ErrExternalService
}

// Result is either a payload or a Failure, never both.
type Result[T any] struct {
	payload T
	failure *Failure
}

func Success[T any](payload T) Result[T] {
	return Result[T]{payload: payload}
}

func Fail[T any](status int, reason string) Result[T] {
	return Result[T]{failure: &Failure{Status: status, Reason: reason}}
}

func (r Result[T]) OK() bool {
	return r.failure == nil
}

func (r Result[T]) Unwrap() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}
	return r.payload, nil
}

type envelope struct {
	Status   int             `json:"status"`
	Message  string          `json:"message"`
	Response json.RawMessage `json:"response"`
}

func decode[T any](statusCode int, body []byte) Result[T] {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if statusCode != http.StatusOK {
			return Fail[T](statusCode, http.StatusText(statusCode))
		}
		return Fail[T](statusCode, "malformed response: "+err.Error())
	}
	if statusCode != http.StatusOK || env.Status != http.StatusOK {
		status := env.Status
		if statusCode != http.StatusOK {
			status = statusCode
		}
		reason := env.Message
		if reason == "" {
			reason = http.StatusText(status)
		}
		return Fail[T](status, reason)
	}

	var payload T
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &payload); err != nil {
			return Fail[T](statusCode, "malformed payload: "+err.Error())
		}
	}
	return Success(payload)
}
