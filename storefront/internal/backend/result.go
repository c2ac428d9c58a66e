package backend

import (
	"encoding/json"
	"io"
	"net/http"

	"overcooked-client/storefront/internal/domain"
)

// Result is either Ok(value) or Err(*domain.APIError), never both.
type Result[T any] struct {
	value T
	err   *domain.APIError
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Err[T any](err *domain.APIError) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

type envelope struct {
	ErrorCode    *string `json:"errorCode"`
	ErrorMessage string  `json:"errorMessage"`
	APIPath      string  `json:"apiPath"`
	ErrorTime    string  `json:"errorTime"`
}

// decodeResult turns a response into a Result. Any non-2xx status is an
// error, and so is a 2xx body that carries an errorCode.
func decodeResult[T any](resp *http.Response, path string) Result[T] {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Err[T](&domain.APIError{Status: resp.StatusCode, Code: "READ_FAILED", Message: err.Error(), Path: path})
	}

	var env envelope
	hasEnvelope := len(body) > 0 && json.Unmarshal(body, &env) == nil

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &domain.APIError{Status: resp.StatusCode, Path: path}
		if hasEnvelope {
			if env.ErrorCode != nil {
				apiErr.Code = *env.ErrorCode
			}
			apiErr.Message = env.ErrorMessage
			apiErr.Time = env.ErrorTime
			if env.APIPath != "" {
				apiErr.Path = env.APIPath
			}
		}
		if apiErr.Code == "" {
			apiErr.Code = http.StatusText(resp.StatusCode)
		}
		return Err[T](apiErr)
	}

	if hasEnvelope && env.ErrorCode != nil {
		return Err[T](&domain.APIError{
			Status:  resp.StatusCode,
			Code:    *env.ErrorCode,
			Message: env.ErrorMessage,
			Path:    env.APIPath,
			Time:    env.ErrorTime,
		})
	}

	var value T
	if len(body) == 0 {
		return Ok(value)
	}
	if err := json.Unmarshal(body, &value); err != nil {
		return Err[T](&domain.APIError{Status: resp.StatusCode, Code: "DECODE_FAILED", Message: err.Error(), Path: path})
	}
	return Ok(value)
}
