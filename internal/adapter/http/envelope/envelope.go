// Package envelope renders results as the transport body consumed by
// the frontend: success and failure are explicit flags, never inferred
// from the HTTP status alone.
package envelope

import "taskify/pkg/result"

type Body struct {
	IsSuccess bool           `json:"isSuccess"`
	IsFailed  bool           `json:"isFailed"`
	Value     any            `json:"value,omitempty"`
	Errors    []result.Error `json:"errors,omitempty"`
}

func Success(value any) Body {
	return Body{IsSuccess: true, Value: value}
}

func Failure(errs []result.Error) Body {
	return Body{IsFailed: true, Errors: errs}
}
