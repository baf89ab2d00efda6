// Package result provides the success/failure envelope returned by
// every task operation. Expected failures (not found, invalid input)
// travel as values instead of errors so callers can branch on them.
package result

// Error is an immutable machine-readable code paired with a
// user-facing message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Unit is the value carried by results that succeed without data.
type Unit struct{}

// Result holds either a value of type T or one or more errors,
// never both.
type Result[T any] struct {
	value   T
	errors  []Error
	success bool
}

// Ok wraps value in a success result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Fail wraps one or more errors in a failure result.
func Fail[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		panic("result: Fail called without errors")
	}
	return Result[T]{errors: errs}
}

func (r Result[T]) IsSuccess() bool { return r.success }

// IsFailed is the logical negation of IsSuccess.
func (r Result[T]) IsFailed() bool { return !r.success }

// Value returns the wrapped value. Zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Errors returns the failure errors. Nil on success.
func (r Result[T]) Errors() []Error { return r.errors }
