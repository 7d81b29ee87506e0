package domain

// Result is the tagged union every façade operation resolves to.
// Callers must check Success before touching Data. Failures never
// propagate as Go errors out of a façade; they arrive here.
type Result[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data,omitempty"`
	Err     *APIError `json:"error,omitempty"`
}

// OK creates a successful result.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail creates a failed result.
func Fail[T any](err *APIError) Result[T] {
	if err == nil {
		err = ErrServer(500, "unknown error")
	}
	return Result[T]{Success: false, Err: err}
}
