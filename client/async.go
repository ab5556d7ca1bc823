package client

import "context"

// Result is the single value delivered by Async.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs call on its own goroutine and delivers exactly one Result on
// the returned channel, which is then closed. Cancelling ctx abandons the
// request; the Result then carries the context error.
//
//	courses := client.Async(ctx, svc.FindAllCourses)
//	res := <-courses
func Async[T any](ctx context.Context, call func(context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		v, err := call(ctx)
		out <- Result[T]{Value: v, Err: err}
	}()
	return out
}
