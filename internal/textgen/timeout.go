package textgen

import (
	"context"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/timeout"
)

// timeoutService bounds every call of an inner Service.
type timeoutService struct {
	inner    Service
	executor failsafe.Executor[*Response]
}

// WithTimeout wraps svc so each Generate call fails with timeout.ErrExceeded
// once d elapses. The inner call sees a cancelled context at that point.
// A non-positive d returns svc unchanged.
func WithTimeout(svc Service, d time.Duration) Service {
	if d <= 0 {
		return svc
	}
	policy := timeout.NewBuilder[*Response](d).Build()
	return &timeoutService{
		inner:    svc,
		executor: failsafe.With[*Response](policy),
	}
}

func (t *timeoutService) Generate(ctx context.Context, req Request) (*Response, error) {
	return t.executor.WithContext(ctx).GetWithExecution(func(exec failsafe.Execution[*Response]) (*Response, error) {
		return t.inner.Generate(exec.Context(), req)
	})
}
