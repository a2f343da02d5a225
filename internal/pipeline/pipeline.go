// Package pipeline composes cross-cutting call concerns (retry, caching,
// progress indication) as an explicit middleware chain instead of stacked
// wrappers. Concerns apply in declaration order, outermost first:
//
//	result, err := pipeline.New().
//	    Retry(3, time.Second).
//	    Cache(time.Minute).
//	    Spinner("Fetching data...").
//	    Run(ctx, fetch)
//
// retries the whole cached/spinner-wrapped call up to three times.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"prism/pkg/logging"
)

// Func is the unit of work a pipeline runs.
type Func func(ctx context.Context) (interface{}, error)

// Middleware wraps a Func with an additional concern.
type Middleware func(next Func) Func

// Pipeline is an ordered middleware chain. Build one per call site; the
// cache middleware keeps per-pipeline state.
type Pipeline struct {
	middleware []Middleware
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Use appends a custom middleware to the chain.
func (p *Pipeline) Use(m Middleware) *Pipeline {
	p.middleware = append(p.middleware, m)
	return p
}

// Retry re-invokes the wrapped call up to attempts times, waiting delay
// between attempts. Context cancellation stops retrying early.
func (p *Pipeline) Retry(attempts int, delay time.Duration) *Pipeline {
	if attempts < 1 {
		attempts = 1
	}
	return p.Use(func(next Func) Func {
		return func(ctx context.Context) (interface{}, error) {
			var (
				result interface{}
				err    error
			)
			for attempt := 1; attempt <= attempts; attempt++ {
				result, err = next(ctx)
				if err == nil {
					return result, nil
				}
				if attempt == attempts {
					break
				}
				logging.Debug("Pipeline", "Attempt %d/%d failed, retrying in %s: %v", attempt, attempts, delay, err)
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(delay):
				}
			}
			return nil, err
		}
	})
}

// Cache memoizes the wrapped call's successful result for ttl. Failures are
// not cached. A ttl of zero caches for the pipeline's lifetime.
func (p *Pipeline) Cache(ttl time.Duration) *Pipeline {
	var (
		mu      sync.Mutex
		cached  interface{}
		valid   bool
		expires time.Time
	)
	return p.Use(func(next Func) Func {
		return func(ctx context.Context) (interface{}, error) {
			mu.Lock()
			if valid && (ttl == 0 || time.Now().Before(expires)) {
				result := cached
				mu.Unlock()
				return result, nil
			}
			mu.Unlock()

			result, err := next(ctx)
			if err != nil {
				return nil, err
			}

			mu.Lock()
			cached = result
			valid = true
			expires = time.Now().Add(ttl)
			mu.Unlock()
			return result, nil
		}
	})
}

// Spinner shows a progress spinner on stderr while the wrapped call runs.
func (p *Pipeline) Spinner(message string) *Pipeline {
	return p.Use(func(next Func) Func {
		return func(ctx context.Context) (interface{}, error) {
			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = " " + message
			s.Start()
			defer s.Stop()
			return next(ctx)
		}
	})
}

// Run applies the middleware chain to fn and invokes it. Middleware declared
// first wraps everything declared after it.
func (p *Pipeline) Run(ctx context.Context, fn Func) (interface{}, error) {
	wrapped := fn
	for i := len(p.middleware) - 1; i >= 0; i-- {
		wrapped = p.middleware[i](wrapped)
	}
	return wrapped(ctx)
}
