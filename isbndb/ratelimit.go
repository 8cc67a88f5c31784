// file: isbndb/ratelimit.go
// version: 1.0.0
// guid: 5b8d2f4a-9c1e-4b7d-a3f6-0e2c8b4d6f8a

package isbndb

import (
	"context"

	"golang.org/x/time/rate"
)

// rateGate spaces outbound requests at least 1/ceiling(plan) apart. A token
// bucket with burst 1 degenerates to exactly that minimum inter-request
// interval. The limiter is safe for concurrent use, so a client shared
// across goroutines still respects the plan ceiling.
type rateGate struct {
	limiter *rate.Limiter
}

func newRateGate(plan Plan) *rateGate {
	return &rateGate{limiter: rate.NewLimiter(plan.Limit(), 1)}
}

// wait blocks until the next request may be sent. Returns immediately when
// the previous send is already further back than the plan interval.
func (g *rateGate) wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}
