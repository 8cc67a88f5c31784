// file: isbndb/ratelimit_test.go
// version: 1.0.0
// guid: 8a2c6e0f-4b7d-4f1a-b9c3-7e5a9c1d3f6b

package isbndb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestPlanCeilings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rate.Limit(1), PlanDefault.Limit())
	assert.Equal(t, rate.Limit(3), PlanPremium.Limit())
	assert.Equal(t, rate.Limit(5), PlanPro.Limit())

	// Unknown plans fall back to the default tier.
	assert.Equal(t, rate.Limit(1), Plan("enterprise").Limit())
	assert.Equal(t, "https://api2.isbndb.com", Plan("enterprise").BaseURL())
}

func TestPlanBaseURLs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://api2.isbndb.com", PlanDefault.BaseURL())
	assert.Equal(t, "https://api.premium.isbndb.com", PlanPremium.BaseURL())
	assert.Equal(t, "https://api.pro.isbndb.com", PlanPro.BaseURL())
}

func TestRateGateIdleReturnsImmediately(t *testing.T) {
	t.Parallel()

	gate := newRateGate(PlanDefault)

	start := time.Now()
	require.NoError(t, gate.wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond, "an idle gate must not block the first send")
}

func TestRateGateSpacing(t *testing.T) {
	t.Parallel()

	// Pro plan: 5/s ceiling, so three sends need at least 400ms total.
	gate := newRateGate(PlanPro)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, gate.wait(context.Background()))
	}
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 400*time.Millisecond, "consecutive sends must be spaced at least 1/ceiling apart")
}

func TestRateGateCanceledContext(t *testing.T) {
	t.Parallel()

	gate := newRateGate(PlanDefault)
	require.NoError(t, gate.wait(context.Background()))

	// The next slot is a full second away; a canceled context must not wait for it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, gate.wait(ctx))
}
