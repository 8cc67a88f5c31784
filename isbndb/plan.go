// file: isbndb/plan.go
// version: 1.0.0
// guid: 8f2d4c6a-1b3e-4f5a-9c7d-2e8b6a4f0c1d

package isbndb

import "golang.org/x/time/rate"

// Plan is an ISBNdb subscription tier. Each tier has its own API host and
// requests-per-second ceiling.
type Plan string

const (
	PlanDefault Plan = "default"
	PlanPremium Plan = "premium"
	PlanPro     Plan = "pro"
)

// Static per-plan tables matching the upstream subscription tiers.
var planBaseURLs = map[Plan]string{
	PlanDefault: "https://api2.isbndb.com",
	PlanPremium: "https://api.premium.isbndb.com",
	PlanPro:     "https://api.pro.isbndb.com",
}

var planRateLimits = map[Plan]rate.Limit{
	PlanDefault: 1,
	PlanPremium: 3,
	PlanPro:     5,
}

// BaseURL returns the API host for the plan. Unknown plans fall back to the
// default tier, matching the upstream client behavior.
func (p Plan) BaseURL() string {
	if u, ok := planBaseURLs[p]; ok {
		return u
	}
	return planBaseURLs[PlanDefault]
}

// Limit returns the requests-per-second ceiling for the plan.
func (p Plan) Limit() rate.Limit {
	if l, ok := planRateLimits[p]; ok {
		return l
	}
	return planRateLimits[PlanDefault]
}
