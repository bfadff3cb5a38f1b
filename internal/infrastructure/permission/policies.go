package permission

import "fmt"

// Resources and actions used by the admin API.
const (
	ResourceQuotes    = "quotes"
	ResourceDiscounts = "discounts"
	ResourceSlots     = "slots"
	ResourceAnalytics = "analytics"
	ResourceAccounts  = "accounts"

	ActionRead   = "read"
	ActionReview = "review"
	ActionManage = "manage"
)

var defaultPolicies = [][3]string{
	{"admin", ResourceQuotes, ActionRead},
	{"admin", ResourceQuotes, ActionReview},
	{"admin", ResourceDiscounts, ActionRead},
	{"admin", ResourceDiscounts, ActionManage},
	{"admin", ResourceSlots, ActionRead},
	{"admin", ResourceSlots, ActionManage},
	{"admin", ResourceAnalytics, ActionRead},

	{"super_admin", ResourceAccounts, ActionManage},
}

// super_admin inherits everything admin can do.
var defaultGroupings = [][2]string{
	{"super_admin", "admin"},
}

// SeedDefaultPolicies installs the baseline role policies if they are not
// present yet. Safe to run at every startup.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}
	for _, g := range defaultGroupings {
		if _, err := e.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return fmt.Errorf("failed to seed role inheritance %v: %w", g, err)
		}
	}
	return e.enforcer.SavePolicy()
}
