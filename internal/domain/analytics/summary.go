package analytics

// FunnelStep is one row of the conversion funnel report.
type FunnelStep struct {
	Step     EventType `json:"step"`
	Sessions int64     `json:"sessions"`
	// DropoffPct is the share of sessions lost since the previous step,
	// in whole percent. Zero for the first step.
	DropoffPct int `json:"dropoff_pct"`
}

// BuildFunnel orders raw per-step session counts into the funnel and computes
// drop-off between consecutive steps.
func BuildFunnel(counts map[EventType]int64) []FunnelStep {
	steps := make([]FunnelStep, 0, len(funnelOrder))
	var prev int64 = -1
	for _, step := range funnelOrder {
		n := counts[step]
		s := FunnelStep{Step: step, Sessions: n}
		if prev > 0 && n < prev {
			s.DropoffPct = int((prev - n) * 100 / prev)
		}
		steps = append(steps, s)
		prev = n
	}
	return steps
}

// TierInterest is how often a tier was selected during the report window.
type TierInterest struct {
	Tier       string `json:"tier"`
	Selections int64  `json:"selections"`
}

// QuoteSummary aggregates quote outcomes for the admin dashboard.
type QuoteSummary struct {
	ByStatus map[string]int64 `json:"by_status"`
}
