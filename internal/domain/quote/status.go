package quote

// Status is the lifecycle state of a quote. The machine is strictly forward:
// draft -> submitted -> under_review -> accepted | rejected, with expired
// reachable from any pre-terminal state via the time-based sweep.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusExpired     Status = "expired"
)

var transitions = map[Status][]Status{
	StatusDraft:       {StatusSubmitted, StatusExpired},
	StatusSubmitted:   {StatusUnderReview, StatusExpired},
	StatusUnderReview: {StatusAccepted, StatusRejected, StatusExpired},
	StatusAccepted:    {},
	StatusRejected:    {},
	StatusExpired:     {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether the machine allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsEditable reports whether the customer may still change the selection.
// Quotes stay editable while drafted and while the agency is reviewing them,
// so customers can adjust their selection during the negotiation call.
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusUnderReview
}
