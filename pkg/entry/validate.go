package entry

import "strings"

const (
	ReasonLocationRequired = "location required"
	ReasonDateRequired     = "date required for memory"
	ReasonFutureMemory     = "memory date cannot be in the future"
	ReasonPastPlanned      = "planned date cannot be in the past"
)

// Rejection is a user-correctable validation failure. Field names the input
// the message belongs next to.
type Rejection struct {
	Field  string
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

// Validate checks e against today. The first failing rule wins; category,
// mood, budget and tags are never rejected.
func Validate(e *Entry, today Date) error {
	if strings.TrimSpace(e.Location) == "" {
		return &Rejection{Field: "location", Reason: ReasonLocationRequired}
	}
	switch e.Type {
	case Memory, "":
		if !e.HasDate() {
			return &Rejection{Field: "date", Reason: ReasonDateRequired}
		}
		if e.Date.After(today) {
			return &Rejection{Field: "date", Reason: ReasonFutureMemory}
		}
	case Planned:
		if e.HasDate() && e.Date.Before(today) {
			return &Rejection{Field: "date", Reason: ReasonPastPlanned}
		}
	}
	return nil
}
