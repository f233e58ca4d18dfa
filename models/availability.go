package models

// CandidateInterval is one generated, possibly-filtered bookable start time.
// Ephemeral: recomputed on every doctor/date/type change, never cached beyond
// the current view. SlotID points back to the slot that generated the time so
// a selection can resolve its own step for end-time computation.
type CandidateInterval struct {
	Start       TimeOfDay `json:"start"`   // minutes since midnight
	Time        string    `json:"time"`    // canonical "HH:MM"
	Display     string    `json:"display"` // "H:MM AM/PM"
	Available   bool      `json:"available"`
	SlotID      string    `json:"slotId"`
	StepMinutes int       `json:"stepMinutes"`
}

// Availability result reasons for the expected empty states.
const (
	ReasonNoSlotsDefined       = "No slots available for this type on this date."
	ReasonNoAvailableIntervals = "All slots for this date are already taken."
)

// AvailabilityResult is the assembled, ordered interval list for one
// doctor/date/consultation-type selection. Reason is set instead of an error
// for the expected user-visible empty states.
type AvailabilityResult struct {
	Intervals     []CandidateInterval `json:"intervals"`
	DefaultSlotID string              `json:"defaultSlotId,omitempty"`
	Reason        string              `json:"reason,omitempty"`
}

// Empty reports whether nothing is bookable, counting fully-excluded lists.
func (r AvailabilityResult) Empty() bool {
	for _, iv := range r.Intervals {
		if iv.Available {
			return false
		}
	}
	return true
}
