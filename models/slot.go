package models

import "strconv"

// Consultation types accepted by the booking flow.
const (
	SlotTypeOnline  = "online"
	SlotTypeOffline = "offline"
)

// DefaultStepMinutes is the interval granularity used when a slot carries no
// usable slottimerange.
const DefaultStepMinutes = 7

// BreakWindow is one unavailable window inside a slot, 24-hour "HH:MM" times.
type BreakWindow struct {
	BreakStart string `json:"breakstart"`
	BreakEnd   string `json:"breakend"`
}

// SlotDefinition is a doctor's bookable window on one date, as served by the
// upstream clinic API. All time fields are canonical 24-hour "HH:MM" text.
type SlotDefinition struct {
	ID            string        `json:"_id"`
	DoctorID      string        `json:"doctorid"`
	Date          string        `json:"date"` // "2006-01-02"
	StartTime     string        `json:"starttime"`
	EndTime       string        `json:"endtime"`
	SlotType      string        `json:"slottype"`
	SlotTimeRange string        `json:"slottimerange,omitempty"` // step minutes, sent as text
	Breaks        []BreakWindow `json:"breaks,omitempty"`
}

// StepMinutes returns the slot's interval granularity, falling back to the
// default when the wire value is absent or not a positive integer.
func (s SlotDefinition) StepMinutes() int {
	step, err := strconv.Atoi(s.SlotTimeRange)
	if err != nil || step < 1 {
		return DefaultStepMinutes
	}
	return step
}

// EditorTime is one 12-hour dropdown selection from the admin slot editor.
type EditorTime struct {
	Hour   string `json:"hour"`
	Minute string `json:"minute"`
	Period string `json:"period"` // "AM" or "PM"
}

// EditorBreak is a break window as entered in the admin editor.
type EditorBreak struct {
	Start EditorTime `json:"start"`
	End   EditorTime `json:"end"`
}

// SlotEditorRequest is the admin editor payload for slot create/update. The
// slotadmin service converts the 12-hour parts to canonical 24-hour text
// before anything is transmitted upstream.
type SlotEditorRequest struct {
	ID            string        `json:"_id,omitempty"`
	DoctorID      string        `json:"doctorid" binding:"required"`
	Date          string        `json:"date" binding:"required"`
	Start         EditorTime    `json:"start" binding:"required"`
	End           EditorTime    `json:"end" binding:"required"`
	SlotType      string        `json:"slottype" binding:"required"`
	SlotTimeRange string        `json:"slottimerange,omitempty"`
	Breaks        []EditorBreak `json:"breaks,omitempty"`
}

// SlotEditorView is a stored slot rendered back into the editor's 12-hour
// dropdown parts for editing.
type SlotEditorView struct {
	ID            string        `json:"_id"`
	DoctorID      string        `json:"doctorid"`
	Date          string        `json:"date"`
	Start         EditorTime    `json:"start"`
	End           EditorTime    `json:"end"`
	SlotType      string        `json:"slottype"`
	SlotTimeRange string        `json:"slottimerange,omitempty"`
	Breaks        []EditorBreak `json:"breaks,omitempty"`
}

// SlotListQuery is the admin list request forwarded upstream.
type SlotListQuery struct {
	PageNo int               `json:"pageno"`
	SortBy map[string]string `json:"sortby,omitempty"`
	Search string            `json:"search"`
}
