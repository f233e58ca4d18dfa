// Package slotadmin backs the admin slot editor. The editor collects 12-hour
// dropdown selections; everything transmitted upstream is canonical 24-hour
// text, and stored slots are rendered back into dropdown parts for editing.
package slotadmin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"medibook/models"
	"medibook/upstream"
)

var (
	// ErrInvalidWindow reports a slot whose start does not precede its end.
	ErrInvalidWindow = errors.New("slot start time must be before end time")
	// ErrInvalidStep reports a slottimerange that is not a positive integer.
	ErrInvalidStep = errors.New("slot time range must be a positive number of minutes")
	// ErrInvalidBreak reports a break window that is inverted or falls outside
	// the slot window.
	ErrInvalidBreak = errors.New("break windows must lie inside the slot window")
)

// Service is the admin slot editor's backend.
type Service interface {
	List(ctx context.Context, q models.SlotListQuery) ([]models.SlotEditorView, error)
	Create(ctx context.Context, req models.SlotEditorRequest) error
	Update(ctx context.Context, req models.SlotEditorRequest) error
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	API upstream.SlotAdminAPI
}

// List fetches the stored slots and renders their canonical times back into
// the editor's 12-hour parts.
func (s *DefaultService) List(ctx context.Context, q models.SlotListQuery) ([]models.SlotEditorView, error) {
	slots, err := s.API.ListSlots(ctx, q)
	if err != nil {
		return nil, err
	}
	views := make([]models.SlotEditorView, 0, len(slots))
	for _, slot := range slots {
		view, err := toEditorView(slot)
		if err != nil {
			// A stored slot the editor cannot render is upstream corruption;
			// skip it rather than blocking the whole listing.
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// Create validates and converts the editor payload, then stores it upstream.
func (s *DefaultService) Create(ctx context.Context, req models.SlotEditorRequest) error {
	slot, err := buildSlot(req)
	if err != nil {
		return err
	}
	return s.API.CreateSlot(ctx, slot)
}

// Update validates and converts the editor payload, then rewrites the stored
// slot.
func (s *DefaultService) Update(ctx context.Context, req models.SlotEditorRequest) error {
	if req.ID == "" {
		return errors.New("missing slot id")
	}
	slot, err := buildSlot(req)
	if err != nil {
		return err
	}
	slot.ID = req.ID
	return s.API.UpdateSlot(ctx, slot)
}

// Delete removes a stored slot.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing slot id")
	}
	return s.API.DeleteSlot(ctx, id)
}

// buildSlot converts the 12-hour editor parts to a canonical slot definition,
// enforcing start < end, a positive step and breaks inside [start, end).
func buildSlot(req models.SlotEditorRequest) (models.SlotDefinition, error) {
	start, err := editorTimeOfDay(req.Start)
	if err != nil {
		return models.SlotDefinition{}, err
	}
	end, err := editorTimeOfDay(req.End)
	if err != nil {
		return models.SlotDefinition{}, err
	}
	if start >= end {
		return models.SlotDefinition{}, ErrInvalidWindow
	}

	if req.SlotTimeRange != "" {
		step, err := strconv.Atoi(strings.TrimSpace(req.SlotTimeRange))
		if err != nil || step < 1 {
			return models.SlotDefinition{}, ErrInvalidStep
		}
	}

	slot := models.SlotDefinition{
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		StartTime:     start.Format(models.Style24),
		EndTime:       end.Format(models.Style24),
		SlotType:      req.SlotType,
		SlotTimeRange: strings.TrimSpace(req.SlotTimeRange),
	}

	for _, b := range req.Breaks {
		bs, err := editorTimeOfDay(b.Start)
		if err != nil {
			return models.SlotDefinition{}, err
		}
		be, err := editorTimeOfDay(b.End)
		if err != nil {
			return models.SlotDefinition{}, err
		}
		if bs >= be || bs < start || be > end {
			return models.SlotDefinition{}, ErrInvalidBreak
		}
		slot.Breaks = append(slot.Breaks, models.BreakWindow{
			BreakStart: bs.Format(models.Style24),
			BreakEnd:   be.Format(models.Style24),
		})
	}

	return slot, nil
}

// editorTimeOfDay joins one dropdown selection into "H:MM AM/PM" text and
// runs it through the shared codec.
func editorTimeOfDay(et models.EditorTime) (models.TimeOfDay, error) {
	return models.ParseTimeOfDay(fmt.Sprintf("%s:%s %s", et.Hour, et.Minute, et.Period))
}

// toEditorView renders a canonical slot back into 12-hour dropdown parts.
func toEditorView(slot models.SlotDefinition) (models.SlotEditorView, error) {
	start, err := models.ParseTimeOfDay(slot.StartTime)
	if err != nil {
		return models.SlotEditorView{}, err
	}
	end, err := models.ParseTimeOfDay(slot.EndTime)
	if err != nil {
		return models.SlotEditorView{}, err
	}

	view := models.SlotEditorView{
		ID:            slot.ID,
		DoctorID:      slot.DoctorID,
		Date:          slot.Date,
		Start:         editorParts(start),
		End:           editorParts(end),
		SlotType:      slot.SlotType,
		SlotTimeRange: slot.SlotTimeRange,
	}
	for _, b := range slot.Breaks {
		bs, err := models.ParseTimeOfDay(b.BreakStart)
		if err != nil {
			return models.SlotEditorView{}, err
		}
		be, err := models.ParseTimeOfDay(b.BreakEnd)
		if err != nil {
			return models.SlotEditorView{}, err
		}
		view.Breaks = append(view.Breaks, models.EditorBreak{
			Start: editorParts(bs),
			End:   editorParts(be),
		})
	}
	return view, nil
}

// editorParts splits "H:MM AM/PM" into the three dropdown values.
func editorParts(t models.TimeOfDay) models.EditorTime {
	display := t.Format(models.Style12)
	fields := strings.Fields(display)
	clock := strings.Split(fields[0], ":")
	return models.EditorTime{Hour: clock[0], Minute: clock[1], Period: fields[1]}
}
