// Package availability derives the bookable time intervals for a doctor on a
// date from slot definitions, break windows and already-booked appointments.
// Everything here is a pure function of its inputs; the only side effects are
// warnings about malformed upstream data.
package availability

import (
	"errors"
	"sort"
	"strings"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// Params carries one availability computation's inputs. Slots and Booked are
// read-only snapshots fetched from the clinic API.
type Params struct {
	DoctorID string
	Date     string // "2006-01-02"
	SlotType string
	Slots    []models.SlotDefinition
	Booked   []models.BookedAppointment
	Now      time.Time
}

// origin remembers which slot generated a candidate time.
type origin struct {
	slotID string
	step   int
}

// Compute assembles the ordered, de-duplicated interval list for the
// selection in p. The expected empty conditions (no matching slots, all
// intervals excluded) come back as result reasons, not errors; malformed slot
// data is logged and contributes nothing.
func Compute(p Params) models.AvailabilityResult {
	logger := utils.GetLogger()

	matching := filterSlots(p.Slots, p.DoctorID, p.Date, p.SlotType)
	if len(matching) == 0 {
		return models.AvailabilityResult{Reason: models.ReasonNoSlotsDefined}
	}

	// Generate per slot with its own step, concatenating as we go. On a
	// duplicate time the first generating slot keeps ownership so a selection
	// resolves a deterministic step.
	origins := make(map[models.TimeOfDay]origin)
	var candidates []models.TimeOfDay
	var allBreaks []models.BreakWindow

	for _, slot := range matching {
		start, err := models.ParseTimeOfDay(slot.StartTime)
		if err != nil {
			logger.Warn("skipping slot with unparseable start time",
				zap.String("slotID", slot.ID), zap.String("starttime", slot.StartTime), zap.Error(err))
			continue
		}
		end, err := models.ParseTimeOfDay(slot.EndTime)
		if err != nil {
			logger.Warn("skipping slot with unparseable end time",
				zap.String("slotID", slot.ID), zap.String("endtime", slot.EndTime), zap.Error(err))
			continue
		}

		times, err := GenerateIntervals(start, end, slot.StepMinutes())
		if err != nil {
			if errors.Is(err, ErrInvalidRange) {
				logger.Warn("skipping slot with invalid range",
					zap.String("slotID", slot.ID),
					zap.String("starttime", slot.StartTime), zap.String("endtime", slot.EndTime))
				continue
			}
			logger.Warn("skipping slot", zap.String("slotID", slot.ID), zap.Error(err))
			continue
		}

		for _, t := range times {
			if _, seen := origins[t]; !seen {
				origins[t] = origin{slotID: slot.ID, step: slot.StepMinutes()}
				candidates = append(candidates, t)
			}
		}
		allBreaks = append(allBreaks, slot.Breaks...)
	}

	if len(candidates) == 0 {
		return models.AvailabilityResult{Reason: models.ReasonNoSlotsDefined}
	}

	// Exclusions union across all contributing slots.
	excluded := BreakExclusions(candidates, allBreaks, logger)
	excluded.Merge(BookedExclusions(p.Booked, logger))
	excluded.Merge(PastExclusions(candidates, p.Date, p.Now))

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	result := models.AvailabilityResult{
		DefaultSlotID: matching[0].ID,
		Intervals:     make([]models.CandidateInterval, 0, len(candidates)),
	}
	for _, t := range candidates {
		o := origins[t]
		result.Intervals = append(result.Intervals, models.CandidateInterval{
			Start:       t,
			Time:        t.Format(models.Style24),
			Display:     t.Format(models.Style12),
			Available:   !excluded.Has(t),
			SlotID:      o.slotID,
			StepMinutes: o.step,
		})
	}

	if result.Empty() {
		result.Reason = models.ReasonNoAvailableIntervals
	}
	return result
}

// ResolveSelection matches a chosen time (either text form) against the
// current availability and derives the end time from the originating slot's
// step. Times past midnight wrap, so a late slot's final interval still
// formats cleanly.
func ResolveSelection(result models.AvailabilityResult, timeText string) (*models.SelectedTime, error) {
	chosen, err := models.ParseTimeOfDay(timeText)
	if err != nil {
		return nil, err
	}
	for _, iv := range result.Intervals {
		if iv.Start != chosen {
			continue
		}
		if !iv.Available {
			return nil, errors.New("selected time is no longer available")
		}
		end := (chosen + models.TimeOfDay(iv.StepMinutes)) % (24 * 60)
		return &models.SelectedTime{
			SlotID:    iv.SlotID,
			StartTime: chosen.Format(models.Style24),
			EndTime:   end.Format(models.Style24),
		}, nil
	}
	return nil, errors.New("selected time is not part of the current availability")
}

// filterSlots keeps the slots matching doctor, date and consultation type.
// Slot dates may arrive as full timestamps; only the calendar date counts.
func filterSlots(slots []models.SlotDefinition, doctorID, date, slotType string) []models.SlotDefinition {
	var matching []models.SlotDefinition
	for _, slot := range slots {
		if slot.DoctorID != doctorID {
			continue
		}
		if dateOnly(slot.Date) != dateOnly(date) {
			continue
		}
		if slot.SlotType != slotType {
			continue
		}
		matching = append(matching, slot)
	}
	return matching
}

func dateOnly(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return strings.TrimSpace(date)
}
