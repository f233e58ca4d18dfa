package availability

import (
	"time"

	"medibook/models"

	"go.uber.org/zap"
)

// ExclusionSet collects candidate start times ruled out by a filter.
type ExclusionSet map[models.TimeOfDay]struct{}

func (s ExclusionSet) add(t models.TimeOfDay) {
	s[t] = struct{}{}
}

// Has reports whether t is excluded.
func (s ExclusionSet) Has(t models.TimeOfDay) bool {
	_, ok := s[t]
	return ok
}

// Merge folds other into s.
func (s ExclusionSet) Merge(other ExclusionSet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// BreakExclusions marks every candidate start time falling inside any of the
// break windows (breakstart <= t < breakend, union across windows). Break
// windows that fail to parse or are inverted are logged and skipped.
func BreakExclusions(candidates []models.TimeOfDay, breaks []models.BreakWindow, logger *zap.Logger) ExclusionSet {
	excluded := make(ExclusionSet)
	for _, b := range breaks {
		bs, err := models.ParseTimeOfDay(b.BreakStart)
		if err != nil {
			logger.Warn("skipping unparseable break window", zap.String("breakstart", b.BreakStart), zap.Error(err))
			continue
		}
		be, err := models.ParseTimeOfDay(b.BreakEnd)
		if err != nil {
			logger.Warn("skipping unparseable break window", zap.String("breakend", b.BreakEnd), zap.Error(err))
			continue
		}
		if bs >= be {
			logger.Warn("skipping inverted break window",
				zap.String("breakstart", b.BreakStart), zap.String("breakend", b.BreakEnd))
			continue
		}
		for _, t := range candidates {
			if t >= bs && t < be {
				excluded.add(t)
			}
		}
	}
	return excluded
}

// BookedExclusions marks candidate start times already taken by an
// appointment. Both sides are normalized to minutes-since-midnight before
// comparing, so records stored in 12-hour display form still match.
func BookedExclusions(booked []models.BookedAppointment, logger *zap.Logger) ExclusionSet {
	excluded := make(ExclusionSet)
	for _, appt := range booked {
		t, err := models.ParseTimeOfDay(appt.StartTime)
		if err != nil {
			logger.Warn("skipping appointment with unparseable start time",
				zap.String("starttime", appt.StartTime), zap.Error(err))
			continue
		}
		excluded.add(t)
	}
	return excluded
}

// PastExclusions marks candidate start times at or before the current minute,
// but only when the requested date is today. A slot starting in the current
// minute offers no buffer, so the cutoff is strict.
func PastExclusions(candidates []models.TimeOfDay, date string, now time.Time) ExclusionSet {
	excluded := make(ExclusionSet)
	if dateOnly(date) != now.Format("2006-01-02") {
		return excluded
	}
	cutoff := models.TimeOfDay(now.Hour()*60 + now.Minute())
	for _, t := range candidates {
		if t <= cutoff {
			excluded.add(t)
		}
	}
	return excluded
}
