package availability

import (
	"fmt"

	"medibook/models"
)

// GenerateIntervals walks the half-open window [start, end) in step-minute
// increments and returns every candidate start time. A start time is included
// whenever it is strictly before end; the final interval's duration is allowed
// to overrun the window.
func GenerateIntervals(start, end models.TimeOfDay, step int) ([]models.TimeOfDay, error) {
	if step < 1 {
		return nil, fmt.Errorf("%w: step %d", ErrInvalidRange, step)
	}
	if start >= end {
		return nil, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidRange, start, end)
	}

	var out []models.TimeOfDay
	for t := start; t < end; t += models.TimeOfDay(step) {
		out = append(out, t)
	}
	return out, nil
}
