package redact

import "sort"

// EditPlan is the finalized list of intervals to replace, ordered by
// descending start time. Because every replacement has exactly the
// duration of the region it replaces, applying the plan front to back
// (end of the audio toward the beginning) keeps every later interval's
// absolute offsets valid without re-measurement.
type EditPlan []Interval

// Consolidate turns raw match intervals into an edit plan: sorted by
// start time descending (stable, so overlapping matches keep their
// original relative order), clamped to the buffer length, with
// degenerate intervals dropped. Overlapping intervals are intentionally
// not merged; duration-preserving replacement makes a double-replaced
// region hold the second, equally redacted clip.
func Consolidate(hits []Hit, bufferLengthMs int) EditPlan {
	plan := make(EditPlan, 0, len(hits))
	for _, h := range hits {
		plan = append(plan, h.Interval)
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].StartMs > plan[j].StartMs
	})

	out := plan[:0]
	for _, iv := range plan {
		if iv.EndMs > bufferLengthMs {
			iv.EndMs = bufferLengthMs
		}
		if iv.EndMs <= iv.StartMs {
			continue
		}
		out = append(out, iv)
	}
	return out
}
