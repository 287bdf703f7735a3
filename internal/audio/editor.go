package audio

import (
	"fmt"
	"math"

	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/redact"
)

// ApplyPlan splices a replacement clip over every interval in the plan,
// mutating the buffer in place. The plan is already ordered by
// descending start time and clamped to the buffer, and every
// replacement has exactly the duration of the region it covers, so
// earlier intervals' offsets stay valid throughout. Returns the number
// of replacements performed.
func ApplyPlan(buf *Buffer, plan redact.EditPlan, mode Mode) (int, error) {
	for _, iv := range plan {
		if iv.DurationMs() <= 0 {
			return 0, fmt.Errorf("interval [%d,%d): %w", iv.StartMs, iv.EndMs, domain.ErrBadInterval)
		}

		loFrame := buf.frameForMs(iv.StartMs)
		hiFrame := buf.frameForMs(iv.EndMs)
		if hiFrame <= loFrame {
			return 0, fmt.Errorf("interval [%d,%d): empty sample range: %w", iv.StartMs, iv.EndMs, domain.ErrBadInterval)
		}

		ref := math.Inf(-1)
		if mode == ModeBleep {
			ref = buf.RegionDBFS(iv.StartMs, iv.EndMs)
		}

		clip, err := synthFrames(hiFrame-loFrame, mode, ref, buf.Format, buf.SourceBitDepth)
		if err != nil {
			return 0, err
		}
		buf.Splice(iv.StartMs, clip)
	}
	return len(plan), nil
}
