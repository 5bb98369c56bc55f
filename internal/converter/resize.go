package converter

import (
	"log"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
	"github.com/nmuraoka/convergo/internal/script"
)

// #region reconvert

// reconvertAfterResize re-runs the immutable converter over the segments'
// current (already-resized) keys and runs common post-processing. Failure
// of the immutable converter is non-fatal, matching §4.F.1/§4.F.2.
func (c *Converter) reconvertAfterResize(segs *candset.Segments) bool {
	req := convmodel.NewConversionRequest(convmodel.Conversion)
	if ic := c.immutableConverter(); ic != nil {
		if !ic.ConvertForRequest(req, segs) {
			log.Printf("[CONV] immutable converter returned false after resize (non-fatal)")
		}
	}
	c.postProcess(segs, req)
	return validConversion(segs, req)
}

// #endregion

// #region single-offset-resize

// ResizeSegment implements §4.F.1: grows or shrinks the conversion-relative
// segment at segIdx by delta characters, reassigning key material to or
// from its neighbor. delta == 0, an invalid segIdx, growing the last
// conversion segment, or a resulting non-positive segment length are all
// precondition failures that return false without mutating segs.
func (c *Converter) ResizeSegment(segs *candset.Segments, segIdx, delta int) bool {
	if delta == 0 {
		return false
	}
	abs, ok := segs.ConversionSegmentIndex(segIdx)
	if !ok {
		return false
	}
	n := segs.ConversionSegmentsSize()
	if delta > 0 && segIdx == n-1 {
		return false
	}

	seg := segs.Segment(abs)
	curKey := seg.Key
	curLen := script.CharLen(curKey)

	if delta < 0 {
		if curLen+delta <= 0 {
			return false
		}
		return c.shrinkSegment(segs, abs, curKey, curLen, delta)
	}
	return c.growSegment(segs, abs, curKey, delta)
}

// growSegment repeatedly absorbs following segments' keys until delta
// characters have been consumed. If the last absorbed segment overshoots,
// only its leading portion is kept and the remainder is pushed back out as
// a new FREE segment.
func (c *Converter) growSegment(segs *candset.Segments, abs int, curKey string, delta int) bool {
	newKey := curKey
	remaining := delta
	var lastPopped string

	for remaining > 0 {
		next := segs.Segment(abs + 1)
		if next == nil {
			return false
		}
		sKey := next.Key
		segs.EraseSegment(abs + 1)
		newKey += sKey
		remaining -= script.CharLen(sKey)
		lastPopped = sKey
	}

	if remaining < 0 {
		trimCount := -remaining
		totalLen := script.CharLen(newKey)
		keep := script.CharLen(lastPopped) - trimCount
		newKey = script.SubstringByChar(newKey, 0, totalLen-trimCount)
		tail := script.SubstringByChar(lastPopped, keep, trimCount)

		seg := segs.Segment(abs)
		seg.Clear()
		seg.Type = candset.FixedBoundary
		seg.Key = newKey

		newSeg := segs.InsertSegment(abs + 1)
		newSeg.Key = tail
		newSeg.Type = candset.Free
	} else {
		seg := segs.Segment(abs)
		seg.Clear()
		seg.Type = candset.FixedBoundary
		seg.Key = newKey
	}

	segs.Resized = true
	return c.reconvertAfterResize(segs)
}

// shrinkSegment truncates the segment at abs to its first curLen+delta
// characters and hands the removed tail to its neighbor, prepending it to
// an existing FREE-ified neighbor or creating one if none exists.
func (c *Converter) shrinkSegment(segs *candset.Segments, abs int, curKey string, curLen, delta int) bool {
	trimCount := -delta
	keepLen := curLen + delta
	newSegKey := script.SubstringByChar(curKey, 0, keepLen)
	removedTail := script.SubstringByChar(curKey, keepLen, trimCount)

	seg := segs.Segment(abs)
	seg.Clear()
	seg.Type = candset.FixedBoundary
	seg.Key = newSegKey

	if next := segs.Segment(abs + 1); next != nil {
		next.Key = removedTail + next.Key
		next.Type = candset.Free
	} else {
		newSeg := segs.InsertSegment(abs + 1)
		newSeg.Key = removedTail
		newSeg.Type = candset.Free
	}

	segs.Resized = true
	return c.reconvertAfterResize(segs)
}

// #endregion

// #region multi-size-resize

// maxResizeSizesLen bounds the sizes array accepted by ResizeSegmentSizes.
const maxResizeSizesLen = 256

// ResizeSegmentSizes implements §4.F.2: concatenates the keys of count
// conversion segments starting at start, then re-splits that string
// according to sizes. A zero entry in sizes is silently skipped — this
// matches the reference implementation and is preserved as-is. Any
// characters left over after sizes is exhausted become one final segment.
func (c *Converter) ResizeSegmentSizes(segs *candset.Segments, start, count int, sizes []int) bool {
	if len(sizes) > maxResizeSizesLen || count < 1 {
		return false
	}
	absStart, ok := segs.ConversionSegmentIndex(start)
	if !ok {
		return false
	}
	if absStart+count > segs.SegmentsSize() {
		return false
	}

	var k string
	for i := 0; i < count; i++ {
		k += segs.Segment(absStart + i).Key
	}
	if k == "" {
		return false
	}
	kLen := script.CharLen(k)

	var newKeys []string
	offset := 0
	for _, size := range sizes {
		if offset >= kLen {
			break
		}
		if size == 0 {
			continue
		}
		chunk := script.SubstringByChar(k, offset, size)
		newKeys = append(newKeys, chunk)
		offset += script.CharLen(chunk)
	}
	if offset < kLen {
		newKeys = append(newKeys, script.SubstringByChar(k, offset, kLen-offset))
	}

	segs.EraseSegments(absStart, count)
	for i, key := range newKeys {
		seg := segs.InsertSegment(absStart + i)
		seg.Key = key
		seg.Type = candset.FixedBoundary
	}

	segs.Resized = true
	return c.reconvertAfterResize(segs)
}

// #endregion
