package candset

// #region constants

// DefaultMaxHistorySegmentsSize is the value SetKey resets MaxHistorySegmentsSize to.
const DefaultMaxHistorySegmentsSize = 4

// #endregion constants

// #region segments

// Segments is an ordered sequence of segments partitioned into a history
// prefix (length historySize, always typed History) and a conversion
// suffix. It is exclusively owned by the caller of the orchestrator; the
// orchestrator only mutates it through these primitives.
type Segments struct {
	segments               []Segment
	historySize            int
	maxHistorySegmentsSize int
	Resized                bool
	revertEntries          []RevertEntry
}

// New returns an empty Segments with the default history budget.
func New() *Segments {
	return &Segments{maxHistorySegmentsSize: DefaultMaxHistorySegmentsSize}
}

// #endregion segments

// #region sizes

// SegmentsSize returns the total number of segments, history plus conversion.
func (s *Segments) SegmentsSize() int { return len(s.segments) }

// HistorySegmentsSize returns the number of leading history segments.
func (s *Segments) HistorySegmentsSize() int { return s.historySize }

// ConversionSegmentsSize returns the number of trailing conversion segments.
func (s *Segments) ConversionSegmentsSize() int { return len(s.segments) - s.historySize }

// MaxHistorySegmentsSize returns the configured history budget.
func (s *Segments) MaxHistorySegmentsSize() int { return s.maxHistorySegmentsSize }

// SetMaxHistorySegmentsSize sets the history budget honored by FinishConversion.
func (s *Segments) SetMaxHistorySegmentsSize(n int) { s.maxHistorySegmentsSize = n }

// #endregion sizes

// #region accessors

// Segment returns the segment at absolute index i (history then conversion).
func (s *Segments) Segment(i int) *Segment {
	if i < 0 || i >= len(s.segments) {
		return nil
	}
	return &s.segments[i]
}

// HistorySegment returns the history segment at relative index i.
func (s *Segments) HistorySegment(i int) *Segment {
	if i < 0 || i >= s.historySize {
		return nil
	}
	return &s.segments[i]
}

// ConversionSegment returns the conversion segment at relative index i.
func (s *Segments) ConversionSegment(i int) *Segment {
	abs := s.historySize + i
	if i < 0 || abs >= len(s.segments) {
		return nil
	}
	return &s.segments[abs]
}

// ConversionSegmentIndex translates a caller-visible conversion-relative
// index into an absolute index, returning (0, false) on overflow — the
// sentinel error of §4.D.7.
func (s *Segments) ConversionSegmentIndex(relative int) (int, bool) {
	abs := s.historySize + relative
	if relative < 0 || abs >= len(s.segments) {
		return 0, false
	}
	return abs, true
}

// All returns the full backing slice, history then conversion, for
// read-only iteration (e.g. CommitUsageStats' subrange walk).
func (s *Segments) All() []Segment { return s.segments }

// #endregion accessors

// #region mutation

// AddSegment appends a new conversion segment and returns a pointer to it.
func (s *Segments) AddSegment() *Segment {
	s.segments = append(s.segments, Segment{})
	return &s.segments[len(s.segments)-1]
}

// InsertSegment inserts a new empty segment at absolute index i and returns it.
func (s *Segments) InsertSegment(i int) *Segment {
	if i < 0 {
		i = 0
	}
	if i > len(s.segments) {
		i = len(s.segments)
	}
	s.segments = append(s.segments, Segment{})
	copy(s.segments[i+1:], s.segments[i:])
	s.segments[i] = Segment{}
	if i < s.historySize {
		s.historySize++
	}
	return &s.segments[i]
}

// EraseSegment removes the segment at absolute index i.
func (s *Segments) EraseSegment(i int) {
	s.EraseSegments(i, 1)
}

// EraseSegments removes count segments starting at absolute index start.
func (s *Segments) EraseSegments(start, count int) {
	if start < 0 || count <= 0 || start >= len(s.segments) {
		return
	}
	end := start + count
	if end > len(s.segments) {
		end = len(s.segments)
	}
	removed := end - start
	s.segments = append(s.segments[:start], s.segments[end:]...)
	if start < s.historySize {
		dec := removed
		if s.historySize-start < dec {
			dec = s.historySize - start
		}
		s.historySize -= dec
	}
}

// PopFrontSegment removes the very first segment (history or conversion).
func (s *Segments) PopFrontSegment() {
	s.EraseSegment(0)
}

// ClearConversionSegments drops every conversion segment, keeping history intact.
func (s *Segments) ClearConversionSegments() {
	s.segments = s.segments[:s.historySize]
}

// Clear drops every segment, including history, and the revert log.
func (s *Segments) Clear() {
	s.segments = nil
	s.historySize = 0
	s.Resized = false
	s.revertEntries = nil
}

// PromoteAllToHistory re-types every remaining segment as History and marks
// all of them as the new history prefix. Used by FinishConversion after the
// front segments beyond the history budget have been popped.
func (s *Segments) PromoteAllToHistory() {
	for i := range s.segments {
		s.segments[i].Type = History
	}
	s.historySize = len(s.segments)
}

// #endregion mutation

// #region revert-log

// RevertEntries returns the ordered list of pending revert tokens.
func (s *Segments) RevertEntries() []RevertEntry { return s.revertEntries }

// AddRevertEntry appends a revert token.
func (s *Segments) AddRevertEntry(e RevertEntry) {
	s.revertEntries = append(s.revertEntries, e)
}

// ClearRevertEntries empties the revert log.
func (s *Segments) ClearRevertEntries() {
	s.revertEntries = nil
}

// #endregion revert-log
