// Package candset holds the mutable segment/candidate data model that the
// conversion orchestrator reads and rewrites: an ordered sequence of
// segments, each carrying ranked candidate lists, partitioned into a history
// prefix and a conversion suffix.
package candset

// #region segment-type

// SegmentType is the lifecycle state of a single Segment.
type SegmentType int

const (
	// Free segments may be re-segmented freely by the converter.
	Free SegmentType = iota
	// FixedBoundary segments have a fixed key length; candidates may still change.
	FixedBoundary
	// FixedValue segments have a fixed top candidate, committed non-destructively.
	FixedValue
	// Submitted segments are committed and await promotion to History at finish time.
	Submitted
	// History segments are context for future conversions and are never re-segmented.
	History
)

func (t SegmentType) String() string {
	switch t {
	case Free:
		return "FREE"
	case FixedBoundary:
		return "FIXED_BOUNDARY"
	case FixedValue:
		return "FIXED_VALUE"
	case Submitted:
		return "SUBMITTED"
	case History:
		return "HISTORY"
	default:
		return "UNKNOWN"
	}
}

// #endregion segment-type

// #region candidate-attr

// CandidateAttr is a bitset over per-candidate flags.
type CandidateAttr uint32

const (
	PartiallyKeyConsumed CandidateAttr = 1 << iota
	Reranked
	NoLearning
)

func (a CandidateAttr) Has(flag CandidateAttr) bool {
	return a&flag != 0
}

// #endregion candidate-attr

// #region t13n

// NumT13nTypes bounds the negative meta-candidate index range: valid
// candidate indices for commit operations are [-NumT13nTypes, candidatesSize).
const NumT13nTypes = 6

// #endregion t13n

// #region candidate

// Candidate is a single surface-form alternative for a segment.
type Candidate struct {
	Key            string
	Value          string
	ContentKey     string
	ContentValue   string
	Lid            uint16
	Rid            uint16
	Cost           int
	Wcost          int
	StructureCost  int
	Attributes     CandidateAttr
	ConsumedKeySize uint16
}

// #endregion candidate

// #region segment

// Segment is a contiguous run of the input reading mapped to ranked candidates.
type Segment struct {
	Key            string
	Type           SegmentType
	Candidates     []Candidate
	MetaCandidates []Candidate
}

// CandidatesSize returns the number of regular candidates.
func (s *Segment) CandidatesSize() int { return len(s.Candidates) }

// MetaCandidatesSize returns the number of meta candidates.
func (s *Segment) MetaCandidatesSize() int { return len(s.MetaCandidates) }

// Candidate returns the candidate at idx, which may be negative to address
// a meta candidate: -1 is MetaCandidates[0], -2 is MetaCandidates[1], etc.
func (s *Segment) Candidate(idx int) *Candidate {
	if idx >= 0 {
		if idx >= len(s.Candidates) {
			return nil
		}
		return &s.Candidates[idx]
	}
	metaIdx := -idx - 1
	if metaIdx >= len(s.MetaCandidates) {
		return nil
	}
	return &s.MetaCandidates[metaIdx]
}

// PushBackCandidate appends and returns a pointer to a new zero-value candidate.
func (s *Segment) PushBackCandidate() *Candidate {
	s.Candidates = append(s.Candidates, Candidate{})
	return &s.Candidates[len(s.Candidates)-1]
}

// EraseCandidate removes the candidate at regular index i.
func (s *Segment) EraseCandidate(i int) {
	if i < 0 || i >= len(s.Candidates) {
		return
	}
	s.Candidates = append(s.Candidates[:i], s.Candidates[i+1:]...)
}

// EraseCandidates removes count candidates starting at regular index start.
func (s *Segment) EraseCandidates(start, count int) {
	if start < 0 || count <= 0 || start >= len(s.Candidates) {
		return
	}
	end := start + count
	if end > len(s.Candidates) {
		end = len(s.Candidates)
	}
	s.Candidates = append(s.Candidates[:start], s.Candidates[end:]...)
}

// MoveCandidateToFront moves the candidate at idx (possibly negative, a meta
// candidate) to regular index 0, materializing meta candidates as needed.
func (s *Segment) MoveCandidateToFront(idx int) {
	if idx == 0 {
		return
	}
	cand := s.Candidate(idx)
	if cand == nil {
		return
	}
	moved := *cand
	if idx > 0 {
		s.Candidates = append(s.Candidates[:idx], s.Candidates[idx+1:]...)
	}
	s.Candidates = append([]Candidate{moved}, s.Candidates...)
}

// Clear resets the segment to its zero value, keeping no key or candidates.
func (s *Segment) Clear() {
	*s = Segment{}
}

// #endregion segment

// #region revert-entry

// RevertEntry is an opaque token recorded so a later RevertConversion call
// can undo predictor-side learning for one commit.
type RevertEntry struct {
	Token string
}

// #endregion revert-entry
