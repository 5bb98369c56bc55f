// Package convfake provides minimal, deterministic stand-ins for the
// converter's collaborator interfaces (convmodel.ImmutableConverter,
// Predictor, Rewriter, SuppressionDictionary, POSMatcher, Composer), for
// use in tests, the replay harness, and cmd/convertdemo. None of these
// implement a real Viterbi search or learning model — they are lookup
// tables and passthroughs, just enough to drive the state machine.
package convfake

import (
	"strings"

	"github.com/nmuraoka/convergo/internal/candset"
	"github.com/nmuraoka/convergo/internal/convmodel"
)

// #region dictionary-entry

// Entry is one reading→surface-form mapping a Dictionary-backed fake
// serves as a candidate.
type Entry struct {
	Value         string
	Lid, Rid      uint16
	Cost          int
}

// #endregion

// #region immutable-converter

// ImmutableConverter is a lookup-table-backed convmodel.ImmutableConverter.
// A key with no entries produces zero candidates, which the real converter
// treats as a recoverable soft failure.
type ImmutableConverter struct {
	Entries map[string][]Entry
}

// NewImmutableConverter returns a fake converter backed by entries.
func NewImmutableConverter(entries map[string][]Entry) *ImmutableConverter {
	return &ImmutableConverter{Entries: entries}
}

// ConvertForRequest appends to each conversion segment of segs every Entry
// registered for that segment's key, in table order. It never re-segments:
// each segment's key is looked up whole.
func (f *ImmutableConverter) ConvertForRequest(req *convmodel.ConversionRequest, segs *candset.Segments) bool {
	n := segs.ConversionSegmentsSize()
	any := false
	for i := 0; i < n; i++ {
		seg := segs.ConversionSegment(i)
		entries, ok := f.Entries[seg.Key]
		if !ok {
			continue
		}
		limit := len(entries)
		if req != nil && req.HasCandidatesSizeLimit() && req.CandidatesSizeLimit() < limit {
			limit = req.CandidatesSizeLimit()
		}
		for _, e := range entries[:limit] {
			cand := seg.PushBackCandidate()
			cand.Key = seg.Key
			cand.Value = e.Value
			cand.ContentKey = seg.Key
			cand.ContentValue = e.Value
			cand.Lid, cand.Rid = e.Lid, e.Rid
			cand.Cost = e.Cost
		}
		any = any || len(entries) > 0
	}
	return any
}

// #endregion

// #region predictor

// Predictor is a prefix-match convmodel.Predictor: it appends one candidate
// per Entry of every registered reading that has key as a prefix.
type Predictor struct {
	Entries  map[string][]Entry
	reverted []candset.RevertEntry
}

// NewPredictor returns a fake predictor backed by entries.
func NewPredictor(entries map[string][]Entry) *Predictor {
	return &Predictor{Entries: entries}
}

// PredictForRequest appends candidates for every registered reading with
// key as a prefix to the sole conversion segment.
func (f *Predictor) PredictForRequest(req *convmodel.ConversionRequest, segs *candset.Segments) bool {
	seg := segs.ConversionSegment(0)
	if seg == nil {
		return false
	}
	any := false
	for reading, entries := range f.Entries {
		if !strings.HasPrefix(reading, seg.Key) {
			continue
		}
		for _, e := range entries {
			cand := seg.PushBackCandidate()
			cand.Key = reading
			cand.Value = e.Value
			cand.ContentKey = reading
			cand.ContentValue = e.Value
			cand.Lid, cand.Rid = e.Lid, e.Rid
			cand.Cost = e.Cost
			any = true
		}
	}
	return any
}

// Finish is a no-op: this fake keeps no learning state.
func (f *Predictor) Finish(req *convmodel.ConversionRequest, segs *candset.Segments) {}

// Revert records segs's current revert entries in the predictor's
// reverted list.
func (f *Predictor) Revert(segs *candset.Segments) {
	f.reverted = append(f.reverted, segs.RevertEntries()...)
}

// #endregion

// #region rewriter

// Rewriter is a no-op convmodel.Rewriter that always reports success,
// letting the converter's suppression-dictionary pass run unconditionally.
type Rewriter struct {
	FocusCalls []FocusCall
}

// FocusCall records one invocation of Focus, for test assertions.
type FocusCall struct {
	SegmentIndex, CandidateIndex int
}

// NewRewriter returns a fake rewriter that performs no rewriting.
func NewRewriter() *Rewriter { return &Rewriter{} }

func (f *Rewriter) Rewrite(req *convmodel.ConversionRequest, segs *candset.Segments) bool { return true }

func (f *Rewriter) Focus(segs *candset.Segments, segmentIndex, candidateIndex int) bool {
	f.FocusCalls = append(f.FocusCalls, FocusCall{segmentIndex, candidateIndex})
	return true
}

func (f *Rewriter) Finish(req *convmodel.ConversionRequest, segs *candset.Segments) {}

// #endregion

// #region suppression

// SuppressionDictionary forbids an explicit set of (key, value) pairs.
type SuppressionDictionary struct {
	Forbidden map[[2]string]bool
}

// NewSuppressionDictionary returns a fake suppression dictionary forbidding
// the given (key, value) pairs.
func NewSuppressionDictionary(pairs ...[2]string) *SuppressionDictionary {
	forbidden := make(map[[2]string]bool, len(pairs))
	for _, p := range pairs {
		forbidden[p] = true
	}
	return &SuppressionDictionary{Forbidden: forbidden}
}

func (f *SuppressionDictionary) IsEmpty() bool { return len(f.Forbidden) == 0 }

func (f *SuppressionDictionary) SuppressEntry(key, value string) bool {
	return f.Forbidden[[2]string{key, value}]
}

// #endregion

// #region pos-matcher

// POSMatcher returns three fixed ids configured at construction, matching
// the real matcher's "fixed-at-init" contract.
type POSMatcher struct {
	GeneralNounID, NumberID, UniqueNounID uint16
}

// NewPOSMatcher returns a fake matcher with the given fixed ids.
func NewPOSMatcher(generalNounID, numberID, uniqueNounID uint16) *POSMatcher {
	return &POSMatcher{GeneralNounID: generalNounID, NumberID: numberID, UniqueNounID: uniqueNounID}
}

func (f *POSMatcher) GetGeneralNounId() uint16 { return f.GeneralNounID }
func (f *POSMatcher) GetNumberId() uint16      { return f.NumberID }
func (f *POSMatcher) GetUniqueNounId() uint16  { return f.UniqueNounID }

// #endregion

// #region composer

// Composer is a fixed-state convmodel.Composer: query text and cursor are
// set once and read back verbatim.
type Composer struct {
	ConversionQuery, PredictionQuery string
	Cursor, Length                   int
}

// NewComposer returns a fake composer with cursor at the end of query.
func NewComposer(query string) *Composer {
	length := len([]rune(query))
	return &Composer{ConversionQuery: query, PredictionQuery: query, Cursor: length, Length: length}
}

func (f *Composer) GetQueryForConversion() string { return f.ConversionQuery }
func (f *Composer) GetQueryForPrediction() string { return f.PredictionQuery }
func (f *Composer) GetCursor() int                { return f.Cursor }
func (f *Composer) GetLength() int                { return f.Length }

// #endregion
