package convmodel

// #region request-type

// RequestType names the kind of operation a request belongs to. The
// converter's Start* entry points stamp it, and the prediction path reads
// it to decide whether candidates are marked PARTIALLY_KEY_CONSUMED.
type RequestType int

const (
	Conversion RequestType = iota
	Prediction
	Suggestion
	PartialPrediction
	PartialSuggestion
	ReverseConversion
)

func (t RequestType) String() string {
	switch t {
	case Conversion:
		return "CONVERSION"
	case Prediction:
		return "PREDICTION"
	case Suggestion:
		return "SUGGESTION"
	case PartialPrediction:
		return "PARTIAL_PREDICTION"
	case PartialSuggestion:
		return "PARTIAL_SUGGESTION"
	case ReverseConversion:
		return "REVERSE_CONVERSION"
	default:
		return "UNKNOWN"
	}
}

// #endregion request-type

// #region conversion-request

// ConversionRequest is the parameter bundle threaded through one
// Start/Predict/Convert call; callers build a fresh one per call via
// NewConversionRequest. The composer-driven Start* dispatchers overwrite
// the type of the request they are handed via SetType; no other field is
// changed by the converter.
type ConversionRequest struct {
	requestType                  RequestType
	composer                     Composer
	composerKeySelection         bool
	zeroQuerySuggestion          bool
	mixedConversion              bool
	hasCandidatesSizeLimit       bool
	candidatesSizeLimit          int
	shouldCallSetKeyInPrediction bool
}

// NewConversionRequest returns a ConversionRequest of the given type with no
// composer attached and no candidate-size limit.
func NewConversionRequest(t RequestType) *ConversionRequest {
	return &ConversionRequest{requestType: t}
}

// Type returns the request's RequestType.
func (r *ConversionRequest) Type() RequestType { return r.requestType }

// SetType overwrites the request's RequestType. The Start* dispatchers call
// this to stamp the type implied by which entry point the caller used,
// independent of whatever type the request was constructed with.
func (r *ConversionRequest) SetType(t RequestType) *ConversionRequest {
	r.requestType = t
	return r
}

// HasComposer reports whether a Composer was attached via SetComposer.
func (r *ConversionRequest) HasComposer() bool { return r.composer != nil }

// Composer returns the attached composer, or nil if none was set.
func (r *ConversionRequest) Composer() Composer { return r.composer }

// SetComposer attaches the IME composition buffer driving this request.
func (r *ConversionRequest) SetComposer(c Composer) *ConversionRequest {
	r.composer = c
	return r
}

// ComposerKeySelection reports whether StartConversion should take its key
// from the composer's prediction query instead of its conversion query.
func (r *ConversionRequest) ComposerKeySelection() bool { return r.composerKeySelection }

// SetComposerKeySelection sets the composer-key-selection flag.
func (r *ConversionRequest) SetComposerKeySelection(v bool) *ConversionRequest {
	r.composerKeySelection = v
	return r
}

// ZeroQuerySuggestion reports whether an empty reading should still produce
// suggestions (e.g. emoji/date suggestions shown on an empty composition).
func (r *ConversionRequest) ZeroQuerySuggestion() bool { return r.zeroQuerySuggestion }

// SetZeroQuerySuggestion sets the zero-query-suggestion flag.
func (r *ConversionRequest) SetZeroQuerySuggestion(v bool) *ConversionRequest {
	r.zeroQuerySuggestion = v
	return r
}

// MixedConversion reports whether conversion and prediction candidates may
// be interleaved in one segment (used on software-keyboard platforms).
func (r *ConversionRequest) MixedConversion() bool { return r.mixedConversion }

// SetMixedConversion sets the mixed-conversion flag.
func (r *ConversionRequest) SetMixedConversion(v bool) *ConversionRequest {
	r.mixedConversion = v
	return r
}

// HasCandidatesSizeLimit reports whether CandidatesSizeLimit should be
// honored by the converter's trim step.
func (r *ConversionRequest) HasCandidatesSizeLimit() bool { return r.hasCandidatesSizeLimit }

// CandidatesSizeLimit returns the configured candidate-window cap. Only
// meaningful when HasCandidatesSizeLimit is true.
func (r *ConversionRequest) CandidatesSizeLimit() int { return r.candidatesSizeLimit }

// SetCandidatesSizeLimit sets the candidate-window cap and marks it active.
func (r *ConversionRequest) SetCandidatesSizeLimit(n int) *ConversionRequest {
	r.candidatesSizeLimit = n
	r.hasCandidatesSizeLimit = true
	return r
}

// ShouldCallSetKeyInPrediction reports whether Predict must re-key segments
// before filling candidates. An independent, settable field defaulting to
// false: callers that already own their key (e.g. a prediction re-run over
// an already-keyed segment) leave it unset so SetKey's ClearConversionSegments
// does not wipe existing candidates.
func (r *ConversionRequest) ShouldCallSetKeyInPrediction() bool {
	return r.shouldCallSetKeyInPrediction
}

// SetShouldCallSetKeyInPrediction sets the should-call-set-key-in-prediction
// flag.
func (r *ConversionRequest) SetShouldCallSetKeyInPrediction(v bool) *ConversionRequest {
	r.shouldCallSetKeyInPrediction = v
	return r
}

// #endregion conversion-request
