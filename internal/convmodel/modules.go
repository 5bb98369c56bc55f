package convmodel

// #region modules

// Modules bundles the shared, read-only collaborators the converter and its
// rewriters consult: none of these are owned by the converter, all are
// wired once at construction and borrowed for the lifetime of the process.
// A Converter must not outlive the Modules that produced it.
type Modules struct {
	ImmutableConverter    ImmutableConverter
	POSMatcher            POSMatcher
	SuppressionDictionary SuppressionDictionary
}

// NewModules returns a Modules bundle. Any field may be nil; callers that
// never exercise a given collaborator can omit it.
func NewModules(immutableConverter ImmutableConverter, posMatcher POSMatcher, suppression SuppressionDictionary) *Modules {
	return &Modules{
		ImmutableConverter:    immutableConverter,
		POSMatcher:            posMatcher,
		SuppressionDictionary: suppression,
	}
}

// #endregion modules
