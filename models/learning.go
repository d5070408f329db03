package models

// SentenceRequest is the body of the sentence explanation and correction calls.
type SentenceRequest struct {
	Sentence       string `json:"sentence" validate:"required,max=100"`
	NativeLanguage string `json:"nativeLanguage,omitempty"`
}

// WordRequest is the body of the word definition, synonyms and history calls.
type WordRequest struct {
	Word           string `json:"word" validate:"required,nodigits,max=30,nospaces"`
	NativeLanguage string `json:"nativeLanguage,omitempty"`
}

// WordLookup aggregates the three word endpoints, already cleaned for display.
type WordLookup struct {
	Word       string
	Definition string
	Synonyms   string
	History    string
}

// WordSection names one part of a [WordLookup].
type WordSection string

const (
	WordSectionDefinition WordSection = "definition"
	WordSectionSynonyms   WordSection = "synonyms"
	WordSectionHistory    WordSection = "history"
)

// WordSections lists the sections in display order.
var WordSections = []WordSection{WordSectionDefinition, WordSectionSynonyms, WordSectionHistory}

// Section returns the content of the requested section.
func (w WordLookup) Section(s WordSection) string {
	switch s {
	case WordSectionDefinition:
		return w.Definition
	case WordSectionSynonyms:
		return w.Synonyms
	case WordSectionHistory:
		return w.History
	default:
		return ""
	}
}

// IsEmpty reports whether no section has content.
func (w WordLookup) IsEmpty() bool {
	return w.Definition == "" && w.Synonyms == "" && w.History == ""
}
