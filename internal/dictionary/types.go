// Package dictionary fetches word definitions from the remote dictionary API.
package dictionary

// Word is a related word: synonym, antonym or classifier.
type Word struct {
	Simplified  string `json:"simplified"`
	Traditional string `json:"traditional"`
	Pinyin      string `json:"pinyin"`
	Frequency   string `json:"frequency"`
	Usage       string `json:"usage,omitempty"`
}

// Example is a sentence or expression using the word.
type Example struct {
	Simplified  string `json:"simplified"`
	Traditional string `json:"traditional"`
	Pinyin      string `json:"pinyin"`
	Translation string `json:"translation"`
}

// Meaning is one sense of a word.
type Meaning struct {
	Class             string    `json:"class"` // Part of speech
	Definition        string    `json:"definition"`
	Pronunciation     string    `json:"pronunciation"`
	Usage             string    `json:"usage,omitempty"`
	Frequency         string    `json:"frequency"`
	Examples          []Example `json:"examples,omitempty"`
	Synonyms          []Word    `json:"synonyms,omitempty"`
	Antonyms          []Word    `json:"antonyms,omitempty"`
	Classifiers       []Word    `json:"classifiers,omitempty"`
	CommonExpressions []Example `json:"common_expressions,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

// Entry is the dictionary response for one word.
type Entry struct {
	Simplified    string    `json:"simplified"`
	Traditional   string    `json:"traditional"`
	Meanings      []Meaning `json:"meanings"`
	ExecutionTime float64   `json:"executionTime,omitempty"`
}

// HasTraditional reports whether the traditional form differs from the simplified one.
func (e *Entry) HasTraditional() bool {
	return e.Traditional != "" && e.Traditional != e.Simplified
}
