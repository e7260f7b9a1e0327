// Package pronunciation turns a single spoken attempt into a multi-part score
// with feedback and an itemized, position-ordered list of word mistakes.
package pronunciation

// Attempt is one utterance compared against a target phrase.
type Attempt struct {
	TargetText string  `json:"targetText"`
	SpokenText string  `json:"spokenText"`
	Confidence float64 `json:"confidence"` // recognizer confidence, 0.0–1.0
}

// MistakeKind classifies a word-level mistake.
type MistakeKind string

const (
	MistakeSubstitution MistakeKind = "substitution"
	MistakeMissing      MistakeKind = "missing"
	MistakeExtra        MistakeKind = "extra"
)

// Mistake is one word-level difference between target and spoken text.
type Mistake struct {
	Word       string      `json:"word"`
	Expected   string      `json:"expected"`
	Actual     string      `json:"actual"`
	Suggestion string      `json:"suggestion"`
	Kind       MistakeKind `json:"kind"`
}

// Score is the evaluation of a single attempt. All numeric parts are 0–100.
type Score struct {
	OverallScore       int       `json:"overallScore"`
	AccuracyScore      int       `json:"accuracyScore"`
	FluencyScore       int       `json:"fluencyScore"`
	PronunciationScore int       `json:"pronunciationScore"`
	Feedback           string    `json:"feedback"`
	Mistakes           []Mistake `json:"mistakes"`
}
