package cefr

import "fmt"

// Module is a learning activity category tracked independently.
type Module string

const (
	ModuleVocabulary    Module = "vocabulary"
	ModulePronunciation Module = "pronunciation"
	ModuleReading       Module = "reading"
	ModuleListening     Module = "listening"
	ModuleWriting       Module = "writing"
)

// AllModules is the fixed iteration order used for requirements and reports.
var AllModules = []Module{
	ModuleVocabulary,
	ModulePronunciation,
	ModuleReading,
	ModuleListening,
	ModuleWriting,
}

// TieBreakOrder ranks modules when two share the same score; earlier wins.
var TieBreakOrder = []Module{
	ModuleReading,
	ModuleListening,
	ModulePronunciation,
	ModuleWriting,
	ModuleVocabulary,
}

// TieBreakRank returns the position of m in TieBreakOrder.
func TieBreakRank(m Module) int {
	for i, o := range TieBreakOrder {
		if o == m {
			return i
		}
	}
	return len(TieBreakOrder)
}

// ParseModule validates a module name. "speaking" is accepted for pronunciation.
func ParseModule(s string) (Module, error) {
	if s == "speaking" {
		return ModulePronunciation, nil
	}
	for _, m := range AllModules {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown module %q", s)
}

// UnmarshalText accepts the same names as ParseModule. An empty name decodes
// to the zero Module.
func (m *Module) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = ""
		return nil
	}
	parsed, err := ParseModule(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
