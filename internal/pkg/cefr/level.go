// Package cefr maps accumulated per-module practice statistics to CEFR
// levels (A1 lowest through C2 highest).
package cefr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is a CEFR level. The zero value is A1; levels compare with < and >.
type Level int

const (
	A1 Level = iota
	A2
	B1
	B2
	C1
	C2
)

// Levels lists every level from lowest to highest.
var Levels = []Level{A1, A2, B1, B2, C1, C2}

var levelNames = [...]string{"A1", "A2", "B1", "B2", "C1", "C2"}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Valid reports whether l is one of A1..C2.
func (l Level) Valid() bool {
	return l >= A1 && l <= C2
}

// Next returns the level above l. ok is false at C2.
func (l Level) Next() (next Level, ok bool) {
	if l >= C2 {
		return C2, false
	}
	return l + 1, true
}

// ParseLevel accepts "a1".."C2" in any case.
func ParseLevel(s string) (Level, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == up {
			return Level(i), nil
		}
	}
	return A1, fmt.Errorf("unknown CEFR level %q", s)
}

func (l Level) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("marshal invalid CEFR level %d", int(l))
	}
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("CEFR level must be a string: %w", err)
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
