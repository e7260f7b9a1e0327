package cefr

// Threshold is the inclusive lower bound of a level on some metric.
type Threshold struct {
	Level Level
	Min   float64
}

// Ladder is a threshold table ordered from C2 down to A1.
type Ladder []Threshold

// LevelFor returns the highest level whose threshold metric satisfies.
// Anything below every threshold is A1.
func (l Ladder) LevelFor(metric float64) Level {
	for _, t := range l {
		if metric >= t.Min {
			return t.Level
		}
	}
	return A1
}

// Min returns the threshold of level, and false when the ladder has no entry.
func (l Ladder) Min(level Level) (float64, bool) {
	for _, t := range l {
		if t.Level == level {
			return t.Min, true
		}
	}
	return 0, false
}

var (
	// VocabularyLadder is measured in mastered words.
	VocabularyLadder = Ladder{
		{C2, 8000}, {C1, 6000}, {B2, 4000}, {B1, 2500}, {A2, 1500}, {A1, 0},
	}

	// AccuracyLadder is used by pronunciation, listening and writing.
	AccuracyLadder = Ladder{
		{C2, 95}, {C1, 90}, {B2, 85}, {B1, 75}, {A2, 65}, {A1, 0},
	}

	// ReadingLadder applies to the blended comprehension/efficiency value.
	ReadingLadder = Ladder{
		{C2, 90}, {C1, 80}, {B2, 70}, {B1, 60}, {A2, 50}, {A1, 0},
	}
)

// vocabularyTargets is the word count that completes each level.
var vocabularyTargets = map[Level]float64{
	A1: 1500, A2: 2500, B1: 4000, B2: 6000, C1: 8000, C2: 10000,
}

// LadderFor returns the threshold table of module m.
func LadderFor(m Module) (Ladder, bool) {
	switch m {
	case ModuleVocabulary:
		return VocabularyLadder, true
	case ModuleReading:
		return ReadingLadder, true
	case ModulePronunciation, ModuleListening, ModuleWriting:
		return AccuracyLadder, true
	}
	return nil, false
}
