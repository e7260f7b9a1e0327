package cefr

import "math"

// ModuleStats is the aggregate input of one module calculator. Each variant
// carries exactly the fields its calculator reads.
type ModuleStats interface {
	Module() Module
	// AttemptCount is the number of practice attempts in the trailing window.
	AttemptCount() int
	// Sanitize returns a copy with NaN and negative values replaced by 0 and
	// percentages clamped to [0, 100].
	Sanitize() ModuleStats
}

type VocabularyStats struct {
	MasteredWords int `json:"masteredWords"`
}

type PronunciationStats struct {
	AverageAccuracy float64 `json:"averageAccuracy"`
	Attempts        int     `json:"attempts"`
}

type ReadingStats struct {
	ComprehensionAccuracy     float64 `json:"comprehensionAccuracy"`
	AverageReadingTimeSeconds float64 `json:"averageReadingTimeSeconds"`
	Attempts                  int     `json:"attempts"`
}

type ListeningStats struct {
	AverageAccuracy float64 `json:"averageAccuracy"`
	Attempts        int     `json:"attempts"`
}

type WritingStats struct {
	AverageScore float64 `json:"averageScore"`
	Attempts     int     `json:"attempts"`
}

func (VocabularyStats) Module() Module    { return ModuleVocabulary }
func (PronunciationStats) Module() Module { return ModulePronunciation }
func (ReadingStats) Module() Module       { return ModuleReading }
func (ListeningStats) Module() Module     { return ModuleListening }
func (WritingStats) Module() Module       { return ModuleWriting }

// Vocabulary has no attempt requirement; reviewed words are what count.
func (VocabularyStats) AttemptCount() int      { return 0 }
func (s PronunciationStats) AttemptCount() int { return s.Attempts }
func (s ReadingStats) AttemptCount() int       { return s.Attempts }
func (s ListeningStats) AttemptCount() int     { return s.Attempts }
func (s WritingStats) AttemptCount() int       { return s.Attempts }

func (s VocabularyStats) Sanitize() ModuleStats {
	s.MasteredWords = max(s.MasteredWords, 0)
	return s
}

func (s PronunciationStats) Sanitize() ModuleStats {
	s.AverageAccuracy = Percent(s.AverageAccuracy)
	s.Attempts = max(s.Attempts, 0)
	return s
}

func (s ReadingStats) Sanitize() ModuleStats {
	s.ComprehensionAccuracy = Percent(s.ComprehensionAccuracy)
	s.AverageReadingTimeSeconds = NonNegative(s.AverageReadingTimeSeconds)
	s.Attempts = max(s.Attempts, 0)
	return s
}

func (s ListeningStats) Sanitize() ModuleStats {
	s.AverageAccuracy = Percent(s.AverageAccuracy)
	s.Attempts = max(s.Attempts, 0)
	return s
}

func (s WritingStats) Sanitize() ModuleStats {
	s.AverageScore = Percent(s.AverageScore)
	s.Attempts = max(s.Attempts, 0)
	return s
}

// Percent clamps v to [0, 100]; NaN becomes 0.
func Percent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 100)
}

// NonNegative returns 0 for NaN and negative values.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
