package cefr

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	readingAccuracyWeight   = 0.7
	readingEfficiencyWeight = 0.3
)

// ModuleAssessment is the level and score computed for one module.
type ModuleAssessment struct {
	Module Module `json:"module"`
	Level  Level  `json:"level"`
	// Score is the module's headline number, 0–100.
	Score float64 `json:"score"`
	// LevelScore is the metric the level was chosen on. It differs from Score
	// for reading (blended value) and vocabulary (mastered words).
	LevelScore float64     `json:"levelScore"`
	Raw        ModuleStats `json:"raw"`
}

// Empty is the assessment of a module with no statistics.
func Empty(m Module) ModuleAssessment {
	return ModuleAssessment{Module: m, Level: A1, Raw: zeroStats(m)}
}

// Calculate runs the calculator for m. Missing or mismatched stats yield Empty(m).
func Calculate(m Module, stats ModuleStats) ModuleAssessment {
	if stats == nil || stats.Module() != m {
		return Empty(m)
	}
	switch s := stats.Sanitize().(type) {
	case VocabularyStats:
		return CalculateVocabulary(s)
	case PronunciationStats:
		return CalculatePronunciation(s)
	case ReadingStats:
		return CalculateReading(s)
	case ListeningStats:
		return CalculateListening(s)
	case WritingStats:
		return CalculateWriting(s)
	}
	return Empty(m)
}

func CalculateVocabulary(s VocabularyStats) ModuleAssessment {
	s = s.Sanitize().(VocabularyStats)
	words := float64(s.MasteredWords)
	level := VocabularyLadder.LevelFor(words)
	return ModuleAssessment{
		Module:     ModuleVocabulary,
		Level:      level,
		Score:      math.Min(100, words/vocabularyTargets[level]*100),
		LevelScore: words,
		Raw:        s,
	}
}

func CalculatePronunciation(s PronunciationStats) ModuleAssessment {
	s = s.Sanitize().(PronunciationStats)
	return accuracyAssessment(ModulePronunciation, s.AverageAccuracy, s)
}

func CalculateListening(s ListeningStats) ModuleAssessment {
	s = s.Sanitize().(ListeningStats)
	return accuracyAssessment(ModuleListening, s.AverageAccuracy, s)
}

func CalculateWriting(s WritingStats) ModuleAssessment {
	s = s.Sanitize().(WritingStats)
	return accuracyAssessment(ModuleWriting, s.AverageScore, s)
}

func accuracyAssessment(m Module, accuracy float64, raw ModuleStats) ModuleAssessment {
	return ModuleAssessment{
		Module:     m,
		Level:      AccuracyLadder.LevelFor(accuracy),
		Score:      accuracy,
		LevelScore: accuracy,
		Raw:        raw,
	}
}

// CalculateReading blends comprehension with reading efficiency to pick the
// level, while Score stays the comprehension accuracy. Without any
// comprehension the blend is 0.
func CalculateReading(s ReadingStats) ModuleAssessment {
	s = s.Sanitize().(ReadingStats)
	var blended float64
	if s.ComprehensionAccuracy > 0 {
		efficiency := math.Max(0, 100-s.AverageReadingTimeSeconds/60)
		blended = s.ComprehensionAccuracy*readingAccuracyWeight + efficiency*readingEfficiencyWeight
	}
	return ModuleAssessment{
		Module:     ModuleReading,
		Level:      ReadingLadder.LevelFor(blended),
		Score:      s.ComprehensionAccuracy,
		LevelScore: blended,
		Raw:        s,
	}
}

func zeroStats(m Module) ModuleStats {
	switch m {
	case ModuleVocabulary:
		return VocabularyStats{}
	case ModulePronunciation:
		return PronunciationStats{}
	case ModuleReading:
		return ReadingStats{}
	case ModuleListening:
		return ListeningStats{}
	case ModuleWriting:
		return WritingStats{}
	}
	return nil
}

// DecodeStats unmarshals the stats variant that belongs to m. Empty input
// yields the zero variant.
func DecodeStats(m Module, data []byte) (ModuleStats, error) {
	zero := zeroStats(m)
	if zero == nil {
		return nil, fmt.Errorf("decode stats: unknown module %q", m)
	}
	if len(data) == 0 || string(data) == "null" {
		return zero, nil
	}

	var (
		out ModuleStats
		err error
	)
	switch m {
	case ModuleVocabulary:
		var s VocabularyStats
		err = json.Unmarshal(data, &s)
		out = s
	case ModulePronunciation:
		var s PronunciationStats
		err = json.Unmarshal(data, &s)
		out = s
	case ModuleReading:
		var s ReadingStats
		err = json.Unmarshal(data, &s)
		out = s
	case ModuleListening:
		var s ListeningStats
		err = json.Unmarshal(data, &s)
		out = s
	case ModuleWriting:
		var s WritingStats
		err = json.Unmarshal(data, &s)
		out = s
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s stats: %w", m, err)
	}
	return out, nil
}

func (a *ModuleAssessment) UnmarshalJSON(data []byte) error {
	type plain ModuleAssessment
	var aux struct {
		plain
		Raw json.RawMessage `json:"raw"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	raw, err := DecodeStats(aux.Module, aux.Raw)
	if err != nil {
		return err
	}
	*a = ModuleAssessment(aux.plain)
	a.Raw = raw
	return nil
}
