// Package proficiency aggregates per-module CEFR assessments into an overall
// level and recommends what a learner needs to reach the next one.
package proficiency

import (
	"encoding/json"
	"fmt"

	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
)

// Profile holds the statistics of each module. Absent modules are assessed
// as A1 with score 0.
type Profile map[cefr.Module]cefr.ModuleStats

func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Profile, len(raw))
	for name, body := range raw {
		m, err := cefr.ParseModule(name)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		stats, err := cefr.DecodeStats(m, body)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		out[m] = stats
	}
	*p = out
	return nil
}

type OverallAssessment struct {
	OverallLevel    cefr.Level                           `json:"overallLevel"`
	Modules         map[cefr.Module]cefr.ModuleAssessment `json:"modules"`
	StrongestModule cefr.Module                          `json:"strongestModule"`
	WeakestModule   cefr.Module                          `json:"weakestModule"`
}

// UnmarshalJSON normalizes module keys through cefr.ParseModule, so "speaking"
// lands on pronunciation, and rejects a key that disagrees with its entry.
func (a *OverallAssessment) UnmarshalJSON(data []byte) error {
	type plain OverallAssessment
	var aux struct {
		plain
		Modules map[string]json.RawMessage `json:"modules"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var modules map[cefr.Module]cefr.ModuleAssessment
	if aux.Modules != nil {
		modules = make(map[cefr.Module]cefr.ModuleAssessment, len(aux.Modules))
	}
	for name, body := range aux.Modules {
		m, err := cefr.ParseModule(name)
		if err != nil {
			return fmt.Errorf("assessment: %w", err)
		}
		var ma cefr.ModuleAssessment
		if err := json.Unmarshal(body, &ma); err != nil {
			return fmt.Errorf("assessment %s: %w", m, err)
		}
		if ma.Module != m {
			return fmt.Errorf("assessment: key %q holds %q", name, ma.Module)
		}
		modules[m] = ma
	}

	*a = OverallAssessment(aux.plain)
	a.Modules = modules
	return nil
}

// Module returns the assessment of m, or the empty assessment when m is absent.
func (a *OverallAssessment) Module(m cefr.Module) cefr.ModuleAssessment {
	if a == nil {
		return cefr.Empty(m)
	}
	if ma, ok := a.Modules[m]; ok && ma.Module == m {
		return ma
	}
	return cefr.Empty(m)
}

// LevelRequirement compares one module against the next level's threshold.
type LevelRequirement struct {
	Module           cefr.Module `json:"module"`
	RequiredAccuracy float64     `json:"requiredAccuracy"`
	CurrentAccuracy  float64     `json:"currentAccuracy"`
	MinimumAttempts  int         `json:"minimumAttempts"`
	CurrentAttempts  int         `json:"currentAttempts"`
	Met              bool        `json:"met"`
}

type UpgradeRecommendation struct {
	CanUpgrade      bool               `json:"canUpgrade"`
	NextLevel       *cefr.Level        `json:"nextLevel"`
	OverallProgress float64            `json:"overallProgress"`
	Requirements    []LevelRequirement `json:"requirements"`
	EstimatedTime   string             `json:"estimatedTime"`
	PriorityAreas   []string           `json:"priorityAreas"`
	Message         string             `json:"message"`
}
