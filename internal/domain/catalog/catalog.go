// Package catalog holds the agency's pricing catalog: three tiers, each with
// three levels, and the derived comparison matrix for the pricing page. The
// catalog is release-versioned content compiled into the binary; it has no
// runtime mutation and its accessors are total over the closed enums.
package catalog

import "fmt"

// Tier is a top-level pricing category.
type Tier string

const (
	TierStarter   Tier = "starter"
	TierPro       Tier = "pro"
	TierEcommerce Tier = "ecommerce"
)

// Tiers returns all tiers in display order.
func Tiers() []Tier {
	return []Tier{TierStarter, TierPro, TierEcommerce}
}

func (t Tier) IsValid() bool {
	return t == TierStarter || t == TierPro || t == TierEcommerce
}

func (t Tier) String() string {
	return string(t)
}

// ParseTier validates a tier identifier coming from the wire.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown tier: %q", s)
	}
	return t, nil
}

// Level is a sub-tier within a Tier. Every tier has exactly these three.
type Level string

const (
	LevelBase     Level = "base"
	LevelStandard Level = "standard"
	LevelPremium  Level = "premium"
)

// Levels returns all levels in ascending price order.
func Levels() []Level {
	return []Level{LevelBase, LevelStandard, LevelPremium}
}

func (l Level) IsValid() bool {
	return l == LevelBase || l == LevelStandard || l == LevelPremium
}

func (l Level) String() string {
	return string(l)
}

// ParseLevel validates a level identifier coming from the wire.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", fmt.Errorf("unknown level: %q", s)
	}
	return l, nil
}

// FeatureBundle groups the free-text feature descriptions of a level, split
// the way the pricing page presents them.
type FeatureBundle struct {
	Pages        []string `json:"pages"`
	Technical    []string `json:"technical"`
	Support      []string `json:"support"`
	Integrations []string `json:"integrations"`
	Marketing    []string `json:"marketing"`
}

// TrainingSpec describes the training included with a level.
type TrainingSpec struct {
	Sessions int    `json:"sessions"`
	Duration string `json:"duration"`
}

// SupportSpec describes the assistance window included with a level.
type SupportSpec struct {
	Duration string `json:"duration"`
	Type     string `json:"type"`
}

// LevelData is the full definition of one level of a tier.
type LevelData struct {
	Level           Level         `json:"level"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Price           int           `json:"price"`
	Features        FeatureBundle `json:"features"`
	Revisions       int           `json:"revisions"`
	Training        *TrainingSpec `json:"training,omitempty"`
	Support         *SupportSpec  `json:"support,omitempty"`
	RealizationTime string        `json:"realization_time"`
	Tags            FeatureTagSet `json:"tags"`
}

// TierData is the full definition of a tier with its three levels.
type TierData struct {
	Tier        Tier     `json:"tier"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TargetTags  []string `json:"target_tags"`
	Levels      LevelSet `json:"levels"`
}

// LevelSet holds the three levels of a tier.
type LevelSet struct {
	Base     LevelData `json:"base"`
	Standard LevelData `json:"standard"`
	Premium  LevelData `json:"premium"`
}

// Get returns the level data for l. Total over the closed enum; the zero
// Level falls back to base.
func (s LevelSet) Get(l Level) LevelData {
	switch l {
	case LevelStandard:
		return s.Standard
	case LevelPremium:
		return s.Premium
	default:
		return s.Base
	}
}

// GetTierData returns the tier definition. Total over the closed enum.
func GetTierData(t Tier) TierData {
	return tiers[t]
}

// GetLevelData returns one level of a tier. Total over the closed enums.
func GetLevelData(t Tier, l Level) LevelData {
	return tiers[t].Levels.Get(l)
}

// GetTierPrice returns the base price of a tier level in whole euro.
func GetTierPrice(t Tier, l Level) int {
	return GetLevelData(t, l).Price
}
