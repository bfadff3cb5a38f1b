package dto

import (
	"atelier/internal/domain/addon"
	"atelier/internal/domain/catalog"
	"atelier/internal/domain/pricing"
)

type TrainingDTO struct {
	Sessions int    `json:"sessions"`
	Duration string `json:"duration"`
}

type SupportDTO struct {
	Duration string `json:"duration"`
	Type     string `json:"type"`
}

type LevelDTO struct {
	Level           string       `json:"level"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           int          `json:"price"`
	Pages           []string     `json:"pages"`
	Technical       []string     `json:"technical"`
	Support         []string     `json:"support"`
	Integrations    []string     `json:"integrations"`
	Marketing       []string     `json:"marketing"`
	Revisions       int          `json:"revisions"`
	Training        *TrainingDTO `json:"training,omitempty"`
	Assistance      *SupportDTO  `json:"assistance,omitempty"`
	RealizationTime string       `json:"realization_time"`
	IncludedTags    []string     `json:"included_tags"`
}

type TierDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	TargetTags  []string            `json:"target_tags"`
	Levels      map[string]LevelDTO `json:"levels"`
}

type ServiceDTO struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           int      `json:"price"`
	PriceFormatted  string   `json:"price_formatted"`
	Recurring       bool     `json:"recurring"`
	CompatibleTiers []string `json:"compatible_tiers"`
	Features        []string `json:"features"`
	DefaultSelected bool     `json:"default_selected"`
}

type CategoryDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	Gradient        string `json:"gradient"`
	DefaultExpanded bool   `json:"default_expanded"`
	SortOrder       int    `json:"sort_order"`
}

func LevelToDTO(l catalog.LevelData) LevelDTO {
	dto := LevelDTO{
		Level:           l.Level.String(),
		Name:            l.Name,
		Description:     l.Description,
		Price:           l.Price,
		Pages:           l.Features.Pages,
		Technical:       l.Features.Technical,
		Support:         l.Features.Support,
		Integrations:    l.Features.Integrations,
		Marketing:       l.Features.Marketing,
		Revisions:       l.Revisions,
		RealizationTime: l.RealizationTime,
	}
	for _, tag := range l.Tags.List() {
		dto.IncludedTags = append(dto.IncludedTags, string(tag))
	}
	if l.Training != nil {
		dto.Training = &TrainingDTO{Sessions: l.Training.Sessions, Duration: l.Training.Duration}
	}
	if l.Support != nil {
		dto.Assistance = &SupportDTO{Duration: l.Support.Duration, Type: l.Support.Type}
	}
	return dto
}

func TierToDTO(t catalog.Tier) TierDTO {
	data := catalog.GetTierData(t)
	levels := make(map[string]LevelDTO, 3)
	for _, level := range catalog.Levels() {
		levels[level.String()] = LevelToDTO(catalog.GetLevelData(t, level))
	}
	return TierDTO{
		ID:          t.String(),
		Name:        data.Name,
		Description: data.Description,
		TargetTags:  data.TargetTags,
		Levels:      levels,
	}
}

func ServiceToDTO(s addon.Service) ServiceDTO {
	tiers := make([]string, 0, len(s.CompatibleTiers))
	for _, t := range s.CompatibleTiers {
		tiers = append(tiers, t.String())
	}
	return ServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        string(s.Category),
		Price:           s.Price,
		PriceFormatted:  pricing.FormatServicePrice(s.Price, s.Recurring),
		Recurring:       s.Recurring,
		CompatibleTiers: tiers,
		Features:        s.Features,
		DefaultSelected: s.DefaultSelected,
	}
}

func CategoryToDTO(c addon.Category) CategoryDTO {
	return CategoryDTO{
		ID:              string(c.ID),
		Name:            c.Name,
		Icon:            c.Icon,
		Gradient:        c.Gradient,
		DefaultExpanded: c.DefaultExpanded,
		SortOrder:       c.SortOrder,
	}
}
