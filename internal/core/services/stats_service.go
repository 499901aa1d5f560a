package services

import (
	"context"
	"sort"
)

// StatsService aggregates move counts over the roster
type StatsService struct {
	roster *RosterService
}

// NewStatsService creates a new stats service
func NewStatsService(roster *RosterService) *StatsService {
	return &StatsService{roster: roster}
}

// CharacterStats is one row of the stats table
type CharacterStats struct {
	Name   string
	Skills int
	Images int
}

// TypeCount is the number of moves of a given type
type TypeCount struct {
	Type  string
	Count int
}

// StatsResponse represents the aggregated roster stats
type StatsResponse struct {
	Characters  []CharacterStats // roster order
	Types       []TypeCount      // most common first
	TotalSkills int
	TotalImages int
	Skipped     int
}

// Execute loads the roster and computes the stats
func (s *StatsService) Execute(ctx context.Context) (*StatsResponse, error) {
	roster, err := s.roster.Load(ctx)
	if err != nil {
		return nil, err
	}

	resp := &StatsResponse{Skipped: len(roster.Skipped)}
	typeCounts := make(map[string]int)

	for _, c := range roster.Characters {
		row := CharacterStats{Name: c.Name, Skills: c.SkillCount(), Images: c.ImageCount()}
		resp.Characters = append(resp.Characters, row)
		resp.TotalSkills += row.Skills
		resp.TotalImages += row.Images

		for _, sk := range c.Skills {
			t := sk.Type
			if t == "" {
				t = "(none)"
			}
			typeCounts[t]++
		}
	}

	for t, n := range typeCounts {
		resp.Types = append(resp.Types, TypeCount{Type: t, Count: n})
	}
	sort.Slice(resp.Types, func(i, j int) bool {
		if resp.Types[i].Count != resp.Types[j].Count {
			return resp.Types[i].Count > resp.Types[j].Count
		}
		return resp.Types[i].Type < resp.Types[j].Type
	})

	return resp, nil
}
