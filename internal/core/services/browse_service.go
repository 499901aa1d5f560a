package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
)

// Page sizes used by the roster and character views.
const (
	DefaultPageSize       = 6
	DefaultSkillsPageSize = 3
)

// Pager tracks how much of a list is revealed. Each Reveal shows one more
// page, capped at the list length.
type Pager struct {
	PageSize int
	Total    int
	Visible  int
}

// NewPager shows the first page of a list of total items.
func NewPager(total, pageSize int) *Pager {
	p := &Pager{PageSize: pageSize}
	p.Reset(total)
	return p
}

// Reset starts over on a list of a new length, e.g. after a filter change.
func (p *Pager) Reset(total int) {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	p.Total = total
	p.Visible = min(p.PageSize, total)
}

// Reveal shows another page and returns the new visible count.
func (p *Pager) Reveal() int {
	if p.Visible < p.Total {
		p.Visible = min(p.Visible+p.PageSize, p.Total)
	}
	return p.Visible
}

// HasMore reports whether part of the list is still hidden.
func (p *Pager) HasMore() bool {
	return p.Visible < p.Total
}

// Carousel is the image index of a skill's slideshow.
type Carousel struct {
	Len   int
	Index int
}

// Next advances, wrapping to the first image.
func (c *Carousel) Next() {
	if c.Len > 0 {
		c.Index = (c.Index + 1) % c.Len
	}
}

// Prev steps back, wrapping to the last image.
func (c *Carousel) Prev() {
	if c.Len > 0 {
		c.Index = (c.Index - 1 + c.Len) % c.Len
	}
}

// Select jumps to image i; out of range indexes are ignored.
func (c *Carousel) Select(i int) {
	if i >= 0 && i < c.Len {
		c.Index = i
	}
}

// FilterByName keeps characters whose name equals name exactly. An empty
// name means no filter.
func FilterByName(chars []domain.Character, name string) []domain.Character {
	if name == "" {
		return chars
	}
	var out []domain.Character
	for _, c := range chars {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// BrowseService handles the filtered, paginated roster view
type BrowseService struct {
	roster         *RosterService
	pageSize       int
	skillsPageSize int
}

// NewBrowseService creates a new browse service
func NewBrowseService(roster *RosterService, pageSize, skillsPageSize int) *BrowseService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if skillsPageSize <= 0 {
		skillsPageSize = DefaultSkillsPageSize
	}
	return &BrowseService{
		roster:         roster,
		pageSize:       pageSize,
		skillsPageSize: skillsPageSize,
	}
}

// PageSize returns the roster page size
func (s *BrowseService) PageSize() int { return s.pageSize }

// SkillsPageSize returns the skill list page size
func (s *BrowseService) SkillsPageSize() int { return s.skillsPageSize }

// BrowseRequest represents a request for the roster view
type BrowseRequest struct {
	Name    string // exact name filter, empty for all
	Reveals int    // pages revealed after the first
	All     bool   // reveal everything
}

// BrowseResponse represents one rendering of the roster view
type BrowseResponse struct {
	Characters []domain.Character // the visible slice
	Names      []string           // every name, for filter chips
	Total      int                // length of the filtered list
	Visible    int
	HasMore    bool
}

// Execute loads the roster, filters it and reveals the requested pages
func (s *BrowseService) Execute(ctx context.Context, req BrowseRequest) (*BrowseResponse, error) {
	roster, err := s.roster.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterByName(roster.Characters, req.Name)
	pager := NewPager(len(filtered), s.pageSize)
	if req.All {
		pager.Visible = pager.Total
	}
	for i := 0; i < req.Reveals && pager.HasMore(); i++ {
		pager.Reveal()
	}

	return &BrowseResponse{
		Characters: filtered[:pager.Visible],
		Names:      Names(roster.Characters),
		Total:      pager.Total,
		Visible:    pager.Visible,
		HasMore:    pager.HasMore(),
	}, nil
}

// CharacterRequest represents a request for a single character's move list
type CharacterRequest struct {
	Name    string
	Reveals int
	All     bool
}

// CharacterResponse represents a character with its visible skills
type CharacterResponse struct {
	Character domain.Character
	Found     bool // false when Name was unknown and the first character is shown
	Skills    []domain.Skill
	Visible   int
	Total     int
	HasMore   bool
	Names     []string
}

// Character loads a single character and pages its skills
func (s *BrowseService) Character(ctx context.Context, req CharacterRequest) (*CharacterResponse, error) {
	roster, err := s.roster.Load(ctx)
	if err != nil {
		return nil, err
	}

	c, found, err := Find(roster.Characters, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to find %q: %w", req.Name, err)
	}

	pager := NewPager(c.SkillCount(), s.skillsPageSize)
	if req.All {
		pager.Visible = pager.Total
	}
	for i := 0; i < req.Reveals && pager.HasMore(); i++ {
		pager.Reveal()
	}

	return &CharacterResponse{
		Character: c,
		Found:     found,
		Skills:    c.Skills[:pager.Visible],
		Visible:   pager.Visible,
		Total:     pager.Total,
		HasMore:   pager.HasMore(),
		Names:     Names(roster.Characters),
	}, nil
}
