package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
	"github.com/kamal-hamza/skillsheet/internal/core/ports"
)

// RosterLocale is the collation used to order character names.
var RosterLocale = language.SimplifiedChinese

// RosterService assembles the sorted roster from bundled records
type RosterService struct {
	source ports.ModuleSource
	logger *zap.Logger
	locale language.Tag
}

// NewRosterService creates a new roster service
func NewRosterService(source ports.ModuleSource, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		source: source,
		logger: logger,
		locale: RosterLocale,
	}
}

// RosterResponse represents a loaded roster
type RosterResponse struct {
	Characters []domain.Character
	Skipped    []string // module paths that held no usable record
	Total      int
}

// Load reads every module, drops the ones that don't hold a character and
// returns the rest sorted by name.
func (s *RosterService) Load(ctx context.Context) (*RosterResponse, error) {
	modules, err := s.source.Modules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster modules: %w", err)
	}

	resp := &RosterResponse{
		Characters: make([]domain.Character, 0, len(modules)),
	}

	for _, mod := range modules {
		c, ok := DecodeCharacter(mod.Data)
		if !ok {
			s.logger.Debug("skipping roster module", zap.String("path", mod.Path))
			resp.Skipped = append(resp.Skipped, mod.Path)
			continue
		}
		resp.Characters = append(resp.Characters, c)
	}

	SortCharacters(resp.Characters, s.locale)
	resp.Total = len(resp.Characters)

	s.logger.Debug("roster loaded",
		zap.Int("characters", resp.Total),
		zap.Int("skipped", len(resp.Skipped)))

	return resp, nil
}

// DecodeCharacter reads a module's JSON value. Files hold either a character
// object or an array whose first element is the character. Anything else
// (null, {}, [], a nameless record, invalid JSON) yields false.
func DecodeCharacter(data []byte) (domain.Character, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return domain.Character{}, false
	}

	if data[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(data, &arr); err != nil || len(arr) == 0 {
			return domain.Character{}, false
		}
		data = bytes.TrimSpace(arr[0])
	}

	if len(data) == 0 || data[0] != '{' {
		return domain.Character{}, false
	}

	var c domain.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Character{}, false
	}
	if c.Name == "" {
		return domain.Character{}, false
	}
	return c, true
}

// SortCharacters orders characters by name using the locale's collation.
// Equal names keep their input order.
func SortCharacters(chars []domain.Character, locale language.Tag) {
	// A Collator keeps scratch buffers and must not be shared between
	// goroutines, so each sort gets its own.
	col := collate.New(locale)
	sort.SliceStable(chars, func(i, j int) bool {
		return col.CompareString(chars[i].Name, chars[j].Name) < 0
	})
}

// Names returns the character names in roster order
func Names(chars []domain.Character) []string {
	names := make([]string, len(chars))
	for i, c := range chars {
		names[i] = c.Name
	}
	return names
}

// Find returns the character with the exact name. An empty name selects the
// first character; an unknown name also falls back to the first character and
// reports found=false. An empty roster returns ErrNotFound.
func Find(chars []domain.Character, name string) (c domain.Character, found bool, err error) {
	if len(chars) == 0 {
		return domain.Character{}, false, domain.ErrNotFound
	}
	if name == "" {
		return chars[0], true, nil
	}
	for _, ch := range chars {
		if ch.Name == name {
			return ch, true, nil
		}
	}
	return chars[0], false, nil
}
