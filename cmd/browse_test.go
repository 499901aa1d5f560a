package cmd

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
)

func createTestCharacters(n int) []domain.Character {
	chars := make([]domain.Character, n)
	for i := range chars {
		chars[i] = domain.Character{
			Name: fmt.Sprintf("角色%02d", i),
			Skills: []domain.Skill{
				{Name: "招式A", Type: "必杀技", Command: "↓↘→+A", Images: []string{"1.jpg", "2.jpg", "3.jpg"}},
				{Name: "招式B", Type: "普通技", Command: "→+B"},
				{Name: "招式C", Command: "↓↓+C"},
				{Name: "招式D", Command: "←+D", Images: []string{"d.jpg"}},
				{Name: "招式E", Command: "A+B"},
			},
		}
	}
	return chars
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m browseModel, msgs ...tea.KeyMsg) browseModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(browseModel)
	}
	return m
}

// TestBrowseModelInitialization tests that the browse model starts on the first page
func TestBrowseModelInitialization(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(10), 6, 3)

	if m.pager.Visible != 6 || m.pager.Total != 10 {
		t.Errorf("expected 6 of 10 visible, got %d of %d", m.pager.Visible, m.pager.Total)
	}
	if m.cursor != 0 || m.offset != 0 {
		t.Errorf("expected cursor and offset at 0, got %d/%d", m.cursor, m.offset)
	}
	if m.mode != browseModeList {
		t.Errorf("expected list mode, got %v", m.mode)
	}
	if m.ready {
		t.Error("expected ready to be false initially")
	}
	if len(m.names) != 10 {
		t.Errorf("expected 10 name chips, got %d", len(m.names))
	}
}

// TestBrowseRevealOnBottom tests that moving past the last visible row reveals a page
func TestBrowseRevealOnBottom(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(10), 6, 3)
	m.cursor = 5

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.pager.Visible != 10 {
		t.Errorf("expected all 10 visible after reveal, got %d", m.pager.Visible)
	}
	if m.cursor != 6 {
		t.Errorf("expected cursor at 6, got %d", m.cursor)
	}

	m.cursor = 9
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 9 || m.pager.Visible != 10 {
		t.Errorf("cursor should stay at the end, got cursor %d visible %d", m.cursor, m.pager.Visible)
	}
}

// TestBrowseNavigationBoundaries tests cursor boundaries
func TestBrowseNavigationBoundaries(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(3), 6, 3)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0, got %d", m.cursor)
	}

	m = press(t, m, runes("G"))
	if m.cursor != 2 {
		t.Errorf("G should jump to 2, got %d", m.cursor)
	}

	m = press(t, m, runes("g"))
	if m.cursor != 0 {
		t.Errorf("g should jump to 0, got %d", m.cursor)
	}
}

// TestBrowseFilter tests the exact name filter
func TestBrowseFilter(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(10), 6, 3)
	m.cursor = 4

	m = press(t, m, runes("/"))
	if m.mode != browseModeFilter {
		t.Fatalf("expected filter mode, got %v", m.mode)
	}

	m = press(t, m, runes("角色07"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != browseModeList {
		t.Errorf("expected list mode after enter, got %v", m.mode)
	}
	if m.filter != "角色07" || len(m.filtered) != 1 || m.pager.Visible != 1 {
		t.Errorf("expected one match for 角色07, got filter %q and %d results", m.filter, len(m.filtered))
	}
	if m.cursor != 0 {
		t.Errorf("filter should reset the cursor, got %d", m.cursor)
	}

	// Partial names don't match
	m = press(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.filter != "角色0" || m.pager.Total != 0 {
		t.Errorf("expected no match for 角色0, got %q with %d", m.filter, m.pager.Total)
	}

	m = press(t, m, runes("x"))
	if m.filter != "" || m.pager.Total != 10 || m.pager.Visible != 6 {
		t.Errorf("clear should restore the first page, got %q %d/%d", m.filter, m.pager.Visible, m.pager.Total)
	}
}

// TestBrowseFilterEscape tests that escape leaves the filter unchanged
func TestBrowseFilterEscape(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(4), 6, 3)

	m = press(t, m, runes("/"), runes("角色01"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != browseModeList || m.filter != "" || len(m.filtered) != 4 {
		t.Errorf("escape should not apply the filter, got mode %v filter %q", m.mode, m.filter)
	}
}

// TestBrowseChips tests cycling through name chips
func TestBrowseChips(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(2), 6, 3)

	tab := tea.KeyMsg{Type: tea.KeyTab}
	m = press(t, m, tab)
	if m.filter != "角色00" {
		t.Errorf("first chip = %q", m.filter)
	}
	m = press(t, m, tab)
	if m.filter != "角色01" {
		t.Errorf("second chip = %q", m.filter)
	}
	m = press(t, m, tab)
	if m.filter != "" || len(m.filtered) != 2 {
		t.Errorf("chips should wrap to all, got %q", m.filter)
	}
}

// TestBrowseDetail tests the move list pager and image carousel
func TestBrowseDetail(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(2), 6, 3)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != browseModeDetail {
		t.Fatalf("expected detail mode, got %v", m.mode)
	}
	if m.detail.character.Name != "角色00" {
		t.Errorf("opened %q", m.detail.character.Name)
	}
	if m.detail.skills.Visible != 3 || m.detail.skills.Total != 5 {
		t.Errorf("expected 3 of 5 moves, got %d of %d", m.detail.skills.Visible, m.detail.skills.Total)
	}

	// Carousel wraps both ways
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}
	m = press(t, m, left)
	if m.detail.carousels[0].Index != 2 {
		t.Errorf("prev from first image should wrap to 2, got %d", m.detail.carousels[0].Index)
	}
	m = press(t, m, right, right)
	if m.detail.carousels[0].Index != 1 {
		t.Errorf("expected image 1, got %d", m.detail.carousels[0].Index)
	}
	if got := m.selectedImageURL(); got != "2.jpg" {
		t.Errorf("selectedImageURL = %q, want 2.jpg", got)
	}

	// Moves without images have nothing to copy
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.selectedImageURL(); got != "" {
		t.Errorf("expected no image for 招式B, got %q", got)
	}

	// Moving past the third move reveals the rest
	down := tea.KeyMsg{Type: tea.KeyDown}
	m = press(t, m, down, down)
	if m.detail.cursor != 3 || m.detail.skills.Visible != 5 {
		t.Errorf("expected cursor 3 with 5 moves visible, got %d/%d", m.detail.cursor, m.detail.skills.Visible)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != browseModeList {
		t.Errorf("escape should return to the roster, got %v", m.mode)
	}
}

// TestBrowseURLBuilders tests that resolved URLs are used when set
func TestBrowseURLBuilders(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(1), 6, 3)
	m.imageURLs = func(c domain.Character, sk domain.Skill) []string {
		urls := make([]string, len(sk.Images))
		for i, img := range sk.Images {
			urls[i] = "https://cdn.example.com/kof97/" + c.Name + "/" + img
		}
		return urls
	}
	m.avatarURL = func(domain.Character) string { return "/assets/kof97/placeholder.png" }

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.selectedImageURL(); got != "https://cdn.example.com/kof97/角色00/1.jpg" {
		t.Errorf("selectedImageURL = %q", got)
	}

	content := m.renderDetail()
	if !strings.Contains(content, "placeholder.png") {
		t.Error("detail should show the avatar URL")
	}
	if !strings.Contains(content, "1/3") {
		t.Error("detail should show the carousel position")
	}
}

// TestBrowseRaw tests the raw record view
func TestBrowseRaw(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(2), 6, 3)

	m = press(t, m, runes("r"))
	if m.mode != browseModeRaw {
		t.Fatalf("expected raw mode, got %v", m.mode)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != browseModeList {
		t.Errorf("escape should return to the roster, got %v", m.mode)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("r"), runes("r"))
	if m.mode != browseModeDetail {
		t.Errorf("r should toggle back to the detail view, got %v", m.mode)
	}
}

// TestBrowseHelp tests toggling help
func TestBrowseHelp(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(2), 6, 3)

	m = press(t, m, runes("?"))
	if m.mode != browseModeHelp {
		t.Fatalf("expected help mode, got %v", m.mode)
	}
	m = press(t, m, runes("?"))
	if m.mode != browseModeList {
		t.Errorf("expected list mode, got %v", m.mode)
	}
}

// TestBrowseView tests rendering after a window size message
func TestBrowseView(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(8), 6, 3)

	if !strings.Contains(m.View(), "Loading") {
		t.Error("expected loading view before the first size message")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(browseModel)

	view := m.View()
	for _, want := range []string{"角色00", "角色05", "6/8", "2 more"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	// Unrevealed characters only appear as filter chips
	if n := strings.Count(view, "角色06"); n != 1 {
		t.Errorf("expected 角色06 once (its chip), got %d", n)
	}
}

// TestBrowseEmptyFilterView tests the empty state
func TestBrowseEmptyFilterView(t *testing.T) {
	m := newBrowseModel(context.Background(), createTestCharacters(2), 6, 3)
	m.applyFilter("不存在")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(browseModel)

	if !strings.Contains(m.View(), "No character named 不存在") {
		t.Error("expected empty filter message")
	}
}

// TestHighlightJSON tests that highlighting keeps the content
func TestHighlightJSON(t *testing.T) {
	out := highlightJSON(`{"name": "草薙京"}`)
	if !strings.Contains(out, "草薙京") {
		t.Errorf("highlighted output lost content: %q", out)
	}
}
