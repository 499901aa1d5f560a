package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Browse the roster interactively (alias: tui)",
	Long: `Launch a full-screen roster browser.

The roster reveals another page whenever the cursor reaches the bottom of
what is shown. Filtering is by exact character name; Tab cycles through the
name chips.

Keyboard Shortcuts:
  Roster:
    ↑/k ↓/j     Move (moving past the end reveals more)
    g / G       Top / bottom
    Enter       Open move list
    /           Filter by exact name
    Tab         Next name chip
    x           Clear filter

  Move list:
    ↑/k ↓/j     Select move
    ←/h →/l     Previous / next image
    y           Copy the selected image URL
    r           Raw JSON record
    Esc         Back to roster

  General:
    ?           Help
    q           Quit`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	roster, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	if roster.Total == 0 {
		fmt.Println(ui.FormatWarning("No characters found"))
		return nil
	}

	m := newBrowseModel(ctx, roster.Characters, browseService.PageSize(), browseService.SkillsPageSize())
	m.imageURLs = skillImageURLs
	m.avatarURL = avatarURL

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}

	return nil
}

// Browser view modes
type browseMode int

const (
	browseModeList browseMode = iota
	browseModeFilter
	browseModeDetail
	browseModeRaw
	browseModeHelp
)

// detailState is the open character's move list
type detailState struct {
	character domain.Character
	skills    *services.Pager
	cursor    int
	carousels []services.Carousel
	viewport  viewport.Model
}

type browseModel struct {
	ctx            context.Context
	characters     []domain.Character
	filtered       []domain.Character
	names          []string
	filter         string
	pager          *services.Pager
	skillsPageSize int
	cursor         int
	offset         int
	mode           browseMode
	prevMode       browseMode
	filterInput    textinput.Model
	help           help.Model
	keys           browseKeyMap
	width          int
	height         int
	ready          bool
	message        string
	messageStyle   lipgloss.Style
	messageExpiry  time.Time
	detail         detailState
	raw            viewport.Model

	// URL builders; nil shows bare file names
	imageURLs func(domain.Character, domain.Skill) []string
	avatarURL func(domain.Character) string
}

type browseKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Open      key.Binding
	Filter    key.Binding
	NextChip  key.Binding
	Clear     key.Binding
	PrevImage key.Binding
	NextImage key.Binding
	Copy      key.Binding
	Raw       key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.Filter, k.NextChip, k.Clear},
		{k.PrevImage, k.NextImage, k.Copy, k.Raw},
		{k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter/o", "open moves"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	NextChip: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next name"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear filter"),
	),
	PrevImage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev image"),
	),
	NextImage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next image"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy URL"),
	),
	Raw: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "raw JSON"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

type browseStatusMsg struct {
	message string
	style   lipgloss.Style
}

func newBrowseModel(ctx context.Context, characters []domain.Character, pageSize, skillsPageSize int) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Exact name..."
	ti.CharLimit = 50
	ti.Width = 30

	if skillsPageSize <= 0 {
		skillsPageSize = services.DefaultSkillsPageSize
	}

	return browseModel{
		ctx:            ctx,
		characters:     characters,
		filtered:       characters,
		names:          services.Names(characters),
		pager:          services.NewPager(len(characters), pageSize),
		skillsPageSize: skillsPageSize,
		mode:           browseModeList,
		filterInput:    ti,
		help:           help.New(),
		keys:           browseKeys,
		detail:         detailState{viewport: viewport.New(80, 20)},
		raw:            viewport.New(80, 20),
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		height := msg.Height - 8
		if height < 5 {
			height = 5
		}
		m.detail.viewport.Width = msg.Width - 4
		m.detail.viewport.Height = height
		m.raw.Width = msg.Width - 4
		m.raw.Height = height
		if m.mode == browseModeDetail {
			m.refreshDetail()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case browseModeFilter:
			return m.updateFilter(msg)
		case browseModeDetail:
			return m.updateDetail(msg)
		case browseModeRaw:
			return m.updateRaw(msg)
		case browseModeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateList(msg)
		}

	case browseStatusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(3 * time.Second)
		return m, nil
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustOffset()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.pager.Visible-1 {
			m.cursor++
		} else if m.pager.HasMore() {
			// Reaching the bottom reveals the next page
			m.pager.Reveal()
			m.cursor++
		}
		m.adjustOffset()

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		if m.pager.Visible > 0 {
			m.cursor = m.pager.Visible - 1
			m.adjustOffset()
		}

	case key.Matches(msg, m.keys.Open):
		if m.pager.Visible > 0 {
			m.openDetail(m.filtered[m.cursor])
		}

	case key.Matches(msg, m.keys.Filter):
		m.mode = browseModeFilter
		m.filterInput.SetValue(m.filter)
		m.filterInput.CursorEnd()
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextChip):
		m.applyFilter(m.nextChip())

	case key.Matches(msg, m.keys.Clear):
		m.applyFilter("")

	case key.Matches(msg, m.keys.Raw):
		if m.pager.Visible > 0 {
			m.openRaw(m.filtered[m.cursor])
		}

	case key.Matches(msg, m.keys.Help):
		m.prevMode = m.mode
		m.mode = browseModeHelp
	}

	return m, nil
}

func (m browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = browseModeList
		m.filterInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = browseModeList
		m.filterInput.Blur()
		m.applyFilter(characterName([]string{m.filterInput.Value()}))
		return m, nil

	case msg.Type == tea.KeyTab:
		m.filterInput.SetValue(m.nextChip())
		m.filterInput.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.detail

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.mode = browseModeList
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if d.cursor < d.skills.Visible-1 {
			d.cursor++
		} else if d.skills.HasMore() {
			d.skills.Reveal()
			d.cursor++
		}

	case key.Matches(msg, m.keys.Top):
		d.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		if d.skills.Visible > 0 {
			d.cursor = d.skills.Visible - 1
		}

	case key.Matches(msg, m.keys.NextImage):
		if d.cursor < len(d.carousels) {
			d.carousels[d.cursor].Next()
		}

	case key.Matches(msg, m.keys.PrevImage):
		if d.cursor < len(d.carousels) {
			d.carousels[d.cursor].Prev()
		}

	case key.Matches(msg, m.keys.Copy):
		url := m.selectedImageURL()
		if url == "" {
			return m, statusCmd("No image for this move", ui.StyleWarning)
		}
		return m, copyCmd(url)

	case key.Matches(msg, m.keys.Raw):
		m.openRaw(d.character)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.prevMode = m.mode
		m.mode = browseModeHelp
		return m, nil

	default:
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return m, cmd
	}

	m.refreshDetail()
	return m, nil
}

func (m browseModel) updateRaw(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Raw):
		m.mode = m.prevMode
		return m, nil
	}

	var cmd tea.Cmd
	m.raw, cmd = m.raw.Update(msg)
	return m, cmd
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = m.prevMode
	}
	return m, nil
}

// applyFilter narrows the roster to an exact name and starts paging over
func (m *browseModel) applyFilter(name string) {
	m.filter = name
	m.filtered = services.FilterByName(m.characters, name)
	m.pager.Reset(len(m.filtered))
	m.cursor = 0
	m.offset = 0
}

// nextChip returns the name after the current filter, wrapping to no filter
func (m browseModel) nextChip() string {
	if len(m.names) == 0 {
		return ""
	}
	for i, n := range m.names {
		if n == m.filter {
			if i+1 < len(m.names) {
				return m.names[i+1]
			}
			return ""
		}
	}
	return m.names[0]
}

func (m *browseModel) openDetail(c domain.Character) {
	carousels := make([]services.Carousel, len(c.Skills))
	for i, sk := range c.Skills {
		carousels[i] = services.Carousel{Len: len(sk.Images)}
	}

	m.detail.character = c
	m.detail.skills = services.NewPager(c.SkillCount(), m.skillsPageSize)
	m.detail.cursor = 0
	m.detail.carousels = carousels
	m.mode = browseModeDetail
	m.refreshDetail()
	m.detail.viewport.GotoTop()
}

func (m *browseModel) openRaw(c domain.Character) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		m.message = err.Error()
		m.messageStyle = ui.StyleError
		m.messageExpiry = time.Now().Add(3 * time.Second)
		return
	}
	m.raw.SetContent(highlightJSON(string(data)))
	m.raw.GotoTop()
	m.prevMode = m.mode
	m.mode = browseModeRaw
}

func (m *browseModel) refreshDetail() {
	m.detail.viewport.SetContent(m.renderDetail())
}

func (m browseModel) listHeight() int {
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	return h
}

func (m *browseModel) adjustOffset() {
	h := m.listHeight()
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func (m browseModel) selectedImageURL() string {
	d := m.detail
	if d.skills == nil || d.cursor >= d.skills.Visible {
		return ""
	}
	sk := d.character.Skills[d.cursor]
	if !sk.HasImages() {
		return ""
	}
	urls := sk.Images
	if m.imageURLs != nil {
		urls = m.imageURLs(d.character, sk)
	}
	return urls[d.carousels[d.cursor].Index]
}

func (m browseModel) View() string {
	if !m.ready {
		return "\n  Loading roster..."
	}

	switch m.mode {
	case browseModeHelp:
		return m.viewHelp()
	case browseModeDetail:
		return m.viewDetail()
	case browseModeRaw:
		return m.viewRaw()
	default:
		return m.viewList()
	}
}

func (m browseModel) viewList() string {
	var s strings.Builder

	s.WriteString(m.renderHeader(fmt.Sprintf("%d/%d characters", m.pager.Visible, m.pager.Total)))
	s.WriteString("\n")
	s.WriteString(m.renderFilterBar())
	s.WriteString("\n")
	s.WriteString(m.renderChips())
	s.WriteString("\n\n")
	s.WriteString(m.renderRoster())
	s.WriteString("\n")
	s.WriteString(m.renderFooter("[↑↓/jk] Navigate  [Enter] Moves  [/] Filter  [Tab] Next name  [?] Help  [q] Quit"))

	return s.String()
}

func (m browseModel) viewDetail() string {
	var s strings.Builder

	d := m.detail
	s.WriteString(m.renderHeader(fmt.Sprintf("%d/%d moves", d.skills.Visible, d.skills.Total)))
	s.WriteString("\n\n")
	s.WriteString(d.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderFooter("[↑↓/jk] Move  [←→/hl] Image  [y] Copy URL  [r] Raw  [Esc] Back  [q] Quit"))

	return s.String()
}

func (m browseModel) viewRaw() string {
	var s strings.Builder

	s.WriteString(m.renderHeader("raw record"))
	s.WriteString("\n\n")
	s.WriteString(m.raw.View())
	s.WriteString("\n")
	s.WriteString(m.renderFooter("[PgUp/PgDn] Scroll  [Esc/r] Back  [q] Quit"))

	return s.String()
}

func (m browseModel) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	h := m.help
	h.ShowAll = true

	return titleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		lipgloss.NewStyle().Padding(0, 2).Render(h.View(m.keys)) + "\n\n" +
		ui.StyleMuted.Render("  Press ? or Esc to return")
}

func (m browseModel) renderHeader(stats string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Align(lipgloss.Right)

	label := "KOF97 角色"
	if m.mode == browseModeDetail || m.mode == browseModeRaw {
		label = m.detail.character.Name
		if m.mode == browseModeRaw && m.prevMode == browseModeList && m.pager.Visible > 0 {
			label = m.filtered[m.cursor].Name
		}
	}

	title := titleStyle.Render(ui.IconFighter + " " + label)
	right := statsStyle.Render(stats)

	spacer := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", spacer), right)
}

func (m browseModel) renderFilterBar() string {
	borderColor := ui.ColorMuted
	if m.mode == browseModeFilter {
		borderColor = ui.ColorPrimary
	}

	barStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	if m.width > 4 {
		barStyle = barStyle.Width(m.width - 4)
	}

	var content string
	switch {
	case m.mode == browseModeFilter:
		content = ui.StylePrimary.Render("名字 ") + m.filterInput.View()
	case m.filter != "":
		content = ui.StyleMuted.Render("名字 ") + m.filter
	default:
		content = ui.StyleMuted.Render("名字 Press / to filter...")
	}

	return barStyle.Render(content)
}

func (m browseModel) renderChips() string {
	chips := make([]string, 0, len(m.names)+1)
	chips = append(chips, ui.FormatChip("全部", m.filter == ""))
	for _, n := range m.names {
		chips = append(chips, ui.FormatChip(n, n == m.filter))
	}
	return " " + strings.Join(chips, " ")
}

func (m browseModel) renderRoster() string {
	if m.pager.Visible == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(1, 4)
		if m.filter != "" {
			return emptyStyle.Render("No character named " + m.filter)
		}
		return emptyStyle.Render("No characters found.")
	}

	var s strings.Builder
	end := min(m.offset+m.listHeight(), m.pager.Visible)
	for i := m.offset; i < end; i++ {
		s.WriteString(m.renderRosterItem(m.filtered[i], i == m.cursor))
		s.WriteString("\n")
	}
	if m.pager.HasMore() {
		s.WriteString(ui.StyleMuted.Render(fmt.Sprintf("   ... %d more, keep scrolling", m.pager.Total-m.pager.Visible)))
		s.WriteString("\n")
	}
	return s.String()
}

func (m browseModel) renderRosterItem(c domain.Character, selected bool) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle()
	if selected {
		cursor = ui.StylePrimary.Render("▸ ")
		nameStyle = nameStyle.Foreground(ui.ColorPrimary).Bold(true)
	}

	name := padRight(nameStyle.Render(c.Name), 14)
	meta := ui.StyleMuted.Render(fmt.Sprintf("%2d moves  %-11s", c.SkillCount(), c.Avatar.Kind()))
	return cursor + name + " " + meta
}

// renderDetail renders the visible moves; the selected one shows its
// current carousel image.
func (m browseModel) renderDetail() string {
	d := m.detail
	if d.skills == nil {
		return ""
	}

	var s strings.Builder
	if m.avatarURL != nil {
		s.WriteString(ui.RenderKeyValue("Avatar", m.avatarURL(d.character)))
		s.WriteString("\n\n")
	}

	if d.skills.Total == 0 {
		s.WriteString(ui.StyleMuted.Render("No moves recorded."))
		return s.String()
	}

	for i, sk := range d.character.Skills[:d.skills.Visible] {
		selected := i == d.cursor
		marker := "  "
		nameStyle := ui.StyleBold
		if selected {
			marker = ui.StylePrimary.Render("▸ ")
			nameStyle = nameStyle.Foreground(ui.ColorPrimary)
		}

		line := marker + ui.IconMove + " " + nameStyle.Render(sk.Name)
		if sk.Type != "" {
			line += " " + ui.FormatMuted("["+sk.Type+"]")
		}
		s.WriteString(line + "\n")
		s.WriteString("     " + ui.FormatCommand(sk.Command) + "\n")
		if sk.Description != "" {
			s.WriteString("     " + ui.StyleSubtle.Render(sk.Description) + "\n")
		}

		if selected && sk.HasImages() {
			c := d.carousels[i]
			img := sk.Images[c.Index]
			if m.imageURLs != nil {
				img = m.imageURLs(d.character, sk)[c.Index]
			}
			s.WriteString(fmt.Sprintf("     %s %d/%d %s\n", ui.IconImage, c.Index+1, c.Len, ui.FormatMuted(img)))
		} else if sk.HasImages() {
			s.WriteString(ui.FormatMuted(fmt.Sprintf("     %s %d image(s)", ui.IconImage, len(sk.Images))) + "\n")
		}
		s.WriteString("\n")
	}

	if d.skills.HasMore() {
		s.WriteString(ui.StyleMuted.Render(fmt.Sprintf("   ... %d more moves, keep scrolling", d.skills.Total-d.skills.Visible)))
	}

	return s.String()
}

func (m browseModel) renderFooter(hint string) string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Ready")
	}

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	return footerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, ui.StyleMuted.Render(hint)))
}

func padRight(s string, width int) string {
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

func statusCmd(message string, style lipgloss.Style) tea.Cmd {
	return func() tea.Msg {
		return browseStatusMsg{message: message, style: style}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return browseStatusMsg{message: "Copy failed: " + err.Error(), style: ui.StyleError}
		}
		return browseStatusMsg{message: "Copied " + text, style: ui.StyleSuccess}
	}
}

// highlightJSON applies syntax highlighting to a JSON record
func highlightJSON(content string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	var buf strings.Builder
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	if err := formatters.TTY16m.Format(&buf, style, iterator); err != nil {
		return content
	}

	return buf.String()
}
