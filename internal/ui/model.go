// Package ui is the interactive editor for one save slot.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/internal/progress"
)

// Our own saves show up in the watcher too; changes this soon after a save
// are not reported as stale.
const selfWriteGrace = time.Second

type Model struct {
	// dependencies
	dir     string
	classes *progress.Classes
	logger  *zap.Logger
	watcher *Watcher
	keys    KeyMap

	// editor state
	tab        Tab
	difficulty game.Difficulty
	rows       []row
	cursor     int
	offset     int
	editing    bool
	input      textinput.Model
	dirty      bool
	stale      bool
	quitArmed  bool
	savedAt    time.Time
	status     string
	statusErr  bool

	// view state
	width, height int
	viewportReady bool
}

// NewModel opens the editor on classes loaded from dir. watcher may be nil.
func NewModel(dir string, classes *progress.Classes, d game.Difficulty, logger *zap.Logger, watcher *Watcher) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.CharLimit = 16
	input.Prompt = ""

	m := Model{
		dir:        dir,
		classes:    classes,
		logger:     logger,
		watcher:    watcher,
		keys:       DefaultKeyMap(),
		difficulty: d,
		input:      input,
	}
	m.rebuild()
	return m
}

// Difficulty is the difficulty the editor was showing.
func (m Model) Difficulty() game.Difficulty { return m.difficulty }

// Dirty reports whether there are edits that have not been saved.
func (m Model) Dirty() bool { return m.dirty }

func (m Model) Init() tea.Cmd {
	return waitForChange(m.watcher)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewportReady = true
		m.scrollToCursor()
		return m, nil

	case filesChangedMsg:
		if time.Since(m.savedAt) > selfWriteGrace {
			m.stale = true
			m.setStatus(fmt.Sprintf("%s changed on disk, ctrl+r reloads", msg.name), false)
			m.logger.Debug("save file changed outside the editor", zap.String("file", msg.name))
		}
		return m, waitForChange(m.watcher)

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.quitArmed = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && !m.quitArmed {
			m.quitArmed = true
			m.setStatus("unsaved changes, press q again to quit", true)
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.NextTab):
		m.tab = m.tab.Next()
		m.cursor, m.offset = 0, 0
		m.rebuild()
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = m.tab.Prev()
		m.cursor, m.offset = 0, 0
		m.rebuild()

	case key.Matches(msg, m.keys.NextDifficulty):
		m.difficulty = m.difficulty.Next()
		m.rebuild()
	case key.Matches(msg, m.keys.PrevDifficulty):
		m.difficulty = m.difficulty.Prev()
		m.rebuild()

	case key.Matches(msg, m.keys.Toggle):
		return m.activate()
	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycle(1)

	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Reload):
		m.reload()
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := EditKeyMap()
	switch {
	case key.Matches(msg, keys.Cancel):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, keys.Toggle):
		m.commit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok {
		return m, nil
	}
	switch {
	case r.toggle != nil:
		r.toggle()
		m.changed()
	case r.cycle != nil:
		m.cycle(1)
	case r.text != nil:
		m.editing = true
		m.input.SetValue(r.text.get())
		m.input.CursorEnd()
		m.setStatus("", false)
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *Model) cycle(delta int) {
	r, ok := m.current()
	if !ok || r.cycle == nil {
		return
	}
	if err := r.cycle(delta); err != nil {
		m.setStatus(r.label+": "+err.Error(), true)
		return
	}
	m.changed()
}

// commit stores the sanitized input. Text with no usable number stays in the
// input so it can be corrected.
func (m *Model) commit() {
	r, ok := m.current()
	if !ok || r.text == nil {
		m.stopEditing()
		return
	}
	raw := strings.TrimSpace(m.input.Value())
	clean := r.text.sanitize(raw)
	if clean == "" && raw != "" {
		m.setStatus(fmt.Sprintf("%q is not a valid %s", raw, r.label), true)
		return
	}
	if clean == "" {
		clean = "0"
	}
	if clean != r.text.get() {
		r.text.set(clean)
		m.changed()
	}
	m.stopEditing()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) changed() {
	m.dirty = true
}

func (m *Model) save() {
	err := m.classes.Save(m.dir, progress.WithLogger(m.logger))
	m.savedAt = time.Now()
	if err != nil {
		m.logger.Warn("save failed", zap.String("dir", m.dir), zap.Error(err))
		m.setStatus("save failed: "+err.Error(), true)
		return
	}
	m.dirty = false
	m.stale = false
	m.setStatus("saved", false)
}

func (m *Model) reload() {
	classes, err := progress.Load(m.dir, progress.WithLogger(m.logger))
	if err != nil {
		m.logger.Warn("reload failed", zap.String("dir", m.dir), zap.Error(err))
		m.setStatus("reload failed: "+err.Error(), true)
		return
	}
	m.classes = classes
	m.dirty = false
	m.stale = false
	m.rebuild()
	m.setStatus("reloaded", false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// rebuild lays out the current tab and puts the cursor back on a selectable row.
func (m *Model) rebuild() {
	m.rows = buildRows(m.classes, m.tab, m.difficulty)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if r, ok := m.current(); ok && !r.selectable() {
		m.moveCursor(1)
	}
	m.scrollToCursor()
}

func (m *Model) moveCursor(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.rows); i += delta {
		if m.rows[i].selectable() {
			m.cursor = i
			break
		}
	}
	m.scrollToCursor()
}

func (m *Model) bodyHeight() int {
	if !m.viewportReady {
		return len(m.rows)
	}
	// header, tabs, status and footer take a line each
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) scrollToCursor() {
	h := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
		// keep the section heading above the first row in view
		if m.offset > 0 && m.rows[m.offset-1].section {
			m.offset--
		}
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m Model) View() string {
	if !m.viewportReady {
		return "Loading save slot..."
	}

	title := fmt.Sprintf("ULTRAKILL save editor  %s  difficulty: %s", m.dir, m.difficulty)
	if m.dirty {
		title += "  [modified]"
	}
	if m.stale {
		title += "  [changed on disk]"
	}
	header := styleHeader.Width(m.width).Render(title)

	var tabs []string
	for t := Tab(0); int(t) < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, styleTabActive.Render(t.String()))
		} else {
			tabs = append(tabs, styleTab.Render(t.String()))
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	h := m.bodyHeight()
	end := m.offset + h
	if end > len(m.rows) {
		end = len(m.rows)
	}
	lines := make([]string, 0, h)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}
	body := lipgloss.NewStyle().Width(m.width).Height(h).Render(strings.Join(lines, "\n"))

	status := styleStatus.Render(m.status)
	if m.statusErr {
		status = styleError.Render(m.status)
	}

	bindings := browseBindings(m.keys)
	if m.editing {
		bindings = editBindings(EditKeyMap())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabLine, body, status, footer(bindings))
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]
	if r.section {
		return styleSection.Render(r.label)
	}
	indicator := "  "
	label := styleLabel.Render(fmt.Sprintf("%-32s", r.label))
	if i == m.cursor {
		indicator = styleSelected.Render(selectionIndicator) + " "
		label = styleSelected.Render(fmt.Sprintf("%-32s", r.label))
	}

	value := r.value()
	switch {
	case i == m.cursor && m.editing:
		value = m.input.View()
	case value == "absent" || value == "[ ]":
		value = styleAbsent.Render(value)
	default:
		value = styleValue.Render(value)
	}
	return indicator + label + " " + value
}

func footer(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		parts = append(parts, styleFooterKey.Render(help.Key)+" "+styleFooterDesc.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}
