package ui

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/internal/progress"
)

func newTestModel(t *testing.T) (Model, string) {
	t.Helper()
	dir := t.TempDir()
	m := NewModel(dir, progress.NewClasses(), game.Harmless, nil, nil)
	return send(m, tea.WindowSizeMsg{Width: 240, Height: 40}), dir
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyBack     = tea.KeyMsg{Type: tea.KeyBackspace}
	keySave     = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyReload   = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func (m Model) selected(t *testing.T) row {
	t.Helper()
	r, ok := m.current()
	if !ok {
		t.Fatal("no row selected")
	}
	return r
}

func TestLevelsTab_ToggleAndCycle(t *testing.T) {
	m, _ := newTestModel(t)
	level := m.classes.Levels[game.IntoTheFire]

	if got := m.selected(t).label; got != "save file" {
		t.Fatalf("expected the cursor to start on the first editable row, got %q", got)
	}

	m = send(m, keySpace)
	if !level.FileExists {
		t.Error("space should claim the level file")
	}
	if !m.Dirty() {
		t.Error("expected the model to be dirty after an edit")
	}

	m = send(m, keyDown, keyRight)
	if level.Ranks[game.Harmless] != game.RankD {
		t.Errorf("rank = %v, want D", level.Ranks[game.Harmless])
	}
	m = send(m, keyLeft, keyLeft)
	if level.Ranks[game.Harmless] != game.RankP {
		t.Errorf("rank = %v, want P after cycling back past None", level.Ranks[game.Harmless])
	}

	m = send(m, runes("]"), keyRight)
	if m.Difficulty() != game.Lenient {
		t.Fatalf("difficulty = %v, want Lenient", m.Difficulty())
	}
	if level.Ranks[game.Lenient] != game.RankD {
		t.Errorf("Lenient rank = %v, want D", level.Ranks[game.Lenient])
	}
	if level.Ranks[game.Harmless] != game.RankP {
		t.Error("editing Lenient must not touch Harmless")
	}

	m = send(m, keyDown, keyDown, keySpace)
	if !level.MajorAssists[game.Lenient] {
		t.Error("expected major assists to be set for Lenient")
	}
	m = send(m, keyUp, keySpace)
	if !level.Challenge {
		t.Error("expected challenge to be set")
	}
}

func TestLevelsTab_SkipsSections(t *testing.T) {
	m, _ := newTestModel(t)
	secrets := game.IntoTheFire.SecretCount()
	// file, rank, challenge, major assists, secrets, then the next level's file
	for i := 0; i < 4+secrets; i++ {
		m = send(m, keyDown)
	}
	if got := m.selected(t).label; got != "save file" {
		t.Fatalf("expected to land on the next level's file row, got %q", got)
	}
	m = send(m, keySpace)
	if !m.classes.Levels[game.TheMeatgrinder].FileExists {
		t.Error("expected the second level's file to be claimed")
	}

	m = send(m, keyUp)
	if got := m.selected(t).label; got != "secret "+strconv.Itoa(secrets) {
		t.Errorf("moving up should skip the level heading, got %q", got)
	}
}

func TestGeneralTab_EditMoney(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyTab, keyDown)
	if got := m.selected(t).label; got != "money" {
		t.Fatalf("expected money row, got %q", got)
	}

	m = send(m, keyEnter)
	if !m.editing {
		t.Fatal("enter on a number should start editing")
	}
	m = send(m, keyBack, runes("500"), keyEnter)
	if m.editing {
		t.Error("enter should commit the edit")
	}
	if got := m.classes.General.Money; got != "500" {
		t.Errorf("money = %q, want 500", got)
	}
	if !m.Dirty() {
		t.Error("expected the model to be dirty")
	}
}

func TestGeneralTab_RejectsGarbage(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyTab, keyDown, keyEnter, keyBack, runes("abc"), keyEnter)

	if !m.editing {
		t.Error("an unusable value should keep the input open")
	}
	if !m.statusErr || !strings.Contains(m.status, "abc") {
		t.Errorf("expected an error status naming the input, got %q", m.status)
	}
	if m.classes.General.Money != "0" {
		t.Errorf("money changed to %q", m.classes.General.Money)
	}

	m = send(m, keyEsc)
	if m.editing {
		t.Error("esc should cancel editing")
	}
	if m.Dirty() {
		t.Error("a cancelled edit must not dirty the model")
	}
}

func TestGeneralTab_SanitizesInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyTab, keyDown, keyEnter, keyBack, runes("1,250g"), keyEnter)
	if got := m.classes.General.Money; got != "1250" {
		t.Errorf("money = %q, want 1250", got)
	}
}

func TestGeneralTab_SecretMissionsAndEnemies(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyTab)

	var labels []string
	for _, r := range m.rows {
		labels = append(labels, r.label)
	}
	joined := strings.Join(labels, "\n")
	if strings.Contains(joined, game.SoulSurvivorSecret.String()) {
		t.Error("prime sanctums belong to the difficulty records, not the secret missions")
	}
	if !strings.Contains(joined, game.SomethingWicked.String()) {
		t.Error("expected the secret missions to be listed")
	}
	if !strings.Contains(joined, game.EnemyCerberus.String()) {
		t.Error("expected the bestiary to be listed")
	}
}

func TestCybergrindTab_EditDecimal(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyTab, keyTab, runes("]"), keyDown)
	if got := m.selected(t).label; got != "waves" {
		t.Fatalf("expected waves row, got %q", got)
	}
	m = send(m, keyEnter, keyBack, runes("30.5.2"), keyEnter)
	if got := m.classes.Cybergrind.Waves[game.Lenient]; got != "30.52" {
		t.Errorf("waves = %q, want 30.52", got)
	}
	if got := m.classes.Cybergrind.Waves[game.Harmless]; got != "0" {
		t.Errorf("Harmless waves changed to %q", got)
	}
}

func TestDifficultyTab_PrimeAndCurrentLevel(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyShiftTab)
	rec := m.classes.Difficulties[game.Harmless]

	m = send(m, keyDown, keyRight)
	if rec.CurrentLevel != game.TheMeatgrinder {
		t.Errorf("current level = %v, want 0-2", rec.CurrentLevel)
	}
	m = send(m, keyLeft, keyLeft)
	if rec.CurrentLevel != game.NoLevel {
		t.Errorf("current level = %v, want None", rec.CurrentLevel)
	}
	if rec.FileExists {
		t.Fatal("editing the current level must not claim the file by itself")
	}

	m = send(m, keyDown)
	if got := m.selected(t).label; got != game.SoulSurvivor.String() {
		t.Fatalf("expected the first prime sanctum, got %q", got)
	}
	m = send(m, keyRight)
	if rec.PrimeLevels[0] != game.Unlocked {
		t.Errorf("prime state = %v, want Unlocked", rec.PrimeLevels[0])
	}
	if !rec.FileExists {
		t.Error("setting a prime state should claim the difficulty file")
	}
}

func TestDifficultyTab_CurrentLevelSkipsReservedID(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyShiftTab, keyDown)
	rec := m.classes.Difficulties[game.Harmless]

	for i := range progress.CurrentLevels() {
		m = send(m, keyRight)
		if rec.CurrentLevel == game.GardenOfForkingPaths {
			t.Fatalf("step %d: current level landed on %v", i, rec.CurrentLevel)
		}
	}
	if rec.CurrentLevel != game.NoLevel {
		t.Errorf("a full cycle should wrap to None, got %v", rec.CurrentLevel)
	}

	rec.CurrentLevel = game.LightUpTheNight
	m = send(m, keyLeft)
	if rec.CurrentLevel == game.GardenOfForkingPaths {
		t.Error("cycling back from 7-2 must skip 7-1")
	}
	rec.FileExists = true
	if err := m.classes.Save(t.TempDir()); err != nil {
		t.Errorf("every selectable current level should save: %v", err)
	}
}

func TestCycle_ReportsRejectedState(t *testing.T) {
	m, _ := newTestModel(t)
	m.rows = []row{primeRow(m.classes, game.Harmless, game.IntoTheFire, 0)}
	m.cursor = 0

	m = send(m, keyRight)
	if !m.statusErr || !strings.Contains(m.status, "not a prime level") {
		t.Errorf("status = %q (error %v), want the rejection", m.status, m.statusErr)
	}
	if m.Dirty() {
		t.Error("a rejected change must not mark the model dirty")
	}
	if rec := m.classes.Difficulties[game.Harmless]; rec.FileExists {
		t.Error("a rejected change must not claim the difficulty file")
	}
}

func TestSave_WritesAndMarksClean(t *testing.T) {
	m, dir := newTestModel(t)
	m = send(m, keyTab, keySpace, keyDown, keyEnter, keyBack, runes("500"), keyEnter)
	if !m.Dirty() {
		t.Fatal("expected edits before saving")
	}

	m = send(m, keySave)
	if m.Dirty() {
		t.Error("save should mark the model clean")
	}
	if m.statusErr {
		t.Fatalf("save failed: %s", m.status)
	}
	if _, err := os.Stat(filepath.Join(dir, "generalprogress.bepis")); err != nil {
		t.Fatalf("expected generalprogress.bepis: %v", err)
	}

	loaded, err := progress.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.General.Money != "500" {
		t.Errorf("saved money = %q, want 500", loaded.General.Money)
	}
}

func TestReload_DiscardsEdits(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyTab, keySpace, keySave)
	m = send(m, keyDown, keyEnter, keyBack, runes("42"), keyEnter)

	m = send(m, keyReload)
	if m.Dirty() {
		t.Error("reload should discard edits")
	}
	if got := m.classes.General.Money; got != "0" {
		t.Errorf("money after reload = %q, want 0", got)
	}
	if !m.classes.General.FileExists {
		t.Error("expected the saved general file to load back")
	}
}

func TestQuit_AsksTwiceWhenDirty(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("a clean editor should quit at once")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit command")
	}

	m = send(next.(Model), keySpace)
	next, cmd = m.Update(runes("q"))
	if cmd != nil {
		t.Fatal("a dirty editor should ask before quitting")
	}
	_, cmd = next.(Model).Update(runes("q"))
	if cmd == nil {
		t.Fatal("the second q should quit")
	}
}

func TestFilesChanged_MarksStale(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, filesChangedMsg{name: "generalprogress.bepis"})
	if !m.stale {
		t.Error("an outside change should mark the view stale")
	}

	m = send(m, keySave, filesChangedMsg{name: "generalprogress.bepis"})
	if m.stale {
		t.Error("changes right after our own save should be ignored")
	}
}

func TestView_ShowsTabsAndRows(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Levels", "Cybergrind", "0-1: INTO THE FIRE", "save file", "difficulty: Harmless"} {
		if !strings.Contains(out, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	m = send(m, keySpace)
	if !strings.Contains(m.View(), "[modified]") {
		t.Error("expected the header to flag unsaved edits")
	}
}

func TestScroll_KeepsCursorVisible(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 10})
	for i := 0; i < 30; i++ {
		m = send(m, keyDown)
	}
	h := m.bodyHeight()
	if m.cursor < m.offset || m.cursor >= m.offset+h {
		t.Errorf("cursor %d outside window [%d,%d)", m.cursor, m.offset, m.offset+h)
	}
}
