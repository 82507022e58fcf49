package ui

import (
	"fmt"
	"strconv"

	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/internal/progress"
)

// Tab identifies one page of the editor.
type Tab int

const (
	TabLevels Tab = iota
	TabGeneral
	TabCybergrind
	TabDifficulty
)

const tabCount = 4

var tabLabels = [tabCount]string{
	TabLevels:     "Levels",
	TabGeneral:    "General",
	TabCybergrind: "Cybergrind",
	TabDifficulty: "Difficulty",
}

func (t Tab) String() string {
	if t >= 0 && int(t) < tabCount {
		return tabLabels[t]
	}
	return "unknown"
}

func (t Tab) Next() Tab { return Tab((int(t) + 1) % tabCount) }
func (t Tab) Prev() Tab { return Tab((int(t) + tabCount - 1) % tabCount) }

// textField is a number edited as free text.
type textField struct {
	get      func() string
	set      func(string)
	sanitize func(string) string
}

// row is one line of a tab. Section rows only carry a label. The other rows
// edit a single value through toggle, cycle or text.
type row struct {
	label   string
	section bool
	value   func() string
	toggle  func()
	cycle   func(delta int) error
	text    *textField
}

func (r row) selectable() bool { return !r.section }

func section(label string) row { return row{label: label, section: true} }

func boolRow(label string, p *bool) row {
	return row{
		label:  label,
		value:  func() string { return checkbox(*p) },
		toggle: func() { *p = !*p },
	}
}

func mapBoolRow[K comparable](label string, m map[K]bool, k K) row {
	return row{
		label:  label,
		value:  func() string { return checkbox(m[k]) },
		toggle: func() { m[k] = !m[k] },
	}
}

func lockableRow[K comparable](label string, m map[K]game.Lockable, k K, name func(game.Lockable) string) row {
	return row{
		label: label,
		value: func() string { return name(m[k]) },
		cycle: func(delta int) error {
			if delta > 0 {
				m[k] = m[k].Next()
			} else {
				m[k] = m[k].Prev()
			}
			return nil
		},
	}
}

func fileRow(p *bool) row {
	return row{
		label: "save file",
		value: func() string {
			if *p {
				return "present"
			}
			return "absent"
		},
		toggle: func() { *p = !*p },
	}
}

func countRow(label string, p *string) row {
	return row{
		label: label,
		value: func() string { return *p },
		text: &textField{
			get:      func() string { return *p },
			set:      func(s string) { *p = s },
			sanitize: progress.SanitizeUnsigned,
		},
	}
}

func decimalRow(label string, p *string) row {
	r := countRow(label, p)
	r.text.sanitize = progress.SanitizeDecimal
	return r
}

func checkbox(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

// buildRows lays out tab t for difficulty d.
func buildRows(c *progress.Classes, t Tab, d game.Difficulty) []row {
	switch t {
	case TabLevels:
		return levelRows(c, d)
	case TabGeneral:
		return generalRows(c.General)
	case TabCybergrind:
		return cybergrindRows(c.Cybergrind, d)
	case TabDifficulty:
		return difficultyRows(c, d)
	}
	return nil
}

func levelRows(c *progress.Classes, d game.Difficulty) []row {
	var rows []row
	for _, act := range game.Acts() {
		for _, layer := range act.Layers() {
			if len(layer.Levels()) == 0 {
				continue
			}
			rows = append(rows, section(fmt.Sprintf("%s / %s", act, layer)))
			for _, level := range layer.Levels() {
				rec, ok := c.Levels[level]
				if !ok {
					rec = progress.NewLevelData(level)
					c.Levels[level] = rec
				}
				rows = append(rows, levelRecordRows(c, rec, level, d)...)
			}
		}
	}
	return rows
}

func levelRecordRows(c *progress.Classes, rec *progress.LevelData, level game.Level, d game.Difficulty) []row {
	rows := []row{
		{label: level.String(), section: true},
		fileRow(&rec.FileExists),
		{
			label: "rank",
			value: func() string { return rec.Ranks[d].String() },
			cycle: func(delta int) error {
				if delta > 0 {
					rec.Ranks[d] = rec.Ranks[d].Next()
				} else {
					rec.Ranks[d] = rec.Ranks[d].Prev()
				}
				return nil
			},
		},
		boolRow("challenge", &rec.Challenge),
		boolRow("major assists", &rec.MajorAssists[d]),
	}
	for i := range rec.SecretsFound {
		rows = append(rows, boolRow("secret "+strconv.Itoa(i+1), &rec.SecretsFound[i]))
	}
	if i, ok := level.PrimeIndex(); ok {
		rows = append(rows, primeRow(c, d, level, i))
	}
	return rows
}

func primeRow(c *progress.Classes, d game.Difficulty, level game.Level, i int) row {
	current := func() game.Lockable {
		if rec, ok := c.Difficulties[d]; ok {
			return rec.PrimeLevels[i]
		}
		return game.Locked
	}
	return row{
		label: "prime state",
		value: func() string { return current().String() },
		cycle: func(delta int) error {
			next := current().Next()
			if delta < 0 {
				next = current().Prev()
			}
			return c.SetPrimeLevel(d, level, next)
		},
	}
}

func generalRows(g *progress.GeneralData) []row {
	rows := []row{
		fileRow(&g.FileExists),
		countRow("money", &g.Money),
		boolRow("intro seen", &g.IntroSeen),
		boolRow("tutorial beaten", &g.TutorialBeat),
		boolRow("clash mode unlocked", &g.ClashModeUnlocked),
		section("Secret missions"),
	}
	for _, s := range game.SecretLevels() {
		if s.IsPrime() {
			continue
		}
		rows = append(rows, lockableRow(s.String(), g.SecretMissions, s, game.Lockable.String))
	}

	rows = append(rows, section("Limbo switches"))
	for i := range g.LimboSwitches {
		rows = append(rows, boolRow("switch "+strconv.Itoa(i+1), &g.LimboSwitches[i]))
	}

	rows = append(rows, section("Weapons"))
	for _, w := range game.WeaponTypes() {
		if c, ok := w.Customizable(); ok {
			rows = append(rows, mapBoolRow(w.String()+" customization", g.WeaponsCustomizable, c))
		}
		for _, v := range w.Variants() {
			rows = append(rows, mapBoolRow(v.String(), g.UnlockedWeapons, v))
		}
	}

	rows = append(rows, section("Unlockables"))
	for _, u := range game.UnlockableTypes() {
		rows = append(rows, mapBoolRow(u.String(), g.UnlockablesFound, u))
	}

	rows = append(rows, section("Enemies"))
	for _, e := range game.EnemyTypes() {
		rows = append(rows, lockableRow(e.String(), g.EnemiesDiscovered, e, game.Lockable.DiscoveryLabel))
	}
	return rows
}

func cybergrindRows(cg *progress.CybergrindData, d game.Difficulty) []row {
	return []row{
		fileRow(&cg.FileExists),
		decimalRow("waves", &cg.Waves[d]),
		countRow("kills", &cg.Kills[d]),
		countRow("style", &cg.Style[d]),
		decimalRow("time", &cg.Times[d]),
	}
}

func difficultyRows(c *progress.Classes, d game.Difficulty) []row {
	rec, ok := c.Difficulties[d]
	if !ok {
		rec = progress.NewDifficultyData(d)
		c.Difficulties[d] = rec
	}
	levels := progress.CurrentLevels()
	rows := []row{
		fileRow(&rec.FileExists),
		{
			label: "current level",
			value: func() string { return rec.CurrentLevel.String() },
			cycle: func(delta int) error {
				i := indexOf(levels, rec.CurrentLevel)
				rec.CurrentLevel = levels[(i+delta+len(levels))%len(levels)]
				return nil
			},
		},
		section("Prime sanctums"),
	}
	for _, level := range game.Levels() {
		if i, ok := level.PrimeIndex(); ok {
			r := primeRow(c, d, level, i)
			r.label = level.String()
			rows = append(rows, r)
		}
	}
	return rows
}

func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return 0
}
