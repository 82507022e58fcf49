// Package snapshot converts a save slot to and from a human-editable YAML
// document.
package snapshot

import (
	"fmt"

	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/internal/progress"
)

// Snapshot is the YAML form of a save slot. Catalog members are written by
// display name. Levels and difficulties without a file are left out.
type Snapshot struct {
	General      General               `yaml:"general"`
	Cybergrind   Cybergrind            `yaml:"cybergrind"`
	Difficulties map[string]Difficulty `yaml:"difficulties,omitempty"`
	Levels       map[string]Level      `yaml:"levels,omitempty"`
}

type General struct {
	FileExists        bool              `yaml:"file_exists"`
	Money             string            `yaml:"money"`
	IntroSeen         bool              `yaml:"intro_seen"`
	TutorialBeat      bool              `yaml:"tutorial_beat"`
	ClashModeUnlocked bool              `yaml:"clash_mode_unlocked"`
	UnlockedWeapons   []string          `yaml:"unlocked_weapons,omitempty"`
	Customizable      []string          `yaml:"customizable,omitempty"`
	Unlockables       []string          `yaml:"unlockables,omitempty"`
	LimboSwitches     [4]bool           `yaml:"limbo_switches,flow"`
	SecretMissions    map[string]string `yaml:"secret_missions,omitempty"`
	Enemies           map[string]string `yaml:"enemies,omitempty"`
}

type Cybergrind struct {
	FileExists bool      `yaml:"file_exists"`
	Waves      [6]string `yaml:"waves,flow"`
	Kills      [6]string `yaml:"kills,flow"`
	Style      [6]string `yaml:"style,flow"`
	Times      [6]string `yaml:"times,flow"`
}

type Difficulty struct {
	CurrentLevel string    `yaml:"current_level"`
	PrimeLevels  [3]string `yaml:"prime_levels,flow"`
}

type Level struct {
	Ranks        [6]string `yaml:"ranks,flow"`
	Secrets      []bool    `yaml:"secrets,flow"`
	Challenge    bool      `yaml:"challenge"`
	MajorAssists [6]bool   `yaml:"major_assists,flow"`
}

// Export captures c. Only non-default bestiary and mission entries are listed.
func Export(c *progress.Classes) *Snapshot {
	g := c.General
	s := &Snapshot{
		General: General{
			FileExists:        g.FileExists,
			Money:             g.Money,
			IntroSeen:         g.IntroSeen,
			TutorialBeat:      g.TutorialBeat,
			ClashModeUnlocked: g.ClashModeUnlocked,
			UnlockedWeapons:   setNames(game.UnlockableWeaponVariants(), g.UnlockedWeapons),
			Customizable:      setNames(game.CustomizableWeaponTypes(), g.WeaponsCustomizable),
			Unlockables:       setNames(game.UnlockableTypes(), g.UnlockablesFound),
			LimboSwitches:     g.LimboSwitches,
			SecretMissions:    lockNames(g.SecretMissions),
			Enemies:           lockNames(g.EnemiesDiscovered),
		},
		Cybergrind: Cybergrind{
			FileExists: c.Cybergrind.FileExists,
			Waves:      c.Cybergrind.Waves,
			Kills:      c.Cybergrind.Kills,
			Style:      c.Cybergrind.Style,
			Times:      c.Cybergrind.Times,
		},
		Difficulties: make(map[string]Difficulty),
		Levels:       make(map[string]Level),
	}

	for d, rec := range c.Difficulties {
		if !rec.FileExists {
			continue
		}
		var primes [3]string
		for i, l := range rec.PrimeLevels {
			primes[i] = l.String()
		}
		s.Difficulties[d.String()] = Difficulty{CurrentLevel: rec.CurrentLevel.String(), PrimeLevels: primes}
	}
	for l, rec := range c.Levels {
		if !rec.FileExists {
			continue
		}
		var ranks [6]string
		for i, r := range rec.Ranks {
			ranks[i] = r.String()
		}
		s.Levels[l.FileInfix()] = Level{
			Ranks:        ranks,
			Secrets:      append([]bool{}, rec.SecretsFound...),
			Challenge:    rec.Challenge,
			MajorAssists: rec.MajorAssists,
		}
	}
	return s
}

// Apply builds the slot s describes. Every record s leaves out is a default
// record with no file.
func (s *Snapshot) Apply() (*progress.Classes, error) {
	c := progress.NewClasses()

	g := c.General
	if err := progress.ValidateCount(s.General.Money); err != nil {
		return nil, fmt.Errorf("general.money: %w", err)
	}
	g.FileExists = s.General.FileExists
	g.Money = s.General.Money
	g.IntroSeen = s.General.IntroSeen
	g.TutorialBeat = s.General.TutorialBeat
	g.ClashModeUnlocked = s.General.ClashModeUnlocked
	g.LimboSwitches = s.General.LimboSwitches
	if err := markSet("general.unlocked_weapons", game.UnlockableWeaponVariants(), s.General.UnlockedWeapons, g.UnlockedWeapons); err != nil {
		return nil, err
	}
	if err := markSet("general.customizable", game.CustomizableWeaponTypes(), s.General.Customizable, g.WeaponsCustomizable); err != nil {
		return nil, err
	}
	if err := markSet("general.unlockables", game.UnlockableTypes(), s.General.Unlockables, g.UnlockablesFound); err != nil {
		return nil, err
	}
	if err := applyLocks("general.secret_missions", game.SecretLevels(), s.General.SecretMissions, g.SecretMissions); err != nil {
		return nil, err
	}
	if err := applyLocks("general.enemies", game.EnemyTypes(), s.General.Enemies, g.EnemiesDiscovered); err != nil {
		return nil, err
	}

	cg := c.Cybergrind
	cg.FileExists = s.Cybergrind.FileExists
	for i := range game.DifficultySlots {
		for _, f := range []struct {
			name     string
			src, dst *string
			validate func(string) error
		}{
			{"waves", &s.Cybergrind.Waves[i], &cg.Waves[i], progress.ValidateDecimal},
			{"kills", &s.Cybergrind.Kills[i], &cg.Kills[i], progress.ValidateCount},
			{"style", &s.Cybergrind.Style[i], &cg.Style[i], progress.ValidateCount},
			{"times", &s.Cybergrind.Times[i], &cg.Times[i], progress.ValidateDecimal},
		} {
			if err := f.validate(*f.src); err != nil {
				return nil, fmt.Errorf("cybergrind.%s[%d]: %w", f.name, i, err)
			}
			*f.dst = *f.src
		}
	}

	for name, in := range s.Difficulties {
		d, err := lookup("difficulties", game.Difficulties(), name)
		if err != nil {
			return nil, err
		}
		rec := c.Difficulties[d]
		rec.FileExists = true
		if rec.CurrentLevel, err = lookup("difficulties."+name+".current_level", progress.CurrentLevels(), in.CurrentLevel); err != nil {
			return nil, err
		}
		for i, p := range in.PrimeLevels {
			if rec.PrimeLevels[i], err = lookup("difficulties."+name+".prime_levels", lockables, p); err != nil {
				return nil, err
			}
		}
	}

	for id, in := range s.Levels {
		l, err := game.ParseLevel(id)
		if err != nil {
			return nil, fmt.Errorf("levels: %w", err)
		}
		rec := c.Levels[l]
		rec.FileExists = true
		rec.Challenge = in.Challenge
		rec.MajorAssists = in.MajorAssists
		rec.SecretsFound = append([]bool{}, in.Secrets...)
		for i, r := range in.Ranks {
			if rec.Ranks[i], err = lookup("levels."+id+".ranks", game.Ranks(), r); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

var lockables = []game.Lockable{game.Locked, game.Unlocked, game.Completed}

func lookup[K fmt.Stringer](field string, all []K, name string) (K, error) {
	for _, k := range all {
		if k.String() == name {
			return k, nil
		}
	}
	var zero K
	return zero, fmt.Errorf("%s: %q: %w", field, name, game.ErrInvalidVariant)
}

func setNames[K fmt.Stringer](all []K, set map[K]bool) []string {
	var out []string
	for _, k := range all {
		if set[k] {
			out = append(out, k.String())
		}
	}
	return out
}

func markSet[K fmt.Stringer](field string, all []K, names []string, dst map[K]bool) error {
	for _, name := range names {
		k, err := lookup(field, all, name)
		if err != nil {
			return err
		}
		dst[k] = true
	}
	return nil
}

func lockNames[K interface {
	comparable
	fmt.Stringer
}](m map[K]game.Lockable) map[string]string {
	out := make(map[string]string)
	for k, l := range m {
		if l != game.Locked {
			out[k.String()] = l.String()
		}
	}
	return out
}

func applyLocks[K fmt.Stringer](field string, all []K, names map[string]string, dst map[K]game.Lockable) error {
	for name, state := range names {
		k, err := lookup(field, all, name)
		if err != nil {
			return err
		}
		if dst[k], err = lookup(field+"."+name, lockables, state); err != nil {
			return err
		}
	}
	return nil
}
