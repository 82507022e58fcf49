package progress

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"ultrakill-save-editor/internal/game"
)

// Classes is every record of one save slot.
type Classes struct {
	General      *GeneralData
	Cybergrind   *CybergrindData
	Difficulties map[game.Difficulty]*DifficultyData
	Levels       map[game.Level]*LevelData
}

// NewClasses returns a slot with no files: every record at its default.
func NewClasses() *Classes {
	c := &Classes{
		General:      NewGeneralData(),
		Cybergrind:   NewCybergrindData(),
		Difficulties: make(map[game.Difficulty]*DifficultyData),
		Levels:       make(map[game.Level]*LevelData),
	}
	for _, d := range game.Difficulties() {
		c.Difficulties[d] = NewDifficultyData(d)
	}
	for _, l := range game.Levels() {
		c.Levels[l] = NewLevelData(l)
	}
	return c
}

// Load reads the slot in dir. Missing or damaged files load as defaults, so
// the only error is a dir that cannot be used as a slot directory.
func Load(dir string, opts ...Option) (*Classes, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	o.logger.Debug("loading save slot", zap.String("dir", dir))

	return &Classes{
		General:      generalDocument.load(dir, o),
		Difficulties: difficultyFamily.load(dir, o),
		Levels:       levelFamily.load(dir, o),
		Cybergrind:   cybergrindDocument.load(dir, o),
	}, nil
}

// Save writes every record that has a file and removes every file whose record
// has none. It stops at the first error; files already written stay written.
func (c *Classes) Save(dir string, opts ...Option) error {
	if err := checkDir(dir); err != nil {
		return err
	}
	o := newOptions(opts)

	if err := levelFamily.save(dir, c.Levels, o); err != nil {
		return err
	}
	if err := cybergrindDocument.save(dir, c.Cybergrind, o); err != nil {
		return err
	}
	if err := difficultyFamily.save(dir, c.Difficulties, o); err != nil {
		return err
	}
	if err := generalDocument.save(dir, c.General, o); err != nil {
		return err
	}
	o.logger.Debug("saved save slot", zap.String("dir", dir))
	return nil
}

// SetPrimeLevel records progress on a prime sanctum for one difficulty. The
// game keeps that progress in the difficulty file, so the file is claimed.
func (c *Classes) SetPrimeLevel(d game.Difficulty, level game.Level, state game.Lockable) error {
	i, ok := level.PrimeIndex()
	if !ok {
		return fmt.Errorf("%v is not a prime level: %w", level, game.ErrInvalidVariant)
	}
	rec, ok := c.Difficulties[d]
	if !ok {
		rec = NewDifficultyData(d)
		c.Difficulties[d] = rec
	}
	rec.PrimeLevels[i] = state
	rec.FileExists = true
	return nil
}

// FileStatus describes one record file of a slot.
type FileStatus struct {
	Name    string
	Class   string
	Claimed bool // the record wants the file to exist
	Present bool // the file exists on disk
}

// Files lists every file the slot can hold in save order.
func (c *Classes) Files(dir string) []FileStatus {
	var out []FileStatus
	add := func(name, class string, claimed bool) {
		_, err := os.Stat(filepath.Join(dir, name))
		out = append(out, FileStatus{Name: name, Class: class, Claimed: claimed, Present: err == nil})
	}
	for _, l := range game.Levels() {
		rec, ok := c.Levels[l]
		add(levelFamily.fileName(l), levelFamily.className, ok && rec.HasFile())
	}
	add(cybergrindDocument.fileName, cybergrindDocument.className, c.Cybergrind.HasFile())
	for _, d := range game.Difficulties() {
		rec, ok := c.Difficulties[d]
		add(difficultyFamily.fileName(d), difficultyFamily.className, ok && rec.HasFile())
	}
	add(generalDocument.fileName, generalDocument.className, c.General.HasFile())
	return out
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("save slot %s: %w", dir, ErrNotDirectory)
	}
	return nil
}
