// Package steam finds ULTRAKILL's save slots inside a Steam installation.
package steam

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"

	"ultrakill-save-editor/internal/game"
)

// ErrNotFound is returned when no Steam library holds the requested slot.
var ErrNotFound = errors.New("save slot not found")

// Locator searches Steam libraries for the game's Saves folder.
type Locator struct {
	Roots []string // Steam install roots, most preferred first
}

// NewLocator returns a locator that tries root first when it is set, then the
// install path Steam registers on this system, then the usual install paths.
func NewLocator(root string) *Locator {
	var roots []string
	if root != "" {
		roots = append(roots, root)
	}
	if reg, ok := registryRoot(); ok {
		roots = append(roots, reg)
	}
	roots = append(roots, defaultRoots()...)
	return &Locator{Roots: dedupe(roots)}
}

// SlotDir returns the directory of slot in the first library that has it.
func (l *Locator) SlotDir(slot game.SaveSlot) (string, error) {
	if _, ok := game.SaveSlotFromRepr(int(slot)); !ok {
		return "", fmt.Errorf("slot %d: %w", slot, game.ErrInvalidVariant)
	}
	var searched []string
	for _, lib := range l.Libraries() {
		dir := filepath.Join(lib, "steamapps", "common", "ULTRAKILL", "Saves", slot.DirName())
		searched = append(searched, dir)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	if len(searched) == 0 {
		return "", fmt.Errorf("%v: %w: no Steam installation found", slot, ErrNotFound)
	}
	return "", fmt.Errorf("%v: %w in %s", slot, ErrNotFound, strings.Join(searched, ", "))
}

// Libraries lists every existing Steam library: each root plus the extra
// library folders the root declares.
func (l *Locator) Libraries() []string {
	var libs []string
	for _, root := range l.Roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		libs = append(libs, root)
		libs = append(libs, libraryFolders(filepath.Join(root, "steamapps", "libraryfolders.vdf"))...)
	}
	return dedupe(libs)
}

// libraryFolders lists the library paths declared in Steam's
// libraryfolders.vdf. Current files nest each path in a numbered block.
// Older ones map the number straight to the path.
func libraryFolders(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	doc, err := vdf.NewParser(f).Parse()
	if err != nil {
		return nil
	}
	var folders map[string]interface{}
	for k, v := range doc {
		if strings.EqualFold(k, "libraryfolders") {
			folders, _ = v.(map[string]interface{})
		}
	}

	keys := make([]int, 0, len(folders))
	byKey := make(map[int]string, len(folders))
	for k, v := range folders {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		var p string
		switch entry := v.(type) {
		case string:
			p = entry
		case map[string]interface{}:
			p, _ = entry["path"].(string)
		}
		if p == "" {
			continue
		}
		keys = append(keys, n)
		byKey[n] = strings.ReplaceAll(p, `\\`, `\`)
	}
	sort.Ints(keys)

	out := make([]string, 0, len(keys))
	for _, n := range keys {
		out = append(out, byKey[n])
	}
	return out
}

func defaultRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
		filepath.Join(home, "Library", "Application Support", "Steam"),
	}
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		clean := filepath.Clean(p)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}
