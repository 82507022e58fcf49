package game

import (
	"fmt"
	"strconv"
)

// Difficulty is a campaign difficulty. Its discriminant names the
// difficulty{N}progress.bepis file and indexes per-difficulty arrays.
type Difficulty uint8

const (
	Harmless Difficulty = 0
	Lenient  Difficulty = 1
	Standard Difficulty = 2
	Violent  Difficulty = 3
)

// DifficultySlots is the length of every per-difficulty array in the save
// files. The game reserves slots for difficulties that are not selectable yet.
const DifficultySlots = 6

var difficultyNames = [...]string{
	Harmless: "Harmless",
	Lenient:  "Lenient",
	Standard: "Standard",
	Violent:  "Violent",
}

// Difficulties returns every difficulty in discriminant order.
func Difficulties() []Difficulty {
	return []Difficulty{Harmless, Lenient, Standard, Violent}
}

// DifficultyFromRepr maps a stored discriminant back to a Difficulty.
func DifficultyFromRepr(v int) (Difficulty, bool) {
	if v < 0 || v >= len(difficultyNames) {
		return 0, false
	}
	return Difficulty(v), true
}

func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

// FileInfix is the part of the save file name that identifies the difficulty.
func (d Difficulty) FileInfix() string {
	return strconv.Itoa(int(d))
}

// Next and Prev cycle through the selectable difficulties.
func (d Difficulty) Next() Difficulty {
	return Difficulty((int(d) + 1) % len(difficultyNames))
}

func (d Difficulty) Prev() Difficulty {
	return Difficulty((int(d) + len(difficultyNames) - 1) % len(difficultyNames))
}

// ParseDifficulty reads a difficulty from its discriminant.
func ParseDifficulty(s string) (Difficulty, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse difficulty %q: %w", s, err)
	}
	d, ok := DifficultyFromRepr(n)
	if !ok {
		return 0, fmt.Errorf("difficulty %d: %w", n, ErrInvalidVariant)
	}
	return d, nil
}
