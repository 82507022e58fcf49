package progress

import (
	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/pkg/nrbf"
)

// noLevel is what the game stores in levelNum when no level is in progress.
// It is also the id of 7-1, which therefore cannot be stored as the current
// level.
const noLevel int32 = 26

// CurrentLevels lists the values DifficultyData.CurrentLevel can hold:
// game.NoLevel followed by every level whose id does not collide with noLevel.
func CurrentLevels() []game.Level {
	out := []game.Level{game.NoLevel}
	for _, l := range game.Levels() {
		if int32(l) != noLevel {
			out = append(out, l)
		}
	}
	return out
}

// DifficultyData is difficulty{N}progress.bepis: campaign position and prime
// sanctum progress for one difficulty.
type DifficultyData struct {
	// CurrentLevel is game.NoLevel when no campaign is in progress.
	CurrentLevel game.Level
	PrimeLevels  [3]game.Lockable
	FileExists   bool
}

const (
	currentLevelField = "levelNum"
	difficultyField   = "difficulty"
	primeLevelsField  = "primeLevels"
)

var difficultyFamily = family[game.Difficulty, *DifficultyData]{
	className: "GameProgressData",
	prefix:    "difficulty",
	suffix:    "progress.bepis",
	variants:  game.Difficulties,
	parse:     parseDifficulty,
	create:    NewDifficultyData,
}

// NewDifficultyData returns a fresh campaign that starts at 0-1.
func NewDifficultyData(game.Difficulty) *DifficultyData {
	return &DifficultyData{CurrentLevel: game.IntoTheFire}
}

func (d *DifficultyData) HasFile() bool { return d.FileExists }

func parseDifficulty(c *nrbf.Class, _ game.Difficulty) (*DifficultyData, error) {
	d := &DifficultyData{FileExists: true}

	num, err := readField[nrbf.Int32](c, currentLevelField)
	if err != nil {
		return nil, err
	}
	if int32(num) != noLevel {
		level, ok := game.LevelFromID(int32(num))
		if !ok {
			return nil, unknownValue(currentLevelField, int32(num))
		}
		d.CurrentLevel = level
	}

	if _, err := readField[nrbf.Int32](c, difficultyField); err != nil {
		return nil, err
	}

	primes, err := readArray[nrbf.Int32Array](c, primeLevelsField, len(d.PrimeLevels))
	if err != nil {
		return nil, err
	}
	for i, v := range primes {
		l, ok := game.LockableFromRepr(v)
		if !ok {
			return nil, unknownValue(primeLevelsField, v)
		}
		d.PrimeLevels[i] = l
	}
	return d, nil
}

func (d *DifficultyData) Unparse(key game.Difficulty) (*nrbf.FieldMap, error) {
	num := noLevel
	if d.CurrentLevel != game.NoLevel {
		num = int32(d.CurrentLevel)
		if num == noLevel {
			return nil, &UnrepresentableError{Field: currentLevelField, Value: d.CurrentLevel.String(), Err: ErrReservedLevel}
		}
	}
	primes := make(nrbf.Int32Array, len(d.PrimeLevels))
	for i, l := range d.PrimeLevels {
		primes[i] = int32(l)
	}

	m := nrbf.NewFieldMap()
	writeField(m, currentLevelField, nrbf.Int32(num))
	writeField(m, difficultyField, nrbf.Int32(key))
	writeField(m, primeLevelsField, primes)
	return m, nil
}
