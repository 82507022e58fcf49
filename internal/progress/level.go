package progress

import (
	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/pkg/nrbf"
)

// LevelData is lvl{N}progress.bepis: ranks, secrets and assists for one level.
type LevelData struct {
	Ranks        [game.DifficultySlots]game.LevelRank
	SecretsFound []bool
	Challenge    bool
	MajorAssists [game.DifficultySlots]bool
	FileExists   bool
}

const (
	ranksField         = "ranks"
	secretsAmountField = "secretsAmount"
	secretsFoundField  = "secretsFound"
	challengeField     = "challenge"
	levelNumberField   = "levelNumber"
	majorAssistsField  = "majorAssists"
)

var levelFamily = family[game.Level, *LevelData]{
	className: "RankData",
	prefix:    "lvl",
	suffix:    "progress.bepis",
	variants:  game.Levels,
	parse:     parseLevel,
	create:    NewLevelData,
}

// NewLevelData returns an unplayed level with one secret slot per secret orb.
func NewLevelData(level game.Level) *LevelData {
	d := &LevelData{SecretsFound: make([]bool, level.SecretCount())}
	for i := range d.Ranks {
		d.Ranks[i] = game.RankNone
	}
	return d
}

func (d *LevelData) HasFile() bool { return d.FileExists }

func parseLevel(c *nrbf.Class, _ game.Level) (*LevelData, error) {
	d := &LevelData{FileExists: true}

	ranks, err := readArray[nrbf.Int32Array](c, ranksField, len(d.Ranks))
	if err != nil {
		return nil, err
	}
	for i, v := range ranks {
		r, ok := game.LevelRankFromRepr(v)
		if !ok {
			return nil, unknownValue(ranksField, v)
		}
		d.Ranks[i] = r
	}

	if _, err := readField[nrbf.Int32](c, secretsAmountField); err != nil {
		return nil, err
	}
	secrets, err := readField[nrbf.BooleanArray](c, secretsFoundField)
	if err != nil {
		return nil, err
	}
	d.SecretsFound = append([]bool{}, secrets...)

	challenge, err := readField[nrbf.Boolean](c, challengeField)
	if err != nil {
		return nil, err
	}
	d.Challenge = bool(challenge)

	if _, err := readField[nrbf.Int32](c, levelNumberField); err != nil {
		return nil, err
	}

	assists, err := readArray[nrbf.BooleanArray](c, majorAssistsField, len(d.MajorAssists))
	if err != nil {
		return nil, err
	}
	copy(d.MajorAssists[:], assists)
	return d, nil
}

func (d *LevelData) Unparse(key game.Level) (*nrbf.FieldMap, error) {
	ranks := make(nrbf.Int32Array, len(d.Ranks))
	for i, r := range d.Ranks {
		ranks[i] = int32(r)
	}

	m := nrbf.NewFieldMap()
	writeField(m, ranksField, ranks)
	writeField(m, secretsAmountField, nrbf.Int32(len(d.SecretsFound)))
	writeField(m, secretsFoundField, append(nrbf.BooleanArray{}, d.SecretsFound...))
	writeField(m, challengeField, nrbf.Boolean(d.Challenge))
	writeField(m, levelNumberField, nrbf.Int32(key))
	writeField(m, majorAssistsField, append(nrbf.BooleanArray(nil), d.MajorAssists[:]...))
	return m, nil
}
