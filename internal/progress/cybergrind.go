package progress

import (
	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/pkg/nrbf"
)

// Stats holds one text value per difficulty slot.
type Stats [game.DifficultySlots]string

// CybergrindData is cybergrindhighscore.bepis: the best run per difficulty.
type CybergrindData struct {
	Waves      Stats
	Kills      Stats
	Style      Stats
	Times      Stats
	FileExists bool
}

const (
	waveField  = "wave"
	wavesField = "preciseWavesByDifficulty"
	killsField = "kills"
	styleField = "style"
	timesField = "time"
)

var cybergrindDocument = document[*CybergrindData]{
	className: "CyberRankData",
	fileName:  "cybergrindhighscore.bepis",
	parse:     parseCybergrind,
	create:    NewCybergrindData,
}

// NewCybergrindData returns zeroed high scores with no backing file.
func NewCybergrindData() *CybergrindData {
	zero := Stats{"0", "0", "0", "0", "0", "0"}
	return &CybergrindData{Waves: zero, Kills: zero, Style: zero, Times: zero}
}

func (d *CybergrindData) HasFile() bool { return d.FileExists }

func parseCybergrind(c *nrbf.Class) (*CybergrindData, error) {
	d := &CybergrindData{FileExists: true}
	for _, f := range []struct {
		name string
		dst  *Stats
	}{
		{wavesField, &d.Waves},
		{timesField, &d.Times},
	} {
		values, err := readArray[nrbf.SingleArray](c, f.name, game.DifficultySlots)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			f.dst[i] = formatDecimal(v)
		}
	}
	for _, f := range []struct {
		name string
		dst  *Stats
	}{
		{killsField, &d.Kills},
		{styleField, &d.Style},
	} {
		values, err := readArray[nrbf.Int32Array](c, f.name, game.DifficultySlots)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			f.dst[i] = formatCount(v)
		}
	}
	return d, nil
}

func (d *CybergrindData) Unparse() (*nrbf.FieldMap, error) {
	waves, err := decimals(wavesField, d.Waves)
	if err != nil {
		return nil, err
	}
	kills, err := counts(killsField, d.Kills)
	if err != nil {
		return nil, err
	}
	style, err := counts(styleField, d.Style)
	if err != nil {
		return nil, err
	}
	times, err := decimals(timesField, d.Times)
	if err != nil {
		return nil, err
	}

	m := nrbf.NewFieldMap()
	writeField(m, waveField, nrbf.Int32(0))
	writeField(m, wavesField, waves)
	writeField(m, killsField, kills)
	writeField(m, styleField, style)
	writeField(m, timesField, times)
	return m, nil
}

func counts(field string, s Stats) (nrbf.Int32Array, error) {
	out := make(nrbf.Int32Array, len(s))
	for i, text := range s {
		v, err := parseCount(field, text)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func decimals(field string, s Stats) (nrbf.SingleArray, error) {
	out := make(nrbf.SingleArray, len(s))
	for i, text := range s {
		v, err := parseDecimal(field, text)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
