package progress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/pkg/nrbf"
)

func TestLoad_EmptyDirIsDefault(t *testing.T) {
	dir := t.TempDir()

	got, err := Load(dir)
	require.NoError(t, err)
	if diff := cmp.Diff(NewClasses(), got); diff != "" {
		t.Errorf("empty slot mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Levels, len(game.Levels()))
	assert.Len(t, got.Difficulties, len(game.Difficulties()))
}

func TestLoad_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "slot")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := Load(file)
	assert.ErrorIs(t, err, ErrNotDirectory)

	_, err = Load(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave_MoneyScenario(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(dir)
	require.NoError(t, err)

	c.General.Money = "500"
	c.General.FileExists = true
	require.NoError(t, c.Save(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "generalprogress.bepis", entries[0].Name())

	class := readClassFile(t, dir, "generalprogress.bepis")
	assert.Equal(t, "GameProgressMoneyAndGear", class.Name)
	assert.Equal(t, LibraryName, class.LibraryName)
	money, ok := class.Fields.Get("money")
	require.True(t, ok)
	assert.Equal(t, nrbf.Int32(500), money)
}

func populated() *Classes {
	c := NewClasses()
	c.General = sampleGeneral()

	c.Cybergrind.FileExists = true
	c.Cybergrind.Waves[game.Violent] = "12.5"
	c.Cybergrind.Kills[game.Violent] = "310"

	lvl := c.Levels[game.IntoTheFire]
	lvl.FileExists = true
	lvl.SecretsFound = []bool{true, false, true, false, false}
	lvl.Ranks[game.Standard] = game.RankS

	c.Levels[game.SoulSurvivor].FileExists = true
	c.Levels[game.SoulSurvivor].Ranks[game.Violent] = game.RankP

	if err := c.SetPrimeLevel(game.Violent, game.SoulSurvivor, game.Completed); err != nil {
		panic(err)
	}
	c.Difficulties[game.Violent].CurrentLevel = game.NoLevel
	return c
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := populated()
	require.NoError(t, want.Save(dir))

	got, err := Load(dir)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reloaded slot mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{
		"generalprogress.bepis",
		"cybergrindhighscore.bepis",
		"difficulty3progress.bepis",
		"lvl1progress.bepis",
		"lvl666progress.bepis",
	} {
		assert.True(t, fileExists(dir, name), name)
	}
	assert.False(t, fileExists(dir, "difficulty2progress.bepis"))
}

func TestSaveLoad_Idempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, populated().Save(dir))

	first, err := Load(dir)
	require.NoError(t, err)
	before := map[string][]byte{}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		before[e.Name()] = data
	}

	require.NoError(t, first.Save(dir))
	second, err := Load(dir)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second load mismatch (-first +second):\n%s", diff)
	}
	for name, data := range before {
		after, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, data, after, name)
	}
}

func TestSave_ExistenceToggling(t *testing.T) {
	dir := t.TempDir()
	c := NewClasses()
	c.Levels[game.Cerberus].FileExists = true
	require.NoError(t, c.Save(dir))
	require.True(t, fileExists(dir, "lvl5progress.bepis"))

	// A freshly claimed file is written with the default values.
	class := readClassFile(t, dir, "lvl5progress.bepis")
	ranks, _ := class.Fields.Get("ranks")
	assert.Equal(t, nrbf.Int32Array{-1, -1, -1, -1, -1, -1}, ranks)

	c.Levels[game.Cerberus].FileExists = false
	require.NoError(t, c.Save(dir))
	assert.False(t, fileExists(dir, "lvl5progress.bepis"))

	// Removing an absent file is not an error.
	require.NoError(t, c.Save(dir))
}

func TestLoad_MalformedFilesDefault(t *testing.T) {
	dir := t.TempDir()
	good := populated()

	generalFields, err := good.General.Unparse()
	require.NoError(t, err)
	generalFields.Set("introSeen", nrbf.Int32(1))
	writeRaw(t, dir, "generalprogress.bepis", encodeClass(t, "GameProgressMoneyAndGear", generalFields))

	levelFields, err := good.Levels[game.IntoTheFire].Unparse(game.IntoTheFire)
	require.NoError(t, err)
	data := encodeClass(t, "RankData", levelFields)
	writeRaw(t, dir, "lvl1progress.bepis", data[:len(data)-5])

	grindFields, err := good.Cybergrind.Unparse()
	require.NoError(t, err)
	writeRaw(t, dir, "cybergrindhighscore.bepis", encodeClass(t, "SomethingElse", grindFields))

	writeRaw(t, dir, "difficulty0progress.bepis", []byte("not a save file"))

	core, logs := observer.New(zap.DebugLevel)
	got, err := Load(dir, WithLogger(zap.New(core)))
	require.NoError(t, err)

	want := NewClasses()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("malformed slot should load as defaults (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, logs.FilterMessage("save file unreadable, using defaults").Len())
}

func TestSave_UnrepresentableStops(t *testing.T) {
	dir := t.TempDir()
	c := NewClasses()
	c.Levels[game.IntoTheFire].FileExists = true
	c.Cybergrind.FileExists = true
	c.Cybergrind.Kills[0] = "many"
	c.General.FileExists = true

	err := c.Save(dir)
	var ue *UnrepresentableError
	require.True(t, errors.As(err, &ue), "got %v", err)
	assert.Equal(t, "kills", ue.Field)
	assert.Contains(t, err.Error(), "cybergrindhighscore.bepis")

	assert.True(t, fileExists(dir, "lvl1progress.bepis"), "levels are saved first")
	assert.False(t, fileExists(dir, "cybergrindhighscore.bepis"))
	assert.False(t, fileExists(dir, "generalprogress.bepis"), "save stops at the first error")
}

func TestLoadSave_NegativeCountsSurvive(t *testing.T) {
	dir := t.TempDir()
	c := NewClasses()

	generalFields, err := c.General.Unparse()
	require.NoError(t, err)
	generalFields.Set("money", nrbf.Int32(-5))
	writeRaw(t, dir, "generalprogress.bepis", encodeClass(t, "GameProgressMoneyAndGear", generalFields))

	grindFields, err := c.Cybergrind.Unparse()
	require.NoError(t, err)
	grindFields.Set("kills", nrbf.Int32Array{-1, 0, 0, 0, 0, 0})
	writeRaw(t, dir, "cybergrindhighscore.bepis", encodeClass(t, "CyberRankData", grindFields))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "-5", loaded.General.Money)
	assert.Equal(t, "-1", loaded.Cybergrind.Kills[0])

	require.NoError(t, loaded.Save(dir), "an untouched slot must save back")
	money, ok := readClassFile(t, dir, "generalprogress.bepis").Fields.Get("money")
	require.True(t, ok)
	assert.Equal(t, nrbf.Int32(-5), money)
}

func TestSave_LogsWrites(t *testing.T) {
	dir := t.TempDir()
	c := NewClasses()
	c.General.FileExists = true

	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, c.Save(dir, WithLogger(zap.New(core))))
	entries := logs.FilterMessage("wrote save file").All()
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(dir, "generalprogress.bepis"), entries[0].ContextMap()["path"])
}

func TestSetPrimeLevel(t *testing.T) {
	c := NewClasses()
	require.NoError(t, c.SetPrimeLevel(game.Lenient, game.WaitOfTheWorld, game.Unlocked))
	assert.Equal(t, game.Unlocked, c.Difficulties[game.Lenient].PrimeLevels[1])
	assert.True(t, c.Difficulties[game.Lenient].FileExists)

	err := c.SetPrimeLevel(game.Lenient, game.IntoTheFire, game.Unlocked)
	assert.ErrorIs(t, err, game.ErrInvalidVariant)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewClasses()
	c.General.FileExists = true
	require.NoError(t, c.Save(dir))
	writeRaw(t, dir, "lvl2progress.bepis", []byte{0})

	files := c.Files(dir)
	assert.Len(t, files, len(game.Levels())+1+len(game.Difficulties())+1)
	assert.Equal(t, "lvl1progress.bepis", files[0].Name)
	assert.Equal(t, "generalprogress.bepis", files[len(files)-1].Name)

	byName := map[string]FileStatus{}
	for _, f := range files {
		byName[f.Name] = f
	}
	assert.Equal(t, FileStatus{Name: "generalprogress.bepis", Class: "GameProgressMoneyAndGear", Claimed: true, Present: true},
		byName["generalprogress.bepis"])
	assert.Equal(t, FileStatus{Name: "lvl2progress.bepis", Class: "RankData", Claimed: false, Present: true},
		byName["lvl2progress.bepis"])
	assert.False(t, byName["difficulty1progress.bepis"].Present)
}
