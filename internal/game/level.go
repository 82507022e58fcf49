package game

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Level is a campaign level keyed by the number the game stores in
// lvl{N}progress.bepis. Prime sanctums use the ids 666 and 667.
type Level uint16

const (
	// NoLevel marks the absence of a level, such as a campaign not in progress.
	NoLevel Level = 0

	IntoTheFire           Level = 1
	TheMeatgrinder        Level = 2
	DoubleDown            Level = 3
	AOneMachineArmy       Level = 4
	Cerberus              Level = 5
	HeartOfTheSunrise     Level = 6
	TheBurningWorld       Level = 7
	HallsOfSacredRemains  Level = 8
	ClairDeLune           Level = 9
	Bridgeburner          Level = 10
	DeathAt20000Volts     Level = 11
	SheerHeartAttack      Level = 12
	CourtOfTheCorpseKing  Level = 13
	BellyOfTheBeast       Level = 14
	InTheFlesh            Level = 15
	SlavesToPower         Level = 16
	GodDamnTheSun         Level = 17
	AShotInTheDark        Level = 18
	ClairDeSoleil         Level = 19
	InTheWakeOfPoseidon   Level = 20
	WavesOfTheStarlessSea Level = 21
	ShipOfFools           Level = 22
	Leviathan             Level = 23
	CryForTheWeeper       Level = 24
	AestheticsOfHate      Level = 25
	GardenOfForkingPaths  Level = 26
	LightUpTheNight       Level = 27
	NoSoundNoMemory       Level = 28
	LikeAntennasToHeaven  Level = 29
	SoulSurvivor          Level = 666
	WaitOfTheWorld        Level = 667
)

type levelInfo struct {
	name    string
	secrets int
}

var levelTable = map[Level]levelInfo{
	IntoTheFire:           {"0-1: INTO THE FIRE", 5},
	TheMeatgrinder:        {"0-2: THE MEATGRINDER", 5},
	DoubleDown:            {"0-3: DOUBLE DOWN", 3},
	AOneMachineArmy:       {"0-4: A ONE-MACHINE ARMY", 3},
	Cerberus:              {"0-5: CERBERUS", 0},
	HeartOfTheSunrise:     {"1-1: HEART OF THE SUNRISE", 5},
	TheBurningWorld:       {"1-2: THE BURNING WORLD", 5},
	HallsOfSacredRemains:  {"1-3: HALLS OF SACRED REMAINS", 5},
	ClairDeLune:           {"1-4: CLAIR DE LUNE", 0},
	Bridgeburner:          {"2-1: BRIDGEBURNER", 5},
	DeathAt20000Volts:     {"2-2: DEATH AT 20,000 VOLTS", 5},
	SheerHeartAttack:      {"2-3: SHEER HEART ATTACK", 5},
	CourtOfTheCorpseKing:  {"2-4: COURT OF THE CORPSE KING", 0},
	BellyOfTheBeast:       {"3-1: BELLY OF THE BEAST", 5},
	InTheFlesh:            {"3-2: IN THE FLESH", 0},
	SlavesToPower:         {"4-1: SLAVES TO POWER", 5},
	GodDamnTheSun:         {"4-2: GOD DAMN THE SUN", 5},
	AShotInTheDark:        {"4-3: A SHOT IN THE DARK", 5},
	ClairDeSoleil:         {"4-4: CLAIR DE SOLEIL", 0},
	InTheWakeOfPoseidon:   {"5-1: IN THE WAKE OF POSEIDON", 5},
	WavesOfTheStarlessSea: {"5-2: WAVES OF THE STARLESS SEA", 5},
	ShipOfFools:           {"5-3: SHIP OF FOOLS", 5},
	Leviathan:             {"5-4: LEVIATHAN", 0},
	CryForTheWeeper:       {"6-1: CRY FOR THE WEEPER", 5},
	AestheticsOfHate:      {"6-2: AESTHETICS OF HATE", 0},
	GardenOfForkingPaths:  {"7-1: GARDEN OF FORKING PATHS", 5},
	LightUpTheNight:       {"7-2: LIGHT UP THE NIGHT", 5},
	NoSoundNoMemory:       {"7-3: NO SOUND, NO MEMORY", 5},
	LikeAntennasToHeaven:  {"7-4: ...LIKE ANTENNAS TO HEAVEN", 0},
	SoulSurvivor:          {"P-1: SOUL SURVIVOR", 0},
	WaitOfTheWorld:        {"P-2: WAIT OF THE WORLD", 0},
}

var allLevels = slices.Sorted(maps.Keys(levelTable))

// Levels returns every level in id order.
func Levels() []Level {
	return slices.Clone(allLevels)
}

// LevelFromID maps a stored level number back to a Level.
func LevelFromID(id int32) (Level, bool) {
	if id < 0 || id > 0xffff {
		return 0, false
	}
	_, ok := levelTable[Level(id)]
	return Level(id), ok
}

func (l Level) String() string {
	if l == NoLevel {
		return "None"
	}
	if info, ok := levelTable[l]; ok {
		return info.name
	}
	return fmt.Sprintf("Level(%d)", uint16(l))
}

// FileInfix is the part of the save file name that identifies the level.
func (l Level) FileInfix() string {
	return strconv.Itoa(int(l))
}

// SecretCount is the number of secret orbs hidden in the level.
func (l Level) SecretCount() int {
	return levelTable[l].secrets
}

// IsPrime reports whether the level is a prime sanctum.
func (l Level) IsPrime() bool {
	_, ok := l.PrimeIndex()
	return ok
}

// PrimeIndex is the level's slot in DifficultyData's prime level array.
func (l Level) PrimeIndex() (int, bool) {
	switch l {
	case SoulSurvivor:
		return 0, true
	case WaitOfTheWorld:
		return 1, true
	}
	return 0, false
}

// Act groups layers the way the level select screen does.
type Act uint8

const (
	Prelude Act = iota
	Act1
	Act2
	Act3
)

var actNames = [...]string{
	Prelude: "PRELUDE",
	Act1:    "ACT I: INFINITE HYPERDEATH",
	Act2:    "ACT II: IMPERFECT HATRED",
	Act3:    "ACT III: GODFIST SUICIDE",
}

// Acts returns every act in campaign order.
func Acts() []Act {
	return []Act{Prelude, Act1, Act2, Act3}
}

func (a Act) String() string {
	if int(a) < len(actNames) {
		return actNames[a]
	}
	return fmt.Sprintf("Act(%d)", uint8(a))
}

// Layers returns the layers of hell belonging to the act.
func (a Act) Layers() []Layer {
	switch a {
	case Prelude:
		return []Layer{Overture}
	case Act1:
		return []Layer{Limbo, Lust, Gluttony}
	case Act2:
		return []Layer{Greed, Wrath, Heresy}
	case Act3:
		return []Layer{Violence, Fraud, Treachery}
	}
	return nil
}

// Layer is a layer of hell. Its discriminant indexes the secretMissions array.
type Layer uint8

const (
	Overture Layer = iota
	Limbo
	Lust
	Gluttony
	Greed
	Wrath
	Heresy
	Violence
	Fraud
	Treachery
)

var layerNames = [...]string{
	Overture:  "OVERTURE: THE MOUTH OF HELL",
	Limbo:     "LAYER 1: LIMBO",
	Lust:      "LAYER 2: LUST",
	Gluttony:  "LAYER 3: GLUTTONY",
	Greed:     "LAYER 4: GREED",
	Wrath:     "LAYER 5: WRATH",
	Heresy:    "LAYER 6: HERESY",
	Violence:  "LAYER 7: VIOLENCE",
	Fraud:     "LAYER 8: FRAUD",
	Treachery: "LAYER 9: TREACHERY",
}

// Layers returns every layer in campaign order.
func Layers() []Layer {
	out := make([]Layer, len(layerNames))
	for i := range out {
		out[i] = Layer(i)
	}
	return out
}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return fmt.Sprintf("Layer(%d)", uint8(l))
}

// Levels returns the playable levels of the layer. Unreleased layers have none.
func (l Layer) Levels() []Level {
	switch l {
	case Overture:
		return []Level{IntoTheFire, TheMeatgrinder, DoubleDown, AOneMachineArmy, Cerberus}
	case Limbo:
		return []Level{HeartOfTheSunrise, TheBurningWorld, HallsOfSacredRemains, ClairDeLune}
	case Lust:
		return []Level{Bridgeburner, DeathAt20000Volts, SheerHeartAttack, CourtOfTheCorpseKing}
	case Gluttony:
		return []Level{BellyOfTheBeast, InTheFlesh, SoulSurvivor}
	case Greed:
		return []Level{SlavesToPower, GodDamnTheSun, AShotInTheDark, ClairDeSoleil}
	case Wrath:
		return []Level{InTheWakeOfPoseidon, WavesOfTheStarlessSea, ShipOfFools, Leviathan}
	case Heresy:
		return []Level{CryForTheWeeper, AestheticsOfHate, WaitOfTheWorld}
	case Violence:
		return []Level{GardenOfForkingPaths, LightUpTheNight, NoSoundNoMemory, LikeAntennasToHeaven}
	}
	return nil
}

// SecretLevel is the secret mission (or prime sanctum) reached from the layer.
func (l Layer) SecretLevel() SecretLevel {
	return SecretLevel(l)
}

// SecretLevel is a secret mission. It shares its discriminant with the layer
// that hides it.
type SecretLevel uint8

const (
	SomethingWicked SecretLevel = iota
	TheWitless
	AllImperfectLoveSong
	SoulSurvivorSecret
	ClashOfTheBrandicoot
	IOnlySayMorning
	WaitOfTheWorldSecret
	UnknownSecret7
	UnknownSecret8
	UnknownPrime3
)

var secretLevelNames = [...]string{
	SomethingWicked:      "0-S: SOMETHING WICKED",
	TheWitless:           "1-S: THE WITLESS",
	AllImperfectLoveSong: "2-S: ALL-IMPERFECT LOVE SONG",
	SoulSurvivorSecret:   "P-1: SOUL SURVIVOR",
	ClashOfTheBrandicoot: "4-S: CLASH OF THE BRANDICOOT",
	IOnlySayMorning:      "5-S: I ONLY SAY MORNING",
	WaitOfTheWorldSecret: "P-2: WAIT OF THE WORLD",
	UnknownSecret7:       "7-S: UNKNOWN",
	UnknownSecret8:       "8-S: UNKNOWN",
	UnknownPrime3:        "P-3: UNKNOWN",
}

// SecretLevels returns every secret level in layer order.
func SecretLevels() []SecretLevel {
	out := make([]SecretLevel, len(secretLevelNames))
	for i := range out {
		out[i] = SecretLevel(i)
	}
	return out
}

func (s SecretLevel) String() string {
	if int(s) < len(secretLevelNames) {
		return secretLevelNames[s]
	}
	return fmt.Sprintf("SecretLevel(%d)", uint8(s))
}

// IsPrime reports whether the secret level is a prime sanctum, whose state
// lives in DifficultyData rather than GeneralData.
func (s SecretLevel) IsPrime() bool {
	switch s {
	case SoulSurvivorSecret, WaitOfTheWorldSecret, UnknownPrime3:
		return true
	}
	return false
}

// ParseLevel reads a level from its numeric id, as used in file names.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse level %q: %w", s, err)
	}
	l, ok := LevelFromID(int32(n))
	if !ok {
		return 0, fmt.Errorf("level %d: %w", n, ErrInvalidVariant)
	}
	return l, nil
}
