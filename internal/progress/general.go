package progress

import (
	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/pkg/nrbf"
)

// GeneralData is generalprogress.bepis: money, shop unlocks, secret missions
// and the bestiary.
type GeneralData struct {
	Money               string
	IntroSeen           bool
	TutorialBeat        bool
	ClashModeUnlocked   bool
	UnlockedWeapons     map[game.UnlockableWeaponVariant]bool
	SecretMissions      map[game.SecretLevel]game.Lockable
	LimboSwitches       [4]bool
	EnemiesDiscovered   map[game.EnemyType]game.Lockable
	UnlockablesFound    map[game.UnlockableType]bool
	WeaponsCustomizable map[game.CustomizableWeaponType]bool
	FileExists          bool
}

const (
	moneyField             = "money"
	introSeenField         = "introSeen"
	tutorialBeatField      = "tutorialBeat"
	clashModeField         = "clashModeUnlocked"
	secretMissionsField    = "secretMissions"
	limboSwitchesField     = "limboSwitches"
	enemiesDiscoveredField = "newEnemiesFound"
	unlockablesFoundField  = "unlockablesFound"
)

// wireBool is how a boolean flag is stored in the file.
type wireBool uint8

const (
	asBoolean wireBool = iota
	asInt32            // nonzero means true
)

type flagField[K comparable] struct {
	key  K
	name string
	wire wireBool
}

var customizationFields = []flagField[game.CustomizableWeaponType]{
	{game.CustomizableRevolver, "revCustomizationUnlocked", asBoolean},
	{game.CustomizableShotgun, "shoCustomizationUnlocked", asBoolean},
	{game.CustomizableNailgun, "naiCustomizationUnlocked", asBoolean},
	{game.CustomizableRailgun, "raiCustomizationUnlocked", asBoolean},
	{game.CustomizableRocketLauncher, "rockCustomizationUnlocked", asBoolean},
}

var variantFields = []flagField[game.UnlockableWeaponVariant]{
	{game.PiercerRevolver, "rev0", asInt32},
	{game.MarksmanRevolver, "rev2", asInt32},
	{game.SharpshooterRevolver, "rev1", asInt32},
	{game.AlternateRevolver, "revalt", asInt32},
	{game.CoreEjectShotgun, "sho0", asInt32},
	{game.PumpChargeShotgun, "sho1", asInt32},
	{game.AttractorNailgun, "nai0", asInt32},
	{game.OverheatNailgun, "nai1", asInt32},
	{game.SawbladeLauncher, "naialt", asInt32},
	{game.ElectricRailgun, "rai0", asInt32},
	{game.ScrewdriverRailgun, "rai2", asInt32},
	{game.MaliciousRailgun, "rai1", asInt32},
	{game.FreezeframeRocketLauncher, "rock0", asInt32},
	{game.SRSCannonRocketLauncher, "rock1", asInt32},
	{game.Knuckleblaster, "arm1", asInt32},
	{game.Whiplash, "arm2", asInt32},
}

// Variant slots the game has no weapon for yet. They are always written as 0.
var zeroedFields = []string{
	"rev3", "sho2", "sho3", "nai2", "nai3", "rai3", "rock2", "rock3",
	"beam0", "beam1", "beam2", "beam3", "arm3",
}

var generalDocument = document[*GeneralData]{
	className: "GameProgressMoneyAndGear",
	fileName:  "generalprogress.bepis",
	parse:     parseGeneral,
	create:    NewGeneralData,
}

// NewGeneralData returns the progress of a slot that has never been played.
func NewGeneralData() *GeneralData {
	g := &GeneralData{
		Money:               "0",
		UnlockedWeapons:     make(map[game.UnlockableWeaponVariant]bool),
		SecretMissions:      make(map[game.SecretLevel]game.Lockable),
		EnemiesDiscovered:   make(map[game.EnemyType]game.Lockable),
		UnlockablesFound:    make(map[game.UnlockableType]bool),
		WeaponsCustomizable: make(map[game.CustomizableWeaponType]bool),
	}
	for _, v := range game.UnlockableWeaponVariants() {
		g.UnlockedWeapons[v] = false
	}
	for _, s := range game.SecretLevels() {
		g.SecretMissions[s] = game.Locked
	}
	for _, e := range game.EnemyTypes() {
		g.EnemiesDiscovered[e] = game.Locked
	}
	for _, u := range game.UnlockableTypes() {
		g.UnlockablesFound[u] = false
	}
	for _, c := range game.CustomizableWeaponTypes() {
		g.WeaponsCustomizable[c] = false
	}
	return g
}

func (g *GeneralData) HasFile() bool { return g.FileExists }

func parseGeneral(c *nrbf.Class) (*GeneralData, error) {
	g := NewGeneralData()
	g.FileExists = true

	money, err := readField[nrbf.Int32](c, moneyField)
	if err != nil {
		return nil, err
	}
	g.Money = formatCount(int32(money))

	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{introSeenField, &g.IntroSeen},
		{tutorialBeatField, &g.TutorialBeat},
		{clashModeField, &g.ClashModeUnlocked},
	} {
		v, err := readField[nrbf.Boolean](c, f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = bool(v)
	}

	missions, err := readField[nrbf.Int32Array](c, secretMissionsField)
	if err != nil {
		return nil, err
	}
	if err := readLockables(secretMissionsField, missions, g.SecretMissions); err != nil {
		return nil, err
	}

	switches, err := readArray[nrbf.BooleanArray](c, limboSwitchesField, len(g.LimboSwitches))
	if err != nil {
		return nil, err
	}
	copy(g.LimboSwitches[:], switches)

	enemies, err := readField[nrbf.Int32Array](c, enemiesDiscoveredField)
	if err != nil {
		return nil, err
	}
	if err := readLockables(enemiesDiscoveredField, enemies, g.EnemiesDiscovered); err != nil {
		return nil, err
	}

	found, err := readField[nrbf.BooleanArray](c, unlockablesFoundField)
	if err != nil {
		return nil, err
	}
	for u := range g.UnlockablesFound {
		if int(u) < len(found) {
			g.UnlockablesFound[u] = found[u]
		}
	}

	if err := readFlags(c, customizationFields, g.WeaponsCustomizable); err != nil {
		return nil, err
	}
	if err := readFlags(c, variantFields, g.UnlockedWeapons); err != nil {
		return nil, err
	}
	return g, nil
}

// readLockables fills dst from an array indexed by the key's discriminant.
// Keys past the end of a short array keep their default; entries with no
// matching key are ignored.
func readLockables[K ~uint8](field string, values nrbf.Int32Array, dst map[K]game.Lockable) error {
	for key := range dst {
		if int(key) >= len(values) {
			continue
		}
		l, ok := game.LockableFromRepr(values[key])
		if !ok {
			return unknownValue(field, values[key])
		}
		dst[key] = l
	}
	return nil
}

func writeLockables[K ~uint8](src map[K]game.Lockable, length int) nrbf.Int32Array {
	out := make(nrbf.Int32Array, length)
	for key, l := range src {
		if int(key) < length {
			out[key] = int32(l)
		}
	}
	return out
}

func readFlags[K comparable](c *nrbf.Class, table []flagField[K], dst map[K]bool) error {
	for _, f := range table {
		switch f.wire {
		case asBoolean:
			v, err := readField[nrbf.Boolean](c, f.name)
			if err != nil {
				return err
			}
			dst[f.key] = bool(v)
		case asInt32:
			v, err := readField[nrbf.Int32](c, f.name)
			if err != nil {
				return err
			}
			dst[f.key] = v != 0
		}
	}
	return nil
}

func writeFlags[K comparable](m *nrbf.FieldMap, table []flagField[K], src map[K]bool) {
	for _, f := range table {
		switch f.wire {
		case asBoolean:
			writeField(m, f.name, nrbf.Boolean(src[f.key]))
		case asInt32:
			var v nrbf.Int32
			if src[f.key] {
				v = 1
			}
			writeField(m, f.name, v)
		}
	}
}

func (g *GeneralData) Unparse() (*nrbf.FieldMap, error) {
	money, err := parseCount(moneyField, g.Money)
	if err != nil {
		return nil, err
	}

	m := nrbf.NewFieldMap()
	writeField(m, moneyField, nrbf.Int32(money))
	writeField(m, introSeenField, nrbf.Boolean(g.IntroSeen))
	writeField(m, tutorialBeatField, nrbf.Boolean(g.TutorialBeat))
	writeField(m, clashModeField, nrbf.Boolean(g.ClashModeUnlocked))
	writeField(m, secretMissionsField, writeLockables(g.SecretMissions, len(game.SecretLevels())))
	writeField(m, limboSwitchesField, append(nrbf.BooleanArray(nil), g.LimboSwitches[:]...))
	writeField(m, enemiesDiscoveredField, writeLockables(g.EnemiesDiscovered, game.EnemySlots()))

	found := make(nrbf.BooleanArray, len(game.UnlockableTypes()))
	for u, ok := range g.UnlockablesFound {
		if int(u) < len(found) {
			found[u] = ok
		}
	}
	writeField(m, unlockablesFoundField, found)

	writeFlags(m, customizationFields, g.WeaponsCustomizable)
	writeFlags(m, variantFields, g.UnlockedWeapons)
	for _, name := range zeroedFields {
		writeField(m, name, nrbf.Int32(0))
	}
	return m, nil
}
