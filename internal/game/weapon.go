package game

import "fmt"

// WeaponType is a weapon slot in the arsenal.
type WeaponType uint8

const (
	Revolver WeaponType = iota
	Shotgun
	Nailgun
	Railgun
	RocketLauncher
	Arm
)

var weaponNames = [...]string{
	Revolver:       "Revolver",
	Shotgun:        "Shotgun",
	Nailgun:        "Nailgun",
	Railgun:        "Railgun",
	RocketLauncher: "Rocket Launcher",
	Arm:            "Arm",
}

// WeaponTypes returns every weapon slot in arsenal order.
func WeaponTypes() []WeaponType {
	return []WeaponType{Revolver, Shotgun, Nailgun, Railgun, RocketLauncher, Arm}
}

func (w WeaponType) String() string {
	if int(w) < len(weaponNames) {
		return weaponNames[w]
	}
	return fmt.Sprintf("WeaponType(%d)", uint8(w))
}

// Variants returns the variants of the weapon that must be unlocked in the shop.
func (w WeaponType) Variants() []UnlockableWeaponVariant {
	switch w {
	case Revolver:
		return []UnlockableWeaponVariant{PiercerRevolver, MarksmanRevolver, SharpshooterRevolver, AlternateRevolver}
	case Shotgun:
		return []UnlockableWeaponVariant{CoreEjectShotgun, PumpChargeShotgun}
	case Nailgun:
		return []UnlockableWeaponVariant{AttractorNailgun, OverheatNailgun, SawbladeLauncher}
	case Railgun:
		return []UnlockableWeaponVariant{ElectricRailgun, MaliciousRailgun, ScrewdriverRailgun}
	case RocketLauncher:
		return []UnlockableWeaponVariant{FreezeframeRocketLauncher, SRSCannonRocketLauncher}
	case Arm:
		return []UnlockableWeaponVariant{Knuckleblaster, Whiplash}
	}
	return nil
}

// Customizable returns the color customization entry of the weapon. Arms
// cannot be customized.
func (w WeaponType) Customizable() (CustomizableWeaponType, bool) {
	switch w {
	case Revolver:
		return CustomizableRevolver, true
	case Shotgun:
		return CustomizableShotgun, true
	case Nailgun:
		return CustomizableNailgun, true
	case Railgun:
		return CustomizableRailgun, true
	case RocketLauncher:
		return CustomizableRocketLauncher, true
	}
	return 0, false
}

// CustomizableWeaponType is a weapon whose colors can be customized once unlocked.
type CustomizableWeaponType uint8

const (
	CustomizableRevolver CustomizableWeaponType = iota
	CustomizableShotgun
	CustomizableNailgun
	CustomizableRailgun
	CustomizableRocketLauncher
)

// CustomizableWeaponTypes returns every customizable weapon in arsenal order.
func CustomizableWeaponTypes() []CustomizableWeaponType {
	return []CustomizableWeaponType{
		CustomizableRevolver,
		CustomizableShotgun,
		CustomizableNailgun,
		CustomizableRailgun,
		CustomizableRocketLauncher,
	}
}

func (c CustomizableWeaponType) String() string {
	if int(c) < len(weaponNames)-1 {
		return weaponNames[c]
	}
	return fmt.Sprintf("CustomizableWeaponType(%d)", uint8(c))
}

// UnlockableWeaponVariant is a weapon variant bought in the shop.
type UnlockableWeaponVariant uint8

const (
	PiercerRevolver UnlockableWeaponVariant = iota
	MarksmanRevolver
	SharpshooterRevolver
	AlternateRevolver
	CoreEjectShotgun
	PumpChargeShotgun
	AttractorNailgun
	OverheatNailgun
	SawbladeLauncher
	ElectricRailgun
	ScrewdriverRailgun
	MaliciousRailgun
	FreezeframeRocketLauncher
	SRSCannonRocketLauncher
	Knuckleblaster
	Whiplash
)

var variantNames = [...]string{
	PiercerRevolver:           "Piercer Revolver",
	MarksmanRevolver:          "Marksman Revolver",
	SharpshooterRevolver:      "Sharpshooter Revolver",
	AlternateRevolver:         "Alternate Revolver",
	CoreEjectShotgun:          "Core Eject Shotgun",
	PumpChargeShotgun:         "Pump Charge Shotgun",
	AttractorNailgun:          "Attractor Nailgun",
	OverheatNailgun:           "Overheat Nailgun",
	SawbladeLauncher:          "Sawblade Launcher",
	ElectricRailgun:           "Electric Railgun",
	ScrewdriverRailgun:        "Screwdriver Railgun",
	MaliciousRailgun:          "Malicious Railgun",
	FreezeframeRocketLauncher: "Freezeframe Rocket Launcher",
	SRSCannonRocketLauncher:   "S.R.S. Cannon Rocket Launcher",
	Knuckleblaster:            "Knuckleblaster",
	Whiplash:                  "Whiplash",
}

// UnlockableWeaponVariants returns every shop variant in declaration order.
func UnlockableWeaponVariants() []UnlockableWeaponVariant {
	out := make([]UnlockableWeaponVariant, len(variantNames))
	for i := range out {
		out[i] = UnlockableWeaponVariant(i)
	}
	return out
}

func (v UnlockableWeaponVariant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("UnlockableWeaponVariant(%d)", uint8(v))
}

// UnlockableType is a collectible toy. The discriminant indexes GeneralData's
// unlockablesFound array.
type UnlockableType uint8

const (
	Florp UnlockableType = iota
	KITR
)

// UnlockableTypes returns every collectible in discriminant order.
func UnlockableTypes() []UnlockableType {
	return []UnlockableType{Florp, KITR}
}

func (u UnlockableType) String() string {
	switch u {
	case Florp:
		return "Florp"
	case KITR:
		return "KITR"
	}
	return fmt.Sprintf("UnlockableType(%d)", uint8(u))
}
