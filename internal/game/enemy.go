package game

import (
	"fmt"
	"maps"
	"slices"
)

// EnemyType is a terminal bestiary entry. The discriminant is the index into
// GeneralData's newEnemiesFound array; 36 is unused by the game.
type EnemyType uint8

const (
	EnemyCerberus                 EnemyType = 0
	EnemyDrone                    EnemyType = 1
	EnemyHideousMass              EnemyType = 2
	EnemyFilth                    EnemyType = 3
	EnemyMaliciousFace            EnemyType = 4
	EnemyMindflayer               EnemyType = 5
	EnemyStreetcleaner            EnemyType = 6
	EnemySwordsmachine            EnemyType = 7
	EnemyV2                       EnemyType = 8
	EnemyVirtue                   EnemyType = 9
	EnemyWicked                   EnemyType = 10
	EnemyMinos                    EnemyType = 11
	EnemyStalker                  EnemyType = 12
	EnemyStray                    EnemyType = 13
	EnemySchism                   EnemyType = 14
	EnemySoldier                  EnemyType = 15
	EnemyGabriel                  EnemyType = 16
	EnemyFleshPrison              EnemyType = 17
	EnemyMinosPrime               EnemyType = 18
	EnemySisypheanInsurrectionist EnemyType = 19
	EnemySentry                   EnemyType = 20
	EnemyIdol                     EnemyType = 21
	EnemyV2Second                 EnemyType = 22
	EnemyCancerousRodent          EnemyType = 23
	EnemyVeryCancerousRodent      EnemyType = 24
	EnemyMandalore                EnemyType = 25
	EnemyFerryman                 EnemyType = 26
	EnemyLeviathan                EnemyType = 27
	EnemyGabrielSecond            EnemyType = 28
	EnemySisyphusPrime            EnemyType = 29
	EnemyFleshPanopticon          EnemyType = 30
	EnemyMannequin                EnemyType = 31
	EnemyMinotaur                 EnemyType = 32
	EnemyGutterman                EnemyType = 33
	EnemyGuttertank               EnemyType = 34
	EnemyCentaur                  EnemyType = 35
	EnemyBigJohninator            EnemyType = 37
)

var enemyNames = map[EnemyType]string{
	EnemyCerberus:                 "Cerberus",
	EnemyDrone:                    "Drone",
	EnemyHideousMass:              "Hideous Mass",
	EnemyFilth:                    "Filth",
	EnemyMaliciousFace:            "Malicious Face",
	EnemyMindflayer:               "Mindflayer",
	EnemyStreetcleaner:            "Streetcleaner",
	EnemySwordsmachine:            "Swordsmachine",
	EnemyV2:                       "V2",
	EnemyVirtue:                   "Virtue",
	EnemyWicked:                   "Wicked",
	EnemyMinos:                    "Minos",
	EnemyStalker:                  "Stalker",
	EnemyStray:                    "Stray",
	EnemySchism:                   "Schism",
	EnemySoldier:                  "Soldier",
	EnemyGabriel:                  "Gabriel, Judge of Hell",
	EnemyFleshPrison:              "Flesh Prison",
	EnemyMinosPrime:               "Minos Prime",
	EnemySisypheanInsurrectionist: "Sisyphean Insurrectionist",
	EnemySentry:                   "Sentry",
	EnemyIdol:                     "Idol",
	EnemyV2Second:                 "V2 (2nd)",
	EnemyCancerousRodent:          "Cancerous Rodent",
	EnemyVeryCancerousRodent:      "Very Cancerous Rodent",
	EnemyMandalore:                "Mysterious Druid Knight (& Owl)",
	EnemyFerryman:                 "Ferryman",
	EnemyLeviathan:                "Leviathan",
	EnemyGabrielSecond:            "Gabriel, Apostate of Hate",
	EnemySisyphusPrime:            "Sisyphus Prime",
	EnemyFleshPanopticon:          "Flesh Panopticon",
	EnemyMannequin:                "Mannequin",
	EnemyMinotaur:                 "Minotaur",
	EnemyGutterman:                "Gutterman",
	EnemyGuttertank:               "Guttertank",
	EnemyCentaur:                  "1000-THR \"Earthmover\"",
	EnemyBigJohninator:            "Big Johninator",
}

var allEnemies = slices.Sorted(maps.Keys(enemyNames))

// EnemyTypes returns every enemy in discriminant order.
func EnemyTypes() []EnemyType {
	return slices.Clone(allEnemies)
}

// EnemySlots is the length of the newEnemiesFound array: one past the
// highest discriminant, holes included.
func EnemySlots() int {
	return int(allEnemies[len(allEnemies)-1]) + 1
}

// EnemyTypeFromRepr maps a newEnemiesFound index back to an enemy.
func EnemyTypeFromRepr(i int) (EnemyType, bool) {
	if i < 0 || i > 0xff {
		return 0, false
	}
	_, ok := enemyNames[EnemyType(i)]
	return EnemyType(i), ok
}

func (e EnemyType) String() string {
	if name, ok := enemyNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EnemyType(%d)", uint8(e))
}
