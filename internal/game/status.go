package game

import "fmt"

// Lockable is the tri-state progress of secret missions, prime levels and
// enemy discoveries.
type Lockable uint8

const (
	Locked    Lockable = 0
	Unlocked  Lockable = 1
	Completed Lockable = 2
)

// LockableFromRepr rejects discriminants the game never writes.
func LockableFromRepr(v int32) (Lockable, bool) {
	if v < int32(Locked) || v > int32(Completed) {
		return 0, false
	}
	return Lockable(v), true
}

func (l Lockable) String() string {
	switch l {
	case Locked:
		return "Locked"
	case Unlocked:
		return "Unlocked"
	case Completed:
		return "Completed"
	}
	return fmt.Sprintf("Lockable(%d)", uint8(l))
}

// DiscoveryLabel is how the bestiary names a Lockable.
func (l Lockable) DiscoveryLabel() string {
	switch l {
	case Unlocked:
		return "Partially Discovered"
	case Completed:
		return "Fully Discovered"
	}
	return "Undiscovered"
}

func (l Lockable) Next() Lockable { return (l + 1) % 3 }
func (l Lockable) Prev() Lockable { return (l + 2) % 3 }

// LevelRank is the rank recorded for a level at one difficulty.
type LevelRank int8

const (
	RankNone LevelRank = -1
	RankD    LevelRank = 0
	RankC    LevelRank = 1
	RankB    LevelRank = 2
	RankA    LevelRank = 3
	RankS    LevelRank = 4
	RankP    LevelRank = 12
)

var rankOrder = []LevelRank{RankNone, RankD, RankC, RankB, RankA, RankS, RankP}

// Ranks returns every rank from worst to best.
func Ranks() []LevelRank {
	return append([]LevelRank(nil), rankOrder...)
}

// LevelRankFromRepr rejects values outside the rank table instead of clamping.
func LevelRankFromRepr(v int32) (LevelRank, bool) {
	for _, r := range rankOrder {
		if int32(r) == v {
			return r, true
		}
	}
	return 0, false
}

func (r LevelRank) String() string {
	switch r {
	case RankNone:
		return "None"
	case RankD:
		return "D"
	case RankC:
		return "C"
	case RankB:
		return "B"
	case RankA:
		return "A"
	case RankS:
		return "S"
	case RankP:
		return "P"
	}
	return fmt.Sprintf("LevelRank(%d)", int8(r))
}

func (r LevelRank) Next() LevelRank { return r.step(1) }
func (r LevelRank) Prev() LevelRank { return r.step(len(rankOrder) - 1) }

func (r LevelRank) step(by int) LevelRank {
	for i, rank := range rankOrder {
		if rank == r {
			return rankOrder[(i+by)%len(rankOrder)]
		}
	}
	return RankNone
}
