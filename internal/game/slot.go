package game

import (
	"fmt"
	"strconv"
)

// SaveSlot is one of the five save slots the game offers.
type SaveSlot uint8

const (
	SlotOne   SaveSlot = 1
	SlotTwo   SaveSlot = 2
	SlotThree SaveSlot = 3
	SlotFour  SaveSlot = 4
	SlotFive  SaveSlot = 5
)

// SaveSlotFromRepr validates a 1-based slot number.
func SaveSlotFromRepr(n int) (SaveSlot, bool) {
	if n < int(SlotOne) || n > int(SlotFive) {
		return 0, false
	}
	return SaveSlot(n), true
}

// DirName is the slot's directory under the game's Saves folder.
func (s SaveSlot) DirName() string {
	return "Slot" + strconv.Itoa(int(s))
}

func (s SaveSlot) String() string {
	if _, ok := SaveSlotFromRepr(int(s)); !ok {
		return fmt.Sprintf("SaveSlot(%d)", uint8(s))
	}
	return "Slot " + strconv.Itoa(int(s))
}
