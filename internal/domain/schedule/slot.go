package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSlot = errors.New("unknown alliance slot")

// Slot is an alliance position code such as R1 or B3.
type Slot string

const (
	SlotRed1  Slot = "R1"
	SlotRed2  Slot = "R2"
	SlotRed3  Slot = "R3"
	SlotBlue1 Slot = "B1"
	SlotBlue2 Slot = "B2"
	SlotBlue3 Slot = "B3"
)

var AllSlots = []Slot{SlotRed1, SlotRed2, SlotRed3, SlotBlue1, SlotBlue2, SlotBlue3}

// ParseSlot accepts the six codes case-insensitively.
func ParseSlot(code string) (Slot, error) {
	slot := Slot(strings.ToUpper(strings.TrimSpace(code)))
	for _, s := range AllSlots {
		if s == slot {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlot, code)
}

// Color is "Red" or "Blue".
func (s Slot) Color() string {
	if strings.HasPrefix(string(s), "B") {
		return "Blue"
	}
	return "Red"
}

// Position is the 1-based station number within the alliance.
func (s Slot) Position() int {
	if len(s) != 2 {
		return 0
	}
	return int(s[1] - '0')
}

func (s Slot) Label() string {
	return fmt.Sprintf("%s %d", s.Color(), s.Position())
}

func (s Slot) String() string {
	return string(s)
}
