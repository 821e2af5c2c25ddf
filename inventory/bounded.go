package inventory

import (
	"fmt"

	"packrat/item"
)

// Bounded is a capacity-checked kernel backend enforcing a per-slot stack
// cap. Stacks larger than the cap are refused outright and merges never
// grow a slot beyond it, so every stored stack satisfies the cap at all
// times. The derived operation layer works unchanged on top of it.
type Bounded struct {
	*Slots
	maxCount int
}

// NewBoundedSlots constructs a capacity-checked backend. The cap must be at
// least 1.
func NewBoundedSlots(size, maxCount int) *Bounded {
	if maxCount < 1 {
		panic(fmt.Sprintf("inventory: stack cap must be at least 1, got %d", maxCount))
	}
	return &Bounded{Slots: NewSlots(size), maxCount: maxCount}
}

// MaxCount returns the per-slot stack cap.
func (b *Bounded) MaxCount() int {
	return b.maxCount
}

func (b *Bounded) Allowed(it item.Item) bool {
	return it.IsEmpty() || it.Count() <= b.maxCount
}

func (b *Bounded) AddItem(slot int, it item.Item) bool {
	b.Slots.check(slot)

	if !b.Allowed(it) {
		return false
	}
	dest := b.Slots.slots[slot]
	if !dest.IsEmpty() && dest.Equal(it) && dest.Count()+it.Count() > b.maxCount {
		return false
	}
	return b.Slots.AddItem(slot, it)
}
