package inventory

import (
	"fmt"

	"packrat/item"
)

// Slots is the default kernel backend: a fixed-length slice with one item
// per slot. It accepts every item.
type Slots struct {
	slots []item.Item
}

// NewSlots constructs a backend with the given slot count, every slot
// holding the empty item. Size must be at least 1.
func NewSlots(size int) *Slots {
	if size < 1 {
		panic(fmt.Sprintf("inventory: size must be at least 1, got %d", size))
	}
	slots := make([]item.Item, size)
	for i := range slots {
		slots[i] = item.Empty()
	}
	return &Slots{slots: slots}
}

func (s *Slots) Size() int {
	return len(s.slots)
}

func (s *Slots) Allowed(item.Item) bool {
	return true
}

func (s *Slots) AddItem(slot int, it item.Item) bool {
	s.check(slot)

	dest := s.slots[slot]
	switch {
	case dest.IsEmpty():
		s.slots[slot] = it
	case dest.Equal(it):
		dest.PutTag(item.TagCount, dest.Count()+it.Count())
	default:
		return false
	}
	return true
}

func (s *Slots) RemoveItem(slot int) item.Item {
	s.check(slot)

	removed := s.slots[slot]
	s.slots[slot] = item.Empty()
	return removed
}

func (s *Slots) NextIndexOf(name string, pos int) int {
	if pos < 0 {
		panic(fmt.Sprintf("inventory: negative search position %d", pos))
	}
	for i := pos; i < len(s.slots); i++ {
		if s.slots[i].Name() == name {
			return i
		}
	}
	return NotFound
}

// Clone returns a deep copy whose items share no tag maps with the
// original.
func (s *Slots) Clone() *Slots {
	cloned := make([]item.Item, len(s.slots))
	for i, it := range s.slots {
		cloned[i] = it.Clone()
	}
	return &Slots{slots: cloned}
}

func (s *Slots) check(slot int) {
	if slot < 0 || slot >= len(s.slots) {
		panic(fmt.Sprintf("inventory: slot %d out of range [0, %d)", slot, len(s.slots)))
	}
}
