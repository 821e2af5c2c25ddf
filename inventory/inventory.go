package inventory

import (
	"fmt"
	"strings"

	"packrat/item"
)

// Inventory layers the derived operations over any Kernel. Derived
// operations go through the kernel primitives only, so they hold for every
// backend that honors the Kernel contract.
type Inventory struct {
	Kernel
}

// New returns an inventory backed by the default Slots kernel.
func New(size int) *Inventory {
	return Wrap(NewSlots(size))
}

// NewBounded returns an inventory backed by a capacity-checked kernel.
func NewBounded(size, maxCount int) *Inventory {
	return Wrap(NewBoundedSlots(size, maxCount))
}

// Wrap layers the derived operations over an existing kernel backend.
func Wrap(kernel Kernel) *Inventory {
	if kernel == nil {
		panic("inventory: nil kernel")
	}
	return &Inventory{Kernel: kernel}
}

// GetItem observes the item at the slot without changing inventory
// contents. The peek goes through the kernel path: re-adding a just-removed
// item to its own, now empty, slot always succeeds, so the slot is restored
// exactly.
func (inv *Inventory) GetItem(slot int) item.Item {
	removed := inv.RemoveItem(slot)
	inv.AddItem(slot, removed)
	return removed
}

// SwapItems exchanges the contents of two slots. Both items are removed
// before either is re-added so stacks that would merge stay distinct, which
// also makes slot1 == slot2 a no-op.
func (inv *Inventory) SwapItems(slot1, slot2 int) {
	removed1 := inv.RemoveItem(slot1)
	removed2 := inv.RemoveItem(slot2)

	inv.AddItem(slot1, removed2)
	inv.AddItem(slot2, removed1)
}

// SwapWith exchanges the content at srcSlot of src with destSlot of this
// inventory, with the same remove-both-then-add-both discipline as
// SwapItems.
func (inv *Inventory) SwapWith(src *Inventory, srcSlot, destSlot int) {
	srcRemoved := src.RemoveItem(srcSlot)
	destRemoved := inv.RemoveItem(destSlot)

	src.AddItem(srcSlot, destRemoved)
	inv.AddItem(destSlot, srcRemoved)
}

// Transfer moves the item at srcSlot of src into destSlot of this
// inventory. When the destination refuses placement the item is returned to
// its source slot unchanged; the source never loses the item.
func (inv *Inventory) Transfer(src *Inventory, srcSlot, destSlot int) bool {
	removed := src.RemoveItem(srcSlot)

	placed := inv.AddItem(destSlot, removed)
	if !placed {
		src.AddItem(srcSlot, removed)
	}
	return placed
}

// Split moves count units from the stack at srcSlot of src into the empty
// destSlot of this inventory. The new stack carries an owned copy of the
// source's tags with its count overridden. A count of zero changes nothing.
// Count must lie in [0, source count] and the destination must be empty.
func (inv *Inventory) Split(src *Inventory, srcSlot, destSlot, count int) {
	sourceCount := src.GetItem(srcSlot).Count()
	if count < 0 || count > sourceCount {
		panic(fmt.Sprintf("inventory: split count %d out of range [0, %d]", count, sourceCount))
	}
	if !inv.GetItem(destSlot).IsEmpty() {
		panic(fmt.Sprintf("inventory: split destination slot %d is occupied", destSlot))
	}
	if count == 0 {
		return
	}

	oldStack := src.RemoveItem(srcSlot)
	newStack := oldStack.Clone()
	newStack.PutTag(item.TagCount, count)

	if remaining := oldStack.Count() - count; remaining > 0 {
		oldStack.PutTag(item.TagCount, remaining)
		src.AddItem(srcSlot, oldStack)
	}

	inv.AddItem(destSlot, newStack)
}

// Copy locates the first item named name in src, duplicates it with an
// owned tag map (count included), and places the duplicate at destSlot of
// this inventory through the normal add path, so it may merge with an equal
// occupant. Such an item must exist in src.
func (inv *Inventory) Copy(src *Inventory, name string, destSlot int) {
	pos := src.NextIndexOf(name, 0)
	if pos == NotFound {
		panic(fmt.Sprintf("inventory: no item named %q to copy", name))
	}

	inv.AddItem(destSlot, src.GetItem(pos).Clone())
}

// NextPlacement returns the index of the first slot at which the item could
// be added, preferring stacks of the same name over empty slots. A stack is
// viable when maxStack is non-positive (unbounded stacking) or its count
// plus the item's count stays within maxStack; the scan resumes after each
// rejected stack. With no viable stack the first empty slot is returned,
// and NotFound when neither exists. The query leaves the inventory
// unchanged.
func (inv *Inventory) NextPlacement(it item.Item, maxStack int) int {
	checkAt := 0
	for {
		pos := inv.NextIndexOf(it.Name(), checkAt)
		if pos == NotFound {
			break
		}
		if maxStack <= 0 || inv.GetItem(pos).Count()+it.Count() <= maxStack {
			return pos
		}
		checkAt = pos + 1
	}
	return inv.NextIndexOf(item.EmptyName, 0)
}

// Use consumes one unit from the stack at the slot and returns the consumed
// item's name. The slot keeps the reduced stack while units remain and
// becomes empty otherwise. The slot must not already be empty.
func (inv *Inventory) Use(slot int) string {
	if inv.GetItem(slot).IsEmpty() {
		panic(fmt.Sprintf("inventory: use on empty slot %d", slot))
	}

	removed := inv.RemoveItem(slot)
	if remaining := removed.Count() - 1; remaining > 0 {
		removed.PutTag(item.TagCount, remaining)
		inv.AddItem(slot, removed)
	}
	return removed.Name()
}

// IsAt reports whether the item at the slot has exactly this name.
func (inv *Inventory) IsAt(slot int, name string) bool {
	return inv.GetItem(slot).Name() == name
}

// Drain removes and returns every non-empty stack in slot order, leaving
// all slots empty.
func (inv *Inventory) Drain() []item.Item {
	var drained []item.Item
	for i := 0; i < inv.Size(); i++ {
		removed := inv.RemoveItem(i)
		if !removed.IsEmpty() {
			drained = append(drained, removed)
		}
	}
	return drained
}

// Equal reports whether both inventories have the same size and slot-by-slot
// equal items per item.Equal, which ignores count. Both inventories are
// restored to their prior contents before returning. Inventories sharing a
// kernel compare equal without touching any slot; the slot-wise walk removes
// from both sides and would see its own removals otherwise.
func (inv *Inventory) Equal(other *Inventory) bool {
	if other == nil || inv.Size() != other.Size() {
		return false
	}
	if inv == other || inv.Kernel == other.Kernel {
		return true
	}

	equal := true
	for i := 0; i < inv.Size(); i++ {
		removed1 := inv.RemoveItem(i)
		removed2 := other.RemoveItem(i)

		if !removed1.Equal(removed2) {
			equal = false
		}

		inv.AddItem(i, removed1)
		other.AddItem(i, removed2)
	}
	return equal
}

// Hash is an explicit unsupported operation: inventories are mutable
// aggregates and must never be used as hash keys.
func (inv *Inventory) Hash() uint64 {
	panic("inventory: hashing an inventory is not permitted")
}

// String renders the inventory as a brace-delimited, semicolon-separated
// list of each slot's item in slot order.
func (inv *Inventory) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i := 0; i < inv.Size(); i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		removed := inv.RemoveItem(i)
		b.WriteString(removed.String())
		inv.AddItem(i, removed)
	}
	b.WriteString(" }")
	return b.String()
}
