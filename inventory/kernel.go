// Package inventory provides fixed-length slot collections of stackable
// items. A minimal kernel interface carries the primitive operations; the
// Inventory wrapper derives everything else from them, so alternate kernel
// backends inherit the full operation set.
//
// The package is not safe for concurrent use. Callers sharing an inventory
// across goroutines must serialize access themselves, and operations that
// touch two inventories require a consistent lock order on the caller's
// side.
package inventory

import "packrat/item"

// NotFound is returned by searches that locate no matching slot.
const NotFound = -1

// Kernel is the primitive operation set a slot backend provides. Every
// derived operation in this package is built purely from these five.
type Kernel interface {
	// Size returns the slot count fixed at construction.
	Size() int

	// Allowed reports whether the backend will accept the item at all,
	// independent of slot occupancy.
	Allowed(it item.Item) bool

	// AddItem places the item at the slot. An empty slot takes the item
	// outright; a slot holding an equal item (per item.Equal, which
	// ignores count) merges the two by summing counts. A slot occupied by
	// a different item refuses placement and is left unchanged, in which
	// case the caller keeps the item.
	AddItem(slot int, it item.Item) bool

	// RemoveItem removes and returns the slot's item, leaving a fresh
	// empty item behind. Removing from an empty slot yields an empty item.
	RemoveItem(slot int) item.Item

	// NextIndexOf scans forward from pos (inclusive) for the first slot
	// holding an item with the name, returning NotFound when no slot in
	// [pos, Size()) matches.
	NextIndexOf(name string, pos int) int
}
