package inventory

import (
	"testing"

	"packrat/item"
)

func TestGetItemHasNoNetEffect(t *testing.T) {
	inv := filled("Foo", "", "Bar")
	before := inv.String()

	got := inv.GetItem(0)
	if !got.Equal(item.New("Foo")) {
		t.Fatalf("expected Foo, got %s", got)
	}
	if inv.String() != before {
		t.Fatalf("expected no net effect, before %q after %q", before, inv.String())
	}
}

func TestRemoveThenAddRoundTrip(t *testing.T) {
	inv := New(4)
	stack := item.NewStack("Foo", 3)
	stack.PutTag("quality", 2)
	inv.AddItem(2, stack)
	before := inv.String()

	for slot := 0; slot < inv.Size(); slot++ {
		removed := inv.RemoveItem(slot)
		if !inv.AddItem(slot, removed) {
			t.Fatalf("expected re-adding to an emptied slot %d to succeed", slot)
		}
	}

	if inv.String() != before {
		t.Fatalf("expected round trip to restore state, before %q after %q", before, inv.String())
	}
}

func TestSwapItemsExchangesSlots(t *testing.T) {
	inv := filled("Foo", "Bar")
	inv.SwapItems(0, 1)

	if !inv.IsAt(0, "Bar") || !inv.IsAt(1, "Foo") {
		t.Fatalf("expected swapped contents, got %s", inv)
	}
}

func TestSwapItemsSameSlot(t *testing.T) {
	inv := filled("Foo")
	before := inv.String()
	inv.SwapItems(0, 0)
	if inv.String() != before {
		t.Fatalf("expected same-slot swap to be a no-op, got %s", inv)
	}
}

func TestSwapItemsDoesNotMergeEqualStacks(t *testing.T) {
	inv := New(2)
	inv.AddItem(0, item.NewStack("Foo", 2))
	inv.AddItem(1, item.NewStack("Foo", 5))

	inv.SwapItems(0, 1)

	if inv.GetItem(0).Count() != 5 || inv.GetItem(1).Count() != 2 {
		t.Fatalf("expected counts swapped without merging, got %s", inv)
	}
}

func TestSwapWithExchangesAcrossInventories(t *testing.T) {
	src := filled("Foo")
	dest := filled("Bar")

	dest.SwapWith(src, 0, 0)

	if !src.IsAt(0, "Bar") || !dest.IsAt(0, "Foo") {
		t.Fatalf("expected cross swap, src %s dest %s", src, dest)
	}
}

func TestTransferMovesItem(t *testing.T) {
	src := filled("Gravel")
	dest := New(1)

	if !dest.Transfer(src, 0, 0) {
		t.Fatalf("expected transfer into an empty slot to succeed")
	}
	if !src.GetItem(0).IsEmpty() {
		t.Fatalf("expected source slot emptied, got %s", src)
	}
	if !dest.IsAt(0, "Gravel") {
		t.Fatalf("expected Gravel at the destination, got %s", dest)
	}
}

func TestTransferMergesEqualStacks(t *testing.T) {
	src := New(1)
	src.AddItem(0, item.NewStack("Gravel", 3))
	dest := New(1)
	dest.AddItem(0, item.NewStack("Gravel", 4))

	if !dest.Transfer(src, 0, 0) {
		t.Fatalf("expected merging transfer to succeed")
	}
	if dest.GetItem(0).Count() != 7 {
		t.Fatalf("expected merged count 7, got %d", dest.GetItem(0).Count())
	}
}

func TestTransferRollsBackOnRefusal(t *testing.T) {
	src := filled("Gravel")
	dest := filled("Wood")

	if dest.Transfer(src, 0, 0) {
		t.Fatalf("expected transfer onto a mismatched occupant to fail")
	}
	if !src.IsAt(0, "Gravel") {
		t.Fatalf("expected Gravel restored to the source, got %s", src)
	}
	if !dest.IsAt(0, "Wood") {
		t.Fatalf("expected Wood untouched at the destination, got %s", dest)
	}
}

func TestSplitZeroCountIsNoOp(t *testing.T) {
	src := New(1)
	src.AddItem(0, item.NewStack("Foo", 4))
	dest := New(1)
	before := src.String()

	dest.Split(src, 0, 0, 0)

	if src.String() != before {
		t.Fatalf("expected the source unchanged, got %s", src)
	}
	if !dest.GetItem(0).IsEmpty() {
		t.Fatalf("expected the destination to stay empty, got %s", dest)
	}
}

func TestSplitPartial(t *testing.T) {
	src := New(1)
	stack := item.NewStack("Foo", 4)
	stack.PutTag("quality", 2)
	src.AddItem(0, stack)
	dest := New(1)

	dest.Split(src, 0, 0, 1)

	remaining := src.GetItem(0)
	if remaining.Count() != 3 {
		t.Fatalf("expected 3 units left at the source, got %d", remaining.Count())
	}
	moved := dest.GetItem(0)
	if moved.Count() != 1 {
		t.Fatalf("expected 1 unit at the destination, got %d", moved.Count())
	}
	if moved.TagValue("quality") != 2 {
		t.Fatalf("expected the split stack to carry the source tags")
	}
}

func TestSplitFullCountEmptiesSource(t *testing.T) {
	src := New(1)
	stack := item.NewStack("Foo", 4)
	stack.PutTag("quality", 2)
	src.AddItem(0, stack)
	dest := New(1)

	dest.Split(src, 0, 0, 4)

	if !src.GetItem(0).IsEmpty() {
		t.Fatalf("expected the source slot emptied, got %s", src)
	}
	moved := dest.GetItem(0)
	if moved.Count() != 4 || moved.TagValue("quality") != 2 {
		t.Fatalf("expected the whole stack at the destination, got %s", moved)
	}
}

func TestSplitNeverAliasesTags(t *testing.T) {
	src := New(1)
	stack := item.NewStack("Foo", 4)
	stack.PutTag("quality", 2)
	src.AddItem(0, stack)
	dest := New(1)

	dest.Split(src, 0, 0, 1)
	dest.GetItem(0).PutTag("quality", 9)

	if src.GetItem(0).TagValue("quality") != 2 {
		t.Fatalf("expected the source tags to be independent of the split stack")
	}
}

func TestSplitIntoOccupiedSlotPanics(t *testing.T) {
	src := New(1)
	src.AddItem(0, item.NewStack("Foo", 4))
	dest := filled("Bar")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected splitting into an occupied slot to panic")
		}
	}()
	dest.Split(src, 0, 0, 1)
}

func TestSplitCountOutOfRangePanics(t *testing.T) {
	src := New(1)
	src.AddItem(0, item.NewStack("Foo", 4))
	dest := New(1)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected an out-of-range split count to panic")
		}
	}()
	dest.Split(src, 0, 0, 5)
}

func TestCopyDuplicatesFirstMatch(t *testing.T) {
	src := New(2)
	stack := item.NewStack("Foo", 3)
	stack.PutTag("quality", 1)
	src.AddItem(1, stack)
	dest := New(1)

	dest.Copy(src, "Foo", 0)

	copied := dest.GetItem(0)
	if copied.Count() != 3 || copied.TagValue("quality") != 1 {
		t.Fatalf("expected a full duplicate including count, got %s", copied)
	}
	if src.GetItem(1).Count() != 3 {
		t.Fatalf("expected the source untouched, got %s", src)
	}

	copied.PutTag("quality", 9)
	if src.GetItem(1).TagValue("quality") != 1 {
		t.Fatalf("expected the duplicate to own its tag map")
	}
}

func TestCopyMergesWithOccupant(t *testing.T) {
	src := New(1)
	src.AddItem(0, item.NewStack("Foo", 3))
	dest := New(1)
	dest.AddItem(0, item.NewStack("Foo", 2))

	dest.Copy(src, "Foo", 0)

	if dest.GetItem(0).Count() != 5 {
		t.Fatalf("expected the copy to merge to 5, got %d", dest.GetItem(0).Count())
	}
}

func TestCopyMissingNamePanics(t *testing.T) {
	src := New(1)
	dest := New(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected copying a missing name to panic")
		}
	}()
	dest.Copy(src, "Foo", 0)
}

func TestNextPlacementPrefersStack(t *testing.T) {
	inv := New(5)
	inv.AddItem(2, item.NewStack("Food", 2))

	if pos := inv.NextPlacement(item.NewStack("Food", 3), 0); pos != 2 {
		t.Fatalf("expected unbounded stacking at slot 2, got %d", pos)
	}
	if pos := inv.NextPlacement(item.NewStack("Food", 3), 5); pos != 2 {
		t.Fatalf("expected stacking within the cap at slot 2, got %d", pos)
	}
}

func TestNextPlacementFullStackFallsToEmpty(t *testing.T) {
	inv := New(10)
	for i := 0; i < 5; i++ {
		inv.AddItem(i, item.New("Filler"))
	}
	inv.RemoveItem(2)
	inv.AddItem(2, item.NewStack("Food", 4))
	inv.RemoveItem(5)

	if pos := inv.NextPlacement(item.NewStack("Food", 3), 5); pos != 5 {
		t.Fatalf("expected fallback to the first empty slot 5, got %d", pos)
	}
}

func TestNextPlacementScansPastFullStacks(t *testing.T) {
	inv := New(5)
	inv.AddItem(1, item.NewStack("Food", 5))
	inv.AddItem(3, item.NewStack("Food", 1))

	if pos := inv.NextPlacement(item.NewStack("Food", 3), 5); pos != 3 {
		t.Fatalf("expected the later stack with room at slot 3, got %d", pos)
	}
}

func TestNextPlacementNoRoomAnywhere(t *testing.T) {
	inv := New(2)
	inv.AddItem(0, item.NewStack("Food", 5))
	inv.AddItem(1, item.New("Filler"))

	if pos := inv.NextPlacement(item.NewStack("Food", 3), 5); pos != NotFound {
		t.Fatalf("expected NotFound with no viable stack or empty slot, got %d", pos)
	}
}

func TestNextPlacementDoesNotMutate(t *testing.T) {
	inv := New(5)
	inv.AddItem(1, item.NewStack("Food", 5))
	inv.AddItem(3, item.NewStack("Food", 1))
	before := inv.String()

	inv.NextPlacement(item.NewStack("Food", 3), 5)

	if inv.String() != before {
		t.Fatalf("expected placement search to leave the inventory unchanged")
	}
}

func TestUseDecrementsStack(t *testing.T) {
	inv := New(1)
	inv.AddItem(0, item.NewStack("Food", 3))

	name := inv.Use(0)
	if name != "Food" {
		t.Fatalf("expected the consumed name Food, got %q", name)
	}
	if inv.GetItem(0).Count() != 2 {
		t.Fatalf("expected 2 units left, got %d", inv.GetItem(0).Count())
	}
}

func TestUseLastUnitEmptiesSlot(t *testing.T) {
	inv := New(1)
	inv.AddItem(0, item.New("Food"))

	if name := inv.Use(0); name != "Food" {
		t.Fatalf("expected the consumed name Food, got %q", name)
	}
	if !inv.GetItem(0).IsEmpty() {
		t.Fatalf("expected the slot emptied after the last unit, got %s", inv)
	}
}

func TestUseEmptySlotPanics(t *testing.T) {
	inv := New(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected using an empty slot to panic")
		}
	}()
	inv.Use(0)
}

func TestIsAt(t *testing.T) {
	inv := filled("Foo", "")
	if !inv.IsAt(0, "Foo") {
		t.Fatalf("expected Foo at slot 0")
	}
	if inv.IsAt(0, "Bar") {
		t.Fatalf("did not expect Bar at slot 0")
	}
	if !inv.IsAt(1, item.EmptyName) {
		t.Fatalf("expected the empty name at slot 1")
	}
}

func TestDrainEmptiesInventory(t *testing.T) {
	inv := New(4)
	inv.AddItem(0, item.NewStack("Gold", 5))
	inv.AddItem(2, item.NewStack("Food", 2))

	drained := inv.Drain()
	if len(drained) != 2 {
		t.Fatalf("expected two drained stacks, got %d", len(drained))
	}
	if drained[0].Name() != "Gold" || drained[1].Name() != "Food" {
		t.Fatalf("expected slot-order drain, got %s then %s", drained[0], drained[1])
	}
	for i := 0; i < inv.Size(); i++ {
		if !inv.GetItem(i).IsEmpty() {
			t.Fatalf("expected slot %d empty after drain", i)
		}
	}
}

func TestDrainEmptyInventory(t *testing.T) {
	if drained := New(3).Drain(); len(drained) != 0 {
		t.Fatalf("expected nothing drained, got %d stacks", len(drained))
	}
}

func TestEqualReflexiveAndSymmetric(t *testing.T) {
	a := filled("Foo", "Bar")
	b := filled("Foo", "Bar")

	if !a.Equal(a) {
		t.Fatalf("expected an inventory to equal itself")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatalf("expected equal inventories to compare equal both ways")
	}
}

func TestEqualSharedKernelLeavesSlotsIntact(t *testing.T) {
	kernel := NewSlots(2)
	a := Wrap(kernel)
	a.AddItem(0, item.New("Foo"))
	b := Wrap(kernel)

	if !a.Equal(a) {
		t.Fatalf("expected an inventory to equal itself")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatalf("expected wrappers over one kernel to compare equal")
	}
	if !a.IsAt(0, "Foo") {
		t.Fatalf("expected comparison to leave the shared slots intact, got %s", a)
	}
}

func TestEqualIgnoresCounts(t *testing.T) {
	a := New(1)
	a.AddItem(0, item.NewStack("Foo", 2))
	b := New(1)
	b.AddItem(0, item.NewStack("Foo", 9))

	if !a.Equal(b) {
		t.Fatalf("expected count differences to be ignored")
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	a := filled("Foo", "Bar")
	if a.Equal(filled("Foo", "Baz")) {
		t.Fatalf("expected differing names to compare unequal")
	}
	if a.Equal(filled("Foo")) {
		t.Fatalf("expected differing sizes to compare unequal")
	}

	tagged := filled("Foo", "Bar")
	tagged.GetItem(0).PutTag("quality", 1)
	if a.Equal(tagged) {
		t.Fatalf("expected differing tags to compare unequal")
	}
}

func TestEqualDoesNotMutateEitherInventory(t *testing.T) {
	a := filled("Foo", "Bar")
	b := filled("Foo", "Baz")
	beforeA := a.String()
	beforeB := b.String()

	a.Equal(b)

	if a.String() != beforeA || b.String() != beforeB {
		t.Fatalf("expected comparison to restore both inventories")
	}
}

func TestHashPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected hashing an inventory to panic")
		}
	}()
	New(1).Hash()
}

func TestStringForm(t *testing.T) {
	inv := New(2)
	inv.AddItem(1, item.NewStack("Foo", 2))

	want := "{ :{(count, 0)}; Foo:{(count, 2)} }"
	if got := inv.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCollationScenario(t *testing.T) {
	inv := New(10)
	inv.AddItem(1, item.NewStack("Foo", 2))
	inv.AddItem(1, item.NewStack("Foo", 1))

	if inv.GetItem(1).Count() != 3 {
		t.Fatalf("expected slot 1 to hold Foo count 3, got %s", inv.GetItem(1))
	}
	for i := 0; i < inv.Size(); i++ {
		if i == 1 {
			continue
		}
		if !inv.GetItem(i).IsEmpty() {
			t.Fatalf("expected slot %d to remain empty", i)
		}
	}
}

func TestWrapNilKernelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected wrapping a nil kernel to panic")
		}
	}()
	Wrap(nil)
}
