package item

import (
	"fmt"
	"sort"
	"strings"
)

// TagCount is the mandatory tag carried by every item. Its value is the
// stack size.
const TagCount = "count"

// EmptyName is the name of the sentinel empty item occupying vacant slots.
const EmptyName = ""

// Item is a named stack with integer tags. Copies of an Item share the same
// tag map, so mutating a tag through one copy is visible through the others;
// Clone produces an owned map when that sharing is unwanted.
type Item struct {
	name string
	tags map[string]int
}

// Empty returns the sentinel empty item with count 0.
func Empty() Item {
	return NewStack(EmptyName, 0)
}

// New returns a named item with count 1.
func New(name string) Item {
	return NewStack(name, 1)
}

// NewStack returns a named item with the given count.
func NewStack(name string, count int) Item {
	return Item{name: name, tags: map[string]int{TagCount: count}}
}

// Name returns the item's identifier.
func (it Item) Name() string {
	return it.name
}

// IsEmpty reports whether this is the sentinel empty item. Tag values are
// not consulted.
func (it Item) IsEmpty() bool {
	return it.name == EmptyName
}

// Count returns the stack size.
func (it Item) Count() int {
	return it.TagValue(TagCount)
}

// HasTag reports whether the item carries the tag.
func (it Item) HasTag(tag string) bool {
	_, ok := it.tags[tag]
	return ok
}

// PutTag inserts the tag or overwrites its value.
func (it Item) PutTag(tag string, value int) {
	if it.tags == nil {
		panic("item: tag mutation on uninitialized item")
	}
	it.tags[tag] = value
}

// RemoveTag deletes the tag. The count tag is mandatory and removing it is
// caller misuse.
func (it Item) RemoveTag(tag string) {
	if tag == TagCount {
		panic("item: the count tag cannot be removed")
	}
	delete(it.tags, tag)
}

// TagValue returns the value for the tag. The item must carry the tag.
func (it Item) TagValue(tag string) int {
	value, ok := it.tags[tag]
	if !ok {
		panic(fmt.Sprintf("item: missing tag %q on %q", tag, it.name))
	}
	return value
}

// Tags returns an owned copy of the tag map.
func (it Item) Tags() map[string]int {
	copied := make(map[string]int, len(it.tags))
	for tag, value := range it.tags {
		copied[tag] = value
	}
	return copied
}

// Clone returns a deep copy whose tag map is independent of the original.
func (it Item) Clone() Item {
	return Item{name: it.name, tags: it.Tags()}
}

// Equal reports whether both items have the same name and the same tags
// other than count, in both presence and value. Count is excluded so stacks
// of differing size still compare as the same kind of item.
func (it Item) Equal(other Item) bool {
	if it.name != other.name {
		return false
	}
	for tag, value := range it.tags {
		if tag == TagCount {
			continue
		}
		if got, ok := other.tags[tag]; !ok || got != value {
			return false
		}
	}
	for tag := range other.tags {
		if tag == TagCount {
			continue
		}
		if _, ok := it.tags[tag]; !ok {
			return false
		}
	}
	return true
}

// String renders the item as name:{(tag, value), ...} with tags in sorted
// order.
func (it Item) String() string {
	tags := make([]string, 0, len(it.tags))
	for tag := range it.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var b strings.Builder
	b.WriteString(it.name)
	b.WriteString(":{")
	for i, tag := range tags {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%s, %d)", tag, it.tags[tag])
	}
	b.WriteString("}")
	return b.String()
}
