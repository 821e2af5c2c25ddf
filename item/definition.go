package item

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Class enumerates the canonical item classes shared by gameplay systems.
type Class string

const (
	ClassConsumable Class = "consumable"
	ClassMaterial   Class = "material"
	ClassTool       Class = "tool"
	ClassBlock      Class = "block"
	ClassCurrency   Class = "currency"
)

var validClasses = map[Class]struct{}{
	ClassConsumable: {},
	ClassMaterial:   {},
	ClassTool:       {},
	ClassBlock:      {},
	ClassCurrency:   {},
}

// Definition describes metadata for an item kind. Definitions are the
// canonical, validated form; construct them through NewDefinition.
type Definition struct {
	Name           string         `json:"name"`
	Class          Class          `json:"class"`
	Tier           int            `json:"tier"`
	Stackable      bool           `json:"stackable"`
	MaxStack       int            `json:"max_stack,omitempty"`
	FungibilityKey string         `json:"fungibility_key"`
	Tags           map[string]int `json:"tags,omitempty"`
	DisplayName    string         `json:"display_name,omitempty"`
	Description    string         `json:"description,omitempty"`
}

// DefinitionParams describes the configurable fields used when constructing
// a Definition. It doubles as the on-disk format for definition files, so it
// carries schema metadata for the generator command.
type DefinitionParams struct {
	Name        string         `json:"name" yaml:"name" jsonschema:"title=Item name,description=Identifier shared by every stack of this kind"`
	Class       Class          `json:"class" yaml:"class" jsonschema:"title=Item class,description=Canonical class the kind belongs to"`
	Tier        int            `json:"tier" yaml:"tier" jsonschema:"description=Progression tier folded into the fungibility key"`
	Stackable   bool           `json:"stackable" yaml:"stackable" jsonschema:"description=Whether stacks of this kind may hold more than one unit"`
	MaxStack    int            `json:"max_stack,omitempty" yaml:"max_stack" jsonschema:"description=Largest permitted stack count or 0 for unbounded"`
	Tags        map[string]int `json:"tags,omitempty" yaml:"tags" jsonschema:"description=Default tags applied to every instantiated stack"`
	QualityTags []string       `json:"quality_tags,omitempty" yaml:"quality_tags" jsonschema:"description=Quality markers folded into the fungibility key"`
	DisplayName string         `json:"display_name,omitempty" yaml:"display_name" jsonschema:"description=Human readable name for UI surfaces"`
	Description string         `json:"description,omitempty" yaml:"description" jsonschema:"description=Flavor text for UI surfaces"`
}

// DefinitionsFile represents the contents of a definition file consumed by
// the collate driver. The schema generator reflects this type so the
// document stays in lockstep with the loader.
type DefinitionsFile []DefinitionParams

// NewDefinition validates and constructs a canonical Definition.
func NewDefinition(params DefinitionParams) (Definition, error) {
	if params.Name == EmptyName {
		return Definition{}, fmt.Errorf("item name must be provided")
	}
	if _, ok := validClasses[params.Class]; !ok {
		return Definition{}, fmt.Errorf("invalid item class %q", params.Class)
	}
	if params.MaxStack < 0 {
		return Definition{}, fmt.Errorf("max stack must not be negative, got %d", params.MaxStack)
	}

	maxStack := params.MaxStack
	if !params.Stackable {
		maxStack = 1
	}

	tags := make(map[string]int, len(params.Tags))
	for tag, value := range params.Tags {
		if tag == TagCount {
			return Definition{}, fmt.Errorf("the %s tag is reserved for stack size", TagCount)
		}
		tags[tag] = value
	}

	key := ComposeFungibilityKey(params.Name, params.Tier, params.QualityTags...)

	return Definition{
		Name:           params.Name,
		Class:          params.Class,
		Tier:           params.Tier,
		Stackable:      params.Stackable,
		MaxStack:       maxStack,
		FungibilityKey: key,
		Tags:           tags,
		DisplayName:    params.DisplayName,
		Description:    params.Description,
	}, nil
}

// Instantiate builds a stack of the given count carrying the definition's
// default tags. Count must be positive.
func (d Definition) Instantiate(count int) Item {
	if count < 1 {
		panic(fmt.Sprintf("item: instantiate %q with non-positive count %d", d.Name, count))
	}
	it := NewStack(d.Name, count)
	for tag, value := range d.Tags {
		it.PutTag(tag, value)
	}
	return it
}

// ComposeFungibilityKey builds a deterministic key from the item name, tier,
// and optional quality tags.
func ComposeFungibilityKey(name string, tier int, qualityTags ...string) string {
	tags := make([]string, len(qualityTags))
	copy(tags, qualityTags)
	sort.Strings(tags)
	builder := strings.Builder{}
	builder.WriteString(name)
	builder.WriteString(":")
	builder.WriteString(fmt.Sprintf("%d", tier))
	if len(tags) > 0 {
		builder.WriteString(":")
		builder.WriteString(strings.Join(tags, ","))
	}
	return builder.String()
}

// MarshalDefinitions returns the stable JSON representation for a slice of
// definitions.
func MarshalDefinitions(defs []Definition) ([]byte, error) {
	stable := make([]Definition, len(defs))
	copy(stable, defs)
	sort.Slice(stable, func(i, j int) bool {
		return stable[i].Name < stable[j].Name
	})
	return json.Marshal(stable)
}
