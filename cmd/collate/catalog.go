package main

import (
	"sort"

	"packrat/item"
)

var itemCatalog = buildItemCatalog()

func buildItemCatalog() map[string]item.Definition {
	defs := []item.Definition{
		mustDefine(item.DefinitionParams{
			Name:        "Food",
			Class:       item.ClassConsumable,
			Tier:        1,
			Stackable:   true,
			MaxStack:    5,
			Tags:        map[string]int{"nutrition": 4},
			DisplayName: "Trail Rations",
			Description: "Keeps a miner on their feet for another shift.",
		}),
		mustDefine(item.DefinitionParams{
			Name:        "Gravel",
			Class:       item.ClassMaterial,
			Tier:        0,
			Stackable:   true,
			QualityTags: []string{"loose"},
			DisplayName: "Gravel",
			Description: "Loose rock left over from tunneling.",
		}),
		mustDefine(item.DefinitionParams{
			Name:        "Wood",
			Class:       item.ClassMaterial,
			Tier:        0,
			Stackable:   true,
			DisplayName: "Timber",
			Description: "Rough-cut planks for shoring up shafts.",
		}),
		mustDefine(item.DefinitionParams{
			Name:        "Gold",
			Class:       item.ClassCurrency,
			Tier:        1,
			Stackable:   true,
			QualityTags: []string{"coin"},
			DisplayName: "Gold Coin",
			Description: "Currency minted by the colony.",
		}),
		mustDefine(item.DefinitionParams{
			Name:        "Pickaxe",
			Class:       item.ClassTool,
			Tier:        1,
			Stackable:   false,
			Tags:        map[string]int{"durability": 50},
			DisplayName: "Iron Pickaxe",
			Description: "A sturdy pick for breaking rock.",
		}),
	}

	catalog := make(map[string]item.Definition, len(defs))
	for _, def := range defs {
		catalog[def.Name] = def
	}
	return catalog
}

func mustDefine(params item.DefinitionParams) item.Definition {
	def, err := item.NewDefinition(params)
	if err != nil {
		panic(err)
	}
	return def
}

func catalogDefinitions() []item.Definition {
	defs := make([]item.Definition, 0, len(itemCatalog))
	for _, def := range itemCatalog {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}
