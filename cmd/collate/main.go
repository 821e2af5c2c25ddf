// Command collate demonstrates the inventory library: it fills a source
// inventory with alternating stacks of random size, collates every stack
// matching the requested name into a second inventory, and prints the slot
// contents before and after.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"packrat/inventory"
	"packrat/item"
	"packrat/logging"
	"packrat/logging/itemflow"
	"packrat/logging/sinks"
)

func main() {
	var (
		size         int
		seed         int64
		name         string
		definitions  string
		logJSON      string
		printCatalog bool
	)
	flag.IntVar(&size, "size", 10, "slot count of the source inventory")
	flag.Int64Var(&seed, "seed", 0, "random seed, or 0 for a time-based seed")
	flag.StringVar(&name, "name", "Gravel", "item name to collate")
	flag.StringVar(&definitions, "definitions", "", "optional YAML or JSON definition file overlaying the built-in catalog")
	flag.StringVar(&logJSON, "log-json", "", "optional path for a newline-delimited JSON event log")
	flag.BoolVar(&printCatalog, "print-catalog", false, "print the active item catalog as JSON and exit")
	flag.Parse()

	if printCatalog {
		if err := dumpCatalog(definitions); err != nil {
			fmt.Fprintf(os.Stderr, "collate: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(size, seed, name, definitions, logJSON); err != nil {
		fmt.Fprintf(os.Stderr, "collate: %v\n", err)
		os.Exit(1)
	}
}

func dumpCatalog(definitions string) error {
	if definitions != "" {
		if err := loadDefinitions(definitions); err != nil {
			return err
		}
	}
	data, err := item.MarshalDefinitions(catalogDefinitions())
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func run(size int, seed int64, name, definitions, logJSON string) error {
	if size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", size)
	}
	if definitions != "" {
		if err := loadDefinitions(definitions); err != nil {
			return err
		}
	}
	if _, ok := itemCatalog[name]; !ok {
		return fmt.Errorf("no definition for item %q", name)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cfg := logging.DefaultConfig()
	if logJSON != "" {
		cfg.EnabledSinks = append(cfg.EnabledSinks, "json")
		cfg.JSON.FilePath = logJSON
	}

	namedSinks := []logging.NamedSink{
		{Name: "console", Sink: sinks.NewConsoleSink(os.Stderr, cfg.Console)},
	}
	if cfg.HasSink("json") {
		logFile, err := os.Create(cfg.JSON.FilePath)
		if err != nil {
			return fmt.Errorf("create event log: %w", err)
		}
		defer logFile.Close()
		namedSinks = append(namedSinks, logging.NamedSink{Name: "json", Sink: sinks.NewJSON(logFile)})
	}

	router := logging.NewRouter(nil, cfg, namedSinks)
	ctx := context.Background()
	defer router.Close(ctx)

	pub := logging.WithFields(router, map[string]any{"driver": "collate", "seed": seed})

	source := inventory.New(size)
	fillers := []string{"Food", "Gravel"}
	for i := 0; i < source.Size(); i++ {
		def := itemCatalog[fillers[i%len(fillers)]]
		source.AddItem(i, def.Instantiate(rng.Intn(10)+1))
	}

	fmt.Println("Source inventory before collation:")
	fmt.Printf("  %s\n", source)

	dest := inventory.New(1)
	destRef := logging.EntityRef{ID: "collated", Kind: logging.EntityKindInventory}
	def := itemCatalog[name]

	var step uint64
	for i := 0; i < source.Size(); i++ {
		if !source.IsAt(i, name) {
			continue
		}
		step++
		moved := source.GetItem(i).Count()
		if dest.Transfer(source, i, 0) {
			itemflow.TransferCompleted(ctx, pub, step, destRef, itemflow.TransferCompletedPayload{
				Name:     name,
				Quantity: moved,
				FromSlot: i,
				ToSlot:   0,
			}, map[string]any{"fungibilityKey": def.FungibilityKey})
		} else {
			itemflow.TransferRejected(ctx, pub, step, destRef, itemflow.TransferRejectedPayload{
				Name:     name,
				FromSlot: i,
				ToSlot:   0,
				Occupant: dest.GetItem(0).Name(),
			}, nil)
		}
	}

	fmt.Printf("%s sent to the collated inventory:\n", name)
	fmt.Printf("  %s\n", dest)
	fmt.Println("Source inventory after collation:")
	fmt.Printf("  %s\n", source)

	if drained := dest.Drain(); len(drained) > 0 {
		step++
		total := 0
		for _, stack := range drained {
			total += stack.Count()
		}
		itemflow.InventoryDrained(ctx, pub, step, destRef, itemflow.InventoryDrainedPayload{
			Stacks:   len(drained),
			Quantity: total,
		}, nil)
	}

	stats := router.Stats()
	fmt.Printf("Published %d events (%d dropped).\n", stats.EventsTotal, stats.DroppedTotal)
	return nil
}
