package main

import (
	"context"
	"fmt"
	"os"

	"github.com/energywise/energywise/pkg/calc"
	"github.com/energywise/energywise/pkg/catalog"
	"github.com/energywise/energywise/pkg/log"
	"github.com/energywise/energywise/pkg/storage"
	"github.com/levenlabs/go-lflag"
)

// seed writes a catalog into Firestore so that the server can run with
// -catalog-source=firestore. It always uses Firestore, the emulator at
// 127.0.0.1:8087 unless FIRESTORE_EMULATOR_HOST or -firestore-emulator is set.
func main() {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		os.Setenv("FIRESTORE_EMULATOR_HOST", "127.0.0.1:8087")
	}
	s := storage.ConfiguredFirestore()
	path := lflag.String("seed-file", "", "YAML catalog to seed instead of the built-in one")
	lflag.Configure()

	ctx := context.Background()
	defer s.Close()

	c := catalog.Default()
	if *path != "" {
		var err error
		c, err = catalog.NewLoader(catalog.SourceFile, *path, nil).Load(ctx)
		if err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to read catalog", "error", err)
			os.Exit(1)
		}
	}

	log.Ctx(ctx).InfoContext(ctx, "seeding catalog")

	if err := s.SetPlans(ctx, c.Plans()); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to seed plans", "error", err)
		os.Exit(1)
	}
	for _, p := range c.Plans() {
		fmt.Printf("Seeded plan %d: %s %s (%s/kWh, %.0f%% renewable)\n",
			p.ID, p.Provider, p.PlanName, calc.FormatCurrency(p.Rate), p.Renewable)
	}

	if err := s.SetAppliances(ctx, c.Appliances()); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to seed appliances", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d appliances\n", len(c.Appliances()))

	log.Ctx(ctx).InfoContext(ctx, "seeded catalog successfully")
}
