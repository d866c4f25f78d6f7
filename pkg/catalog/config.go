package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/energywise/energywise/pkg/log"
	"github.com/energywise/energywise/pkg/storage"
	"github.com/levenlabs/go-lflag"
)

// Source names where the catalog is read from.
type Source string

const (
	SourceStatic    Source = "static"
	SourceFile      Source = "file"
	SourceFirestore Source = "firestore"
)

// Loader resolves the catalog from its configured source.
type Loader struct {
	source Source
	path   string
	db     storage.Database
}

// Configured registers the catalog flags and returns a Loader. db is only used
// when the source is firestore.
func Configured(db storage.Database) *Loader {
	source := lflag.String("catalog-source", string(SourceStatic), "Where to read plans and appliances from (available: static, file, firestore)")
	path := lflag.String("catalog-file", "", "Path to a YAML catalog when catalog-source is file")

	l := &Loader{db: db}

	lflag.Do(func() {
		l.source = Source(*source)
		l.path = *path
		if err := l.Validate(); err != nil {
			panic(fmt.Sprintf("catalog validation failed: %v", err))
		}
	})

	return l
}

// NewLoader returns a Loader for the given source without registering flags.
func NewLoader(source Source, path string, db storage.Database) *Loader {
	return &Loader{source: source, path: path, db: db}
}

// Validate checks that the source is known and has what it needs.
func (l *Loader) Validate() error {
	switch l.source {
	case SourceStatic:
	case SourceFile:
		if l.path == "" {
			return fmt.Errorf("catalog-file is required when catalog-source is %s", SourceFile)
		}
	case SourceFirestore:
		if l.db == nil {
			return fmt.Errorf("a storage provider is required when catalog-source is %s", SourceFirestore)
		}
	default:
		return fmt.Errorf("unknown catalog source: %s", l.source)
	}
	return nil
}

// Load reads the catalog. A firestore source with no stored plans falls back
// to the built-in catalog.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	switch l.source {
	case SourceFile:
		c, err := Load(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from %s: %w", l.path, err)
		}
		log.Ctx(ctx).InfoContext(ctx, "loaded catalog from file", slog.String("path", l.path), slog.Int("plans", len(c.plans)), slog.Int("appliances", len(c.appliances)))
		return c, nil
	case SourceFirestore:
		plans, err := l.db.GetPlans(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get plans: %w", err)
		}
		appliances, err := l.db.GetAppliances(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get appliances: %w", err)
		}
		if len(plans) == 0 && len(appliances) == 0 {
			log.Ctx(ctx).WarnContext(ctx, "no catalog stored, using built-in catalog")
			return Default(), nil
		}
		c, err := New(plans, appliances)
		if err != nil {
			return nil, fmt.Errorf("invalid stored catalog: %w", err)
		}
		log.Ctx(ctx).InfoContext(ctx, "loaded catalog from storage", slog.Int("plans", len(plans)), slog.Int("appliances", len(appliances)))
		return c, nil
	default:
		return Default(), nil
	}
}
