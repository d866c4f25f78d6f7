package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/energywise/energywise/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// ErrNotConfigured is returned by the configured Database when the storage
// provider is "none".
var ErrNotConfigured = errors.New("storage provider not configured")

// Configured sets up the Storage provider based on flags.
func Configured() Database {
	provider := lflag.String("storage-provider", "none", "Storage provider to use (available: none, firestore)")

	p := &configured{}

	fs := configuredFirestore()

	lflag.Do(func() {
		switch *provider {
		case "none", "":
		case "firestore":
			if err := openFirestore(context.Background(), fs); err != nil {
				panic(err.Error())
			}
			p.Database = fs
		default:
			panic(fmt.Sprintf("unknown storage provider: %s", *provider))
		}
	})

	return p
}

// ConfiguredFirestore registers only the firestore flags and returns a
// Firestore database opened once flags are parsed. It is for tools that have
// no use for any other provider.
func ConfiguredFirestore() Database {
	fs := configuredFirestore()
	lflag.Do(func() {
		if err := openFirestore(context.Background(), fs); err != nil {
			panic(err.Error())
		}
	})
	return fs
}

func openFirestore(ctx context.Context, fs *FirestoreProvider) error {
	if err := fs.Validate(); err != nil {
		return fmt.Errorf("firestore validation failed: %w", err)
	}
	if err := fs.Init(ctx); err != nil {
		return fmt.Errorf("firestore init failed: %w", err)
	}
	return nil
}

// configured is filled in once flags are parsed.
type configured struct {
	Database
}

func (c *configured) GetPlans(ctx context.Context) ([]types.ElectricityPlan, error) {
	if c.Database == nil {
		return nil, ErrNotConfigured
	}
	return c.Database.GetPlans(ctx)
}

func (c *configured) SetPlans(ctx context.Context, plans []types.ElectricityPlan) error {
	if c.Database == nil {
		return ErrNotConfigured
	}
	return c.Database.SetPlans(ctx, plans)
}

func (c *configured) GetAppliances(ctx context.Context) ([]types.ApplianceProfile, error) {
	if c.Database == nil {
		return nil, ErrNotConfigured
	}
	return c.Database.GetAppliances(ctx)
}

func (c *configured) SetAppliances(ctx context.Context, appliances []types.ApplianceProfile) error {
	if c.Database == nil {
		return ErrNotConfigured
	}
	return c.Database.SetAppliances(ctx, appliances)
}

func (c *configured) Close() error {
	if c.Database == nil {
		return nil
	}
	return c.Database.Close()
}
