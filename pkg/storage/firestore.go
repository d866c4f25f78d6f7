package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/energywise/energywise/pkg/log"
	"github.com/energywise/energywise/pkg/types"
	"github.com/levenlabs/go-lflag"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreProvider implements the Database interface using Google Cloud Firestore.
// Plans and appliances are stored as JSON blobs under the "catalog" collection.
type FirestoreProvider struct {
	client    *firestore.Client
	projectID string
	database  string
}

// configuredFirestore sets up the Firestore provider.
// It registers flags for configuration.
func configuredFirestore() *FirestoreProvider {
	projectID := lflag.String("firestore-project-id", "", "Google Cloud Project ID for Firestore")
	database := lflag.String("firestore-database", "", "Google Cloud Firestore Database")
	emulator := lflag.String("firestore-emulator", "", "Use Firestore emulator")

	f := &FirestoreProvider{}

	lflag.Do(func() {
		f.projectID = *projectID
		f.database = *database

		// set this because that's how firestore client expects it
		if *emulator != "" {
			os.Setenv("FIRESTORE_EMULATOR_HOST", *emulator)
		}
	})

	return f
}

// Validate checks if the provider is properly configured.
func (f *FirestoreProvider) Validate() error {
	// an empty project ID is detected from the environment
	return nil
}

// Init initializes the Firestore client.
// This must be called before using the provider methods.
func (f *FirestoreProvider) Init(ctx context.Context) error {
	projectID := f.projectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	database := f.database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return fmt.Errorf("failed to create firestore client (project=%s, database=%s): %w", projectID, database, err)
	}
	f.client = client
	return nil
}

// Close closes the Firestore client connection.
func (f *FirestoreProvider) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (f *FirestoreProvider) items(kind string) *firestore.CollectionRef {
	return f.client.Collection("catalog").Doc(kind).Collection("items")
}

// GetPlans returns the stored plans in the order they were saved. No stored
// plans is not an error.
func (f *FirestoreProvider) GetPlans(ctx context.Context) ([]types.ElectricityPlan, error) {
	return readItems[types.ElectricityPlan](ctx, f.items("plans").OrderBy("position", firestore.Asc), "plan")
}

// SetPlans replaces all stored plans. Each plan is stored under its ID.
func (f *FirestoreProvider) SetPlans(ctx context.Context, plans []types.ElectricityPlan) error {
	docs := make(map[string]map[string]interface{}, len(plans))
	for i, p := range plans {
		jsonBytes, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal plan %d: %w", p.ID, err)
		}
		docs[strconv.Itoa(p.ID)] = map[string]interface{}{
			"json":     string(jsonBytes),
			"id":       p.ID,
			"rate":     p.Rate,
			"position": i,
		}
	}
	if err := f.replaceItems(ctx, f.items("plans"), docs); err != nil {
		return fmt.Errorf("failed to save plans: %w", err)
	}
	return nil
}

// GetAppliances returns the stored appliances in the order they were saved.
func (f *FirestoreProvider) GetAppliances(ctx context.Context) ([]types.ApplianceProfile, error) {
	return readItems[types.ApplianceProfile](ctx, f.items("appliances").OrderBy("position", firestore.Asc), "appliance")
}

// SetAppliances replaces all stored appliances. Each appliance is stored under
// its name.
func (f *FirestoreProvider) SetAppliances(ctx context.Context, appliances []types.ApplianceProfile) error {
	docs := make(map[string]map[string]interface{}, len(appliances))
	for i, a := range appliances {
		if a.Name == "" {
			return fmt.Errorf("appliance at position %d has no name", i)
		}
		jsonBytes, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal appliance %s: %w", a.Name, err)
		}
		docs[a.Name] = map[string]interface{}{
			"json":     string(jsonBytes),
			"watts":    a.Watts,
			"position": i,
		}
	}
	if err := f.replaceItems(ctx, f.items("appliances"), docs); err != nil {
		return fmt.Errorf("failed to save appliances: %w", err)
	}
	return nil
}

// replaceItems deletes every document in coll that is not in docs and sets
// the rest in a single transaction.
func (f *FirestoreProvider) replaceItems(ctx context.Context, coll *firestore.CollectionRef, docs map[string]map[string]interface{}) error {
	return f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// all reads must happen before any writes
		existing, err := tx.Documents(coll).GetAll()
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to list existing documents: %w", err)
		}
		for _, doc := range existing {
			if _, ok := docs[doc.Ref.ID]; ok {
				continue
			}
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}
		for id, data := range docs {
			if err := tx.Set(coll.Doc(id), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func readItems[T any](ctx context.Context, q firestore.Query, kind string) ([]T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var items []T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("error iterating %ss: %w", kind, err)
		}

		val, err := doc.DataAt("json")
		if err != nil {
			log.Ctx(ctx).WarnContext(ctx, "catalog doc missing json", slog.String("kind", kind), slog.String("docID", doc.Ref.ID), slog.Any("err", err))
			return nil, fmt.Errorf("%s document %s missing 'json' field: %w", kind, doc.Ref.ID, err)
		}

		jsonStr, ok := val.(string)
		if !ok {
			log.Ctx(ctx).WarnContext(ctx, "catalog doc json not string", slog.String("kind", kind), slog.String("docID", doc.Ref.ID))
			return nil, fmt.Errorf("%s document %s 'json' field is not string", kind, doc.Ref.ID)
		}

		var item T
		if err := json.Unmarshal([]byte(jsonStr), &item); err != nil {
			log.Ctx(ctx).WarnContext(ctx, "failed to unmarshal catalog doc", slog.String("kind", kind), slog.String("docID", doc.Ref.ID), slog.Any("err", err))
			return nil, fmt.Errorf("failed to unmarshal %s (id=%s): %w", kind, doc.Ref.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}
