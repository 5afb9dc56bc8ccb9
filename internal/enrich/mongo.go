package enrich

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo serves lookups from the pricing database: the costs collection is
// keyed by item alias, the items collection by item number.
type Mongo struct {
	client *mongo.Client
	costs  *mongo.Collection
	items  *mongo.Collection
}

// Connect dials the store and verifies the connection with a ping.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect enrichment store: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping enrichment store: %w", err)
	}

	db := client.Database(database)
	return &Mongo{
		client: client,
		costs:  db.Collection("costs"),
		items:  db.Collection("items"),
	}, nil
}

// Close releases the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Cost returns the unit cost for an item, or 0 when the store has no entry.
func (m *Mongo) Cost(ctx context.Context, item string) (float64, error) {
	var doc struct {
		Cost float64 `bson:"cost"`
	}
	err := m.costs.FindOne(ctx, bson.M{"alias": item}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cost lookup for %s: %w", item, err)
	}
	return doc.Cost, nil
}

// Description returns the display name for an item, or "" when the store
// has no entry.
func (m *Mongo) Description(ctx context.Context, item string) (string, error) {
	var doc struct {
		Name string `bson:"name"`
	}
	err := m.items.FindOne(ctx, bson.M{"item": item}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("description lookup for %s: %w", item, err)
	}
	return doc.Name, nil
}
