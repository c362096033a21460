package mongodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Adapter struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
	hosts    []string
}

func New() *Adapter {
	return &Adapter{}
}

// Connect dials url and selects the database. An empty dbName falls back to
// the database named in the connection string.
func (a *Adapter) Connect(ctx context.Context, url, dbName string) error {
	clientOpts := options.Client().ApplyURI(url)
	if err := clientOpts.Validate(); err != nil {
		return fmt.Errorf("invalid MongoDB connection string: %w", err)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		if derr := client.Disconnect(context.Background()); derr != nil {
			color.Yellow("⚠️  Failed to disconnect after ping error: %v", derr)
		}
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if dbName == "" {
		dbName = extractDBName(url)
	}

	a.client = client
	a.database = client.Database(dbName)
	a.dbName = dbName
	a.hosts = clientOpts.Hosts

	return nil
}

func (a *Adapter) Close() error {
	if a.client != nil {
		return a.client.Disconnect(context.Background())
	}
	return nil
}

func (a *Adapter) Name() string {
	return a.dbName
}

func (a *Adapter) Host() string {
	return strings.Join(a.hosts, ",")
}

func (a *Adapter) DeleteAll(ctx context.Context, collection string) error {
	if a.database == nil {
		return errNotConnected
	}
	if _, err := a.database.Collection(collection).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", collection, err)
	}
	return nil
}

func (a *Adapter) InsertMany(ctx context.Context, collection string, docs []interface{}) ([]primitive.ObjectID, error) {
	if a.database == nil {
		return nil, errNotConnected
	}
	if len(docs) == 0 {
		return nil, nil
	}

	res, err := a.database.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return objectIDs(res.InsertedIDs)
}

func (a *Adapter) Count(ctx context.Context, collection string) (int64, error) {
	if a.database == nil {
		return 0, errNotConnected
	}
	return a.database.Collection(collection).CountDocuments(ctx, bson.M{})
}

// Distinct returns the distinct values of field. Array fields are flattened
// by the server.
func (a *Adapter) Distinct(ctx context.Context, collection, field string) ([]interface{}, error) {
	if a.database == nil {
		return nil, errNotConnected
	}
	values, err := a.database.Collection(collection).Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to read distinct %s.%s: %w", collection, field, err)
	}
	return values, nil
}

func (a *Adapter) EnsureUniqueIndex(ctx context.Context, collection, field string) error {
	if a.database == nil {
		return errNotConnected
	}
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := a.database.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create unique index on %s.%s: %w", collection, field, err)
	}
	return nil
}

func (a *Adapter) DropDatabase(ctx context.Context) error {
	if a.database == nil {
		return errNotConnected
	}
	return a.database.Drop(ctx)
}
