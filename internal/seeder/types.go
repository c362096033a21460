package seeder

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultCategories = 20
	DefaultUsers      = 1000
	DefaultProducts   = 10000
	DefaultOrders     = 1000
	DefaultBatch      = 1000
	DefaultPassword   = "password123"

	// MaxOrderProducts bounds the number of product references per order.
	MaxOrderProducts = 5
)

// Store is the slice of the document database the seeder talks to.
type Store interface {
	DeleteAll(ctx context.Context, collection string) error
	InsertMany(ctx context.Context, collection string, docs []interface{}) ([]primitive.ObjectID, error)
	Count(ctx context.Context, collection string) (int64, error)
	Distinct(ctx context.Context, collection, field string) ([]interface{}, error)
}

type ClosableStore interface {
	Store
	Close() error
}

// Indexer is implemented by stores that can enforce unique fields.
type Indexer interface {
	EnsureUniqueIndex(ctx context.Context, collection, field string) error
}

// Dialer opens the store for one seeding session.
type Dialer func(ctx context.Context) (ClosableStore, error)

type SeedConfig struct {
	Categories   int    // Categories to generate
	Users        int    // Users to generate
	Products     int    // Products to generate
	Orders       int    // Orders to generate
	Batch        int    // Documents per InsertMany call
	RandomSeed   uint64 // Fixed faker seed, 0 picks a random one
	Password     string // Plain placeholder password shared by all users
	PasswordCost int    // bcrypt cost, 0 uses bcrypt.DefaultCost
	Verify       bool   // Check references after seeding
}

func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Categories: DefaultCategories,
		Users:      DefaultUsers,
		Products:   DefaultProducts,
		Orders:     DefaultOrders,
		Batch:      DefaultBatch,
		Password:   DefaultPassword,
	}
}

type Result struct {
	RunID       string
	State       State
	Counts      map[string]int
	CategoryIDs []primitive.ObjectID
	UserIDs     []primitive.ObjectID
	ProductIDs  []primitive.ObjectID
	OrderIDs    []primitive.ObjectID
	Duration    time.Duration
}
