package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// uniqueFields mirrors the unique constraints of the shop's schema.
var uniqueFields = map[string][]string{
	models.CategoryCollection: {"name", "slug"},
	models.UserCollection:     {"email"},
}

type Seeder struct {
	store     Store
	cfg       SeedConfig
	generator *DataGenerator
	graph     *DependencyGraph
	state     State
	runID     string
	start     time.Time
}

func New(store Store, cfg SeedConfig) (*Seeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed config: %w", err)
	}

	graph := NewDependencyGraph()
	graph.AddCollection(models.CategoryCollection)
	graph.AddCollection(models.UserCollection)
	graph.AddCollection(models.ProductCollection, models.CategoryCollection)
	graph.AddCollection(models.OrderCollection, models.UserCollection, models.ProductCollection)
	if _, err := graph.BuildInsertionOrder(); err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}

	return &Seeder{
		store:     store,
		cfg:       cfg,
		generator: NewDataGenerator(cfg.RandomSeed),
		graph:     graph,
		state:     StateConnected,
		runID:     uuid.NewString(),
	}, nil
}

func (c SeedConfig) Validate() error {
	counts := map[string]int{
		"categories": c.Categories,
		"users":      c.Users,
		"products":   c.Products,
		"orders":     c.Orders,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s count cannot be negative (got %d)", name, n)
		}
	}
	if c.Batch < 1 {
		return fmt.Errorf("batch size must be at least 1 (got %d)", c.Batch)
	}
	if c.Users > 0 && c.Password == "" {
		return fmt.Errorf("a placeholder password is required to seed users")
	}
	if c.PasswordCost != 0 && (c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost) {
		return fmt.Errorf("password cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// RunSession connects through dial, seeds, and releases the store on every
// exit path. The run only counts as done once the store closed cleanly.
func RunSession(ctx context.Context, dial Dialer, cfg SeedConfig) (result *Result, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed config: %w", err)
	}

	color.Cyan("🔌 Connecting to database...")
	store, err := dial(ctx)
	if err != nil {
		return nil, stageError(StateConnecting, ConnectionError, err)
	}

	var s *Seeder
	defer func() {
		if s != nil && err == nil {
			s.state = StateDisconnecting
		}
		color.Cyan("🔌 Disconnecting...")
		cerr := store.Close()
		switch {
		case cerr != nil && err != nil:
			color.Yellow("⚠️  Failed to disconnect: %v", cerr)
		case cerr != nil:
			if s != nil {
				s.state = StateFailed
			}
			if result != nil {
				result.State = StateFailed
			}
			err = stageError(StateDisconnecting, ConnectionError, cerr)
		case err == nil && result != nil:
			s.complete(result)
		}
	}()

	s, err = New(store, cfg)
	if err != nil {
		return nil, err
	}
	return s.seed(ctx)
}

func (s *Seeder) State() State {
	return s.state
}

// Run seeds a store the caller owns. The caller stays responsible for
// closing it.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result, err := s.seed(ctx)
	if err != nil {
		return result, err
	}
	s.complete(result)
	return result, nil
}

// seed clears the seeded collections and regenerates them. The first failing
// stage aborts the run.
func (s *Seeder) seed(ctx context.Context) (*Result, error) {
	s.start = time.Now()
	result := &Result{
		RunID:  s.runID,
		Counts: make(map[string]int),
	}
	fail := func(kind ErrorKind, err error) (*Result, error) {
		stage := s.state
		s.state = StateFailed
		result.State = StateFailed
		result.Duration = time.Since(s.start)
		return result, stageError(stage, kind, err)
	}

	color.Cyan("🌱 Starting database seeding (run %s)...", s.runID)
	color.Cyan("📋 Insertion order: %s", strings.Join(s.graph.order, " → "))

	if err := s.Reset(ctx); err != nil {
		return fail(ResetError, err)
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return fail(ResetError, err)
	}

	s.state = StateGeneratingCategories
	categoryIDs, err := s.seedCategories(ctx)
	if err != nil {
		return fail(GenerationError, err)
	}
	result.CategoryIDs = categoryIDs
	result.Counts[models.CategoryCollection] = len(categoryIDs)

	s.state = StateGeneratingUsers
	userIDs, err := s.seedUsers(ctx)
	if err != nil {
		return fail(GenerationError, err)
	}
	result.UserIDs = userIDs
	result.Counts[models.UserCollection] = len(userIDs)

	s.state = StateGeneratingProducts
	productIDs, err := s.seedProducts(ctx, categoryIDs)
	if err != nil {
		return fail(GenerationError, err)
	}
	result.ProductIDs = productIDs
	result.Counts[models.ProductCollection] = len(productIDs)

	s.state = StateGeneratingOrders
	orderIDs, err := s.seedOrders(ctx, userIDs, productIDs)
	if err != nil {
		return fail(GenerationError, err)
	}
	result.OrderIDs = orderIDs
	result.Counts[models.OrderCollection] = len(orderIDs)

	if s.cfg.Verify {
		s.state = StateVerifying
		if _, err := Verify(ctx, s.store, s.expectedCounts()); err != nil {
			return fail(VerificationError, err)
		}
		color.Green("🔎 References verified")
	}

	result.State = s.state
	return result, nil
}

func (s *Seeder) complete(result *Result) {
	s.state = StateDone
	result.State = StateDone
	result.Duration = time.Since(s.start)
	color.Green("\n✅ Database seeding completed in %s", result.Duration.Round(time.Millisecond))
}

// Reset deletes every document of the seeded collections, dependents first.
func (s *Seeder) Reset(ctx context.Context) error {
	s.state = StateResetting
	color.Yellow("🗑️  Clearing collections...")

	for _, collection := range s.graph.DeletionOrder() {
		if err := s.store.DeleteAll(ctx, collection); err != nil {
			return fmt.Errorf("failed to clear %s: %w", collection, err)
		}
		color.White("  🧹 %s cleared", collection)
	}

	color.Green("✅ Collections cleared")
	return nil
}

func (s *Seeder) ensureIndexes(ctx context.Context) error {
	indexer, ok := s.store.(Indexer)
	if !ok {
		return nil
	}
	for _, collection := range s.graph.order {
		for _, field := range uniqueFields[collection] {
			if err := indexer.EnsureUniqueIndex(ctx, collection, field); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) ([]primitive.ObjectID, error) {
	color.Cyan("  📝 Seeding %s (%d records)...", models.CategoryCollection, s.cfg.Categories)

	docs := make([]interface{}, 0, s.cfg.Categories)
	for i := 0; i < s.cfg.Categories; i++ {
		docs = append(docs, s.generator.Category())
	}
	return s.insert(ctx, models.CategoryCollection, docs)
}

func (s *Seeder) seedUsers(ctx context.Context) ([]primitive.ObjectID, error) {
	color.Cyan("  📝 Seeding %s (%d records)...", models.UserCollection, s.cfg.Users)
	if s.cfg.Users == 0 {
		return s.insert(ctx, models.UserCollection, nil)
	}

	cost := s.cfg.PasswordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	docs := make([]interface{}, 0, s.cfg.Users)
	for i := 0; i < s.cfg.Users; i++ {
		docs = append(docs, s.generator.User(string(hash)))
	}
	return s.insert(ctx, models.UserCollection, docs)
}

func (s *Seeder) seedProducts(ctx context.Context, categoryIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	color.Cyan("  📝 Seeding %s (%d records)...", models.ProductCollection, s.cfg.Products)

	docs := make([]interface{}, 0, s.cfg.Products)
	for i := 0; i < s.cfg.Products; i++ {
		product, err := s.generator.Product(categoryIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to generate product: %w", err)
		}
		docs = append(docs, product)
	}
	return s.insert(ctx, models.ProductCollection, docs)
}

func (s *Seeder) seedOrders(ctx context.Context, userIDs, productIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	color.Cyan("  📝 Seeding %s (%d records)...", models.OrderCollection, s.cfg.Orders)

	docs := make([]interface{}, 0, s.cfg.Orders)
	for i := 0; i < s.cfg.Orders; i++ {
		order, err := s.generator.Order(userIDs, productIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to generate order: %w", err)
		}
		docs = append(docs, order)
	}
	return s.insert(ctx, models.OrderCollection, docs)
}

// insert writes docs in batches of cfg.Batch and returns the inserted ids in
// document order.
func (s *Seeder) insert(ctx context.Context, collection string, docs []interface{}) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(docs))
	for start := 0; start < len(docs); start += s.cfg.Batch {
		end := min(start+s.cfg.Batch, len(docs))
		batchIDs, err := s.store.InsertMany(ctx, collection, docs[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to insert batch %d-%d into %s: %w", start, end, collection, err)
		}
		ids = append(ids, batchIDs...)
		if end < len(docs) {
			color.White("     … %d/%d", end, len(docs))
		}
	}

	color.Green("  ✅ %s seeded (%d records)", collection, len(ids))
	return ids, nil
}

func (s *Seeder) expectedCounts() map[string]int {
	return map[string]int{
		models.CategoryCollection: s.cfg.Categories,
		models.UserCollection:     s.cfg.Users,
		models.ProductCollection:  s.cfg.Products,
		models.OrderCollection:    s.cfg.Orders,
	}
}
