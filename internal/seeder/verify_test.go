package seeder

import (
	"context"
	"testing"

	"github.com/Lumos-Labs-HQ/storeseed/internal/database/memstore"
	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seededStore(t *testing.T, cfg SeedConfig) (*memstore.Store, *Result) {
	t.Helper()
	store := memstore.New()
	s, err := New(store, cfg)
	require.NoError(t, err)
	result, err := s.Run(context.Background())
	require.NoError(t, err)
	return store, result
}

func TestVerifyAcceptsSeededData(t *testing.T) {
	store, result := seededStore(t, testConfig(3, 3, 8, 8))

	report, err := Verify(context.Background(), store, result.Counts)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.EqualValues(t, 8, report.Counts[models.OrderCollection])
}

func TestVerifyReportsDanglingBuyer(t *testing.T) {
	ctx := context.Background()
	store, result := seededStore(t, testConfig(2, 2, 2, 2))

	stray := models.Order{
		ID:       primitive.NewObjectID(),
		Products: []primitive.ObjectID{result.ProductIDs[0]},
		Buyer:    primitive.NewObjectID(),
		Status:   models.OrderStatusShipped,
	}
	_, err := store.InsertMany(ctx, models.OrderCollection, []interface{}{stray})
	require.NoError(t, err)

	report, err := Verify(ctx, store, nil)
	require.Error(t, err)
	assert.Equal(t, 1, report.Dangling["orders.buyer"])
	assert.Zero(t, report.Dangling["orders.products"])
}

func TestVerifyReportsCountMismatch(t *testing.T) {
	store, _ := seededStore(t, testConfig(2, 2, 2, 2))

	_, err := Verify(context.Background(), store, map[string]int{models.UserCollection: 5})
	assert.ErrorContains(t, err, "users holds 2 documents, expected 5")
}
