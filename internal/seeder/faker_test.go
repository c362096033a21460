package seeder

import (
	"regexp"
	"testing"

	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "home-and-garden", Slugify("Home & Garden"))
	assert.Equal(t, "sports-outdoors", Slugify("  Sports, Outdoors "))
	assert.Equal(t, Slugify("Books 2"), Slugify("Books 2"))
}

func TestCategoryNamesAndSlugsAreUnique(t *testing.T) {
	g := NewDataGenerator(7)
	names := make(map[string]bool)
	slugs := make(map[string]bool)

	for i := 0; i < 200; i++ {
		c := g.Category()
		assert.False(t, c.ID.IsZero())
		assert.False(t, names[c.Name], "duplicate name %q", c.Name)
		assert.False(t, slugs[c.Slug], "duplicate slug %q", c.Slug)
		assert.Equal(t, Slugify(c.Name), c.Slug)
		assert.Regexp(t, slugPattern, c.Slug)
		names[c.Name] = true
		slugs[c.Slug] = true
	}
}

func TestUserEmailsAreUnique(t *testing.T) {
	g := NewDataGenerator(7)
	emails := make(map[string]bool)

	for i := 0; i < 500; i++ {
		u := g.User("hash")
		require.NotEmpty(t, u.Email)
		assert.False(t, emails[u.Email], "duplicate email %q", u.Email)
		emails[u.Email] = true

		assert.Equal(t, "hash", u.Password)
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Phone)
		assert.NotEmpty(t, u.Address)
		assert.NotEmpty(t, u.Answer)
		assert.Equal(t, models.RoleCustomer, u.Role)
	}
}

func TestSameSeedSameData(t *testing.T) {
	a, b := NewDataGenerator(99), NewDataGenerator(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Category().Name, b.Category().Name)
		assert.Equal(t, a.User("x").Email, b.User("x").Email)
	}
}

func TestSameSeedFreshIDs(t *testing.T) {
	a, b := NewDataGenerator(7), NewDataGenerator(7)
	ca, cb := a.Category(), b.Category()
	assert.Equal(t, ca.Slug, cb.Slug)
	assert.NotEqual(t, ca.ID, cb.ID)

	ids := []primitive.ObjectID{ca.ID}
	pa, err := a.Product(ids)
	require.NoError(t, err)
	pb, err := b.Product(ids)
	require.NoError(t, err)
	assert.Equal(t, pa.Name, pb.Name)
	assert.Equal(t, pa.Price, pb.Price)
	assert.NotEqual(t, pa.ID, pb.ID)
}

func TestProductReferencesGivenCategory(t *testing.T) {
	g := NewDataGenerator(1)
	categories := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	for i := 0; i < 100; i++ {
		p, err := g.Product(categories)
		require.NoError(t, err)
		assert.Contains(t, categories, p.Category)
		assert.Equal(t, Slugify(p.Name), p.Slug)
		assert.GreaterOrEqual(t, p.Quantity, 0)
		assert.LessOrEqual(t, p.Quantity, maxQuantity)
		assert.Nil(t, p.Photo.Data)
		assert.Equal(t, photoContentType, p.Photo.ContentType)
		assert.Regexp(t, `^\d+\.\d{2}$`, p.Price.String())
	}

	_, err := g.Product(nil)
	assert.Error(t, err)
}

func TestOrderReferencesAndStatus(t *testing.T) {
	g := NewDataGenerator(1)
	users := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	products := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}

	lengths := make(map[int]bool)
	for i := 0; i < 300; i++ {
		o, err := g.Order(users, products)
		require.NoError(t, err)
		assert.Contains(t, users, o.Buyer)
		require.GreaterOrEqual(t, len(o.Products), 1)
		require.LessOrEqual(t, len(o.Products), MaxOrderProducts)
		for _, p := range o.Products {
			assert.Contains(t, products, p)
		}
		assert.True(t, o.Status.Valid(), "unexpected status %q", o.Status)
		lengths[len(o.Products)] = true
	}
	assert.Len(t, lengths, MaxOrderProducts)

	_, err := g.Order(nil, products)
	assert.Error(t, err)
	_, err = g.Order(users, nil)
	assert.Error(t, err)
}
