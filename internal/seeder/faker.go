package seeder

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	photoContentType = "image/jpeg"
	minPrice         = 1.0
	maxPrice         = 1000.0
	maxQuantity      = 500
	historyDays      = 365
)

// DataGenerator produces one record per call. Uniqueness of category names
// and user emails is tracked across calls.
type DataGenerator struct {
	faker      *gofakeit.Faker
	now        time.Time
	counter    int
	categories map[string]int
}

func NewDataGenerator(seed uint64) *DataGenerator {
	return &DataGenerator{
		faker:      gofakeit.New(seed),
		now:        time.Now().UTC(),
		categories: make(map[string]int),
	}
}

// Slugify is the slug derivation shared by categories and products.
func Slugify(name string) string {
	return slug.Make(name)
}

func (g *DataGenerator) Category() models.Category {
	name := g.categoryName()
	return models.Category{
		ID:   primitive.NewObjectID(),
		Name: name,
		Slug: Slugify(name),
	}
}

// categoryName returns a department-like name whose slug was not handed out
// before. Repeats get a numeric suffix.
func (g *DataGenerator) categoryName() string {
	base := strings.TrimSpace(g.faker.ProductCategory())
	if base == "" {
		base = "Department"
	}
	name := base
	for {
		key := Slugify(name)
		seen := g.categories[key]
		g.categories[key] = seen + 1
		if seen == 0 {
			return name
		}
		name = fmt.Sprintf("%s %d", base, seen+1)
	}
}

func (g *DataGenerator) User(passwordHash string) models.User {
	g.counter++
	first, last := g.faker.FirstName(), g.faker.LastName()
	addr := g.faker.Address()

	return models.User{
		ID:       primitive.NewObjectID(),
		Name:     first + " " + last,
		Email:    g.email(first, last),
		Password: passwordHash,
		Phone:    g.faker.Phone(),
		Address:  addr.Address,
		Answer:   g.faker.Animal(),
		Role:     models.RoleCustomer,
	}
}

func (g *DataGenerator) email(first, last string) string {
	local := strings.ToLower(Slugify(first + " " + last))
	if local == "" {
		local = "user"
	}
	return fmt.Sprintf("%s.%d@%s", strings.ReplaceAll(local, "-", "."), g.counter, g.faker.DomainName())
}

// Product picks its category uniformly from categoryIDs, which must not be
// empty.
func (g *DataGenerator) Product(categoryIDs []primitive.ObjectID) (models.Product, error) {
	if len(categoryIDs) == 0 {
		return models.Product{}, fmt.Errorf("no categories to reference")
	}

	price, err := g.price()
	if err != nil {
		return models.Product{}, err
	}

	name := g.faker.ProductName()
	created := g.timestamp()

	return models.Product{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Slug:        Slugify(name),
		Description: g.faker.ProductDescription(),
		Price:       price,
		Category:    categoryIDs[g.pick(len(categoryIDs))],
		Quantity:    g.faker.Number(0, maxQuantity),
		Photo:       models.Photo{Data: nil, ContentType: photoContentType},
		Shipping:    g.faker.Bool(),
		CreatedAt:   created,
		UpdatedAt:   created,
	}, nil
}

// Order references between 1 and MaxOrderProducts products, drawn uniformly
// with replacement, and one uniformly drawn buyer.
func (g *DataGenerator) Order(userIDs, productIDs []primitive.ObjectID) (models.Order, error) {
	if len(userIDs) == 0 {
		return models.Order{}, fmt.Errorf("no users to reference")
	}
	if len(productIDs) == 0 {
		return models.Order{}, fmt.Errorf("no products to reference")
	}

	products := make([]primitive.ObjectID, g.faker.Number(1, MaxOrderProducts))
	for i := range products {
		products[i] = productIDs[g.pick(len(productIDs))]
	}
	created := g.timestamp()

	return models.Order{
		ID:        primitive.NewObjectID(),
		Products:  products,
		Payment:   models.Payment{Success: g.faker.Bool()},
		Buyer:     userIDs[g.pick(len(userIDs))],
		Status:    g.status(),
		CreatedAt: created,
		UpdatedAt: created,
	}, nil
}

func (g *DataGenerator) status() models.OrderStatus {
	return models.OrderStatuses[g.pick(len(models.OrderStatuses))]
}

func (g *DataGenerator) price() (primitive.Decimal128, error) {
	amount := decimal.NewFromFloat(g.faker.Price(minPrice, maxPrice)).Round(2)
	d, err := primitive.ParseDecimal128(amount.StringFixed(2))
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("failed to encode price %s: %w", amount, err)
	}
	return d, nil
}

func (g *DataGenerator) timestamp() time.Time {
	days := g.faker.Number(0, historyDays-1)
	return g.now.AddDate(0, 0, -days).Truncate(time.Millisecond)
}

// pick returns a uniform index in [0, n).
func (g *DataGenerator) pick(n int) int {
	return g.faker.Number(0, n-1)
}
