package models

// Collection names as the store's ODM registers them.
const (
	CategoryCollection = "categories"
	UserCollection     = "users"
	ProductCollection  = "products"
	OrderCollection    = "orders"
)

// Collections lists every collection the seeder owns.
var Collections = []string{
	CategoryCollection,
	UserCollection,
	ProductCollection,
	OrderCollection,
}
