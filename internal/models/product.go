package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Photo struct {
	Data        []byte `bson:"data" json:"data"`
	ContentType string `bson:"contentType" json:"contentType"`
}

type Product struct {
	ID          primitive.ObjectID   `bson:"_id" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Slug        string               `bson:"slug" json:"slug"`
	Description string               `bson:"description" json:"description"`
	Price       primitive.Decimal128 `bson:"price" json:"price"`
	Category    primitive.ObjectID   `bson:"category" json:"category"`
	Quantity    int                  `bson:"quantity" json:"quantity"`
	Photo       Photo                `bson:"photo" json:"photo"`
	Shipping    bool                 `bson:"shipping" json:"shipping"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
