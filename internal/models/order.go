package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

// Order statuses as stored by the shop. The casing is inconsistent on the wire
// and must stay that way.
const (
	OrderStatusNotProcessed OrderStatus = "Not Process"
	OrderStatusProcessing   OrderStatus = "Processing"
	OrderStatusShipped      OrderStatus = "Shipped"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "Cancel"
)

// OrderStatuses is the closed set of lifecycle labels an order can carry.
var OrderStatuses = []OrderStatus{
	OrderStatusNotProcessed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Payment struct {
	Success bool `bson:"success" json:"success"`
}

type Order struct {
	ID        primitive.ObjectID   `bson:"_id" json:"_id"`
	Products  []primitive.ObjectID `bson:"products" json:"products"`
	Payment   Payment              `bson:"payment" json:"payment"`
	Buyer     primitive.ObjectID   `bson:"buyer" json:"buyer"`
	Status    OrderStatus          `bson:"status" json:"status"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}
