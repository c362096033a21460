package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleCustomer is the role of every seeded user. The store uses 1 for admins.
const RoleCustomer = 0

type User struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Phone    string             `bson:"phone" json:"phone"`
	Address  string             `bson:"address" json:"address"`
	Answer   string             `bson:"answer" json:"-"` // security question answer
	Role     int                `bson:"role" json:"role"`
}
