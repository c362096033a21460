package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const defaultDatabase = "test"

var errNotConnected = errors.New("database not connected")

// extractDBName picks the database from the URL path, then the auth source,
// and finally the driver default.
func extractDBName(url string) string {
	cs, err := connstring.ParseAndValidate(url)
	if err != nil {
		return defaultDatabase
	}
	if cs.Database != "" && cs.Database != "admin" {
		return cs.Database
	}
	if cs.AuthSource != "" && cs.AuthSource != "admin" {
		return cs.AuthSource
	}
	return defaultDatabase
}

func objectIDs(inserted []interface{}) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(inserted))
	for _, raw := range inserted {
		id, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
