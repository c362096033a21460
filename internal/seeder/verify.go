package seeder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Lumos-Labs-HQ/storeseed/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type reference struct {
	collection string
	field      string
	target     string
}

var references = []reference{
	{models.ProductCollection, "category", models.CategoryCollection},
	{models.OrderCollection, "buyer", models.UserCollection},
	{models.OrderCollection, "products", models.ProductCollection},
}

type VerifyReport struct {
	Counts   map[string]int64
	Dangling map[string]int // "collection.field" -> unresolved ids
	Problems []string
}

func (r *VerifyReport) OK() bool {
	return len(r.Problems) == 0
}

// Verify checks that every reference resolves and, when expected is not nil,
// that each collection holds exactly the expected number of documents.
func Verify(ctx context.Context, store Store, expected map[string]int) (*VerifyReport, error) {
	report := &VerifyReport{
		Counts:   make(map[string]int64),
		Dangling: make(map[string]int),
	}

	for _, collection := range models.Collections {
		n, err := store.Count(ctx, collection)
		if err != nil {
			return report, fmt.Errorf("failed to count %s: %w", collection, err)
		}
		report.Counts[collection] = n
		if want, ok := expected[collection]; ok && int64(want) != n {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%s holds %d documents, expected %d", collection, n, want))
		}
	}

	known := make(map[string]map[primitive.ObjectID]struct{})
	for _, ref := range references {
		ids, ok := known[ref.target]
		if !ok {
			values, err := store.Distinct(ctx, ref.target, "_id")
			if err != nil {
				return report, err
			}
			ids = make(map[primitive.ObjectID]struct{}, len(values))
			for _, v := range values {
				if id, isID := v.(primitive.ObjectID); isID {
					ids[id] = struct{}{}
				}
			}
			known[ref.target] = ids
		}

		values, err := store.Distinct(ctx, ref.collection, ref.field)
		if err != nil {
			return report, err
		}
		key := ref.collection + "." + ref.field
		for _, v := range values {
			id, isID := v.(primitive.ObjectID)
			if _, found := ids[id]; !isID || !found {
				report.Dangling[key]++
			}
		}
		if n := report.Dangling[key]; n > 0 {
			report.Problems = append(report.Problems,
				fmt.Sprintf("%d distinct %s values do not resolve to %s", n, key, ref.target))
		}
	}

	if !report.OK() {
		sort.Strings(report.Problems)
		return report, fmt.Errorf("verification failed: %s", strings.Join(report.Problems, "; "))
	}
	return report, nil
}
