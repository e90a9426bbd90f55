package util

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// GetCreatedAtSortBson maps a sort query value to a bson sort document.
// Anything unrecognized falls back to newest first.
func GetCreatedAtSortBson(sort string) bson.D {
	value := -1
	key := "created_at"

	switch sort {
	case "modified_at_asc", "modified_at_desc":
		key = "modified_at"
	}

	if strings.Contains(sort, "asc") {
		value = 1
	}
	return bson.D{{Key: key, Value: value}}
}
