package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuildEventFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildEventFilter("", ""))
}

func TestBuildEventFilterBothIsNoConstraint(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildEventFilter("Both", ""))
}

func TestBuildEventFilterType(t *testing.T) {
	assert.Equal(t, bson.M{"type": "Online"}, BuildEventFilter("Online", ""))

	// Invalid types are passed through untouched; they simply match nothing.
	assert.Equal(t, bson.M{"type": "Hybrid"}, BuildEventFilter("Hybrid", ""))
}

func TestBuildEventFilterSearch(t *testing.T) {
	filter := BuildEventFilter("", "react")

	re := bson.Regex{Pattern: "react", Options: "i"}
	assert.Equal(t, bson.M{
		"$or": bson.A{
			bson.M{"title": re},
			bson.M{"tags": bson.M{"$in": bson.A{re}}},
			bson.M{"hostedBy": re},
		},
	}, filter)
}

func TestBuildEventFilterTypeAndSearch(t *testing.T) {
	filter := BuildEventFilter("Offline", "design")

	assert.Equal(t, "Offline", filter["type"])
	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)
}

func TestBuildEventFilterEscapesRegexMeta(t *testing.T) {
	filter := BuildEventFilter("", "c++ (advanced)")

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(bson.Regex)
	assert.Equal(t, `c\+\+ \(advanced\)`, title.Pattern)
	assert.Equal(t, "i", title.Options)
}
