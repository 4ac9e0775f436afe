package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"meetup_backend/model"
)

// BuildEventFilter translates the optional list parameters into a Mongo
// filter. An empty type or the sentinel "Both" matches every type; a search
// term matches events whose title, host or any tag contains it as a
// case-insensitive substring. Both constraints AND together.
func BuildEventFilter(eventType, search string) bson.M {
	filter := bson.M{}

	if eventType != "" && eventType != model.EventTypeBoth {
		filter["type"] = eventType
	}

	if search != "" {
		// QuoteMeta keeps user input a literal substring, not a pattern.
		re := bson.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"tags": bson.M{"$in": bson.A{re}}},
			bson.M{"hostedBy": re},
		}
	}

	return filter
}
