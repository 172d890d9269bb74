package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanglome/content-api/internal/core/ports"
)

// contentQuery translates a list filter into a bson query. The search term
// rides the collections' text index across title, description and content.
func contentQuery(f ports.ListContentFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.AuthorID != "" {
		q["author_id"] = f.AuthorID
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Industry != "" {
		q["industry"] = f.Industry
	}
	if f.Difficulty != "" {
		q["difficulty"] = f.Difficulty
	}
	if f.Search != "" {
		q["$text"] = bson.M{"$search": f.Search}
	}
	return q
}

// contentSort maps the public sort names to index-friendly sort documents.
func contentSort(sort string) bson.D {
	switch sort {
	case ports.SortOldest:
		return bson.D{{Key: "created_at", Value: 1}}
	case ports.SortPopular:
		return bson.D{{Key: "views", Value: -1}, {Key: "created_at", Value: -1}}
	case ports.SortFeatured:
		return bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}
	default: // newest
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

func contentFindOptions(f ports.ListContentFilter) *options.FindOptions {
	return options.Find().
		SetSort(contentSort(f.Sort)).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))
}
