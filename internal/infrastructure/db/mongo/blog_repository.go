package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

const collectionBlogs = "blogs"

// BlogRepository persists blog posts. Slug uniqueness is enforced by a
// unique index; counter updates go through a single atomic $inc.
type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection(collectionBlogs)}
}

func (r *BlogRepository) Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	return b, nil
}

// FindBySlug retrieves a post by slug. A non-empty status narrows the lookup,
// so public reads only ever see published posts.
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string, status domain.ContentStatus) (*domain.Blog, error) {
	filter := bson.M{"slug": slug}
	if status != "" {
		filter["status"] = status
	}
	return r.findOne(ctx, filter)
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Blog
	if err := r.col.FindOne(ctx, filter).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return &b, nil
}

// Update persists the editable fields with a single $set. The engagement
// counters are never part of the update, so an increment that lands between
// the caller's read and this write survives.
func (r *BlogRepository) Update(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":       b.Title,
		"slug":        b.Slug,
		"description": b.Description,
		"content":     b.Content,
		"tags":        b.Tags,
		"status":      b.Status,
		"featured":    b.Featured,
		"image":       b.Image,
		"read_time":   b.ReadTime,
		"updated_at":  b.UpdatedAt,
	}
	if !b.PublishedAt.IsZero() {
		set["published_at"] = b.PublishedAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.Blog
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": b.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &updated, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *BlogRepository) DeleteByAuthor(ctx context.Context, authorID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"author_id": authorID}); err != nil {
		return fmt.Errorf("delete blogs by author: %w", err)
	}
	return nil
}

func (r *BlogRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	return n, nil
}

func (r *BlogRepository) List(ctx context.Context, filter ports.ListContentFilter) ([]*domain.Blog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := contentQuery(filter)
	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	cur, err := r.col.Find(ctx, query, contentFindOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	var blogs []*domain.Blog
	for cur.Next(ctx) {
		var b domain.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, 0, fmt.Errorf("decode blog: %w", err)
		}
		blogs = append(blogs, &b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate blogs: %w", err)
	}
	return blogs, total, nil
}

// IncrementCounter atomically adds one to the named counter and returns the
// new value.
func (r *BlogRepository) IncrementCounter(ctx context.Context, id, counter string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b domain.Blog
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{counter: 1}}, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrContentNotFound
		}
		return 0, fmt.Errorf("increment %s: %w", counter, err)
	}

	switch counter {
	case domain.CounterViews:
		return b.Views, nil
	case domain.CounterLikes:
		return b.Likes, nil
	case domain.CounterShares:
		return b.Shares, nil
	case domain.CounterBookmarks:
		return b.Bookmarks, nil
	}
	return 0, nil
}

// EnsureIndexes creates the unique slug index, the text search index and the
// common listing indexes.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "content", Value: "text"},
		}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
