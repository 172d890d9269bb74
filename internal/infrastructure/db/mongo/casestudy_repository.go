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

const collectionCaseStudies = "case_studies"

// CaseStudyRepository persists case studies, the article variant with
// classification fields and a download counter.
type CaseStudyRepository struct {
	col *mongo.Collection
}

func NewCaseStudyRepository(db *mongo.Database) *CaseStudyRepository {
	return &CaseStudyRepository{col: db.Collection(collectionCaseStudies)}
}

func (r *CaseStudyRepository) Create(ctx context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cs.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, cs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("insert case study: %w", err)
	}
	return cs, nil
}

func (r *CaseStudyRepository) FindBySlug(ctx context.Context, slug string, status domain.ContentStatus) (*domain.CaseStudy, error) {
	filter := bson.M{"slug": slug}
	if status != "" {
		filter["status"] = status
	}
	return r.findOne(ctx, filter)
}

func (r *CaseStudyRepository) FindByID(ctx context.Context, id string) (*domain.CaseStudy, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CaseStudyRepository) findOne(ctx context.Context, filter bson.M) (*domain.CaseStudy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cs domain.CaseStudy
	if err := r.col.FindOne(ctx, filter).Decode(&cs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find case study: %w", err)
	}
	return &cs, nil
}

// Update persists the editable fields with a single $set, leaving the
// engagement counters out of the update so concurrent increments survive.
func (r *CaseStudyRepository) Update(ctx context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":       cs.Title,
		"slug":        cs.Slug,
		"description": cs.Description,
		"content":     cs.Content,
		"tags":        cs.Tags,
		"status":      cs.Status,
		"featured":    cs.Featured,
		"image":       cs.Image,
		"read_time":   cs.ReadTime,
		"category":    cs.Category,
		"industry":    cs.Industry,
		"difficulty":  cs.Difficulty,
		"updated_at":  cs.UpdatedAt,
	}
	if !cs.PublishedAt.IsZero() {
		set["published_at"] = cs.PublishedAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.CaseStudy
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": cs.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("update case study: %w", err)
	}
	return &updated, nil
}

func (r *CaseStudyRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete case study: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *CaseStudyRepository) DeleteByAuthor(ctx context.Context, authorID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"author_id": authorID}); err != nil {
		return fmt.Errorf("delete case studies by author: %w", err)
	}
	return nil
}

func (r *CaseStudyRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, fmt.Errorf("count case studies: %w", err)
	}
	return n, nil
}

func (r *CaseStudyRepository) List(ctx context.Context, filter ports.ListContentFilter) ([]*domain.CaseStudy, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := contentQuery(filter)
	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count case studies: %w", err)
	}

	cur, err := r.col.Find(ctx, query, contentFindOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list case studies: %w", err)
	}
	defer cur.Close(ctx)

	var studies []*domain.CaseStudy
	for cur.Next(ctx) {
		var cs domain.CaseStudy
		if err := cur.Decode(&cs); err != nil {
			return nil, 0, fmt.Errorf("decode case study: %w", err)
		}
		studies = append(studies, &cs)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate case studies: %w", err)
	}
	return studies, total, nil
}

func (r *CaseStudyRepository) IncrementCounter(ctx context.Context, id, counter string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cs domain.CaseStudy
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{counter: 1}}, opts).Decode(&cs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrContentNotFound
		}
		return 0, fmt.Errorf("increment %s: %w", counter, err)
	}

	switch counter {
	case domain.CounterViews:
		return cs.Views, nil
	case domain.CounterLikes:
		return cs.Likes, nil
	case domain.CounterShares:
		return cs.Shares, nil
	case domain.CounterBookmarks:
		return cs.Bookmarks, nil
	case domain.CounterDownloads:
		return cs.Downloads, nil
	}
	return 0, nil
}

func (r *CaseStudyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "content", Value: "text"},
		}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
