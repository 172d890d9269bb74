package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

const collectionUsers = "users"

// UserRepository persists accounts in the users collection. Emails are
// stored lowercased and guarded by a unique index.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// mongoUser keeps the storage shape decoupled from the domain entity so the
// sensitive fields stay out of the JSON surface entirely.
type mongoUser struct {
	ID                string             `bson:"_id"`
	Name              string             `bson:"name"`
	Email             string             `bson:"email"`
	PasswordHash      string             `bson:"password_hash"`
	Avatar            string             `bson:"avatar,omitempty"`
	Role              string             `bson:"role"`
	Bio               string             `bson:"bio,omitempty"`
	Company           string             `bson:"company,omitempty"`
	Position          string             `bson:"position,omitempty"`
	Website           string             `bson:"website,omitempty"`
	SocialLinks       domain.SocialLinks `bson:"social_links"`
	Preferences       domain.Preferences `bson:"preferences"`
	Stats             domain.UserStats   `bson:"stats"`
	ResetToken        string             `bson:"reset_token,omitempty"`
	ResetTokenExpires time.Time          `bson:"reset_token_expires,omitempty"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		Avatar:            u.Avatar,
		Role:              u.Role,
		Bio:               u.Bio,
		Company:           u.Company,
		Position:          u.Position,
		Website:           u.Website,
		SocialLinks:       u.SocialLinks,
		Preferences:       u.Preferences,
		Stats:             u.Stats,
		ResetToken:        u.ResetToken,
		ResetTokenExpires: u.ResetTokenExpires,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                m.ID,
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Avatar:            m.Avatar,
		Role:              m.Role,
		Bio:               m.Bio,
		Company:           m.Company,
		Position:          m.Position,
		Website:           m.Website,
		SocialLinks:       m.SocialLinks,
		Preferences:       m.Preferences,
		Stats:             m.Stats,
		ResetToken:        m.ResetToken,
		ResetTokenExpires: m.ResetTokenExpires,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUser(user)
	doc.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	return r.findOne(ctx, bson.M{
		"reset_token":         token,
		"reset_token_expires": bson.M{"$gt": now},
	})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, patch ports.ProfilePatch) (*domain.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Position != nil {
		set["position"] = *patch.Position
	}
	if patch.Website != nil {
		set["website"] = *patch.Website
	}
	if patch.SocialLinks != nil {
		set["social_links"] = *patch.SocialLinks
	}
	if patch.Preferences != nil {
		set["preferences"] = *patch.Preferences
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *UserRepository) SetAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{"avatar": avatar, "updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) SetRole(ctx context.Context, id, role string) (*domain.User, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{"role": role, "updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mu mongoUser
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return mu.toDomain(), nil
}

// SetPassword replaces the hash and clears any pending reset token, so a
// reset token can never be replayed.
func (r *UserRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":   bson.M{"password_hash": passwordHash, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"reset_token": "", "reset_token_expires": ""},
	})
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"reset_token": token, "reset_token_expires": expires},
	})
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"stats.last_active": at},
	})
	if err != nil {
		return fmt.Errorf("touch last active: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// userSearchClauses matches the term case-insensitively against name, email
// and company. The term is quoted so regex metacharacters match literally
// instead of failing the query.
func userSearchClauses(search string) bson.A {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.A{
		bson.M{"name": pattern},
		bson.M{"email": pattern},
		bson.M{"company": pattern},
	}
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Search != "" {
		query["$or"] = userSearchClauses(filter.Search)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, 0, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}
	return users, total, nil
}

// EnsureIndexes creates the unique email index and the role index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "reset_token", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
