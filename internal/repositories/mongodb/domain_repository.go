package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const domainCacheTTL = 10 * time.Minute

type domainRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewDomainRepository(db *mongo.Database, cache CacheService) interfaces.DomainRepository {
	return &domainRepository{
		collection: db.Collection(database.DomainsCollection),
		cache:      cache,
	}
}

func (r *domainRepository) Create(ctx context.Context, domain *models.Domain) error {
	now := time.Now()
	domain.ID = primitive.NewObjectID()
	domain.CreatedAt = now
	domain.UpdatedAt = now
	if domain.Cars == nil {
		domain.Cars = []models.DomainCar{}
	}

	if _, err := r.collection.InsertOne(ctx, domain); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create domain: %w", err)
	}

	return nil
}

func (r *domainRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Domain, error) {
	var domain models.Domain
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&domain)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}

	return &domain, nil
}

func (r *domainRepository) GetByName(ctx context.Context, name string) (*models.Domain, error) {
	cacheKey := domainNameCacheKey(name)
	if r.cache != nil {
		var cached models.Domain
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	filter := bson.M{"domainName": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}

	var domain models.Domain
	err := r.collection.FindOne(ctx, filter).Decode(&domain)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get domain by name: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, &domain, domainCacheTTL)
	}

	return &domain, nil
}

func (r *domainRepository) List(ctx context.Context) ([]*models.Domain, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "domainName", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	defer cursor.Close(ctx)

	domains := make([]*models.Domain, 0)
	if err := cursor.All(ctx, &domains); err != nil {
		return nil, fmt.Errorf("failed to decode domains: %w", err)
	}

	return domains, nil
}

func (r *domainRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Domain, error) {
	updates["updatedAt"] = time.Now()

	var domain models.Domain
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&domain)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, interfaces.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update domain: %w", err)
	}

	r.invalidateNameCache(ctx)
	return &domain, nil
}

func (r *domainRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateNameCache(ctx)
	return nil
}

// Renames make per-name invalidation unreliable, so every name entry goes.
func (r *domainRepository) invalidateNameCache(ctx context.Context) {
	if r.cache != nil {
		_, _ = r.cache.DeletePattern(ctx, "domain:name:*")
	}
}

func domainNameCacheKey(name string) string {
	return "domain:name:" + strings.ToLower(name)
}
