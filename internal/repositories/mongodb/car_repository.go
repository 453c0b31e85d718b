package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	carCacheTTL     = 15 * time.Minute
	carListCacheTTL = 5 * time.Minute
)

type carRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewCarRepository(db *mongo.Database, cache CacheService) interfaces.CarRepository {
	return &carRepository{
		collection: db.Collection(database.CarsCollection),
		cache:      cache,
	}
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	now := time.Now()
	car.ID = primitive.NewObjectID()
	car.CreatedAt = now
	car.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, car); err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}

	r.invalidateListCache(ctx)
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	if r.cache != nil {
		var cached models.Car
		if err := r.cache.Get(ctx, carCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	var car models.Car
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, carCacheKey(id), &car, carCacheTTL)
	}

	return &car, nil
}

func (r *carRepository) List(ctx context.Context, filter interfaces.CarFilter) ([]*models.Car, error) {
	cacheKey := carListCacheKey(filter)
	if r.cache != nil {
		var cached []*models.Car
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	query := bson.M{}
	if filter.CarType != "" {
		query["carType"] = filter.CarType
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer cursor.Close(ctx)

	cars := make([]*models.Car, 0)
	for cursor.Next(ctx) {
		var car models.Car
		if err := cursor.Decode(&car); err != nil {
			return nil, fmt.Errorf("failed to decode car: %w", err)
		}
		cars = append(cars, &car)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cars: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, cars, carListCacheTTL)
	}

	return cars, nil
}

func (r *carRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Car, error) {
	updates["updatedAt"] = time.Now()

	var car models.Car
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update car: %w", err)
	}

	r.invalidateCarCache(ctx, id)
	return &car, nil
}

func (r *carRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateCarCache(ctx, id)
	return nil
}

func (r *carRepository) ReplaceAll(ctx context.Context, cars []*models.Car) (int, error) {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("failed to clear cars: %w", err)
	}

	if r.cache != nil {
		_, _ = r.cache.DeletePattern(ctx, "car:*")
	}
	r.invalidateListCache(ctx)

	if len(cars) == 0 {
		return 0, nil
	}

	now := time.Now()
	docs := make([]interface{}, len(cars))
	for i, car := range cars {
		car.ID = primitive.NewObjectID()
		car.CreatedAt = now
		car.UpdatedAt = now
		docs[i] = car
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cars: %w", err)
	}

	return len(result.InsertedIDs), nil
}

func (r *carRepository) invalidateCarCache(ctx context.Context, id primitive.ObjectID) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Delete(ctx, carCacheKey(id))
	r.invalidateListCache(ctx)
}

func (r *carRepository) invalidateListCache(ctx context.Context) {
	if r.cache != nil {
		_, _ = r.cache.DeletePattern(ctx, "cars:list:*")
	}
}

func carCacheKey(id primitive.ObjectID) string {
	return "car:" + id.Hex()
}

func carListCacheKey(filter interfaces.CarFilter) string {
	active := "any"
	if filter.IsActive != nil {
		active = fmt.Sprintf("%t", *filter.IsActive)
	}
	carType := string(filter.CarType)
	if carType == "" {
		carType = "all"
	}
	return fmt.Sprintf("cars:list:%s:%s", carType, active)
}
