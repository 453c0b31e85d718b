package mongodb

import (
	"context"
	"fmt"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activePreferenceKey is the fixed _id of the one preference document.
const activePreferenceKey = "active"

type themePreferenceStore struct {
	collection *mongo.Collection
}

func NewThemePreferenceStore(db *mongo.Database) interfaces.ThemePreferenceStore {
	return &themePreferenceStore{
		collection: db.Collection(database.ThemePreferencesCollection),
	}
}

func (s *themePreferenceStore) Get(ctx context.Context, defaultThemeID string) (*models.ThemePreference, error) {
	var pref models.ThemePreference
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": activePreferenceKey},
		bson.M{"$setOnInsert": bson.M{"themeId": defaultThemeID, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&pref)
	if err != nil {
		return nil, fmt.Errorf("failed to get theme preference: %w", err)
	}

	return &pref, nil
}

func (s *themePreferenceStore) Set(ctx context.Context, themeID string) (*models.ThemePreference, error) {
	var pref models.ThemePreference
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": activePreferenceKey},
		bson.M{"$set": bson.M{"themeId": themeID, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&pref)
	if err != nil {
		return nil, fmt.Errorf("failed to set theme preference: %w", err)
	}

	return &pref, nil
}
