package mongodb

import (
	"context"
	"testing"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDomainRepository_GetByNameIsAnchoredAndCaseInsensitive(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matches whole name ignoring case", func(mt *mtest.T) {
		repo := NewDomainRepository(mt.DB, nil)
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_booking.domains", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "domainName", Value: "Example.com"},
			{Key: "isActive", Value: true},
		}))

		domain, err := repo.GetByName(context.Background(), "example.com")
		require.NoError(t, err)
		assert.Equal(t, id, domain.ID)
		assert.Equal(t, "Example.com", domain.DomainName)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		pattern, options := started.Command.Lookup("filter", "domainName").Regex()
		assert.Equal(t, `^example\.com$`, pattern)
		assert.Equal(t, "i", options)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewDomainRepository(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_booking.domains", mtest.FirstBatch))

		_, err := repo.GetByName(context.Background(), "missing.com")
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestDomainRepository_CreateDuplicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate key maps to ErrDuplicate", func(mt *mtest.T) {
		repo := NewDomainRepository(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := repo.Create(context.Background(), &models.Domain{DomainName: "example.com"})
		assert.ErrorIs(t, err, interfaces.ErrDuplicate)
	})
}

func TestCarRepository_DeleteMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("zero deleted is not found", func(mt *mtest.T) {
		repo := NewCarRepository(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})
}

func TestCarRepository_ListFiltersByType(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters carType and isActive", func(mt *mtest.T) {
		repo := NewCarRepository(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "car_booking.cars", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "carType", Value: "rental"}, {Key: "name", Value: "Golf"}},
		))

		active := true
		cars, err := repo.List(context.Background(), interfaces.CarFilter{CarType: models.CarTypeRental, IsActive: &active})
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Equal(t, "Golf", cars[0].Name)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(t, "rental", filter.Lookup("carType").StringValue())
		assert.True(t, filter.Lookup("isActive").Boolean())
	})
}

func TestBookingRepository_CancelAlreadyCancelled(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no match returns ErrNotFound", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.Cancel(context.Background(), primitive.NewObjectID(), time.Now())
		assert.ErrorIs(t, err, interfaces.ErrNotFound)
	})

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewBookingRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.Cancel(context.Background(), primitive.NewObjectID(), time.Now())
		assert.NoError(t, err)
	})
}

func TestThemePreferenceStore_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts against the fixed key", func(mt *mtest.T) {
		store := NewThemePreferenceStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "active"},
			{Key: "themeId", Value: "classic-blue"},
		}}))

		pref, err := store.Get(context.Background(), "classic-blue")
		require.NoError(t, err)
		assert.Equal(t, "classic-blue", pref.ThemeID)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(t, "active", cmd.Lookup("query", "_id").StringValue())
		assert.True(t, cmd.Lookup("upsert").Boolean())
	})
}
