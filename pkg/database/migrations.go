package database

import (
	"context"
	"fmt"
	"time"

	"carbooking/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CarsCollection             = "cars"
	DomainsCollection          = "domains"
	BookingsCollection         = "bookings"
	ThemePreferencesCollection = "themepreferences"
	migrationsCollection       = "migrations"
)

type Migration struct {
	Version     int
	Description string
	Up          func(context.Context, *mongo.Database) error
	Down        func(context.Context, *mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
	logger     *logger.Logger
}

func NewMigrator(db *mongo.Database, log *logger.Logger) *Migrator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
		logger:     log,
	}
}

func (m *Migrator) Up(ctx context.Context) error {
	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}

		m.logger.Infof("Running migration %d: %s", migration.Version, migration.Description)

		if err := migration.Up(ctx, m.db); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if err := m.updateVersion(ctx, migration.Version); err != nil {
			return fmt.Errorf("failed to update migration version: %w", err)
		}
	}

	return nil
}

func (m *Migrator) Down(ctx context.Context, targetVersion int) error {
	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		migration := m.migrations[i]
		if migration.Version > currentVersion || migration.Version <= targetVersion {
			continue
		}

		m.logger.Infof("Reverting migration %d: %s", migration.Version, migration.Description)

		if err := migration.Down(ctx, m.db); err != nil {
			return fmt.Errorf("migration %d rollback failed: %w", migration.Version, err)
		}

		previousVersion := targetVersion
		if i > 0 {
			previousVersion = m.migrations[i-1].Version
		}

		if err := m.updateVersion(ctx, previousVersion); err != nil {
			return fmt.Errorf("failed to update migration version: %w", err)
		}
	}

	return nil
}

func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection(migrationsCollection).FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(ctx context.Context, version int) error {
	_, err := m.db.Collection(migrationsCollection).ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updatedAt", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)

	return err
}

// caseInsensitive matches the collation used by domain name lookups so the
// unique index rejects "Example.com" when "example.com" already exists.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create cars indexes",
			Up: func(ctx context.Context, db *mongo.Database) error {
				_, err := db.Collection(CarsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
					{Keys: bson.D{{Key: "carType", Value: 1}, {Key: "isActive", Value: 1}}},
					{Keys: bson.D{{Key: "createdAt", Value: -1}}},
				})
				return err
			},
			Down: func(ctx context.Context, db *mongo.Database) error {
				_, err := db.Collection(CarsCollection).Indexes().DropAll(ctx)
				return err
			},
		},
		{
			Version:     2,
			Description: "Create unique case-insensitive domain name index",
			Up: func(ctx context.Context, db *mongo.Database) error {
				_, err := db.Collection(DomainsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{{Key: "domainName", Value: 1}},
					Options: options.Index().
						SetUnique(true).
						SetCollation(caseInsensitive).
						SetName("domainName_unique_ci"),
				})
				return err
			},
			Down: func(ctx context.Context, db *mongo.Database) error {
				_, err := db.Collection(DomainsCollection).Indexes().DropOne(ctx, "domainName_unique_ci")
				return err
			},
		},
		{
			Version:     3,
			Description: "Create bookings indexes",
			Up: func(ctx context.Context, db *mongo.Database) error {
				// bookingReference is deliberately not unique: references are
				// random and collisions are tolerated.
				_, err := db.Collection(BookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
					{Keys: bson.D{{Key: "bookingReference", Value: 1}}},
					{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
					{Keys: bson.D{{Key: "paypalOrderId", Value: 1}}, Options: options.Index().SetSparse(true)},
				})
				return err
			},
			Down: func(ctx context.Context, db *mongo.Database) error {
				_, err := db.Collection(BookingsCollection).Indexes().DropAll(ctx)
				return err
			},
		},
	}
}
