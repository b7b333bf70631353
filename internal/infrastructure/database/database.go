package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vitrine/internal/domain/model"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := ensureIndexes(db); err != nil {
		return nil, err
	}

	return db, nil
}

// scopedCollections are indexed on their scope field plus display order, the
// exact access path of every scoped list query.
var scopedCollections = map[string]string{
	model.CreativeVideoCollection: "categoryId",
	model.DesignItemCollection:    "sectionId",
	model.DevThemeCollection:      "categoryId",
}

// topLevelCollections are indexed on display order only.
var topLevelCollections = []string{
	model.CreativeCategoryCollection,
	model.DesignSectionCollection,
	model.ThemeCategoryCollection,
	model.SponsorImageCollection,
	model.SocialLinkCollection,
}

func ensureIndexes(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	for collection, scopeField := range scopedCollections {
		coll := db.Client.Database(db.DBName).Collection(collection)
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: scopeField, Value: 1}, {Key: "order", Value: 1}},
		})
		if err != nil {
			return err
		}
	}

	for _, collection := range topLevelCollections {
		coll := db.Client.Database(db.DBName).Collection(collection)
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "order", Value: 1}},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (db *Database) Stop() error {
	return db.Client.Disconnect(context.Background())
}
