package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vitrine/internal/domain/repository/database"
)

// Store implements the document-store interface over MongoDB. Record ids are
// hex object ids assigned here on creation.
type Store struct {
	db *Database
}

func NewStore(db *Database) *Store {
	return &Store{db: db}
}

func (s *Store) Query(ctx context.Context, collection string, scope database.Scope,
	orderField string, dest any,
) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.collection(collection)

	opts := options.Find().SetSort(bson.D{{Key: orderField, Value: 1}})

	cursor, err := coll.Find(ctx, scopeFilter(scope), opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, dest)
}

func (s *Store) Get(ctx context.Context, collection, id string, dest any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	err := s.collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *Store) Count(ctx context.Context, collection string, scope database.Scope) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	return s.collection(collection).CountDocuments(ctx, scopeFilter(scope))
}

func (s *Store) CountField(ctx context.Context, collection, field, value, excludeID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	filter := bson.M{field: value}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	return s.collection(collection).CountDocuments(ctx, filter)
}

func (s *Store) Create(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	fields, err := toFields(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	fields["_id"] = id

	if _, err := s.collection(collection).InsertOne(ctx, fields); err != nil {
		return "", err
	}

	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	fields, err := toFields(doc)
	if err != nil {
		return err
	}
	delete(fields, "_id")

	res, err := s.collection(collection).UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.collection(collection).DeleteOne(ctx, bson.M{"_id": id})

	return err
}

func (s *Store) Upsert(ctx context.Context, collection, id string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	fields, err := toFields(doc)
	if err != nil {
		return err
	}
	delete(fields, "_id")

	opts := options.Replace().SetUpsert(true)
	_, err = s.collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, fields, opts)

	return err
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(name)
}

func scopeFilter(scope database.Scope) bson.M {
	if scope.Zero() {
		return bson.M{}
	}

	return bson.M{scope.Field: scope.Value}
}

// toFields flattens doc into a field map so the store can own id assignment.
func toFields(doc any) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var fields bson.M
	if err := bson.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}
