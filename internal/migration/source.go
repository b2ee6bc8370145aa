// Package migration moves records out of the legacy document store into the
// relational tables. One operator-triggered run, per-record failure
// tolerance, idempotent replay.
package migration

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document is one loosely-typed record from the legacy store. The source
// always sets "id".
type Document map[string]interface{}

// ErrDocumentNotFound is returned when a single-document lookup matches
// nothing. The runner treats it as "skip with a warning", not a failure.
var ErrDocumentNotFound = errors.New("document not found")

// Source reads named collections of loosely-typed documents.
type Source interface {
	Collection(ctx context.Context, name string) ([]Document, error)
	Document(ctx context.Context, collection, id string) (Document, error)
}

// MongoSource reads the legacy store over the MongoDB wire protocol.
type MongoSource struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoSource(ctx context.Context, uri, dbName string) (*MongoSource, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("could not connect to legacy store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("legacy store unreachable: %w", err)
	}
	return &MongoSource{client: client, db: client.Database(dbName)}, nil
}

func (s *MongoSource) Collection(ctx context.Context, name string) ([]Document, error) {
	cur, err := s.db.Collection(name).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

func (s *MongoSource) Document(ctx context.Context, collection, id string) (Document, error) {
	var m bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromBSON(m), nil
}

func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// fromBSON flattens driver-specific types so the remapping code only ever
// sees plain maps, slices, strings, numbers and time.Time.
func fromBSON(m bson.M) Document {
	doc := Document(normalizeMap(m))
	switch id := m["_id"].(type) {
	case primitive.ObjectID:
		doc["id"] = id.Hex()
	case string:
		doc["id"] = id
	case nil:
	default:
		doc["id"] = fmt.Sprint(id)
	}
	return doc
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.M:
		return normalizeMap(val)
	case map[string]interface{}:
		return normalizeMap(val)
	case primitive.A:
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = normalizeValue(item)
		}
		return items
	case []interface{}:
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = normalizeValue(item)
		}
		return items
	case primitive.DateTime:
		return val.Time()
	case primitive.ObjectID:
		return val.Hex()
	default:
		return v
	}
}
