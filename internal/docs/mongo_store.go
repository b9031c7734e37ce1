package docs

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) GetDoc(ctx context.Context, collection, id string) (*Doc, error) {

	var raw bson.M
	err := s.db.Collection(collection).
		FindOne(ctx, idFilter(id)).
		Decode(&raw)

	if err == mongo.ErrNoDocuments {
		return nil, nil // not found
	}
	if err != nil {
		return nil, fmt.Errorf("docs: get %s/%s: %w", collection, id, err)
	}

	return toDoc(collection, raw), nil
}

func (s *MongoStore) DeleteDoc(ctx context.Context, collection, id string) error {
	// DeletedCount 0 means the document was already gone; not an error.
	_, err := s.db.Collection(collection).DeleteOne(ctx, idFilter(id))
	if err != nil {
		return fmt.Errorf("docs: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Query(ctx context.Context, collection, field, value string) ([]Doc, error) {

	cur, err := s.db.Collection(collection).Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, fmt.Errorf("docs: query %s where %s: %w", collection, field, err)
	}

	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("docs: query %s where %s: %w", collection, field, err)
	}

	out := make([]Doc, 0, len(raws))
	for _, raw := range raws {
		out = append(out, *toDoc(collection, raw))
	}

	return out, nil
}

func (s *MongoStore) BatchDelete(ctx context.Context, refs []Ref) error {

	if len(refs) == 0 {
		return nil
	}

	byCollection := make(map[string][]mongo.WriteModel)
	for _, ref := range refs {
		byCollection[ref.Collection] = append(
			byCollection[ref.Collection],
			mongo.NewDeleteOneModel().SetFilter(idFilter(ref.ID)),
		)
	}

	for collection, models := range byCollection {
		_, err := s.db.Collection(collection).
			BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
		if err != nil {
			return fmt.Errorf("docs: batch delete in %s: %w", collection, err)
		}
	}

	return nil
}

// idFilter matches documents whose _id is either the literal string or,
// when the string is a valid hex ObjectID, the decoded ObjectID. Profile
// documents use uid strings as _id while order documents carry
// driver-generated ids, and Query hex-encodes the latter.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

func toDoc(collection string, raw bson.M) *Doc {

	doc := Doc{
		Collection: collection,
		Fields:     map[string]any(raw),
	}

	switch id := raw["_id"].(type) {
	case string:
		doc.ID = id
	case primitive.ObjectID:
		doc.ID = id.Hex()
	default:
		doc.ID = fmt.Sprintf("%v", id)
	}

	return &doc
}
