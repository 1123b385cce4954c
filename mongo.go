package crud

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStoreOptions struct {
	// If true, string ids that parse as object id hex are converted to
	// primitive.ObjectID before they are used in filters. Default is false.
	HexIDs bool
}

// MongoStore implements Store over a single mongo collection.
type MongoStore struct {
	Coll *mongo.Collection
	Opts MongoStoreOptions
}

func NewMongoStore(coll *mongo.Collection, opts ...MongoStoreOptions) *MongoStore {
	s := &MongoStore{Coll: coll}
	if len(opts) > 0 {
		s.Opts = opts[0]
	}
	return s
}

func (s *MongoStore) key(id any) any {
	if s.Opts.HexIDs {
		if h, ok := id.(string); ok {
			if oid, err := primitive.ObjectIDFromHex(h); err == nil {
				return oid
			}
		}
	}
	return id
}

func (s *MongoStore) FindAll(ctx context.Context, q *ListQuery) ([]H, error) {

	opts := options.Find()
	if q != nil && q.Limit != nil {
		opts.SetSkip(q.Skip).SetLimit(*q.Limit)
	}

	cur, err := s.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := make([]H, 0)
	if err = cur.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *MongoStore) FindOne(ctx context.Context, id any) (H, error) {

	var doc H
	err := s.Coll.FindOne(ctx, bson.M{"_id": s.key(id)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *MongoStore) Insert(ctx context.Context, doc any) (any, error) {

	res, err := s.Coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	return res.InsertedID, nil
}

func (s *MongoStore) Update(ctx context.Context, id any, doc any) error {

	res, err := s.Coll.UpdateOne(ctx, bson.M{"_id": s.key(id)}, bson.M{"$set": doc})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id any) error {

	res, err := s.Coll.DeleteOne(ctx, bson.M{"_id": s.key(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
