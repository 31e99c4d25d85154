package mongodb

import (
	"context"
	"fmt"
	"time"

	"waterdrops/internal/domain/entity"
	domainerrors "waterdrops/internal/domain/errors"
	"waterdrops/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// withTimeout bounds a single store operation. A non-positive timeout keeps
// the caller's deadline only.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidID.WithDetails(id)
	}

	return oid, nil
}

// translateError maps driver failures onto application errors.
func translateError(err error, details string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return domainerrors.ErrStoreTimeout.WrapMessage(details)
	case mongo.IsNetworkError(err), errors.Is(err, mongo.ErrClientDisconnected):
		return domainerrors.ErrStoreUnavailable.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func idString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func toInsertResult(res *mongo.InsertOneResult) *entity.InsertResult {
	return &entity.InsertResult{
		Acknowledged: true,
		InsertedID:   idString(res.InsertedID),
	}
}

func toUpdateResult(res *mongo.UpdateResult) *entity.UpdateResult {
	result := &entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		upserted := idString(res.UpsertedID)
		result.UpsertedID = &upserted
	}

	return result
}

func toDeleteResult(res *mongo.DeleteResult) *entity.DeleteResult {
	return &entity.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}

// findAll runs a find and decodes every document, converting each with conv.
// The result is never nil so that empty sets encode as [].
func findAll[M any, E any](ctx context.Context, coll *mongo.Collection, filter any, conv func(*M) *E, opts ...*options.FindOptions) ([]*E, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	result := make([]*E, 0, len(docs))
	for i := range docs {
		result = append(result, conv(&docs[i]))
	}

	return result, nil
}
