package mongodb

import (
	"context"
	"testing"

	domainerrors "waterdrops/internal/domain/errors"
	"waterdrops/internal/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// ns returns the namespace mtest cursor responses must carry.
func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := parseObjectID(oid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", "a@x.com"} {
		_, err := parseObjectID(bad)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidID), bad)
	}
}

func TestTranslateError(t *testing.T) {
	t.Run("deadline", func(t *testing.T) {
		err := translateError(errors.Wrap(context.DeadlineExceeded, "find"), "failed to find orders")
		assert.True(t, errors.Is(err, domainerrors.ErrStoreTimeout))
	})

	t.Run("disconnected client", func(t *testing.T) {
		err := translateError(mongo.ErrClientDisconnected, "ping")
		assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	})

	t.Run("anything else", func(t *testing.T) {
		err := translateError(errors.New("boom"), "failed to create order")

		var appErr domainerrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}

func TestIDString(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, oid.Hex(), idString(oid))
	assert.Equal(t, "abc", idString("abc"))
	assert.Equal(t, "", idString(nil))
	assert.Equal(t, "42", idString(int32(42)))
}
