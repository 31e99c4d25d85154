package mongodb

import (
	"context"
	"time"

	"waterdrops/internal/domain/entity"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/errors"
	"waterdrops/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return newUserRepository(store.Collection(model.UsersCollection), store.operationTimeout)
}

func newUserRepository(coll *mongo.Collection, timeout time.Duration) *userRepository {
	return &userRepository{
		coll:    coll,
		timeout: timeout,
	}
}

// CreateUser persists a new user.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.InsertOne(ctx, &model.UserModel{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role.String(),
	})
	if err != nil {
		return nil, translateError(err, "failed to create user")
	}

	result := toInsertResult(res)
	user.ID = result.InsertedID

	return result, nil
}

// FindUserByEmail retrieves the first user with the given email.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, translateError(err, "failed to find user by email")
	}

	return &entity.User{
		ID:          userM.ID.Hex(),
		Email:       userM.Email,
		DisplayName: userM.DisplayName,
		Role:        entity.Role(userM.Role),
	}, nil
}

// SetRoleByEmail updates the role without upserting.
func (repo *userRepository) SetRoleByEmail(ctx context.Context, email string, role entity.Role) (*entity.UpdateResult, error) {
	ctx, cancel := withTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role.String()}},
		options.Update().SetUpsert(false),
	)
	if err != nil {
		return nil, translateError(err, "failed to set user role")
	}

	return toUpdateResult(res), nil
}
