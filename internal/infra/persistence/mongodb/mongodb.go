// Package mongodb contains the concrete implementation of the persistence layer using MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"waterdrops/config"
	"waterdrops/internal/domain/lifecycle"
	"waterdrops/internal/errors"
	"waterdrops/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store owns the process-wide client and hands out collection handles.
type Store struct {
	client           *mongo.Client
	db               *mongo.Database
	operationTimeout time.Duration
}

// New creates the MongoDB client. The connection is verified on fx start;
// a failed ping aborts startup instead of serving against a dead store.
func New(params Params) (*Store, error) {
	cfg := params.Config.Mongo

	clientOptions := options.Client().
		ApplyURI(cfg.URI()).
		SetAppName(params.Config.Env.ServiceName).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if cfg.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	store := NewStore(client, cfg.Database, cfg.OperationTimeout)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping MongoDB at %s", cfg.Redacted())
			}

			if err := store.EnsureIndexes(ctx); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("uri", cfg.Redacted()))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return store, nil
}

// NewStore wraps an already connected client.
func NewStore(client *mongo.Client, database string, operationTimeout time.Duration) *Store {
	return &Store{
		client:           client,
		db:               client.Database(database),
		operationTimeout: operationTimeout,
	}
}

// Collection returns the handle for a named collection.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.operationTimeout)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return translateError(err, "ping")
	}

	return nil
}

// EnsureIndexes creates the lookup indexes used by email filters.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{model.OrdersCollection, model.UsersCollection} {
		_, err := s.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_single"),
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create email index on %s", name)
		}
	}

	return nil
}
