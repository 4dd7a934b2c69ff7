// Package mongodb implements the persistence ports on MongoDB documents.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/lifecycle"
	"github.com/umithief/motovibe6/internal/errors"
)

const (
	defaultDatabase       = "motovibe"
	defaultConnectTimeout = 10 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the client and database handle. Indexes are ensured on start.
func New(params Params) (*mongo.Client, *mongo.Database, error) {
	mcfg := params.Config.Storage.Mongo
	if mcfg == nil || mcfg.URI == "" {
		return nil, nil, errors.New("storage.mongo.uri is not configured")
	}

	connectTimeout := mcfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(mcfg.URI).
		SetConnectTimeout(connectTimeout).
		SetAppName(params.Config.Env.ServiceName))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	name := mcfg.Database
	if name == "" {
		name = defaultDatabase
	}
	db := client.Database(name)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected", slog.String("database", name))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return client, db, nil
}

// EnsureIndexes creates the unique and ordering indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colOrders: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		},
		colTopics: {
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		colEvents: {
			{Keys: bson.D{{Key: "timestamp", Value: 1}}},
		},
		colLogs: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
	}

	for col, models := range indexes {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", col)
		}
	}

	return nil
}
