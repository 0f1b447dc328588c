package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/sicko7947/claimflow"
	"github.com/sicko7947/claimflow/store"
)

// openStore connects the configured backend. The returned close func is never nil.
func openStore(ctx context.Context, cfg claimflow.StoreConfig, logger zerolog.Logger) (claimflow.ClaimStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case claimflow.StoreBackendMemory:
		logger.Warn().Msg("Using in-memory claim store; state is lost on restart")
		return store.NewMemoryStore(), noop, nil

	case claimflow.StoreBackendDynamoDB:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, noop, fmt.Errorf("load aws config: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
		})
		logger.Info().Str("table", cfg.TableName).Msg("Using DynamoDB claim store")
		return store.NewDynamoDBStore(client, cfg.TableName), noop, nil

	case claimflow.StoreBackendSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		db.SetMaxOpenConns(1)
		s, err := store.NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		logger.Info().Str("path", cfg.SQLitePath).Msg("Using SQLite claim store")
		return s, db.Close, nil

	case claimflow.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		logger.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis claim store")
		return store.NewRedisStore(client, cfg.RedisPrefix), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
