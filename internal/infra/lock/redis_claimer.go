// Package lock provides short-lived distributed claims used to make push dispatch idempotent.
package lock

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"nutritrack/config"
	"nutritrack/internal/domain/lifecycle"
	"nutritrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	claimKeyPrefix  = "nutritrack:dispatch:"
	defaultClaimTTL = 26 * time.Hour
)

// releaseScript deletes the key only while it still holds this owner's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisClaimer struct {
	client *redis.Client
	owner  string
	ttl    time.Duration
}

// NewRedisClaimer wraps an existing client. Each claimer holds a unique owner token.
func NewRedisClaimer(client *redis.Client, ttl time.Duration) service.DispatchClaimer {
	if ttl <= 0 {
		ttl = defaultClaimTTL
	}

	return &redisClaimer{
		client: client,
		owner:  uuid.NewString(),
		ttl:    ttl,
	}
}

// Claim sets the key only if it does not exist yet.
func (c *redisClaimer) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := c.client.SetNX(ctx, claimKeyPrefix+key, c.owner, c.ttl).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to claim %s", key)
	}

	return ok, nil
}

// Release removes a claim held by this owner; claims of other owners are left alone.
func (c *redisClaimer) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, c.client, []string{claimKeyPrefix + key}, c.owner).Err(); err != nil &&
		!errors.Is(err, redis.Nil) {
		return errors.Wrapf(err, "failed to release %s", key)
	}

	return nil
}

// localClaimer is used when Redis is not configured. The store unique index still prevents
// duplicate records across replicas.
type localClaimer struct{}

func (localClaimer) Claim(context.Context, string) (bool, error) { return true, nil }

func (localClaimer) Release(context.Context, string) error { return nil }

// Params holds dependencies for the DispatchClaimer, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDispatchClaimer connects to Redis when configured and falls back to an always-granting claimer.
func NewDispatchClaimer(params Params) service.DispatchClaimer {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, dispatch claims are local only")

		return localClaimer{}
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis dispatch claimer ready", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisClaimer(client, cfg.ClaimTTL)
}
