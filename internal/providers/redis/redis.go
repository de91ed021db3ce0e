package redis

import (
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisProvider struct {
	Client *redis.Client
	URL    string
	logger *zap.SugaredLogger
	ttl    time.Duration
	stop   context.CancelFunc
}

func NewRedisProvider(redisURL string, logger *zap.Logger, ttl time.Duration) *RedisProvider {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{
			Addr: redisURL,
			DB:   0,
		}
	}
	opts.MaxRetries = 3
	opts.MinRetryBackoff = 100 * time.Millisecond
	opts.MaxRetryBackoff = 500 * time.Millisecond

	client := redis.NewClient(opts)

	ctx, cancel := context.WithCancel(context.Background())
	provider := &RedisProvider{
		Client: client,
		URL:    redisURL,
		logger: logger.Sugar(),
		ttl:    ttl,
		stop:   cancel,
	}

	client.AddHook(&loggerHook{provider: provider})

	go provider.startConnectionMonitor(ctx)

	if err := client.Ping(ctx).Err(); err != nil {
		provider.logger.Errorw("Redis connection failed at startup", "error", err)
	} else {
		provider.logger.Infow("Redis connected",
			"url", redisURL,
			"db", opts.DB,
			"default_ttl", ttl.String(),
		)
	}

	return provider
}

func (r *RedisProvider) SetWithDefaultTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.Client.Set(ctx, key, value, ttl)
}

func (r *RedisProvider) Close() error {
	r.stop()
	return r.Client.Close()
}

func (r *RedisProvider) startConnectionMonitor(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	wasConnected := r.Client.Ping(ctx).Err() == nil

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := r.Client.Ping(ctx).Err()
			switch {
			case err != nil && wasConnected:
				r.logger.Errorw("Redis disconnected", "error", err)
				wasConnected = false
			case err == nil && !wasConnected:
				r.logger.Infow("Redis reconnected", "url", r.URL)
				wasConnected = true
			}
		}
	}
}

type loggerHook struct {
	provider *RedisProvider
}

func (h *loggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.provider.logger.Debugw("Redis dial failed", "network", network, "addr", addr, "error", err)
		}
		return conn, err
	}
}

func (h *loggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		if cmd.Name() == "ping" {
			return err
		}

		fields := []interface{}{
			"command", cmd.Name(),
			"duration", time.Since(start).String(),
		}
		// A miss on GET is not a failure.
		if err != nil && err != redis.Nil {
			h.provider.logger.Warnw("Redis command failed", append(fields, "error", err)...)
		} else {
			h.provider.logger.Debugw("Redis command executed", fields...)
		}
		return err
	}
}

func (h *loggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}
