package redis

import (
	"context"
	"fmt"
	"time"

	"etatcivil/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const servicePrefix = "etatcivil."
const jwtPrefix = "jwt_blacklist."

type Client struct {
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cannot ping redis: %w", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// WriteJWTToBlacklist invalide un token jusqu'à son expiration naturelle
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, servicePrefix+jwtPrefix+jwtStr, true, jwtTTL).Err()
}

// CheckJWTInBlacklist retourne nil si le token est en liste noire,
// redis.Nil sinon
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, servicePrefix+jwtPrefix+jwtStr).Err()
}
