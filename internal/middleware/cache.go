package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheConfig holds configuration for the public response cache
type CacheConfig struct {
	Enabled       bool
	DefaultTTL    time.Duration
	PrefixKey     string
	ExcludedPaths []string
}

// PublicCache caches successful GET responses of the public API in
// Redis. Contact submissions and admin routes never pass through it.
func PublicCache(redisClient *redis.Client, config CacheConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		for _, path := range config.ExcludedPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		cacheKey := cacheKeyFor(c, config.PrefixKey)

		ctx := context.Background()
		cached, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil {
			logger.Debug("Cache hit",
				zap.String("path", c.Request.URL.Path),
				zap.String("cache_key", cacheKey))

			c.Writer.Header().Set("Content-Type", "application/json")
			c.Writer.Header().Set("X-Cache", "HIT")
			c.Writer.WriteHeader(http.StatusOK)
			c.Writer.Write(cached)
			c.Abort()
			return
		}

		writer := &cachingWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := redisClient.Set(ctx, cacheKey, writer.body.Bytes(), config.DefaultTTL).Err(); err != nil {
				logger.Error("Failed to set cache",
					zap.Error(err),
					zap.String("cache_key", cacheKey))
			}
		}
	}
}

// FlushPublicCache drops every cached public response. Admin writes
// call this so published content never lags behind edits.
func FlushPublicCache(redisClient *redis.Client, prefix string, logger *zap.Logger) {
	ctx := context.Background()
	keys, err := redisClient.Keys(ctx, prefix+":*").Result()
	if err != nil {
		logger.Warn("Failed to list cache keys", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := redisClient.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("Failed to flush cache", zap.Error(err))
	}
}

// FlushOnWrite invalidates the public cache after any successful
// mutating admin request
func FlushOnWrite(redisClient *redis.Client, prefix string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		FlushPublicCache(redisClient, prefix, logger)
	}
}

// cachingWriter captures the response body for caching
type cachingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// cacheKeyFor hashes the path and query into a cache key
func cacheKeyFor(c *gin.Context, prefix string) string {
	path := c.Request.URL.Path
	query := c.Request.URL.RawQuery

	hash := sha256.New()
	if query != "" {
		io.WriteString(hash, fmt.Sprintf("%s?%s", path, query))
	} else {
		io.WriteString(hash, path)
	}
	return prefix + ":" + hex.EncodeToString(hash.Sum(nil))
}
