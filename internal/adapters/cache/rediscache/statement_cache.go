package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	portsrepo "github.com/mattilda/school_billing_app/internal/core/ports/repositories"
	"github.com/mattilda/school_billing_app/internal/dto"
	"github.com/mattilda/school_billing_app/internal/metrics"
	"github.com/mattilda/school_billing_app/internal/middleware"
)

const (
	studentKeyPrefix = "statement:student:"
	schoolKeyPrefix  = "statement:school:"
)

// RedisStatementCache caches serialized statements in redis under
// per-student and per-school keys. Every failure is reported as a miss or
// logged and swallowed; callers never see cache errors.
type RedisStatementCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStatementCache creates a statement cache backed by the given
// redis client. Entries expire after ttl.
func NewRedisStatementCache(client *redis.Client, ttl time.Duration) *RedisStatementCache {
	return &RedisStatementCache{client: client, ttl: ttl}
}

var _ portsrepo.StatementCache = (*RedisStatementCache)(nil)

func (c *RedisStatementCache) GetStudentStatement(ctx context.Context, studentID string) (*dto.StudentAccountStatement, bool) {
	var statement dto.StudentAccountStatement
	if !c.get(ctx, studentKeyPrefix+studentID, "student", &statement) {
		return nil, false
	}
	return &statement, true
}

func (c *RedisStatementCache) PutStudentStatement(ctx context.Context, studentID string, statement *dto.StudentAccountStatement) {
	c.put(ctx, studentKeyPrefix+studentID, statement)
}

func (c *RedisStatementCache) GetSchoolStatement(ctx context.Context, schoolID string) (*dto.SchoolAccountStatement, bool) {
	var statement dto.SchoolAccountStatement
	if !c.get(ctx, schoolKeyPrefix+schoolID, "school", &statement) {
		return nil, false
	}
	return &statement, true
}

func (c *RedisStatementCache) PutSchoolStatement(ctx context.Context, schoolID string, statement *dto.SchoolAccountStatement) {
	c.put(ctx, schoolKeyPrefix+schoolID, statement)
}

// InvalidateStudent drops the cached statements for a student and their
// school. Deleting absent keys is a no-op, so invalidation is idempotent.
func (c *RedisStatementCache) InvalidateStudent(ctx context.Context, studentID string, schoolID string) {
	keys := []string{studentKeyPrefix + studentID}
	if schoolID != "" {
		keys = append(keys, schoolKeyPrefix+schoolID)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Statement cache invalidation failed",
			slog.String("student_id", studentID),
			slog.String("error", err.Error()))
		return
	}
	metrics.CacheInvalidation()
}

func (c *RedisStatementCache) get(ctx context.Context, key string, entity string, out any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			middleware.GetLoggerFromCtx(ctx).Warn("Statement cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		metrics.CacheMiss(entity)
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		// A corrupt entry is treated as a miss; the next put overwrites it.
		middleware.GetLoggerFromCtx(ctx).Warn("Statement cache entry is corrupt",
			slog.String("key", key),
			slog.String("error", err.Error()))
		metrics.CacheMiss(entity)
		return false
	}
	metrics.CacheHit(entity)
	return true
}

func (c *RedisStatementCache) put(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Statement cache serialization failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Statement cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
