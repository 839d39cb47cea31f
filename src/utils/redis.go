package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CampusHub/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const (
	maxLoginAttempts = 5
	loginWindow      = 15 * time.Minute
)

// ensureClient returns the shared Redis client managed by the database
// package. It is nil when Redis was not configured; callers fall back to
// no-op behaviour in that case.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// LogLoginAttempt records a login attempt. Failed attempts count toward
// the rate limit window; a successful login clears the counter.
func LogLoginAttempt(email string, success bool) {
	client := ensureClient()
	if client == nil {
		return
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	if success {
		client.Del(Ctx, key)
		return
	}

	count, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		client.Expire(Ctx, key, loginWindow)
	}
}

// IsRateLimited reports whether the account has exceeded the failed-login
// limit. Without Redis there is no rate limiting (development mode).
func IsRateLimited(email string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	count, err := client.Get(Ctx, key).Int64()
	if err != nil {
		return false // includes redis.Nil - no failed attempts yet
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the login counter expires.
func GetRemainingCooldownTime(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	ttl, err := client.TTL(Ctx, key).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}
