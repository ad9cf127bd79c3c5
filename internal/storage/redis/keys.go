package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "rps"

// userKey returns the Redis key for a User
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}

// statisticsKey returns the Redis key for a UserStatistics aggregate
func statisticsKey(username string) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, username)
}
