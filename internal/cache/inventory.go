package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix          = "user:%d"
	AvailabilityKeyPrefix  = "availability:%d"
	AdminMessagesActiveKey = "admin_messages:active"
)

const (
	UserTTL          = 5 * time.Minute
	AvailabilityTTL  = 10 * time.Minute
	AdminMessagesTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func AvailabilityKey(userID uint) string {
	return fmt.Sprintf(AvailabilityKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateAvailability(ctx context.Context, userID uint) {
	Invalidate(ctx, AvailabilityKey(userID))
}

func InvalidateActiveAdminMessages(ctx context.Context) {
	Invalidate(ctx, AdminMessagesActiveKey)
}
