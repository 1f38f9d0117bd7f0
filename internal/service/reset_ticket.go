package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrTicketNotFound is returned when a ticket is unknown, expired or was
// already consumed.
var ErrTicketNotFound = errors.New("reset ticket not found")

// ResetSessionStore holds the short-lived state of the password reset flow:
// the single-use verification ticket issued after a correct one-time code,
// and revocation of the user's outstanding JWT tokens once the password
// changes.
type ResetSessionStore interface {
	IssueTicket(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error)
	// ConsumeTicket resolves and deletes the ticket in one step so it can
	// never authorize a second reset.
	ConsumeTicket(ctx context.Context, ticket string) (uuid.UUID, error)
	RevokeAllTokens(ctx context.Context, userID uuid.UUID) error
}

const resetTicketKeyPrefix = "reset_ticket:"

type redisResetSessionStore struct {
	redisClient *redis.Client
}

func NewResetSessionStore(redisClient *redis.Client) ResetSessionStore {
	return &redisResetSessionStore{redisClient: redisClient}
}

func (s *redisResetSessionStore) IssueTicket(ctx context.Context, userID uuid.UUID, ttl time.Duration) (string, error) {
	ticket := uuid.New().String()
	key := resetTicketKeyPrefix + ticket
	if err := s.redisClient.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		return "", err
	}
	return ticket, nil
}

func (s *redisResetSessionStore) ConsumeTicket(ctx context.Context, ticket string) (uuid.UUID, error) {
	key := resetTicketKeyPrefix + ticket
	value, err := s.redisClient.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrTicketNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, ErrTicketNotFound
	}
	return userID, nil
}

// RevokeAllTokens deletes every access and refresh token the user holds.
func (s *redisResetSessionStore) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	patterns := []string{
		fmt.Sprintf("access_token:%s:*", userID.String()),
		fmt.Sprintf("refresh_token:%s:*", userID.String()),
	}

	for _, pattern := range patterns {
		keys, err := s.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
