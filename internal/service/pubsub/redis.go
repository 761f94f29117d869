package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

const (
	channelPrefix = "activity:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of company ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(companyID string) string {
	return channelPrefix + companyID
}

// Publish publishes an activity entry to the company's Redis channel
func (ps *RedisPubSub) Publish(ctx context.Context, entry *domain.ActivityLog) error {
	message, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal activity entry: %w", err)
	}

	companyID := ""
	if entry.CompanyID != nil {
		companyID = *entry.CompanyID
	}

	channel := ps.getChannelName(companyID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to activity entries for a specific company
func (ps *RedisPubSub) Subscribe(ctx context.Context, companyID string, callback func(*domain.ActivityLog)) error {
	channel := ps.getChannelName(companyID)

	// Check if we're already subscribed to this company's channel
	ps.subscriberMu.RLock()
	_, exists := ps.subscribers[companyID]
	ps.subscriberMu.RUnlock()
	if exists {
		ps.logger.Infof("Already subscribed to company channel: %s", channel)
		return nil
	}

	pubsub := ps.client.Subscribe(ctx, channel)

	ps.subscriberMu.Lock()
	ps.subscribers[companyID] = pubsub
	ps.subscriberMu.Unlock()

	// Start receiving messages
	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for company channel: %s", channel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			delete(ps.subscribers, companyID)
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg := <-ch:
				var entry domain.ActivityLog
				if err := json.Unmarshal([]byte(msg.Payload), &entry); err != nil {
					ps.logger.Errorf("Failed to unmarshal activity entry from channel %s: %v", channel, err)
					continue
				}
				callback(&entry)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to company channel: %s", channel)
	return nil
}

// Unsubscribe removes subscription for a company
func (ps *RedisPubSub) Unsubscribe(companyID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[companyID]; exists {
		pubsub.Close()
		delete(ps.subscribers, companyID)
		ps.logger.Infof("Unsubscribed from company channel: %s", ps.getChannelName(companyID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for companyID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, companyID)
		ps.logger.Infof("Closed subscription for company channel: %s", ps.getChannelName(companyID))
	}
}
