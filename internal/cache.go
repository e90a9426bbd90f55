package internal

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"loomria-api-io/api/pkg/util"
)

var CHANNEL_GLOBAL_CACHE = "GLOBAL_CACHE"

type CacheMessageType string

const (
	CacheInvalidateBrand           CacheMessageType = "brand.invalidate"
	CacheInvalidateBrandShipping   CacheMessageType = "brand.shipping.invalidate"
	CacheInvalidateBrandProducts   CacheMessageType = "brand.products.invalidate"
	CacheInvalidateProduct         CacheMessageType = "product.invalidate"
	CacheInvalidateProductShipping CacheMessageType = "product.shipping.invalidate"

	CacheInvalidateUserAddress     CacheMessageType = "user.addresses.invalidate"
	CacheInvalidateUserPaymentCard CacheMessageType = "user.payment.cards.invalidate"
	CacheInvalidateCart            CacheMessageType = "cart.invalidate"
)

type CacheMessage struct {
	Type      CacheMessageType `json:"type"`
	Payload   string           `json:"payload"`
	Timestamp int64            `json:"timestamp"`
}

// PublishCacheMessage publishes a cache invalidation message to Redis pub/sub as JSON
func PublishCacheMessage(ctx context.Context, messageType CacheMessageType, payload string) error {
	cacheMessage := CacheMessage{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}

	messageJSON, err := json.Marshal(cacheMessage)
	if err != nil {
		log.Printf("Failed to marshal cache message: %v", err)
		return err
	}

	err = util.REDIS.Publish(ctx, CHANNEL_GLOBAL_CACHE, string(messageJSON)).Err()
	if err != nil {
		log.Printf("Failed to publish cache message: %v", err)
		return err
	}

	return nil
}
