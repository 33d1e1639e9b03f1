package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/devzarghami/translate/pkg/i18n"
)

// Redis reads a JSON translation document stored at key.
func Redis(client redis.UniversalClient, key string) (i18n.Source, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	return i18n.SourceFunc(func(ctx context.Context) (i18n.Tree, error) {
		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			return nil, fmt.Errorf("source: reading redis key %q: %w", key, err)
		}
		return Decode(data, FormatJSON)
	}), nil
}

// Watch subscribes to a pub/sub channel carrying translation invalidations
// and calls reload for every message. The message payload is interpreted as
// a language code; an empty payload or "*" is delivered as the empty
// Language, meaning "all languages". Reloads feed the store through
// Store.Refresh, so a live invalidation drives the reactive projection
// without touching the active language.
//
// The returned stop function closes the subscription and waits for the
// receive loop to drain.
func Watch(ctx context.Context, client redis.UniversalClient, channel string, reload func(ctx context.Context, lang i18n.Language)) (stop func(), err error) {
	if client == nil {
		return nil, ErrNilClient
	}

	pubsub := client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("source: subscribing to %q: %w", channel, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range pubsub.Channel() {
			reload(ctx, invalidationLanguage(msg.Payload))
		}
	}()

	return func() {
		_ = pubsub.Close()
		<-done
	}, nil
}

// invalidationLanguage maps a pub/sub payload to the language it
// invalidates. "*" and blank payloads mean all languages and map to the
// empty Language.
func invalidationLanguage(payload string) i18n.Language {
	payload = strings.TrimSpace(payload)
	if payload == "*" {
		return ""
	}
	return i18n.Language(payload)
}
