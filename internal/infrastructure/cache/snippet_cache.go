// Package cache provides caching infrastructure with PostgreSQL LISTEN/NOTIFY support.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"skyfolio/internal/domain/content"
	"skyfolio/pkg/logger"
)

// notifyChannel is the channel editors NOTIFY on after changing
// content_snippets. Payload is the owner id, or empty to flush everything.
const notifyChannel = "content_snippets_changed"

// SnippetCache is a read-through cache in front of a content.SnippetStore.
// Snippets are shared across sections of a page, so the same id is often
// requested many times per request burst; entries are invalidated via
// PostgreSQL LISTEN/NOTIFY instead of TTL polling.
type SnippetCache struct {
	pool  *pgxpool.Pool
	store content.SnippetStore

	mu       sync.RWMutex
	snippets map[string]*content.Snippet // ownerID + "/" + snippetID

	// Lifecycle
	lifecycleMu sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	started     bool
}

// NewSnippetCache creates a cache over store. The pool is used only for
// the LISTEN connection; callers that never Start the cache may pass nil.
func NewSnippetCache(pool *pgxpool.Pool, store content.SnippetStore) *SnippetCache {
	return &SnippetCache{
		pool:     pool,
		store:    store,
		snippets: make(map[string]*content.Snippet),
	}
}

// GetSnippet implements content.SnippetStore. Only successful lookups are
// cached; misses and store errors always go to the underlying store.
func (c *SnippetCache) GetSnippet(ctx context.Context, ownerID, snippetID string) (*content.Snippet, error) {
	key := ownerID + "/" + snippetID

	c.mu.RLock()
	cached, ok := c.snippets[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	snippet, err := c.store.GetSnippet(ctx, ownerID, snippetID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.snippets[key] = snippet
	c.mu.Unlock()
	return snippet, nil
}

// Start begins listening for NOTIFY events.
func (c *SnippetCache) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c.lifecycleMu.Lock()
	if c.started {
		c.lifecycleMu.Unlock()
		return nil
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.started = true
	c.lifecycleMu.Unlock()

	c.wg.Add(1)
	go c.listenLoop()
	logger.Info(c.ctx, "snippet cache started")
	return nil
}

// Stop gracefully stops the cache listener.
func (c *SnippetCache) Stop() {
	c.lifecycleMu.Lock()
	if !c.started {
		c.lifecycleMu.Unlock()
		return
	}
	cancel := c.cancel
	c.started = false
	c.cancel = nil
	c.lifecycleMu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
	logger.Info(context.Background(), "snippet cache stopped")
}

// listenLoop listens for PostgreSQL NOTIFY events.
func (c *SnippetCache) listenLoop() {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		// Acquire dedicated connection for LISTEN
		conn, err := c.pool.Acquire(c.ctx)
		if err != nil {
			logger.Error(c.ctx, "failed to acquire connection for LISTEN", "error", err)
			time.Sleep(time.Second)
			continue
		}

		_, err = conn.Exec(c.ctx, "LISTEN "+notifyChannel+";")
		if err != nil {
			logger.Error(c.ctx, "failed to LISTEN", "error", err)
			conn.Release()
			time.Sleep(time.Second)
			continue
		}

		logger.Info(c.ctx, "listening for snippet change notifications", "channel", notifyChannel)

		c.waitForNotifications(conn)
		conn.Release()
	}
}

// waitForNotifications blocks waiting for NOTIFY events.
func (c *SnippetCache) waitForNotifications(conn *pgxpool.Conn) {
	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		// Wait for notification with timeout for graceful shutdown
		ctx, cancel := context.WithTimeout(c.ctx, 30*time.Second)
		notification, err := conn.Conn().WaitForNotification(ctx)
		cancel()

		if err != nil {
			if c.ctx.Err() != nil {
				return // Shutting down
			}
			// Timeout is expected, continue listening
			continue
		}

		logger.Debug(c.ctx, "received notification",
			"channel", notification.Channel,
			"payload", notification.Payload)

		c.Invalidate(notification.Payload)
	}
}

// Invalidate drops cached snippets for an owner. An empty payload flushes
// the whole cache.
func (c *SnippetCache) Invalidate(payload string) {
	ownerID := strings.TrimSpace(payload)

	c.mu.Lock()
	defer c.mu.Unlock()

	if ownerID == "" {
		c.snippets = make(map[string]*content.Snippet)
		return
	}

	prefix := ownerID + "/"
	for key := range c.snippets {
		if strings.HasPrefix(key, prefix) {
			delete(c.snippets, key)
		}
	}
}

// Len returns the number of cached snippets.
func (c *SnippetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.snippets)
}
