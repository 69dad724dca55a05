package infrastructure

import (
	"sync"
	"time"
)

// CacheEntry représente une entrée de cache avec expiration
type CacheEntry struct {
	Value      interface{}
	Expiration time.Time
}

// IsExpired vérifie si l'entrée est expirée
func (e CacheEntry) IsExpired() bool {
	return time.Now().After(e.Expiration)
}

// Cache interface pour l'abstraction du cache
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Clear()
	Has(key string) bool
}

// InMemoryCache implémentation en mémoire du cache avec TTL
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]CacheEntry
}

// NewInMemoryCache crée un nouveau cache en mémoire avec nettoyage périodique
func NewInMemoryCache() *InMemoryCache {
	cache := &InMemoryCache{
		entries: make(map[string]CacheEntry),
	}
	go cache.cleanupExpired()
	return cache
}

// Get récupère une valeur du cache
func (c *InMemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || entry.IsExpired() {
		return nil, false
	}

	return entry.Value, true
}

// Set ajoute ou met à jour une valeur dans le cache
func (c *InMemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = CacheEntry{
		Value:      value,
		Expiration: time.Now().Add(ttl),
	}
}

// Delete supprime une entrée du cache
func (c *InMemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear vide complètement le cache
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]CacheEntry)
}

// Has vérifie si une clé existe et n'est pas expirée
func (c *InMemoryCache) Has(key string) bool {
	_, exists := c.Get(key)
	return exists
}

// cleanupExpired supprime périodiquement les entrées expirées
func (c *InMemoryCache) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		for key, entry := range c.entries {
			if entry.IsExpired() {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
