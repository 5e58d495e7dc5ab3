package reporting

import (
	"sync"
	"time"
)

// fetchCache memoriza o resultado das consultas às views por alguns
// segundos, para o banco não responder a mesma pergunta duas vezes dentro
// de um ciclo de atualização. O conteúdo do relatório não muda com o cache
// ligado ou desligado, só o número de idas ao banco.
type fetchCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func newFetchCache(ttl time.Duration, now func() time.Time) *fetchCache {
	if now == nil {
		now = time.Now
	}

	return &fetchCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *fetchCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	return entry.value, true
}

func (c *fetchCache) put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}
