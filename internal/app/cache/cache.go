package cache

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type item struct {
	value    interface{}
	storedAt time.Time
}

// TTLCache - кэш с временем жизни и ограничением размера.
// Используется для редко меняющихся данных (прайс-лист).
// Создается в точке сборки приложения и передается явно, не глобально.
type TTLCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	items   map[string]item
	order   []string // порядок вставки для вытеснения старейших
	hits    uint64
	misses  uint64
}

func New(ttl time.Duration, maxSize int) *TTLCache {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &TTLCache{
		ttl:     ttl,
		maxSize: maxSize,
		items:   make(map[string]item),
	}
}

// Get возвращает значение если оно есть и не протухло
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if ok {
		if time.Since(it.storedAt) < c.ttl {
			c.hits++
			logrus.Debugf("cache HIT: %s", key)
			return it.value, true
		}
		// Протухший элемент удаляем сразу
		c.removeLocked(key)
		logrus.Debugf("cache EXPIRED: %s", key)
	}

	c.misses++
	logrus.Debugf("cache MISS: %s", key)
	return nil, false
}

func (c *TTLCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; exists {
		c.removeLocked(key)
	}
	if len(c.items) >= c.maxSize {
		c.evictOldestLocked()
	}

	c.items[key] = item{value: value, storedAt: time.Now()}
	c.order = append(c.order, key)
}

func (c *TTLCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return false
	}
	c.removeLocked(key)
	return true
}

func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]item)
	c.order = nil
	c.hits = 0
	c.misses = 0
}

// Stats возвращает счетчики попаданий и промахов
func (c *TTLCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *TTLCache) removeLocked(key string) {
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Вытеснение самого старого по порядку вставки
func (c *TTLCache) evictOldestLocked() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.items, oldest)
	logrus.Debugf("cache EVICT: %s", oldest)
}
