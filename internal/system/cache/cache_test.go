package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("contact:anna@example.com", "value")

	value, found := c.Get("contact:anna@example.com")
	assert.True(t, found)
	assert.Equal(t, "value", value)
}

func TestCache_MissingKey(t *testing.T) {
	c := NewCache(time.Minute)

	_, found := c.Get("contact:ghost@x.de")
	assert.False(t, found)
}

func TestCache_ExpiredEntryNotReturned(t *testing.T) {
	c := NewCache(-time.Second)
	c.Set("contact:anna@example.com", "value")

	_, found := c.Get("contact:anna@example.com")
	assert.False(t, found)
}

func TestCache_Delete(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("contact:anna@example.com", "value")
	c.Delete("contact:anna@example.com")

	_, found := c.Get("contact:anna@example.com")
	assert.False(t, found)
}
