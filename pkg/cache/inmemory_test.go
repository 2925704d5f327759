package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetFromCache(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("status", "up", time.Minute)
	c.Set("count", 3, time.Minute)

	tests := []struct {
		name      string
		key       string
		wantValue string
		wantFound bool
	}{
		{name: "typed hit", key: "status", wantValue: "up", wantFound: true},
		{name: "wrong type", key: "count", wantValue: "", wantFound: false},
		{name: "miss", key: "missing", wantValue: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := GetFromCache[string](c, tt.key)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestCache_Expiration(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("short", "up", time.Millisecond)
	c.Set("long", "up", time.Minute)

	time.Sleep(5 * time.Millisecond)

	_, found := c.Get("short")
	assert.False(t, found)
	_, found = c.Get("long")
	assert.True(t, found)
}
