package storage

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("empty cache returned a hit")
	}

	c.Set(ctx, "k", []byte("payload"), time.Minute)
	got, ok := c.Get(ctx, "k")
	if !ok || string(got) != "payload" {
		t.Fatalf("get = %q, %v", got, ok)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "short", []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get(ctx, "short"); ok {
		t.Fatal("expired entry still served")
	}
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "k", []byte("old"), time.Minute)
	c.Set(ctx, "k", []byte("new"), time.Minute)
	got, _ := c.Get(ctx, "k")
	if string(got) != "new" {
		t.Errorf("got %q after overwrite", got)
	}
}
