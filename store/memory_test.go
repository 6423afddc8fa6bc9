package store

import (
	"context"
	"errors"
	"testing"

	"github.com/voguesphere/stylekit/core"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if _, err := ms.Get(ctx, "missing"); !errors.Is(err, core.ErrStoreNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrStoreNotFound", err)
	}

	if err := ms.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := ms.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("Get(k) = %q, %v; want v, nil", got, err)
	}

	if err := ms.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := ms.Get(ctx, "k"); !errors.Is(err, core.ErrStoreNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrStoreNotFound", err)
	}
}

func TestMemoryStore_Batch(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	kvs := map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}
	if err := ms.BatchSet(ctx, kvs); err != nil {
		t.Fatalf("BatchSet() error = %v", err)
	}

	got, err := ms.BatchGet(ctx, []string{"a", "b", "missing"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(got) != 2 || string(got["a"]) != "1" || string(got["b"]) != "2" {
		t.Errorf("BatchGet() = %v", got)
	}
}

func TestMemoryStore_Hash(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if _, err := ms.HGet(ctx, "quiz:responses", "u1"); !errors.Is(err, core.ErrStoreNotFound) {
		t.Errorf("HGet(missing field) error = %v, want ErrStoreNotFound", err)
	}

	if err := ms.HSet(ctx, "quiz:responses", "u1", []byte(`[]`)); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}
	if err := ms.HSet(ctx, "quiz:responses", "u2", []byte(`[1]`)); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}

	got, err := ms.HGet(ctx, "quiz:responses", "u1")
	if err != nil || string(got) != `[]` {
		t.Errorf("HGet(u1) = %q, %v", got, err)
	}

	all, err := ms.HGetAll(ctx, "quiz:responses")
	if err != nil {
		t.Fatalf("HGetAll() error = %v", err)
	}
	if len(all) != 2 || string(all["u2"]) != `[1]` {
		t.Errorf("HGetAll() = %v", all)
	}
}

func TestMemoryStore_TTLExpired(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	// ttl 为负数秒在 Set 里被忽略，这里直接写入一个已过期条目
	if err := ms.Set(ctx, "eternal", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := ms.Get(ctx, "eternal"); err != nil {
		t.Errorf("ttl=0 should mean no expiry, got %v", err)
	}
}
