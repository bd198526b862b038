package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

// backendTestSuite runs the same suite against any Backend implementation.
func backendTestSuite(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("CreateBucket", func(t *testing.T) {
		backend := newBackend(t)
		defer backend.Close()

		if err := backend.CreateBucket([]byte("runs")); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}

		// Idempotent
		if err := backend.CreateBucket([]byte("runs")); err != nil {
			t.Errorf("CreateBucket should be idempotent: %v", err)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := newBackend(t)
		defer backend.Close()

		backend.CreateBucket([]byte("runs"))

		key := []byte("run-1")
		value := []byte(`{"seed":42}`)
		if err := backend.Put([]byte("runs"), key, value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := backend.Get([]byte("runs"), key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		// Non-existent key returns nil without error
		got, err = backend.Get([]byte("runs"), []byte("missing"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for a missing key, got %s", got)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := newBackend(t)
		defer backend.Close()

		if err := backend.Put([]byte("nope"), []byte("k"), []byte("v")); err == nil {
			t.Error("Put into a missing bucket should fail")
		}
		if _, err := backend.Get([]byte("nope"), []byte("k")); err == nil {
			t.Error("Get from a missing bucket should fail")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend := newBackend(t)
		defer backend.Close()

		backend.CreateBucket([]byte("runs"))
		backend.Put([]byte("runs"), []byte("run-1"), []byte("v"))

		if err := backend.Delete([]byte("runs"), []byte("run-1")); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		got, _ := backend.Get([]byte("runs"), []byte("run-1"))
		if got != nil {
			t.Error("key should not exist after deletion")
		}
	})

	t.Run("ForEach", func(t *testing.T) {
		backend := newBackend(t)
		defer backend.Close()

		backend.CreateBucket([]byte("runs"))
		backend.Put([]byte("runs"), []byte("a"), []byte("1"))
		backend.Put([]byte("runs"), []byte("b"), []byte("2"))

		seen := map[string]string{}
		err := backend.ForEach([]byte("runs"), func(k, v []byte) error {
			seen[string(k)] = string(v)
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}
		if len(seen) != 2 || seen["a"] != "1" || seen["b"] != "2" {
			t.Errorf("ForEach saw %v, want a=1 b=2", seen)
		}
	})
}

func TestMemoryBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T) Backend {
		return NewMemoryBackend()
	})
}

func TestBboltBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T) Backend {
		backend, err := NewBboltBackend(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("failed to create bbolt backend: %v", err)
		}
		return backend
	})
}
