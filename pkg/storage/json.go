package storage

import (
	"encoding/json"
	"fmt"
)

// JSONStore wraps a Backend with JSON encode/decode convenience methods.
type JSONStore struct {
	backend Backend
}

// NewJSONStore creates a JSON store wrapper around a backend.
func NewJSONStore(backend Backend) *JSONStore {
	return &JSONStore{backend: backend}
}

// Backend returns the underlying backend.
func (j *JSONStore) Backend() Backend {
	return j.backend
}

// PutJSON stores a JSON-encoded value in a bucket.
func (j *JSONStore) PutJSON(bucket, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return j.backend.Put(bucket, key, data)
}

// GetJSON retrieves and decodes a value from a bucket. It reports whether
// the key existed; a missing key is not an error and leaves v untouched.
func (j *JSONStore) GetJSON(bucket, key []byte, v interface{}) (bool, error) {
	data, err := j.backend.Get(bucket, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return true, nil
}

// ForEach iterates over the raw key-value pairs in a bucket; callers decode
// values themselves.
func (j *JSONStore) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	return j.backend.ForEach(bucket, fn)
}

// Close closes the underlying backend.
func (j *JSONStore) Close() error {
	return j.backend.Close()
}
