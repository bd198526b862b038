package storage

// Backend is a minimal key-value store with bucket support. Values are raw
// []byte; callers choose their own serialization.
type Backend interface {
	// CreateBucket creates a bucket if it does not already exist.
	CreateBucket(name []byte) error

	// Put stores a key-value pair in a bucket.
	Put(bucket, key, value []byte) error

	// Get retrieves a value, returning nil (not an error) for a missing key.
	Get(bucket, key []byte) ([]byte, error)

	// Delete removes a key from a bucket.
	Delete(bucket, key []byte) error

	// ForEach iterates over all key-value pairs in a bucket.
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	// Close releases the backend.
	Close() error
}
