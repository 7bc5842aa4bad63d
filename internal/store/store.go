// Package store implements the persisted key-value layer the rental data
// model lives in. Values are opaque JSON blobs addressed by fixed keys.
//
// Two scopes exist, mirroring the browser storage split:
//
//   - durable: survives restarts (SQLite-backed, see SQLiteStore)
//   - session: dies with the process (memory-backed, see MemoryStore)
//
// A missing key is a normal, representable state: Get returns (nil, nil),
// never an error.
package store

import "context"

// AtomicRunner is implemented by stores whose backend can scope a function
// to a transaction.
type AtomicRunner interface {
	RunAtomic(ctx context.Context, fn func(Store) error) error
}

// RunAtomic executes fn against s inside a transaction when the backend
// supports one, and plainly otherwise. Read-modify-write sequences (reread
// the collection, mutate, write it back) go through here so both halves
// land in the same step.
func RunAtomic(ctx context.Context, s Store, fn func(Store) error) error {
	if r, ok := s.(AtomicRunner); ok {
		return r.RunAtomic(ctx, fn)
	}
	return fn(s)
}

// Store is the minimal contract shared by both scopes.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// Fixed key names of the persisted collections. The names are part of the
// stored data format and must not change.
const (
	KeyUsers       = "rentalUsers"      // durable: the full user collection
	KeyCurrentUser = "currentUser"      // durable: redacted session user
	KeyLoggedIn    = "isLoggedIn"       // session: "true" while authenticated
	KeyUserID      = "userId"           // session: echo of the current user id
	KeyProperties  = "properties"       // durable: the property collection
	KeyViewed      = "viewedProperties" // durable: ids of viewed listings
	KeyMessages    = "userMessages"     // durable: inquiry messages
	KeyLastDraft   = "lastProperty"     // durable: unsubmitted listing draft
	KeyAlerts      = "rentalAlerts"     // durable: rental alert preferences
)
