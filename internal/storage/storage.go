package storage

// Storage abstracts the client-local persistence boundary the cart store
// writes through. Get reports whether a value exists under the key; Set
// overwrites the previous value in full.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
