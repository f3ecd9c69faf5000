package storage

// Store persists the collection document. Load returns (nil, nil) when no
// document exists yet.
type Store interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
	Close() error
}
