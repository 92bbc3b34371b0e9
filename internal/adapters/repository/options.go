package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithHistoryLimit bounds the history list. Oldest entries are evicted once
// the limit is exceeded. Values below 1 keep the default.
func WithHistoryLimit(limit int) Option {
	return func(s *MemStore) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}
