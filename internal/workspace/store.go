package workspace

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// KV is the durable single-record store behind the library. Implementations
// must survive restarts; everything else about them is opaque here.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LibraryKey is the fixed record key for the serialized library.
const LibraryKey = "library"

// Store owns the named-expression library and keeps it persisted. All
// persistence is best-effort: a failed write is logged and the in-memory
// mutation stands.
type Store struct {
	kv     KV
	lib    *Library
	logger *zap.Logger
}

// NewStore wraps kv. A nil kv gives a purely in-memory store.
func NewStore(kv KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, lib: NewLibrary(), logger: logger}
}

// Load reads the persisted library. A missing or unparsable record yields
// an empty library; neither is fatal.
func (s *Store) Load(ctx context.Context) {
	if s.kv == nil {
		return
	}
	raw, ok, err := s.kv.Get(ctx, LibraryKey)
	if err != nil {
		s.logger.Warn("library load failed, starting empty", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("library record unparsable, starting empty", zap.Error(err))
		return
	}
	s.lib = NewLibrary(entries...)
}

// Library exposes the live ordered library.
func (s *Store) Library() *Library {
	return s.lib
}

// Entries returns a copy of the library entries in insertion order.
func (s *Store) Entries() []Entry {
	return s.lib.Entries()
}

// Save upserts a trimmed name/body pair and persists the library. Empty
// name or body after trimming is a ValidationError and changes nothing.
func (s *Store) Save(ctx context.Context, name, body string) error {
	name = strings.TrimSpace(name)
	body = strings.TrimSpace(body)
	if name == "" {
		return ErrEmptyName
	}
	if body == "" {
		return ErrEmptyBody
	}
	s.lib.Set(name, body)
	s.persist(ctx)
	return nil
}

// Delete removes name if present. Deleting an absent name is a no-op.
func (s *Store) Delete(ctx context.Context, name string) {
	if s.lib.Delete(name) {
		s.persist(ctx)
	}
}

// persist serializes the whole library to the durable record. An empty
// library is never written, so a previously persisted library survives
// being deleted down to zero in memory.
func (s *Store) persist(ctx context.Context) {
	if s.kv == nil || s.lib.Len() == 0 {
		return
	}
	data, err := json.Marshal(s.lib.Entries())
	if err != nil {
		s.logger.Warn("library serialize failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, LibraryKey, string(data)); err != nil {
		s.logger.Warn("library persist failed", zap.Error(err))
	}
}
