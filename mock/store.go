package mock

import (
	"context"

	"github.com/fwojciec/sqlkw"
)

var _ sqlkw.KeywordStore = (*KeywordStore)(nil)

// KeywordStore is a mock implementation of sqlkw.KeywordStore.
type KeywordStore struct {
	SaveFn   func(ctx context.Context, name string, data []byte) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *KeywordStore) Save(ctx context.Context, name string, data []byte) error {
	return s.SaveFn(ctx, name, data)
}

func (s *KeywordStore) Commit() error {
	return s.CommitFn()
}

func (s *KeywordStore) Abort() error {
	return s.AbortFn()
}
