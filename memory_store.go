package common

import (
	"context"

	"gorm.io/gorm"
)

// MemoryAssetInfoStore is an in-memory AssetInfoStore for tests and
// examples. It reports misses the way the gorm-backed stores do, so the
// registry's not-found translation is exercised either way. Contract
// invocations are strictly sequential, so no locking is needed.
type MemoryAssetInfoStore struct {
	entries map[string]AssetInfo
}

func NewMemoryAssetInfoStore() *MemoryAssetInfoStore {
	return &MemoryAssetInfoStore{entries: make(map[string]AssetInfo)}
}

func (s *MemoryAssetInfoStore) GetAssetInfo(ctx context.Context, key string) (*AssetInfo, error) {
	info, ok := s.entries[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return info.Clone(), nil
}

func (s *MemoryAssetInfoStore) PutAssetInfo(ctx context.Context, key string, info *AssetInfo) error {
	s.entries[key] = *info.Clone()
	return nil
}

func (s *MemoryAssetInfoStore) ListAssetInfos(ctx context.Context) ([]*AssetInfo, error) {
	infos := make([]*AssetInfo, 0, len(s.entries))
	for _, info := range s.entries {
		infos = append(infos, info.Clone())
	}
	return infos, nil
}
