package common

import (
	"strings"

	"golang.org/x/exp/slices"
)

// AssetMap associates a value with each AssetIdentity. Iteration order is
// deterministic: lexical on the canonical string, since identities
// themselves define no order.
type AssetMap[T any] struct {
	entries map[string]assetMapEntry[T]
}

type assetMapEntry[T any] struct {
	identity AssetIdentity
	value    T
}

func NewAssetMap[T any]() *AssetMap[T] {
	return &AssetMap[T]{entries: make(map[string]assetMapEntry[T])}
}

func (m *AssetMap[T]) Len() int {
	return len(m.entries)
}

func (m *AssetMap[T]) Get(id AssetIdentity) (T, bool) {
	e, ok := m.entries[id.CanonicalString()]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (m *AssetMap[T]) Set(id AssetIdentity, value T) {
	m.entries[id.CanonicalString()] = assetMapEntry[T]{identity: id, value: value}
}

func (m *AssetMap[T]) Delete(id AssetIdentity) {
	delete(m.entries, id.CanonicalString())
}

// Keys returns the identities in canonical lexical order.
func (m *AssetMap[T]) Keys() []AssetIdentity {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, strings.Compare)
	ids := make([]AssetIdentity, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, m.entries[k].identity)
	}
	return ids
}

// Range visits entries in canonical lexical order, stopping at the first
// error.
func (m *AssetMap[T]) Range(fn func(AssetIdentity, T) error) error {
	for _, id := range m.Keys() {
		if err := fn(id, m.entries[id.CanonicalString()].value); err != nil {
			return err
		}
	}
	return nil
}

// AccumulateAsset folds an asset into the running total held for its
// identity.
func AccumulateAsset(m *AssetMap[ScaledAmount], a Asset) error {
	total, ok := m.Get(a.Identity)
	if !ok {
		m.Set(a.Identity, a.Amount)
		return nil
	}
	sum, err := total.Add(a.Amount)
	if err != nil {
		return err
	}
	m.Set(a.Identity, sum)
	return nil
}
