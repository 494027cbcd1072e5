package seqtesting

import (
	dbm "github.com/cosmos/cosmos-db"

	"cosmossdk.io/store/dbadapter"
	storetypes "cosmossdk.io/store/types"
)

// NewKVStore returns an empty in-memory KVStore standing in for the host state.
func NewKVStore() storetypes.KVStore {
	return dbadapter.Store{DB: dbm.NewMemDB()}
}

// Snapshot returns a copy of every key/value pair in the store, keyed by the
// string form of the key.
func Snapshot(store storetypes.KVStore) map[string][]byte {
	snapshot := make(map[string][]byte)

	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		snapshot[string(iterator.Key())] = append([]byte(nil), iterator.Value()...)
	}
	return snapshot
}
