package state

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/cachekv"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	seqerrors "github.com/AnomalyFi/seq-wasm/internal/errors"
	host "github.com/AnomalyFi/seq-wasm/modules/core/24-host"
)

var trueValue = []byte{0x01}

// Store gives typed access to the key/value state owned by a bridge module.
// Values are stored in their fixed-width big-endian form; reading a key that
// was never written returns the zero value of the requested type.
type Store struct {
	parent storetypes.KVStore
}

// NewStore constructor
func NewStore(s storetypes.KVStore) Store {
	if s == nil {
		panic(errors.New("store must not be nil"))
	}
	return Store{parent: s}
}

// NewBridgeStore returns a Store scoped to the prefix owned by moduleName.
func NewBridgeStore(s storetypes.KVStore, moduleName string) Store {
	return NewStore(prefix.NewStore(s, host.BridgeStoreKey(moduleName)))
}

// KVStore returns the underlying store.
func (s Store) KVStore() storetypes.KVStore {
	return s.parent
}

func (s Store) Has(key []byte) bool {
	return s.parent.Has(key)
}

func (s Store) GetBool(key []byte) bool {
	bz := s.parent.Get(key)
	return len(bz) == 1 && bz[0] == trueValue[0]
}

// SetBool stores true as a single 0x01 byte and deletes the key for false.
func (s Store) SetBool(key []byte, value bool) {
	if !value {
		s.parent.Delete(key)
		return
	}
	s.parent.Set(key, trueValue)
}

func (s Store) GetUint64(key []byte) uint64 {
	bz := s.parent.Get(key)
	if len(bz) == 0 {
		return 0
	}
	if len(bz) != 8 {
		panic(fmt.Errorf("invalid uint64 value length %d for key %q", len(bz), key))
	}
	return binary.BigEndian.Uint64(bz)
}

func (s Store) SetUint64(key []byte, value uint64) {
	s.parent.Set(key, binary.BigEndian.AppendUint64(nil, value))
}

func (s Store) GetUint256(key []byte) *uint256.Int {
	bz := s.parent.Get(key)
	if len(bz) == 0 {
		return new(uint256.Int)
	}
	if len(bz) != 32 {
		panic(fmt.Errorf("invalid uint256 value length %d for key %q", len(bz), key))
	}
	return new(uint256.Int).SetBytes32(bz)
}

func (s Store) SetUint256(key []byte, value *uint256.Int) {
	bz := value.Bytes32()
	s.parent.Set(key, bz[:])
}

// GetBytes32 returns the digest stored under key, or the zero digest if none is.
func (s Store) GetBytes32(key []byte) [32]byte {
	var digest [32]byte
	bz := s.parent.Get(key)
	if len(bz) == 0 {
		return digest
	}
	if len(bz) != 32 {
		panic(fmt.Errorf("invalid bytes32 value length %d for key %q", len(bz), key))
	}
	copy(digest[:], bz)
	return digest
}

func (s Store) SetBytes32(key []byte, value [32]byte) {
	s.parent.Set(key, value[:])
}

// GetBytes returns a copy of the dynamic value stored under key.
func (s Store) GetBytes(key []byte) []byte {
	bz := s.parent.Get(key)
	if bz == nil {
		return nil
	}
	return append([]byte(nil), bz...)
}

// SetBytes stores a copy of value. Empty values delete the key.
func (s Store) SetBytes(key, value []byte) {
	if len(value) == 0 {
		s.parent.Delete(key)
		return
	}
	s.parent.Set(key, append([]byte(nil), value...))
}

// Apply runs fn against a cache-wrapped view of s and writes the cached
// changes through to s only if fn returns no error. A failed or panicking fn
// leaves s untouched; a panic is returned as an ErrLogic error.
func Apply(s storetypes.KVStore, fn func(cache storetypes.KVStore) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorsmod.Wrapf(seqerrors.ErrLogic, "recovered from panic: %v", r)
		}
	}()

	cache := cachekv.NewStore(s)
	if err := fn(cache); err != nil {
		return err
	}
	cache.Write()
	return nil
}

// Query runs fn against a cache-wrapped view of s and discards every write fn
// makes. A panic is returned as an ErrLogic error.
func Query(s storetypes.KVStore, fn func(cache storetypes.KVStore) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorsmod.Wrapf(seqerrors.ErrLogic, "recovered from panic: %v", r)
		}
	}()

	return fn(cachekv.NewStore(s))
}
