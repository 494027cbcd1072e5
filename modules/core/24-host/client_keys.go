package host

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// KeyBridgeStorePrefix defines the KVStore key prefix under which every bridge
// module keeps its state.
var KeyBridgeStorePrefix = []byte("bridges")

const (
	KeyInitialized = "initialized"
	KeyFrozen      = "frozen"
	KeyGuardian    = "guardian"
)

// BridgeStorePath returns the path of the store owned by the given bridge module
// in the format "bridges/{moduleName}/".
func BridgeStorePath(moduleName string) string {
	return fmt.Sprintf("%s/%s/", KeyBridgeStorePrefix, moduleName)
}

// BridgeStoreKey returns the prefix of the store owned by the given bridge module.
func BridgeStoreKey(moduleName string) []byte {
	return []byte(BridgeStorePath(moduleName))
}

// ScalarKey returns the store key of a single-valued state variable.
func ScalarKey(name string) []byte {
	return []byte(name)
}

// MappingPath returns the path of an entry of the mapping called name in the
// format "{name}/{hex(key)}".
func MappingPath(name string, key []byte) string {
	return fmt.Sprintf("%s/%x", name, key)
}

// MappingKey returns the store key of an entry of the mapping called name.
func MappingKey(name string, key []byte) []byte {
	return []byte(MappingPath(name, key))
}

// Uint64MappingKey returns the key of a mapping entry indexed by a uint64,
// such as a block height or an authority set id.
func Uint64MappingKey(name string, key uint64) []byte {
	return MappingKey(name, binary.BigEndian.AppendUint64(nil, key))
}

// Uint256MappingKey returns the key of a mapping entry indexed by a uint256 nonce.
func Uint256MappingKey(name string, key *uint256.Int) []byte {
	bz := key.Bytes32()
	return MappingKey(name, bz[:])
}
