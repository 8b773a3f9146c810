package hashmap

import "hash/maphash"

// Ready-made Hashers for common key types. The integer hashers are identity
// casts (the map's avalanche mixer does the scattering); the string and byte
// hashers defer to hash/maphash. All maps in a process share one maphash seed
// so equal keys hash equally across map instances.

var seed = maphash.MakeSeed()

// HashString hashes a string key.
func HashString(s string) uint64 { return maphash.String(seed, s) }

// HashBytes hashes a byte-slice key. Note that []byte itself is not
// comparable and cannot be a map key; this helper serves wrapper types that
// expose their bytes.
func HashBytes(b []byte) uint64 { return maphash.Bytes(seed, b) }

// HashInt hashes an int key.
func HashInt(i int) uint64 { return uint64(i) }

// HashInt64 hashes an int64 key.
func HashInt64(i int64) uint64 { return uint64(i) }

// HashUint64 hashes a uint64 key.
func HashUint64(u uint64) uint64 { return u }
