package utils

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"golang.org/x/crypto/blake2b"
)

// HashFunc is the one-way function used for binding hashes.
type HashFunc func(in []byte) [32]byte

const (
	HashBlake2b = "blake2b"
	HashMiMC    = "mimc"
)

func DefaultHashFunc() HashFunc {
	return Blake2bHash
}

// HashFuncByName returns nil for an unknown name.
func HashFuncByName(name string) HashFunc {
	switch name {
	case "", HashBlake2b:
		return Blake2bHash
	case HashMiMC:
		return MiMCHash
	}
	return nil
}

func Blake2bHash(in []byte) [32]byte {
	return blake2b.Sum256(in)
}

// MiMCHash absorbs in as 31 byte chunks, each below the field modulus, and
// then its length, so distinct inputs never map to the same element list.
func MiMCHash(in []byte) [32]byte {
	hasher := mimc.NewMiMC()
	blockSize := hasher.BlockSize()
	chunkSize := blockSize - 1

	block := make([]byte, blockSize)
	for i := 0; i < len(in); i += chunkSize {
		end := min(i+chunkSize, len(in))
		clear(block)
		copy(block[blockSize-(end-i):], in[i:end])
		if _, err := hasher.Write(block); err != nil {
			panic(err)
		}
	}

	clear(block)
	binary.BigEndian.PutUint64(block[blockSize-8:], uint64(len(in)))
	if _, err := hasher.Write(block); err != nil {
		panic(err)
	}

	var ret [32]byte
	copy(ret[:], hasher.Sum(nil))
	return ret
}
