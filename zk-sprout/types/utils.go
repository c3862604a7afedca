package types

import (
	crand "crypto/rand"
	"io"
)

// RandBytes reads n bytes from r, or from crypto/rand when r is nil.
func RandBytes(r io.Reader, n int) ([]byte, error) {
	if r == nil {
		r = crand.Reader
	}
	rbz := make([]byte, n)
	if _, err := io.ReadFull(r, rbz); err != nil {
		return nil, err
	}
	return rbz, nil
}

func RandKey(r io.Reader) ([KeySize]byte, error) {
	var ret [KeySize]byte
	bz, err := RandBytes(r, KeySize)
	if err != nil {
		return ret, err
	}
	copy(ret[:], bz)
	return ret, nil
}
