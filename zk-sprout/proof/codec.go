// Package proof converts the 576 byte zk-SNARK proof blob to and from its
// structured form.
//
// Wire layout, every coordinate 32 bytes big-endian:
//
//	A.x A.y | A'.x A'.y | B.x1 B.x2 B.y1 B.y2 | B'.x B'.y |
//	C.x C.y | C'.x C'.y | K.x K.y | H.x H.y
package proof

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/kysee/zkcodec/zk-sprout/field"
	"github.com/kysee/zkcodec/zk-sprout/types"
)

var ErrInvalidProofLength = errors.New("invalid proof length")

var layout = field.Sequential(types.CoordSize, types.ProofSize/types.CoordSize)

// Decode returns false when bz is not exactly types.ProofSize bytes.
func Decode(bz []byte) (*types.Proof, bool) {
	if len(bz) == 0 || len(bz) != types.ProofSize {
		return nil, false
	}
	parts, err := field.Extract(bz, layout...)
	if err != nil {
		return nil, false
	}

	p := new(types.Proof)
	for i, c := range p.Coords() {
		copy(c[:], parts[i])
	}
	return p, true
}

// DecodeStrict is Decode with the rejected length reported as an error.
func DecodeStrict(bz []byte) (*types.Proof, error) {
	p, ok := Decode(bz)
	if !ok {
		return nil, fmt.Errorf("%w: expected(%d), got(%d)", ErrInvalidProofLength, types.ProofSize, len(bz))
	}
	return p, nil
}

// Encode returns the types.ProofSize byte form of p.
func Encode(p *types.Proof) []byte {
	coords := p.Coords()
	fields := make([][]byte, len(coords))
	for i, c := range coords {
		fields[i] = c[:]
	}
	return field.Concat(fields...)
}

func ParseHex(s string) (*types.Proof, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return DecodeStrict(bz)
}
