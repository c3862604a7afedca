// Package hsig computes the binding hash (hSig) of a shielded transfer and
// the byte string the joinsplit signature is made over.
package hsig

import (
	"errors"
	"fmt"

	"github.com/kysee/zkcodec/utils"
	"github.com/kysee/zkcodec/zk-sprout/field"
	"github.com/kysee/zkcodec/zk-sprout/types"
)

// BindingFields are the contract fields a proof is bound to.
type BindingFields interface {
	GetRandomSeed() []byte
	GetNf1() []byte
	GetNf2() []byte
	GetPksig() []byte
}

const FieldWidth = 32

var ErrFieldWidth = errors.New("binding field has wrong width")

// CheckFieldWidths reports whether every binding field is FieldWidth bytes.
// The hash input is a plain concatenation, so only fixed widths keep the
// field boundaries unambiguous.
func CheckFieldWidths(f BindingFields) error {
	fields := []struct {
		name string
		bz   []byte
	}{
		{"random_seed", f.GetRandomSeed()},
		{"nf1", f.GetNf1()},
		{"nf2", f.GetNf2()},
		{"pksig", f.GetPksig()},
	}
	for _, fd := range fields {
		if len(fd.bz) != FieldWidth {
			return fmt.Errorf("%w: %s is %d bytes", ErrFieldWidth, fd.name, len(fd.bz))
		}
	}
	return nil
}

// ComputeHSig returns h(randomSeed || nf1 || nf2 || pksig).
// A nil h means utils.DefaultHashFunc.
func ComputeHSig(f BindingFields, h utils.HashFunc) [32]byte {
	if h == nil {
		h = utils.DefaultHashFunc()
	}
	return h(field.Concat(f.GetRandomSeed(), f.GetNf1(), f.GetNf2(), f.GetPksig()))
}

// ComputeSignInput returns the encoding of a copy of tc whose random seed is
// cleared and whose pksig is replaced by hSig. tc is left untouched.
func ComputeSignInput(tc *types.TransferContract, h utils.HashFunc) ([]byte, error) {
	hSig := ComputeHSig(tc, h)

	signed := tc.Clone()
	signed.RandomSeed = []byte{}
	signed.Pksig = hSig[:]
	return signed.Bytes()
}
