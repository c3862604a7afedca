package crypto

import (
	"errors"
	"io"
	"math/big"

	tedwards "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/kysee/zkcodec/zk-sprout/types"
)

var ErrInvalidSpendingKey = errors.New("invalid spending key")

// KeyGenerator produces spending keys and their address public keys.
type KeyGenerator interface {
	GenerateSpendingKey() ([types.KeySize]byte, error)
	DerivePublicKey(sk [types.KeySize]byte) ([types.KeySize]byte, error)
}

// JubjubKeyGenerator uses scalars of the bn254 twisted Edwards curve:
// apk = compress(sk * Base).
type JubjubKeyGenerator struct {
	rand io.Reader
}

// NewJubjubKeyGenerator uses crypto/rand when r is nil.
func NewJubjubKeyGenerator(r io.Reader) *JubjubKeyGenerator {
	return &JubjubKeyGenerator{rand: r}
}

func (kg *JubjubKeyGenerator) GenerateSpendingKey() ([types.KeySize]byte, error) {
	var sk [types.KeySize]byte
	curve := tedwards.GetEdwardsCurve()

	for {
		bz, err := types.RandBytes(kg.rand, types.KeySize)
		if err != nil {
			return sk, err
		}
		s := new(big.Int).SetBytes(bz)
		s.Mod(s, &curve.Order)
		if s.Sign() == 0 {
			continue
		}
		s.FillBytes(sk[:])
		return sk, nil
	}
}

func (kg *JubjubKeyGenerator) DerivePublicKey(sk [types.KeySize]byte) ([types.KeySize]byte, error) {
	var apk [types.KeySize]byte
	curve := tedwards.GetEdwardsCurve()

	s := new(big.Int).SetBytes(sk[:])
	if s.Sign() == 0 || s.Cmp(&curve.Order) >= 0 {
		return apk, ErrInvalidSpendingKey
	}

	var pub tedwards.PointAffine
	pub.ScalarMultiplication(&curve.Base, s)
	if !pub.IsOnCurve() {
		return apk, errors.New("derived public key is not on curve")
	}
	return pub.Bytes(), nil
}
