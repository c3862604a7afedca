package crypto

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	tedwards "github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/stretchr/testify/require"
)

func TestJubjubKeyGeneration(t *testing.T) {
	kg := NewJubjubKeyGenerator(nil)

	sk, err := kg.GenerateSpendingKey()
	require.NoError(t, err)
	apk, err := kg.DerivePublicKey(sk)
	require.NoError(t, err)

	// the compressed public key decodes to a point on the curve
	var pub tedwards.PointAffine
	_, err = pub.SetBytes(apk[:])
	require.NoError(t, err)
	require.True(t, pub.IsOnCurve(), "Generated public key is not on curve")

	fmt.Printf("Spending Key (hex): %x\n", sk)
	fmt.Printf("Public Key (compressed): %x\n", apk)

	// derivation is deterministic
	apk1, err := kg.DerivePublicKey(sk)
	require.NoError(t, err)
	require.Equal(t, apk, apk1)
}

func TestJubjubKeyDeterministicSource(t *testing.T) {
	kg0 := NewJubjubKeyGenerator(rand.New(rand.NewSource(3)))
	kg1 := NewJubjubKeyGenerator(rand.New(rand.NewSource(3)))

	sk0, err := kg0.GenerateSpendingKey()
	require.NoError(t, err)
	sk1, err := kg1.GenerateSpendingKey()
	require.NoError(t, err)
	require.Equal(t, sk0, sk1)

	sk2, err := kg0.GenerateSpendingKey()
	require.NoError(t, err)
	require.NotEqual(t, sk0, sk2)
}

func TestDerivePublicKeyRejectsInvalid(t *testing.T) {
	kg := NewJubjubKeyGenerator(nil)

	_, err := kg.DerivePublicKey([32]byte{})
	require.ErrorIs(t, err, ErrInvalidSpendingKey)

	curve := tedwards.GetEdwardsCurve()
	var sk [32]byte
	new(big.Int).Set(&curve.Order).FillBytes(sk[:])
	_, err = kg.DerivePublicKey(sk)
	require.ErrorIs(t, err, ErrInvalidSpendingKey)
}

func BenchmarkJubjubKeyGeneration(b *testing.B) {
	kg := NewJubjubKeyGenerator(nil)
	for i := 0; i < b.N; i++ {
		sk, err := kg.GenerateSpendingKey()
		require.NoError(b, err)
		_, err = kg.DerivePublicKey(sk)
		require.NoError(b, err)
	}
}
