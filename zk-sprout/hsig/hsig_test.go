package hsig

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/kysee/zkcodec/utils"
	"github.com/kysee/zkcodec/zk-sprout/types"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func newContract(t *testing.T, seed int64) *types.TransferContract {
	r := rand.New(rand.NewSource(seed))
	rb := func(n int) []byte {
		bz, err := types.RandBytes(r, n)
		require.NoError(t, err)
		return bz
	}
	return &types.TransferContract{
		OwnerAddress: rb(21),
		ToAddress:    rb(21),
		VFromPub:     1000,
		Rt:           rb(32),
		Nf1:          rb(32),
		Nf2:          rb(32),
		Cm1:          rb(32),
		Cm2:          rb(32),
		Pksig:        rb(32),
		RandomSeed:   rb(32),
		Epk:          rb(32),
		H1:           rb(32),
		H2:           rb(32),
		C1:           rb(64),
		C2:           rb(64),
		Proof:        rb(types.ProofSize),
	}
}

func TestComputeHSig(t *testing.T) {
	tc := newContract(t, 1)
	require.NoError(t, CheckFieldWidths(tc))

	h0 := ComputeHSig(tc, nil)
	require.Equal(t, h0, ComputeHSig(tc, nil))
	require.Equal(t, h0, ComputeHSig(tc, utils.Blake2bHash))

	var msg []byte
	msg = append(msg, tc.RandomSeed...)
	msg = append(msg, tc.Nf1...)
	msg = append(msg, tc.Nf2...)
	msg = append(msg, tc.Pksig...)
	require.Equal(t, blake2b.Sum256(msg), h0)

	require.NotEqual(t, h0, ComputeHSig(tc, utils.MiMCHash))
}

func TestComputeHSigEachField(t *testing.T) {
	tc := newContract(t, 2)
	h0 := ComputeHSig(tc, nil)

	mutators := map[string]func(c *types.TransferContract){
		"random_seed": func(c *types.TransferContract) { c.RandomSeed[0] ^= 0x01 },
		"nf1":         func(c *types.TransferContract) { c.Nf1[31] ^= 0x01 },
		"nf2":         func(c *types.TransferContract) { c.Nf2[0] ^= 0x01 },
		"pksig":       func(c *types.TransferContract) { c.Pksig[15] ^= 0x01 },
	}
	for name, mutate := range mutators {
		c := tc.Clone()
		mutate(c)
		require.NotEqual(t, h0, ComputeHSig(c, nil), name)
	}

	// fields outside the binding set do not change hSig
	c := tc.Clone()
	c.Cm1[0] ^= 0x01
	c.Proof = nil
	require.Equal(t, h0, ComputeHSig(c, nil))
}

func TestComputeHSigFieldBoundary(t *testing.T) {
	tc := newContract(t, 3)
	tc.Nf1[31], tc.Nf2[0] = 0x11, 0x22
	h0 := ComputeHSig(tc, nil)

	// moving a byte across the nf1/nf2 boundary at fixed widths
	c := tc.Clone()
	c.Nf1[31], c.Nf2[0] = c.Nf2[0], c.Nf1[31]
	require.NoError(t, CheckFieldWidths(c))
	require.NotEqual(t, h0, ComputeHSig(c, nil))

	// shifting the boundary itself is caught by the width check
	c = tc.Clone()
	c.Nf2 = append([]byte{c.Nf1[31]}, c.Nf2...)
	c.Nf1 = c.Nf1[:31]
	require.ErrorIs(t, CheckFieldWidths(c), ErrFieldWidth)
}

func TestComputeSignInput(t *testing.T) {
	tc := newContract(t, 4)
	orig := tc.Clone()
	hSig := ComputeHSig(tc, nil)

	bz, err := ComputeSignInput(tc, nil)
	require.NoError(t, err)

	// the caller's contract is untouched
	require.Equal(t, orig, tc)

	signed, err := types.DecodeTransferContract(bz)
	require.NoError(t, err)
	require.Empty(t, signed.RandomSeed)
	require.Equal(t, hSig[:], signed.Pksig)

	// everything else is carried over
	signed.RandomSeed = tc.RandomSeed
	signed.Pksig = tc.Pksig
	require.Equal(t, tc, signed)

	bz1, err := ComputeSignInput(tc, nil)
	require.NoError(t, err)
	require.True(t, bytes.Equal(bz, bz1))
}

func TestComputeSignInputMiMC(t *testing.T) {
	tc := newContract(t, 5)

	bz, err := ComputeSignInput(tc, utils.MiMCHash)
	require.NoError(t, err)

	signed, err := types.DecodeTransferContract(bz)
	require.NoError(t, err)
	h := ComputeHSig(tc, utils.MiMCHash)
	require.Equal(t, h[:], signed.Pksig)
}

func TestComputeHSigMiMCSeedAboveModulus(t *testing.T) {
	tc0 := newContract(t, 5)
	big.NewInt(5).FillBytes(tc0.RandomSeed)

	tc1 := tc0.Clone()
	new(big.Int).Add(fr.Modulus(), big.NewInt(5)).FillBytes(tc1.RandomSeed)

	require.NoError(t, CheckFieldWidths(tc0))
	require.NoError(t, CheckFieldWidths(tc1))
	require.NotEqual(t, ComputeHSig(tc0, utils.MiMCHash), ComputeHSig(tc1, utils.MiMCHash))
}
