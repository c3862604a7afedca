package types

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// TransferContract is the shielded transfer contract carried by a
// transaction. Field order is the wire order.
type TransferContract struct {
	OwnerAddress []byte
	ToAddress    []byte
	VFromPub     uint64
	VToPub       uint64
	Rt           []byte
	Nf1          []byte
	Nf2          []byte
	Cm1          []byte
	Cm2          []byte
	Pksig        []byte
	RandomSeed   []byte
	Epk          []byte
	H1           []byte
	H2           []byte
	C1           []byte
	C2           []byte
	Proof        []byte
	Fee          uint64
}

func (tc *TransferContract) GetRandomSeed() []byte { return tc.RandomSeed }
func (tc *TransferContract) GetNf1() []byte        { return tc.Nf1 }
func (tc *TransferContract) GetNf2() []byte        { return tc.Nf2 }
func (tc *TransferContract) GetPksig() []byte      { return tc.Pksig }

// Clone returns a deep copy.
func (tc *TransferContract) Clone() *TransferContract {
	return &TransferContract{
		OwnerAddress: bytes.Clone(tc.OwnerAddress),
		ToAddress:    bytes.Clone(tc.ToAddress),
		VFromPub:     tc.VFromPub,
		VToPub:       tc.VToPub,
		Rt:           bytes.Clone(tc.Rt),
		Nf1:          bytes.Clone(tc.Nf1),
		Nf2:          bytes.Clone(tc.Nf2),
		Cm1:          bytes.Clone(tc.Cm1),
		Cm2:          bytes.Clone(tc.Cm2),
		Pksig:        bytes.Clone(tc.Pksig),
		RandomSeed:   bytes.Clone(tc.RandomSeed),
		Epk:          bytes.Clone(tc.Epk),
		H1:           bytes.Clone(tc.H1),
		H2:           bytes.Clone(tc.H2),
		C1:           bytes.Clone(tc.C1),
		C2:           bytes.Clone(tc.C2),
		Proof:        bytes.Clone(tc.Proof),
		Fee:          tc.Fee,
	}
}

// Bytes returns the canonical RLP encoding.
func (tc *TransferContract) Bytes() ([]byte, error) {
	bz, err := rlp.EncodeToBytes(tc)
	if err != nil {
		return nil, fmt.Errorf("failed to RLP encode TransferContract: %w", err)
	}
	return bz, nil
}

func DecodeTransferContract(bz []byte) (*TransferContract, error) {
	tc := new(TransferContract)
	if err := rlp.DecodeBytes(bz, tc); err != nil {
		return nil, fmt.Errorf("failed to RLP decode TransferContract: %w", err)
	}
	return tc, nil
}
