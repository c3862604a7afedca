package types

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

const (
	KeySize             = 32
	TransmissionAddrLen = 2 * KeySize

	notePlaintextVer = 0x00
)

// ShieldedNote is a Sprout note: value bound to an address key and the
// randomizers rho and r.
type ShieldedNote struct {
	Value uint64
	APk   [KeySize]byte
	Rho   [KeySize]byte
	R     [KeySize]byte
}

// StoredNote is a note as a wallet keeps it, with the owning spending key
// and the value in its big-endian byte form.
type StoredNote struct {
	AddrSk [KeySize]byte
	AddrPk [KeySize]byte
	V      []byte
	Rho    [KeySize]byte
	R      [KeySize]byte
}

// Value reads V as an unsigned integer and keeps the low 64 bits.
func (sn *StoredNote) Value() uint64 {
	return new(uint256.Int).SetBytes(sn.V).Uint64()
}

func (sn *StoredNote) ToNote() ShieldedNote {
	return ShieldedNote{
		Value: sn.Value(),
		APk:   sn.AddrPk,
		Rho:   sn.Rho,
		R:     sn.R,
	}
}

// SpendDescriptor is the joinsplit input: the spending key and the note it spends.
type SpendDescriptor struct {
	Key  [KeySize]byte
	Note ShieldedNote
}

// OutputDescriptor is the joinsplit output for a recipient's transmission address.
type OutputDescriptor struct {
	APk   [KeySize]byte
	PkEnc [KeySize]byte
	Value uint64
	Memo  []byte
}

// TransmissionAddress returns APk || PkEnc.
func (od *OutputDescriptor) TransmissionAddress() []byte {
	ret := make([]byte, 0, TransmissionAddrLen)
	ret = append(ret, od.APk[:]...)
	return append(ret, od.PkEnc[:]...)
}

func (od *OutputDescriptor) Plaintext(rho, r [KeySize]byte) *NotePlaintext {
	return &NotePlaintext{
		Value: od.Value,
		Rho:   rho,
		R:     r,
		Memo:  append([]byte(nil), od.Memo...),
	}
}

// NotePlaintext is what gets encrypted to the recipient of an output.
type NotePlaintext struct {
	Value uint64
	Rho   [KeySize]byte
	R     [KeySize]byte
	Memo  []byte
}

var ErrNotePlaintextVersion = errors.New("unknown note plaintext version")

// Bytes returns the RLP encoding of the plaintext.
// It panics if the encoding fails.
func (np *NotePlaintext) Bytes() []byte {
	b, err := rlp.EncodeToBytes(np)
	if err != nil {
		panic(fmt.Sprintf("failed to RLP encode NotePlaintext: %v", err))
	}
	return b
}

// EncodeRLP implements rlp.Encoder.
func (np *NotePlaintext) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []interface{}{
		byte(notePlaintextVer),
		np.Value,
		np.Rho[:],
		np.R[:],
		np.Memo,
	})
}

// DecodeRLP implements rlp.Decoder.
func (np *NotePlaintext) DecodeRLP(s *rlp.Stream) error {
	var temp struct {
		Version byte
		Value   uint64
		Rho     [KeySize]byte
		R       [KeySize]byte
		Memo    []byte
	}
	if err := s.Decode(&temp); err != nil {
		return err
	}
	if temp.Version != notePlaintextVer {
		return fmt.Errorf("%w: %d", ErrNotePlaintextVersion, temp.Version)
	}

	np.Value = temp.Value
	np.Rho = temp.Rho
	np.R = temp.R
	np.Memo = temp.Memo
	return nil
}

func DecodeNotePlaintext(bz []byte) (*NotePlaintext, error) {
	np := new(NotePlaintext)
	if err := rlp.DecodeBytes(bz, np); err != nil {
		return nil, err
	}
	return np, nil
}
