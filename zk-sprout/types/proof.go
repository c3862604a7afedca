package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	CoordSize = 32
	ProofSize = 576
)

// G1Point is an affine BN128 G1 point, coordinates big-endian.
type G1Point struct {
	X [CoordSize]byte
	Y [CoordSize]byte
}

// G2Point is an affine BN128 G2 point over Fp2.
// X1/Y1 hold the imaginary parts and X2/Y2 the real parts.
type G2Point struct {
	X1 [CoordSize]byte
	X2 [CoordSize]byte
	Y1 [CoordSize]byte
	Y2 [CoordSize]byte
}

// Proof is a PGHR13 style zk-SNARK proof: seven G1 points and one G2 point.
type Proof struct {
	A  G1Point
	AP G1Point
	B  G2Point
	BP G1Point
	C  G1Point
	CP G1Point
	K  G1Point
	H  G1Point
}

// Coords returns pointers to the 18 coordinates in wire order.
func (p *Proof) Coords() [18]*[CoordSize]byte {
	return [18]*[CoordSize]byte{
		&p.A.X, &p.A.Y,
		&p.AP.X, &p.AP.Y,
		&p.B.X1, &p.B.X2, &p.B.Y1, &p.B.Y2,
		&p.BP.X, &p.BP.Y,
		&p.C.X, &p.C.Y,
		&p.CP.X, &p.CP.Y,
		&p.K.X, &p.K.Y,
		&p.H.X, &p.H.Y,
	}
}

func (p G1Point) String() string {
	return fmt.Sprintf("(%x, %x)", p.X, p.Y)
}

func (p G2Point) String() string {
	return fmt.Sprintf("((%x, %x), (%x, %x))", p.X1, p.X2, p.Y1, p.Y2)
}

func (p *Proof) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A:%v A':%v B:%v B':%v ", p.A, p.AP, p.B, p.BP)
	fmt.Fprintf(&sb, "C:%v C':%v K:%v H:%v", p.C, p.CP, p.K, p.H)
	return sb.String()
}

// ProofJSON is the hex form used by the inspect tool.
type ProofJSON struct {
	A  [2]string `json:"a"`
	AP [2]string `json:"a_p"`
	B  [4]string `json:"b"`
	BP [2]string `json:"b_p"`
	C  [2]string `json:"c"`
	CP [2]string `json:"c_p"`
	K  [2]string `json:"k"`
	H  [2]string `json:"h"`
}

func g1Hex(p G1Point) [2]string {
	return [2]string{hex.EncodeToString(p.X[:]), hex.EncodeToString(p.Y[:])}
}

func (p *Proof) ToJSON() *ProofJSON {
	return &ProofJSON{
		A:  g1Hex(p.A),
		AP: g1Hex(p.AP),
		B: [4]string{
			hex.EncodeToString(p.B.X1[:]), hex.EncodeToString(p.B.X2[:]),
			hex.EncodeToString(p.B.Y1[:]), hex.EncodeToString(p.B.Y2[:]),
		},
		BP: g1Hex(p.BP),
		C:  g1Hex(p.C),
		CP: g1Hex(p.CP),
		K:  g1Hex(p.K),
		H:  g1Hex(p.H),
	}
}
