package proof

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/kysee/zkcodec/zk-sprout/types"
)

var ErrNotOnCurve = errors.New("point is not on curve")

// CurvePoints are the proof elements as bn254 affine points, ready for a
// verification engine. Building them checks the encoding only, not the proof.
type CurvePoints struct {
	A  bn254.G1Affine
	AP bn254.G1Affine
	B  bn254.G2Affine
	BP bn254.G1Affine
	C  bn254.G1Affine
	CP bn254.G1Affine
	K  bn254.G1Affine
	H  bn254.G1Affine
}

// ToCurve maps every coordinate into the base field and checks the points
// lie on their curves. B must also be in the G2 subgroup.
func ToCurve(p *types.Proof) (*CurvePoints, error) {
	cp := new(CurvePoints)

	g1s := []struct {
		name string
		src  *types.G1Point
		dst  *bn254.G1Affine
	}{
		{"A", &p.A, &cp.A},
		{"A'", &p.AP, &cp.AP},
		{"B'", &p.BP, &cp.BP},
		{"C", &p.C, &cp.C},
		{"C'", &p.CP, &cp.CP},
		{"K", &p.K, &cp.K},
		{"H", &p.H, &cp.H},
	}
	for _, g := range g1s {
		if err := setG1(g.dst, g.src); err != nil {
			return nil, fmt.Errorf("%s: %w", g.name, err)
		}
	}
	if err := setG2(&cp.B, &p.B); err != nil {
		return nil, fmt.Errorf("B: %w", err)
	}
	return cp, nil
}

// FromCurve is the inverse of ToCurve.
func FromCurve(cp *CurvePoints) *types.Proof {
	return &types.Proof{
		A:  fromG1(&cp.A),
		AP: fromG1(&cp.AP),
		B:  fromG2(&cp.B),
		BP: fromG1(&cp.BP),
		C:  fromG1(&cp.C),
		CP: fromG1(&cp.CP),
		K:  fromG1(&cp.K),
		H:  fromG1(&cp.H),
	}
}

func setCoord(e *fp.Element, bz [types.CoordSize]byte) error {
	if err := e.SetBytesCanonical(bz[:]); err != nil {
		return fmt.Errorf("coordinate %x: %w", bz, err)
	}
	return nil
}

func setG1(dst *bn254.G1Affine, src *types.G1Point) error {
	if err := setCoord(&dst.X, src.X); err != nil {
		return err
	}
	if err := setCoord(&dst.Y, src.Y); err != nil {
		return err
	}
	if !dst.IsOnCurve() {
		return ErrNotOnCurve
	}
	return nil
}

func setG2(dst *bn254.G2Affine, src *types.G2Point) error {
	coords := []struct {
		e  *fp.Element
		bz [types.CoordSize]byte
	}{
		{&dst.X.A1, src.X1},
		{&dst.X.A0, src.X2},
		{&dst.Y.A1, src.Y1},
		{&dst.Y.A0, src.Y2},
	}
	for _, c := range coords {
		if err := setCoord(c.e, c.bz); err != nil {
			return err
		}
	}
	if !dst.IsOnCurve() || !dst.IsInSubGroup() {
		return ErrNotOnCurve
	}
	return nil
}

func fromG1(a *bn254.G1Affine) types.G1Point {
	return types.G1Point{X: a.X.Bytes(), Y: a.Y.Bytes()}
}

func fromG2(a *bn254.G2Affine) types.G2Point {
	return types.G2Point{
		X1: a.X.A1.Bytes(),
		X2: a.X.A0.Bytes(),
		Y1: a.Y.A1.Bytes(),
		Y2: a.Y.A0.Bytes(),
	}
}
