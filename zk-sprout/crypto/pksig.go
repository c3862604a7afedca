package crypto

import (
	"crypto/ed25519"
	"fmt"
)

// PksigPublicKey reads the pksig field of a transfer contract as the
// Ed25519 key the joinsplit signature is checked against.
func PksigPublicKey(pksig []byte) (ed25519.PublicKey, error) {
	if len(pksig) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid pksig size: expected(%d), got(%d)", ed25519.PublicKeySize, len(pksig))
	}
	return ed25519.PublicKey(append([]byte(nil), pksig...)), nil
}
