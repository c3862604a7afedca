package crypto

import (
	"crypto/cipher"
	"fmt"

	"github.com/kysee/zkcodec/zk-sprout/types"
	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptNote seals a note plaintext with ChaCha20-Poly1305.
//
// key is 32 bytes and nonce 12 bytes; a nonce must never repeat under one key.
// ad is authenticated but not encrypted. For a transfer contract it is the
// ephemeral public key epk. The returned ciphertext carries the 16 byte tag.
func EncryptNote(key, nonce, plaintext, ad []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, ad), nil
}

// DecryptNote decrypts the note ciphertext using ChaCha20-Poly1305.
// key, nonce and ad must match the ones given to EncryptNote.
func DecryptNote(key, nonce, ciphertext, ad []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		// wrong key or nonce, or tampered input
		return nil, fmt.Errorf("failed to decrypt note: %w", err)
	}
	return plaintext, nil
}

// SealNote encrypts the RLP form of np, e.g. for the c1/c2 fields of a
// transfer contract.
func SealNote(key, nonce []byte, np *types.NotePlaintext, epk []byte) ([]byte, error) {
	return EncryptNote(key, nonce, np.Bytes(), epk)
}

func OpenNote(key, nonce, ciphertext, epk []byte) (*types.NotePlaintext, error) {
	bz, err := DecryptNote(key, nonce, ciphertext, epk)
	if err != nil {
		return nil, err
	}
	return types.DecodeNotePlaintext(bz)
}

func newAEAD(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("invalid key size: must be %d bytes", chacha20poly1305.KeySize)
	}
	if len(nonce) != chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("invalid nonce size: must be %d bytes", chacha20poly1305.NonceSize)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 AEAD: %w", err)
	}
	return aead, nil
}
