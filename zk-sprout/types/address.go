package types

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

const (
	addrPrefix = "zt"
	addrVer    = 0x16
)

// EncodeAddress renders a transmission address (apk, pkEnc) as text.
func EncodeAddress(apk, pkEnc [KeySize]byte) string {
	payload := make([]byte, 0, TransmissionAddrLen)
	payload = append(payload, apk[:]...)
	payload = append(payload, pkEnc[:]...)
	return addrPrefix + base58.CheckEncode(payload, addrVer)
}

// DecodeAddress returns the 64 byte transmission address.
func DecodeAddress(addr string) ([]byte, error) {
	if !strings.HasPrefix(addr, addrPrefix) {
		return nil, fmt.Errorf("wrong prefix: got(%s)", addr[:min(len(addr), 2)])
	}
	bz, ver, err := base58.CheckDecode(addr[len(addrPrefix):])
	if err != nil {
		return nil, err
	}
	if ver != addrVer {
		return nil, fmt.Errorf("wrong version: expected(%d), got(%d)", addrVer, ver)
	}
	if len(bz) != TransmissionAddrLen {
		return nil, fmt.Errorf("wrong length: expected(%d), got(%d)", TransmissionAddrLen, len(bz))
	}
	return bz, nil
}
