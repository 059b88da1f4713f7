package compiler

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"staticatom/constants"
)

// Fingerprint identifies a vocabulary by content and order: SHA3-256 over
// every atom as uvarint(len) || text, in ordinal order, truncated to
// constants.FingerprintBytes and hex encoded. Generated packages export it
// so persisted ordinals can be checked against the vocabulary that wrote them.
func Fingerprint(v *Vocabulary) string {
	h := sha3.New256()
	var n [binary.MaxVarintLen64]byte
	for _, a := range v.atoms {
		h.Write(n[:binary.PutUvarint(n[:], uint64(len(a.Text)))])
		h.Write([]byte(a.Text))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:constants.FingerprintBytes])
}
