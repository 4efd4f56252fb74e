// Package digest fingerprints launcher backups by content.
//
// The digest is a BLAKE2b-256 hash of the compact canonical encoding, so two
// documents share a digest exactly when they encode to the same backup:
// formatting, attribute order and explicitly written defaults in the source
// make no difference.
package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/KimNorgaard/go-exml"
)

// Size is the length of a Digest in bytes.
const Size = blake2b.Size256

// Digest is the content hash of a document.
type Digest [Size]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 10 bytes of the digest as hex.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:10])
}

// Parse decodes a hex digest as produced by String.
func Parse(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("digest: %w", err)
	}
	if len(b) != Size {
		return d, fmt.Errorf("digest: want %d bytes, got %d", Size, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// Sum returns the digest of doc.
func Sum(doc *exml.Document) (Digest, error) {
	data, err := exml.Marshal(doc, exml.Indent(0), exml.OmitDeclaration())
	if err != nil {
		return Digest{}, err
	}
	return blake2b.Sum256(data), nil
}

// Equal reports whether a and b have the same content.
func Equal(a, b *exml.Document) (bool, error) {
	da, err := Sum(a)
	if err != nil {
		return false, err
	}
	db, err := Sum(b)
	if err != nil {
		return false, err
	}
	return da == db, nil
}
