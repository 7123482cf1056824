// Package sm3 implements the SM3 cryptographic hash function as defined in
// GB/T 32905-2016.
package sm3

import (
	"encoding/hex"

	"github.com/zeebo/sm3/internal/consts"
)

const (
	// Size is the size of an SM3 digest in bytes.
	Size = consts.Size

	// BlockSize is the block size of SM3 in bytes.
	BlockSize = consts.BlockLen
)

// Hasher is a hash.Hash for SM3. Computing the digest does not change its
// state: more data may be written after Sum, Digest or HexDigest, and the
// next digest covers everything written so far.
//
// The zero value is ready to use. A Hasher must not be written to from
// multiple goroutines at once.
type Hasher struct {
	ready bool
	h     hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{ready: true, h: newHasher()}
}

// state returns the underlying hasher, loading the IV on first use.
func (h *Hasher) state() *hasher {
	if !h.ready {
		h.h = newHasher()
		h.ready = true
	}
	return &h.h
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.state().update(p)
	return len(p), nil
}

// WriteString is like Write but accepts a string.
func (h *Hasher) WriteString(p string) (int, error) {
	h.state().update([]byte(p))
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.state().reset()
}

// Clone returns a new Hasher with the same state as h. Writes to either do
// not affect the other.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{ready: true, h: *h.state()}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	var tmp [Size]byte
	h.state().finalize(&tmp)
	return append(b, tmp[:]...)
}

// Digest returns the digest of everything written so far.
func (h *Hasher) Digest() (out [Size]byte) {
	h.state().finalize(&out)
	return out
}

// HexDigest returns Digest encoded as lower-case hex.
func (h *Hasher) HexDigest() string {
	out := h.Digest()
	return hex.EncodeToString(out[:])
}

// Sum256 returns the SM3 digest of data.
func Sum256(data []byte) (out [Size]byte) {
	h := newHasher()
	h.update(data)
	h.finalize(&out)
	return out
}

// HexSum256 returns the SM3 digest of data encoded as lower-case hex.
func HexSum256(data []byte) string {
	out := Sum256(data)
	return hex.EncodeToString(out[:])
}
