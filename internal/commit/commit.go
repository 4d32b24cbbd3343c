// Package commit binds the computer to a move before the human chooses.
//
// A fresh 256-bit key is drawn from a secure entropy source and the move name
// is hashed with HMAC-SHA256 under that key. The digest is shown up front and
// the key is revealed after the round, so anyone can recompute the digest:
//
//	c, err := commit.Commit(rand.Reader, "rock")
//	fmt.Println(c.Digest())   // before the human moves
//	fmt.Println(c.Reveal())   // after the human moves
//
// The key material fed to HMAC is the hex text of the key exactly as it is
// revealed, so generic HMAC tools reproduce the digest from what is printed.
package commit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// KeySize is the number of random bytes in a key.
const KeySize = 32

// ErrEntropy is returned when the entropy source cannot supply a key.
var ErrEntropy = errors.New("secure random source unavailable")

// Key is a hex-encoded secret key.
type Key string

func (k Key) String() string {
	return string(k)
}

// GenerateKey reads KeySize bytes from entropy and hex-encodes them.
func GenerateKey(entropy io.Reader) (Key, error) {
	buf := make([]byte, KeySize)
	if _, err := io.ReadFull(entropy, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return Key(hex.EncodeToString(buf)), nil
}

// Digest computes the hex HMAC-SHA256 of message under key.
func Digest(key Key, message string) string {
	return hex.EncodeToString(sum(key, message))
}

// Verify reports whether digest is the HMAC of message under key. The
// comparison is constant time and ignores hex letter case.
func Verify(key Key, message, digest string) bool {
	want, err := hex.DecodeString(strings.TrimSpace(digest))
	if err != nil {
		return false
	}
	return hmac.Equal(sum(key, message), want)
}

func sum(key Key, message string) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(message))
	return mac.Sum(nil)
}

// Commitment is a digest whose key stays hidden until Reveal.
type Commitment struct {
	key    Key
	digest string
}

// Commit draws a new key from entropy and commits to message.
func Commit(entropy io.Reader, message string) (Commitment, error) {
	key, err := GenerateKey(entropy)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{key: key, digest: Digest(key, message)}, nil
}

// Digest is the public half of the commitment.
func (c Commitment) Digest() string {
	return c.digest
}

// Reveal hands out the key. Call it only once the other side is locked in.
func (c Commitment) Reveal() Key {
	return c.key
}
