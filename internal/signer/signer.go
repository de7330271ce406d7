package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"

	"github.com/osse101/wagerengine/internal/domain"
)

// Payload is the part of a settled play covered by its signature.
type Payload struct {
	PlayID       string
	Grid         domain.OutcomeGrid
	PayoutAmount int64
	Timestamp    time.Time
}

// Signer issues and checks tamper-evident play signatures.
type Signer struct {
	version string
	key     []byte
}

// New derives a versioned HMAC key from secret.
func New(secret []byte) (*Signer, error) {
	return NewWithVersion(secret, CurrentVersion)
}

// NewWithVersion derives a key for an explicit version label.
func NewWithVersion(secret []byte, version string) (*Signer, error) {
	if len(secret) < minSecretLen {
		return nil, errors.New(ErrMsgSecretTooShort)
	}

	key := make([]byte, sha256.Size)
	kdf := hkdf.New(sha256.New, secret, nil, []byte(hkdfInfoPrefix+version))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgKeyDerivation, err)
	}
	return &Signer{version: version, key: key}, nil
}

// Version returns the label prefixed to issued signatures.
func (s *Signer) Version() string {
	return s.version
}

// Sign returns "<version>.<hex hmac>" over the canonical form of p.
func (s *Signer) Sign(p Payload) string {
	return s.version + versionSep + hex.EncodeToString(s.mac(p))
}

// Verify reports whether signature was issued by this signer for p.
func (s *Signer) Verify(signature string, p Payload) bool {
	version, digest, ok := strings.Cut(signature, versionSep)
	if !ok || version != s.version {
		return false
	}
	got, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.mac(p))
}

func (s *Signer) mac(p Payload) []byte {
	m := hmac.New(sha256.New, s.key)
	writeCanonical(m, p)
	return m.Sum(nil)
}

// writeCanonical length-prefixes every string so field boundaries cannot shift.
// Each cell contributes every attribute the payout depends on.
func writeCanonical(h hash.Hash, p Payload) {
	writeString(h, p.PlayID)
	for _, row := range p.Grid {
		for _, sym := range row {
			writeString(h, sym.ID)
			writeInt(h, int64(sym.Level))
			writeString(h, string(sym.Rarity))
			writeBool(h, sym.IsWild)
		}
	}
	writeInt(h, p.PayoutAmount)
	writeInt(h, p.Timestamp.UTC().UnixMicro())
}

func writeString(h hash.Hash, s string) {
	writeInt(h, int64(len(s)))
	h.Write([]byte(s))
}

func writeBool(h hash.Hash, v bool) {
	if v {
		h.Write([]byte{1})
		return
	}
	h.Write([]byte{0})
}

func writeInt(h hash.Hash, v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	h.Write(buf[:])
}
