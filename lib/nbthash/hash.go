// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package nbthash computes content fingerprints of NBT trees.
//
// A fingerprint is a BLAKE3 keyed hash of the canonical encoding, so
// two trees that are [nbt.Equal] have the same fingerprint whatever
// order their compound entries were inserted or decoded in. Named
// roots and bare payloads hash under different domain keys and can
// never collide with each other.
package nbthash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/nbt/lib/nbt"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// String returns the hash as 64 lower-case hex characters.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing nbt hash: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("nbt hash is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}

type domainKey [32]byte

// Domain keys are the ASCII domain name zero-padded to 32 bytes.
// Changing one invalidates every stored hash in that domain.
var (
	rootDomainKey = domainKey{
		'n', 'b', 't', '.', 'r', 'o', 'o', 't',
	}

	payloadDomainKey = domainKey{
		'n', 'b', 't', '.', 'p', 'a', 'y', 'l', 'o', 'a', 'd',
	}
)

// Sum returns the fingerprint of a named root: the hash of
// [nbt.AppendCanonicalRoot].
func Sum(name nbt.String, tag nbt.Tag) (Hash, error) {
	encoded, err := nbt.AppendCanonicalRoot(nil, tag, name)
	if err != nil {
		return Hash{}, err
	}
	return keyedHash(rootDomainKey, encoded), nil
}

// SumPayload returns the fingerprint of an unnamed tag. The hashed
// bytes are the canonical root encoding with an empty name, under a
// separate domain key from [Sum].
func SumPayload(tag nbt.Tag) (Hash, error) {
	encoded, err := nbt.AppendCanonicalRoot(nil, tag, "")
	if err != nil {
		return Hash{}, err
	}
	return keyedHash(payloadDomainKey, encoded), nil
}

// Entry is the fingerprint of one compound entry.
type Entry struct {
	Name nbt.String
	Kind nbt.Kind
	Hash Hash
}

// SumEntries returns the payload fingerprint of every entry of
// compound, in entry order. Comparing the results for two compounds
// shows which entries differ.
func SumEntries(compound *nbt.Compound) ([]Entry, error) {
	entries := make([]Entry, 0, compound.Len())
	for name, tag := range compound.All() {
		hash, err := SumPayload(tag)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Kind: tag.Kind(), Hash: hash})
	}
	return entries, nil
}

func keyedHash(key domainKey, data []byte) Hash {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("nbthash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
