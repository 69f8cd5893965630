// Package hashing detects games that reach the same position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys, indexed by side, kind and square.
var (
	zobristPiece [3][7][chess.BoardSize * chess.BoardSize]uint64
	zobristTop   uint64 // XORed in when the top side is to move
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for side := range zobristPiece {
		for kind := range zobristPiece[side] {
			for sq := range zobristPiece[side][kind] {
				zobristPiece[side][kind][sq] = rnd.Uint64()
			}
		}
	}
	zobristTop = rnd.Uint64()
}

// PositionHash returns the Zobrist hash of a board with toMove to play.
func PositionHash(s chess.Snapshot, toMove chess.Side) uint64 {
	var key uint64
	for r, row := range s {
		for f, info := range row {
			if info.Kind == chess.Empty {
				continue
			}
			key ^= zobristPiece[info.Owner][info.Kind][r*chess.BoardSize+f]
		}
	}
	if toMove == chess.Top {
		key ^= zobristTop
	}
	return key
}

// WeakHash is a cheap second opinion used to confirm a Zobrist match.
func WeakHash(s chess.Snapshot) uint32 {
	var h uint32
	for r, row := range s {
		for f, info := range row {
			if info.Kind == chess.Empty {
				continue
			}
			sq := uint32(r*chess.BoardSize + f + 1)
			h += sq * (uint32(info.Kind)*3 + uint32(info.Owner))
		}
	}
	return h
}

// Signature identifies the final position of one game.
type Signature struct {
	Index     int    // position of the game in its batch
	Hash      uint64 // Zobrist hash of the final position
	WeakHash  uint32
	MoveCount int // accepted moves
}

// NewSignature builds the signature of a finished game.
func NewSignature(index int, s chess.Snapshot, toMove chess.Side, moves int) Signature {
	return Signature{
		Index:     index,
		Hash:      PositionHash(s, toMove),
		WeakHash:  WeakHash(s),
		MoveCount: moves,
	}
}

// DuplicateDetector remembers the positions it has seen. It is not safe
// for concurrent use.
type DuplicateDetector struct {
	hashTable map[uint64][]Signature
	// useExactMatch also requires the same number of moves
	useExactMatch  bool
	duplicateCount int
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd reports the earlier signature that sig duplicates, if any.
// Signatures that are not duplicates are remembered.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (Signature, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.useExactMatch || a.MoveCount == b.MoveCount
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions seen.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset forgets every position.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
