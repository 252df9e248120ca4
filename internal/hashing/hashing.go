// Package hashing provides Zobrist position hashing and repetition counting.
package hashing

import (
	"github.com/lgbarn/chess-sim-go/internal/chess"
)

// numPieceCodes covers every ColouredPiece value up to a white king.
const numPieceCodes = (int(chess.King)<<chess.PieceShift | int(chess.White)) + 1

// Zobrist keys. They are fixed for the life of the program so hashes can be
// compared across games.
var (
	pieceKeys     [chess.NumSquares][numPieceCodes]uint64
	blackToMove   uint64
	castlingKeys  [chess.AllCastling + 1]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	// splitmix64 from a fixed seed
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = next()
		}
	}
	blackToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// ZobristHash returns the hash of a position: placement, side to move,
// castling rights and en passant file.
func ZobristHash(board *chess.Board) uint64 {
	var hash uint64

	for i, p := range board.Squares() {
		if !p.IsEmpty() {
			hash ^= pieceKeys[i][p]
		}
	}
	if board.SideToMove() == chess.Black {
		hash ^= blackToMove
	}
	hash ^= castlingKeys[board.CastlingRights()]
	if target, ok := board.EnPassantTarget(); ok {
		hash ^= enPassantKeys[target.File]
	}

	return hash
}

// WeakHash is a cheap placement-only checksum used to confirm a Zobrist match.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for i, p := range board.Squares() {
		if !p.IsEmpty() {
			hash = hash*31 + uint32(i)<<4 + uint32(p)
		}
	}
	return hash
}

// PositionSignature identifies a position well enough to detect repetition.
type PositionSignature struct {
	Hash     uint64
	WeakHash uint32
}

// Sign computes the signature of a position.
func Sign(board *chess.Board) PositionSignature {
	return PositionSignature{Hash: ZobristHash(board), WeakHash: WeakHash(board)}
}

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	// hashTable maps a Zobrist hash to the signatures seen under it
	hashTable map[uint64][]seenPosition
}

type seenPosition struct {
	sig   PositionSignature
	count int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		hashTable: make(map[uint64][]seenPosition),
	}
}

// Add records an occurrence of the position and returns how many times it
// has now occurred.
func (r *RepetitionTable) Add(board *chess.Board) int {
	sig := Sign(board)

	seen := r.hashTable[sig.Hash]
	for i := range seen {
		if seen[i].sig == sig {
			seen[i].count++
			return seen[i].count
		}
	}

	r.hashTable[sig.Hash] = append(seen, seenPosition{sig: sig, count: 1})
	return 1
}

// Count returns how many times the position has occurred.
func (r *RepetitionTable) Count(board *chess.Board) int {
	sig := Sign(board)
	for _, s := range r.hashTable[sig.Hash] {
		if s.sig == sig {
			return s.count
		}
	}
	return 0
}
