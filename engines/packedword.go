package engines

import (
	"math"

	"github.com/oclpath/parastar/search"
)

// packWord packs a (g_score, predecessor_id) pair into one 64-bit word:
// the g_score's IEEE-754 bit pattern in the high 32 bits, the
// predecessor id in the low 32 bits. Because float32 bit patterns for
// non-negative finite values are monotonic with the values themselves,
// two packed words compare correctly as plain uint64s by g_score first,
// which is exactly the property a lock-free CAS relaxation loop needs:
// "is the candidate word's g_score lower than what's currently there".
func packWord(g float32, pred search.NodeID) uint64 {
	return uint64(math.Float32bits(g))<<32 | uint64(uint32(pred))
}

// unpackWord reverses packWord.
func unpackWord(w uint64) (g float32, pred search.NodeID) {
	g = math.Float32frombits(uint32(w >> 32))
	pred = search.NodeID(uint32(w))
	return g, pred
}

// unvisitedPred is the predecessor sentinel stored before a node has
// ever been relaxed. It can never collide with a real node id because
// GraphPack's 32-bit id space is validated to fit under it (ErrTooManyNodes
// fires before a legitimate id could reach this value).
const unvisitedPred = search.NodeID(math.MaxUint32)

// unvisitedWord is the initial value of every info-table entry: g_score
// = +Inf, predecessor = unvisitedPred. Any real relaxation's g_score is
// finite and therefore packs to a strictly smaller word.
var unvisitedWord = packWord(float32(math.Inf(1)), unvisitedPred)
