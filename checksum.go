package sortedset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Checksum folds a whole-sequence structural fingerprint over s's sorted
// order. It is not part of any spec.md invariant; it exists as a cheap
// equality oracle (two sets with equal ToList() output have equal
// Checksum()) and a drift/corruption check for callers, grounded on
// templexxx/u64's two-hash-family table design (xxh3 for one cycle,
// xxhash for the other). Here the split is by Item kind instead of by
// table cycle: scalar kinds (nil, bool, int, atom, string) are folded with
// xxhash, composite kinds (tuple, list) with xxh3, keeping the two
// families from colliding across kinds that happen to serialize to the
// same bytes.
func (s *SortedSet) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, b := range s.buckets {
		for _, it := range b.items {
			buf[0] = byte(it.kind)
			h.Write(buf[:1])
			fingerprintItem(h, it, &buf)
		}
	}
	return h.Sum64()
}

// fingerprintItem writes item's content into h. Scalars are written
// directly; composites are first folded through xxh3 (keeping the cost of
// a deeply nested tuple/list bounded to its own size) and only the
// resulting 8 bytes are written into the outer xxhash state.
func fingerprintItem(h *xxhash.Digest, it Item, buf *[8]byte) {
	switch it.kind {
	case KindNil:
		return
	case KindBool, KindInt:
		binary.LittleEndian.PutUint64(buf[:8], uint64(it.i))
		h.Write(buf[:8])
	case KindAtom, KindString:
		h.Write([]byte(it.s))
	case KindTuple, KindList:
		sum := xxh3HashSeq(it.seq)
		binary.LittleEndian.PutUint64(buf[:8], sum)
		h.Write(buf[:8])
	}
}

// xxh3HashSeq folds a composite Item's elements through xxh3, recursing
// through nested composites via Checksum-style kind-tagged bytes.
func xxh3HashSeq(seq []Item) uint64 {
	var acc [8]byte
	h := xxh3.New()
	for _, e := range seq {
		h.Write([]byte{byte(e.kind)})
		switch e.kind {
		case KindNil:
		case KindBool, KindInt:
			binary.LittleEndian.PutUint64(acc[:], uint64(e.i))
			h.Write(acc[:])
		case KindAtom, KindString:
			h.Write([]byte(e.s))
		case KindTuple, KindList:
			binary.LittleEndian.PutUint64(acc[:], xxh3HashSeq(e.seq))
			h.Write(acc[:])
		}
	}
	return h.Sum64()
}
