package segment

import (
	"fmt"

	"github.com/sidneycadot/qrcode-go/qrerr"
)

// partial is one Pareto-frontier entry: a prefix of the input encoded as a
// sequence of finished segments plus one still-open segment of activeKind.
// Bits and segment count are kept so two partials with the same active
// encoding can be compared without re-deriving them.
type partial struct {
	segments     []Segment
	activeKind   Kind
	activeRunes  []rune // Numeric, Alphanumeric, Kanji
	activeOctets []byte // Bytes
	unitCount    int
	bits         int
}

func unitDelta(kind Kind, octets []byte) int {
	if kind == Bytes {
		return len(octets)
	}
	return 1
}

// startPartial opens the very first segment of the solution.
func startPartial(kind Kind, r rune, octets []byte, kanjiCode uint32, version int) *partial {
	p := &partial{activeKind: kind}
	appendUnit(p, kind, r, octets, kanjiCode)
	p.bits = segmentBits(kind, version, p.unitCount)
	return p
}

// extend appends r to prev's already-open segment of the same kind.
func extend(prev *partial, kind Kind, r rune, octets []byte, kanjiCode uint32, version int) *partial {
	p := &partial{
		segments:     prev.segments,
		activeKind:   kind,
		activeRunes:  append([]rune(nil), prev.activeRunes...),
		activeOctets: append([]byte(nil), prev.activeOctets...),
		unitCount:    prev.unitCount,
		bits:         prev.bits - segmentBits(kind, version, prev.unitCount),
	}
	appendUnit(p, kind, r, octets, kanjiCode)
	p.bits += segmentBits(kind, version, p.unitCount)
	return p
}

// switchMode finalizes prev's open segment and opens a fresh one of kind.
func switchMode(prev *partial, kind Kind, r rune, octets []byte, kanjiCode uint32, version int) *partial {
	p := &partial{
		segments:   append(append([]Segment(nil), prev.segments...), finalizeSegment(prev)),
		activeKind: kind,
		bits:       prev.bits,
	}
	appendUnit(p, kind, r, octets, kanjiCode)
	p.bits += segmentBits(kind, version, p.unitCount)
	return p
}

func appendUnit(p *partial, kind Kind, r rune, octets []byte, kanjiCode uint32) {
	switch kind {
	case Numeric, Alphanumeric, Kanji:
		p.activeRunes = append(p.activeRunes, r)
		p.unitCount = len(p.activeRunes)
	case Bytes:
		p.activeOctets = append(p.activeOctets, octets...)
		p.unitCount = len(p.activeOctets)
	}
}

func finalizeSegment(p *partial) Segment {
	switch p.activeKind {
	case Bytes:
		return Segment{Kind: Bytes, Octets: p.activeOctets}
	default:
		return Segment{Kind: p.activeKind, Text: string(p.activeRunes)}
	}
}

// better reports whether candidate strictly dominates incumbent: fewer
// bits, or equal bits with fewer segments.
func better(candidate, incumbent *partial) bool {
	if incumbent == nil {
		return true
	}
	if candidate.bits != incumbent.bits {
		return candidate.bits < incumbent.bits
	}
	return len(candidate.segments) < len(incumbent.segments)
}

// Optimize finds the bit-minimal sequence of segments encoding text for the
// given QR version, using dynamic programming with Pareto pruning to keep
// the search bounded. Candidates compatible with each character are numeric
// (digits), alphanumeric (the 45-character alphabet), byte (whatever
// byteEnc can represent), and kanji (a valid Shift-JIS kanji code). The
// frontier keeps at most one partial per active encoding after each
// character, keeping the search space bounded for pathological inputs.
func Optimize(text string, version int, byteEnc ByteEncoding) ([]Segment, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	frontier := map[Kind]*partial{}

	for idx, r := range runes {
		type candidateInput struct {
			kind      Kind
			octets    []byte
			kanjiCode uint32
		}
		var inputs []candidateInput
		if r < 128 && IsNumeric(byte(r)) {
			inputs = append(inputs, candidateInput{kind: Numeric})
		}
		if r < 128 && IsAlphanumeric(byte(r)) {
			inputs = append(inputs, candidateInput{kind: Alphanumeric})
		}
		if octets, ok := byteEnc.Encode(r); ok {
			inputs = append(inputs, candidateInput{kind: Bytes, octets: octets})
		}
		if kv, ok := kanjiValue(r); ok {
			inputs = append(inputs, candidateInput{kind: Kanji, kanjiCode: kv})
		}
		if len(inputs) == 0 {
			return nil, qrerr.New(qrerr.Precondition, fmt.Sprintf("character %q is not representable in any segment mode", r))
		}

		next := map[Kind]*partial{}
		for _, in := range inputs {
			var best *partial
			if idx == 0 {
				best = startPartial(in.kind, r, in.octets, in.kanjiCode, version)
			} else {
				for fromKind, prev := range frontier {
					var cand *partial
					if fromKind == in.kind {
						cand = extend(prev, in.kind, r, in.octets, in.kanjiCode, version)
					} else {
						cand = switchMode(prev, in.kind, r, in.octets, in.kanjiCode, version)
					}
					if better(cand, best) {
						best = cand
					}
				}
			}
			next[in.kind] = best
		}
		frontier = next
	}

	var winner *partial
	for _, p := range frontier {
		final := &partial{
			segments: append(append([]Segment(nil), p.segments...), finalizeSegment(p)),
			bits:     p.bits,
		}
		if better(final, winner) {
			winner = final
		}
	}
	return winner.segments, nil
}
