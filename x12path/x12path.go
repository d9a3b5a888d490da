package x12path

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"
	"slices"
	"strings"

	"github.com/x12-format/go-x12/debug"
)

// Sep is the loop separator in the textual path notation.
const Sep = "/"

// ErrInvalidPath is returned by Parse when a path violates a structural
// invariant: a qualifier without a segment identifier, or an element index
// without a segment identifier while loop identifiers remain.
var ErrInvalidPath = errors.New("invalid x12 path")

// X12Path is a parsed X12 path address.  The zero value is the empty
// relative path.
//
// The canonical string form is cached and recomputed lazily after mutation.
// An X12Path is a single-owner mutable value; callers sharing one across
// goroutines must serialize access themselves, reads included, since reads
// may refresh the cache.
type X12Path struct {
	loops     []string
	segID     string
	qualifier string
	eleIdx    *int
	subeleIdx *int
	absolute  bool

	canon  string
	segStr string
	dirty  bool
}

// Parse parses an X12 path string.
//
// The last separator-delimited token is read as a ref designator when it fits
// the grammar; a trailing token outside the grammar is kept as an ordinary
// loop identifier rather than reported as an error.  Parse fails only on
// invariant violations, wrapping ErrInvalidPath with the offending input.
func Parse(s string) (*X12Path, error) {
	p := &X12Path{}
	if s == "" {
		return p, nil
	}
	rest := s
	if strings.HasPrefix(s, Sep) {
		p.absolute = true
		rest = s[len(Sep):]
	}
	toks := strings.Split(rest, Sep)
	if toks[len(toks)-1] == "" {
		// Ended in a separator, so no ref designator.
		p.loops = toks[:len(toks)-1]
		p.recompute()
		return p, nil
	}
	last := toks[len(toks)-1]
	rd, ok := matchRefDes(last)
	if !ok {
		if debug.Path() {
			debug.Logf("x12path: %q is not a ref designator, keeping as loop\n", last)
		}
		p.loops = toks
		p.recompute()
		return p, nil
	}
	p.loops = toks[:len(toks)-1]
	p.segID = rd.segID
	p.qualifier = rd.qualifier
	p.eleIdx = rd.eleIdx
	p.subeleIdx = rd.subeleIdx
	if p.segID == "" && p.qualifier != "" {
		return nil, fmt.Errorf("%w %q: qualifier requires a segment identifier", ErrInvalidPath, s)
	}
	if p.segID == "" && (p.eleIdx != nil || p.subeleIdx != nil) && len(p.loops) > 0 {
		return nil, fmt.Errorf("%w %q: element index requires a segment identifier", ErrInvalidPath, s)
	}
	p.recompute()
	return p, nil
}

// recompute regenerates the canonical forms from the structural fields and
// clears the dirty flag.  The canonical string is always rebuilt from fields,
// never derived by editing previously cached text.
func (p *X12Path) recompute() {
	var b strings.Builder
	if p.absolute {
		b.WriteString(Sep)
	}
	joined := strings.Join(p.loops, Sep)
	b.WriteString(joined)
	p.segStr = p.fmtRefDes()
	if p.segID != "" && joined != "" {
		b.WriteString(Sep)
	}
	b.WriteString(p.segStr)
	p.canon = b.String()
	p.dirty = false
}

// String returns the canonical path string.
func (p *X12Path) String() string {
	if p.dirty {
		p.recompute()
	}
	return p.canon
}

// RefDes returns the canonical ref designator portion of the path, without
// any loop identifiers.
func (p *X12Path) RefDes() string {
	if p.dirty {
		p.recompute()
	}
	return p.segStr
}

// Loops returns a copy of the loop identifiers, root to leaf.
func (p *X12Path) Loops() []string { return slices.Clone(p.loops) }

// SegID returns the segment identifier, or "" when unset.
func (p *X12Path) SegID() string { return p.segID }

// Qualifier returns the qualifier, or "" when unset.
func (p *X12Path) Qualifier() string { return p.qualifier }

// ElementIndex returns the element index, or nil when unset.
func (p *X12Path) ElementIndex() *int { return p.eleIdx }

// SubelementIndex returns the sub-element index, or nil when unset.
func (p *X12Path) SubelementIndex() *int { return p.subeleIdx }

// IsRelative reports whether the path is relative.
func (p *X12Path) IsRelative() bool { return !p.absolute }

// SetLoops replaces the loop identifiers.
func (p *X12Path) SetLoops(loops []string) {
	p.loops = loops
	p.dirty = true
}

// SetSegID sets the segment identifier; "" unsets it.
func (p *X12Path) SetSegID(id string) {
	p.segID = id
	p.dirty = true
}

// SetQualifier sets the qualifier; "" unsets it.
func (p *X12Path) SetQualifier(q string) {
	p.qualifier = q
	p.dirty = true
}

// SetElementIndex sets the element index; nil unsets it.
func (p *X12Path) SetElementIndex(idx *int) {
	p.eleIdx = idx
	p.dirty = true
}

// SetSubelementIndex sets the sub-element index; nil unsets it.
func (p *X12Path) SetSubelementIndex(idx *int) {
	p.subeleIdx = idx
	p.dirty = true
}

// SetRelative sets whether the path is relative.
func (p *X12Path) SetRelative(relative bool) {
	p.absolute = !relative
	p.dirty = true
}

// Append splits suffix on the separator and extends the loop identifiers
// with the resulting tokens.  An empty suffix is a no-op.
func (p *X12Path) Append(suffix string) {
	if suffix == "" {
		return
	}
	p.loops = append(p.loops, strings.Split(suffix, Sep)...)
	p.dirty = true
}

// PopFrontLoop removes and returns the first loop identifier.  It returns
// ok=false when there are no loops.
func (p *X12Path) PopFrontLoop() (loop string, ok bool) {
	if len(p.loops) == 0 {
		return "", false
	}
	loop = p.loops[0]
	p.loops = p.loops[1:]
	p.dirty = true
	return loop, true
}

// Empty reports whether the path contains no path data: relative with no
// loops and no segment identifier.  The element index, qualifier, and
// sub-element index are not consulted.
func (p *X12Path) Empty() bool {
	return !p.absolute && len(p.loops) == 0 && p.segID == ""
}

// Equal reports whether p and o have equal structural fields.  Cache state
// does not participate.  X12Path has no ordering; equality is the only
// comparison.
func (p *X12Path) Equal(o *X12Path) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.absolute != o.absolute || p.segID != o.segID || p.qualifier != o.qualifier {
		return false
	}
	if !eqIntPtr(p.eleIdx, o.eleIdx) || !eqIntPtr(p.subeleIdx, o.subeleIdx) {
		return false
	}
	if len(p.loops) != len(o.loops) {
		return false
	}
	for i := range p.loops {
		if p.loops[i] != o.loops[i] {
			return false
		}
	}
	return true
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the path, computed over the same field tuple
// as Equal: equal paths always hash equal within a process.
func (p *X12Path) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	for _, loop := range p.loops {
		h.WriteString(loop)
		h.WriteByte(0)
	}
	h.WriteString(p.segID)
	h.WriteByte(0)
	h.WriteString(p.qualifier)
	h.WriteByte(0)
	hashIdx(&h, p.eleIdx)
	hashIdx(&h, p.subeleIdx)
	if p.absolute {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
	return h.Sum64()
}

func hashIdx(h *maphash.Hash, v *int) {
	if v == nil {
		h.WriteByte(0)
		return
	}
	h.WriteByte(1)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(*v))
	h.Write(b[:])
}

// IsChildPath reports whether candidate addresses a location strictly below
// this path.  It is a textual strict-prefix test over canonical strings, not
// a separator-boundary-aware test: "/LOOP1" is reported as a parent of
// "/LOOP10".
func (p *X12Path) IsChildPath(candidate string) bool {
	root := p.String()
	return len(candidate) > len(root) && strings.HasPrefix(candidate, root)
}

func (p *X12Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *X12Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = *pp
	return nil
}
