package x12path

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// refdesRx matches a ref designator token, anchored at both ends: an optional
// segment identifier, an optional bracketed qualifier, an optional two-digit
// element index, and an optional dash-prefixed sub-element index.  Every part
// is optional, so only tokens containing characters outside the grammar fail
// to match.
var refdesRx = regexp.MustCompile(
	`^([A-Z][A-Z0-9]{1,2})?` + // segment identifier
		`(?:\[([A-Z0-9]+)\])?` + // qualifier
		`([0-9]{2})?` + // element index
		`(?:-([0-9]+))?$`) // sub-element index

type refdes struct {
	segID     string
	qualifier string
	eleIdx    *int
	subeleIdx *int
}

// matchRefDes reads tok as a ref designator.  It returns ok=false when tok
// does not fit the grammar; callers treat such tokens as ordinary loop
// identifiers.
func matchRefDes(tok string) (refdes, bool) {
	m := refdesRx.FindStringSubmatch(tok)
	if m == nil {
		return refdes{}, false
	}
	rd := refdes{
		segID:     m[1],
		qualifier: m[2],
	}
	if m[3] != "" {
		idx, err := strconv.Atoi(m[3])
		if err != nil {
			return refdes{}, false
		}
		rd.eleIdx = &idx
	}
	if m[4] != "" {
		idx, err := strconv.Atoi(m[4])
		if err != nil {
			return refdes{}, false
		}
		rd.subeleIdx = &idx
	}
	return rd, true
}

// fmtRefDes serializes the ref designator portion of a path: the segment
// identifier, the qualifier in brackets, the element index zero-padded to two
// digits, and the sub-element index after a dash.
func (p *X12Path) fmtRefDes() string {
	var b strings.Builder
	if p.segID != "" {
		b.WriteString(p.segID)
		if p.qualifier != "" {
			b.WriteByte('[')
			b.WriteString(p.qualifier)
			b.WriteByte(']')
		}
	}
	if p.eleIdx != nil {
		fmt.Fprintf(&b, "%02d", *p.eleIdx)
	}
	if p.subeleIdx != nil {
		fmt.Fprintf(&b, "-%d", *p.subeleIdx)
	}
	return b.String()
}
