// Package x12path provides parsing and formatting of X12 path addresses.
//
// An X12 path addresses a location inside a hierarchical X12 document: a
// sequence of loop identifiers, optionally followed by a ref designator
// naming a segment, a qualifier, an element position, and a sub-element
// position:
//
//	/LOOP_1/LOOP_2
//	/LOOP_1/LOOP_2/SEG
//	/LOOP_1/LOOP_2/SEG02
//	/LOOP_1/LOOP_2/SEG[424]02-1
//	SEG[434]02-1
//	02-1
//	02
//
// A path with no leading separator is relative.
//
// # Usage
//
//	// Parse a path
//	p, err := x12path.Parse("/ISA_LOOP/GS_LOOP/GE01")
//
//	// Canonical forms
//	s := p.String()  // full path
//	rd := p.RefDes() // ref designator only
//
//	// Containment
//	ok := p.IsChildPath("/ISA_LOOP/GS_LOOP/GE01-2")
//
// X12Path values support equality and hashing but no ordering; two paths are
// equal exactly when all of their structural fields are equal.
package x12path
