// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"vextui.org/internal/opconst"
)

// Reader parses an ops list.
type Reader struct {
	pc   pc
	data []byte
	refs []interface{}
}

// EncodedOp represents an encoded op returned by
// Reader.
type EncodedOp struct {
	Type opconst.OpType
	Data []byte
	Refs []interface{}
}

type pc struct {
	data int
	refs int
}

// Reset start reading from the serialized op list and its
// external references.
func (r *Reader) Reset(data []byte, refs []interface{}) {
	r.pc = pc{}
	r.data = data
	r.refs = refs
}

// Decode the next op. It returns false at the end of the list.
func (r *Reader) Decode() (EncodedOp, bool) {
	data := r.data[r.pc.data:]
	if len(data) == 0 {
		return EncodedOp{}, false
	}
	t := opconst.OpType(data[0])
	n := t.Size()
	nrefs := t.NumRefs()
	if len(data) < n {
		panic("truncated op")
	}
	data = data[:n]
	refs := r.refs[r.pc.refs:]
	refs = refs[:nrefs]
	r.pc.data += n
	r.pc.refs += nrefs
	return EncodedOp{Type: t, Data: data, Refs: refs}, true
}
