package typesys

import (
	"fmt"
	"strings"
)

// Function interns and returns the type Function(params, ret). ret may be
// Void. Parameters are positional; their names are not part of the type.
func (ts *TypeSystem) Function(params []TypeId, ret TypeId) TypeId {
	var b strings.Builder
	for _, p := range params {
		fmt.Fprintf(&b, "%s,", p)
	}
	key := fmt.Sprintf("(%s)->%s", b.String(), ret)
	if d, ok := ts.functions[key]; ok {
		return TypeId{d: d}
	}
	d := &descriptor{kind: KindFunction, params: append([]TypeId(nil), params...), ret: ret}
	ts.functions[key] = d
	return TypeId{d: d}
}
