package hybridvec

import (
	"fmt"
	"strings"
)

// String returns a bracketed, comma-separated rendering of all elements in
// logical order, e.g. "[ 1, 2, 3 ]". An empty vector renders as "[ ]".
//
// Elements render with the %v verb. This may be an expensive operation for
// long vectors, as it collects all elements into a single string.
func (v *Vector[T]) String() string {
	var bf strings.Builder
	bf.WriteString("[ ")
	for i, value := range v.All() {
		if i > 0 {
			bf.WriteString(", ")
		}
		fmt.Fprintf(&bf, "%v", value)
	}
	if v.Len() > 0 {
		bf.WriteString(" ")
	}
	bf.WriteString("]")
	return bf.String()
}
