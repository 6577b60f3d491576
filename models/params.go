package models

import (
	"fmt"
	"strings"
)

// Params is one parameter tuple for a strategy family. The meaning of each
// position is declared by the family's grid.
type Params []float64

func (p Params) Clone() Params {
	out := make(Params, len(p))
	copy(out, p)
	return out
}

func (p Params) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Less orders tuples lexically, element by element. Used as the final
// tie-breaker when ranking results.
func (p Params) Less(other Params) bool {
	for i := 0; i < len(p) && i < len(other); i++ {
		if p[i] != other[i] {
			return p[i] < other[i]
		}
	}
	return len(p) < len(other)
}
