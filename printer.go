package expr

import (
	"fmt"
	"strings"
)

// Dump returns an indented, one node per line representation of the tree.
//
//     Op=MINUS depth=2
//       Op=MINUS depth=1
//         Literal=8 depth=0
//         Literal=3 depth=0
//       Literal=2 depth=0
func Dump(n Node) string {
	out := &strings.Builder{}
	indent := 0
	_ = Visit(n, func(n Node, next func() error) error {
		fmt.Fprintf(out, "%s%s depth=%d\n", strings.Repeat("  ", indent), n.Kind(), n.Depth())
		indent++
		err := next()
		indent--
		return err
	})
	return out.String()
}
