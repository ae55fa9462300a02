package expr

import "io"

// Trace the parse to "w".
//
// One line is written per production entered, indented by nesting, with the next
// unconsumed token:
//
//     Expression "1"
//       Term "1"
//         Factor "1"
//           Exponent "1"
func Trace(w io.Writer) Option {
	return func(p *parser) {
		p.trace = w
	}
}
