package expr

// An Option modifies the behaviour of Parse.
type Option func(p *parser)

// MaxNesting limits how deeply parenthesised groups and "^" chains may nest.
//
// Input nested deeper than n levels fails to parse. Zero, the default, is unlimited.
func MaxNesting(n int) Option {
	return func(p *parser) {
		p.maxNesting = n
	}
}
