package expr

// Visitor is called for each node in pre-order.
//
// Calling next visits the node's children; a Visitor that does not call next prunes the
// subtree. Any error returned stops the walk.
type Visitor func(n Node, next func() error) error

// Visit every node in the tree rooted at n.
func Visit(n Node, visitor Visitor) error {
	return visitor(n, func() error {
		for _, child := range n.Children() {
			if err := Visit(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}
