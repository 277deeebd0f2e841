//go:build forward_only

package xhtmlparser

// navFields is empty under the "forward_only" build tag: parent and
// previous-sibling links are never stored, so nodeRecord shrinks by
// two index fields. Node has no Parent()/PreviousSibling() methods in
// this build at all -- see navigation_on.go.
type navFields struct{}

func (n *nodeRecord) setParent(nodeIdx)      {}
func (n *nodeRecord) setPrevSibling(nodeIdx) {}
