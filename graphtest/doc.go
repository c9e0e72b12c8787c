// Package graphtest provides a representation-agnostic conformance suite for
// implementations of digraph.Graph.
//
// The suite obtains graphs exclusively through a Factory and exercises them
// purely through the Graph interface — it never references a concrete type,
// so any implementation satisfying the contract can be validated with a
// one-line test:
//
//	func TestMyGraph(t *testing.T) {
//	    graphtest.Run(t, "MyGraph", func() digraph.Graph { return myNew() })
//	}
//
// RunDifferential additionally drives two implementations through identical
// operation sequences and requires their observable state to match after
// every step, which is how the two shipped representations are held
// behaviorally indistinguishable.
package graphtest
