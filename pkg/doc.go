// Package pkg is the namespace root for this module's libraries.
//
// # Overview
//
// The library lives in [pctree]: a PC-tree represents every cyclic
// permutation of a ground set of leaves that remains admissible under a
// growing collection of consecutivity restrictions. The chief operation,
// (*pctree.Tree).MakeConsecutive, either sharpens the tree to enforce a new
// restriction or reports that it conflicts with restrictions applied
// earlier.
//
// # Quick Start
//
//	t := pctree.NewTrivial(5)           // all 4! cyclic orders of 5 leaves
//	ok := t.MakeConsecutive([]int{0, 1, 2})
//	if !ok {
//	    // the restriction conflicts with one already applied
//	}
//	fmt.Println(t.PossibleOrders())      // orders still admissible
//	fmt.Println(t.String())              // canonical grammar rendering
//
// # Packages
//
// [pctree] - the PC-tree data structure: node storage and union-find
// (§4.1), labeling (§4.2), terminal-path search and the update engine
// (§4.3-4.4), queries (§4.5), and the canonical parser/serializer (§6).
//
// [errors] - the structured error taxonomy (invalid input / infeasible /
// bug) returned and panicked across package boundaries.
//
// [buildinfo] - ldflags-injected CLI version metadata.
//
// [pctree]: https://pkg.go.dev/github.com/matzehuels/pctree/pkg/pctree
// [errors]: https://pkg.go.dev/github.com/matzehuels/pctree/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pctree/pkg/buildinfo
package pkg
