// Package testing provides snapshot helpers for paint plans.
//
// A plan is replayed through a canvas that serializes every call into a
// DisplayOp. The resulting Snapshot can be compared against a golden JSON
// file:
//
//	plan, _ := specs.Build()
//	snap := pancaketest.CapturePlan(plan, nil)
//	snap.MatchesFile(t, "testdata/card.snapshot.json")
//
// Update golden files with:
//
//	PANCAKE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pancaketest "github.com/go-drift/pancake/pkg/testing"
package testing
