// Package testing provides a harness for testing yalem widget trees
// without a platform layer.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions on what was drawn:
//
//	func TestCounter(t *testing.T) {
//	    tester := yalemtest.NewTesterWithT(t)
//	    tester.SetSize(rendering.Size{Width: 300, Height: 300})
//	    require.NoError(t, tester.Pump(tree))
//
//	    require.NoError(t, tester.TapAt(rendering.Offset{X: 5, Y: 5}))
//	    assert.Contains(t, tester.Texts(), "Click -> 2")
//	}
//
// Pump draws through an engine.Window onto a recording surface, so the
// draw pass is exactly the one the platform would run. TapAt dispatches a
// left press and then redraws, the same order the platform loop uses.
//
// # Probes
//
// A [Probe] is a leaf with a fixed size that records every context and
// event it receives, for asserting the contexts a container derives.
//
// # Snapshot Testing
//
// Compare the recorded display list against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/padding.snapshot.json")
//
// Update golden files with:
//
//	YALEM_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import yalemtest "github.com/yalem-ui/yalem/pkg/testing"
package testing
