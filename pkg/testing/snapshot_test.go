package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalem-ui/yalem/pkg/rendering"
	"github.com/yalem-ui/yalem/pkg/widgets"
)

func pumpText(t *testing.T, text string) *Tester {
	t.Helper()
	tester := NewTesterWithT(t)
	tester.SetSize(rendering.Size{Width: 60, Height: 30})
	require.NoError(t, tester.Pump(widgets.NewText(text).Build()))
	return tester
}

func TestCaptureSnapshot(t *testing.T) {
	snap := pumpText(t, "Hi").CaptureSnapshot()

	assert.Equal(t, [2]float64{60, 30}, snap.Size)
	assert.Equal(t, []string{
		"clear color=#ffffffff",
		`text "Hi" at=(0,9) align=left color=#ff000000`,
	}, snap.DisplayOps)
}

func TestSnapshot_Diff(t *testing.T) {
	a := pumpText(t, "a").CaptureSnapshot()
	b := pumpText(t, "b").CaptureSnapshot()

	assert.Empty(t, a.Diff(pumpText(t, "a").CaptureSnapshot()))

	diff := b.Diff(a)
	assert.Contains(t, diff, "--- expected")
	assert.Contains(t, diff, "+++ actual")
	assert.True(t, strings.Contains(diff, `-    "text \"a\"`), diff)
	assert.True(t, strings.Contains(diff, `+    "text \"b\"`), diff)
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := pumpText(t, "Hi").CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "nested", "text.snapshot.json")

	require.NoError(t, snap.UpdateFile(path))
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := pumpText(t, "Hi").CaptureSnapshot()

	rec := &recorder{name: t.Name()}
	snap.MatchesFile(rec, filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, rec.fatal)
	assert.Contains(t, rec.msg, UpdateSnapshotsEnv+"=1")
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, pumpText(t, "first").CaptureSnapshot().UpdateFile(path))

	rec := &recorder{name: t.Name()}
	pumpText(t, "second").CaptureSnapshot().MatchesFile(rec, path)
	assert.True(t, rec.errored)
	assert.False(t, rec.fatal)
}

func TestSnapshot_MatchesFile_InvalidJSON(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	rec := &recorder{name: t.Name()}
	pumpText(t, "x").CaptureSnapshot().MatchesFile(rec, path)
	assert.True(t, rec.fatal)
}

func TestSnapshot_UpdateMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "update.snapshot.json")
	t.Setenv(UpdateSnapshotsEnv, "1")

	pumpText(t, "Hi").CaptureSnapshot().MatchesFile(t, path)

	_, err := os.Stat(path)
	assert.NoError(t, err, "snapshot file should be created in update mode")
}

// recorder intercepts failures reported by MatchesFile.
type recorder struct {
	name    string
	fatal   bool
	errored bool
	msg     string
}

func (r *recorder) Helper() {}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Fatalf(format string, args ...any) {
	r.fatal = true
	r.msg = fmt.Sprintf(format, args...)
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errored = true
	r.msg = fmt.Sprintf(format, args...)
}
