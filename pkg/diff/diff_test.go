package diff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/diff"
)

func TestComputeNoChange(t *testing.T) {
	t.Parallel()

	assert.Nil(t, diff.Compute("A.BAS", nil, nil))
	assert.Nil(t, diff.Compute("A.BAS", []byte("CLS\nEND\n"), []byte("CLS\nEND\n")))
	assert.Empty(t, (*diff.Diff)(nil).String())
}

func TestComputeSingleChange(t *testing.T) {
	t.Parallel()

	before := "CLS\nprint x\nEND\n"
	after := "CLS\nPRINT x\nEND\n"
	d := diff.Compute("A.BAS", []byte(before), []byte(after))
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Insertions)
	assert.Equal(t, 1, d.Deletions)

	want := strings.Join([]string{
		"--- a/A.BAS",
		"+++ b/A.BAS",
		"@@ -1,3 +1,3 @@",
		" CLS",
		"-print x",
		"+PRINT x",
		" END",
		"",
	}, "\n")
	assert.Equal(t, want, d.String())
}

func TestComputeSeparateHunks(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := range 20 {
		line := "REM " + strings.Repeat("x", i)
		before = append(before, line)
		after = append(after, line)
	}
	before[1], after[1] = "a = 1", "A = 1"
	before[18], after[18] = "b = 2", "B = 2"

	d := diff.Compute("A.BAS", []byte(strings.Join(before, "\n")+"\n"), []byte(strings.Join(after, "\n")+"\n"))
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 2)

	assert.Equal(t, 1, d.Hunks[0].OldStart)
	assert.Equal(t, 5, d.Hunks[0].OldCount)
	assert.Equal(t, 16, d.Hunks[1].OldStart)
	assert.Equal(t, 5, d.Hunks[1].OldCount)
}

func TestComputeNearbyChangesMerge(t *testing.T) {
	t.Parallel()

	before := "a\nb\nc\nd\ne\nf\n"
	after := "A\nb\nc\nd\ne\nF\n"
	d := diff.Compute("A.BAS", []byte(before), []byte(after))
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 1)
	assert.Equal(t, 6, d.Hunks[0].OldCount)
	assert.Equal(t, 6, d.Hunks[0].NewCount)
}

func TestComputeLineEndings(t *testing.T) {
	t.Parallel()

	d := diff.Compute("A.BAS", []byte("CLS\r\n"), []byte("CLS\n"))
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Insertions)
	assert.Equal(t, 1, d.Deletions)
}

func TestComputeFromEmpty(t *testing.T) {
	t.Parallel()

	d := diff.Compute("NEW.BAS", nil, []byte("END\n"))
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 1)
	assert.Equal(t, 0, d.Hunks[0].OldStart)
	assert.Equal(t, 0, d.Hunks[0].OldCount)
	assert.Contains(t, d.String(), "@@ -0,0 +1,1 @@")
}
