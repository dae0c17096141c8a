package pie

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *SegmentIndex {
	t.Helper()
	segs, err := ComputeSegments([]Item{{ID: "a", Value: 1}, {ID: "b", Value: 3}})
	require.NoError(t, err)
	return NewSegmentIndex(segs)
}

func TestSegmentIndex_FindByAngle(t *testing.T) {
	x := newTestIndex(t)

	seg, ok := x.FindByAngle(-math.Pi / 4)
	require.True(t, ok)
	assert.Equal(t, "a", seg.ID)

	seg, ok = x.FindByAngle(math.Pi)
	require.True(t, ok)
	assert.Equal(t, "b", seg.ID)
}

func TestSegmentIndex_BoundaryBelongsToNextSegment(t *testing.T) {
	x := newTestIndex(t)

	seg, ok := x.FindByAngle(0)
	require.True(t, ok)
	assert.Equal(t, "b", seg.ID)

	seg, ok = x.FindByAngle(-math.Pi / 2)
	require.True(t, ok)
	assert.Equal(t, "a", seg.ID)
}

func TestSegmentIndex_FindByAngleOutOfRange(t *testing.T) {
	x := newTestIndex(t)
	_, ok := x.FindByAngle(3 * math.Pi / 2)
	assert.False(t, ok)
	_, ok = x.FindByAngle(-math.Pi)
	assert.False(t, ok)
}

func TestSegmentIndex_FindByID(t *testing.T) {
	x := newTestIndex(t)

	seg, ok := x.FindByID("b")
	require.True(t, ok)
	assert.InDelta(t, 0.75, seg.Percent, 1e-12)

	_, ok = x.FindByID("missing")
	assert.False(t, ok)
}

func TestSegmentIndex_SegmentsIsCopy(t *testing.T) {
	x := newTestIndex(t)
	segs := x.Segments()
	segs[0].ID = "changed"
	assert.Equal(t, "a", x.Segments()[0].ID)
	assert.Equal(t, 2, x.Len())
}
