package pie

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSegments_TwoItems(t *testing.T) {
	segs, err := ComputeSegments([]Item{{ID: "a", Value: 1}, {ID: "b", Value: 3}})
	require.NoError(t, err)
	require.Len(t, segs, 2)

	assert.Equal(t, "a", segs[0].ID)
	assert.InDelta(t, 0.25, segs[0].Percent, 1e-12)
	assert.Equal(t, -math.Pi/2, segs[0].StartAngle)
	assert.Equal(t, 0.0, segs[0].EndAngle)

	assert.Equal(t, "b", segs[1].ID)
	assert.InDelta(t, 0.75, segs[1].Percent, 1e-12)
	assert.Equal(t, 0.0, segs[1].StartAngle)
	assert.Equal(t, 3*math.Pi/2, segs[1].EndAngle)
}

func TestComputeSegments_PartitionsCircle(t *testing.T) {
	cases := [][]Item{
		{{ID: "x", Value: 7}},
		{{ID: "a", Value: 0.1}, {ID: "b", Value: 0.2}, {ID: "c", Value: 0.3}},
		{{ID: "1", Value: 3}, {ID: "2", Value: 11}, {ID: "3", Value: 13}, {ID: "4", Value: 17}, {ID: "5", Value: 1e-3}},
	}
	for _, items := range cases {
		segs, err := ComputeSegments(items)
		require.NoError(t, err)

		sum := 0.0
		for i, s := range segs {
			sum += s.Percent
			assert.Less(t, s.StartAngle, s.EndAngle)
			if i > 0 {
				assert.Equal(t, segs[i-1].EndAngle, s.StartAngle, "segment %d must start where %d ends", i, i-1)
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
		assert.Equal(t, StartAngle, segs[0].StartAngle)
		assert.Equal(t, EndAngle, segs[len(segs)-1].EndAngle)
	}
}

func TestComputeSegments_KeepsInputOrder(t *testing.T) {
	segs, err := ComputeSegments([]Item{{ID: "z", Value: 1}, {ID: "a", Value: 100}, {ID: "m", Value: 10}})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, []string{segs[0].ID, segs[1].ID, segs[2].ID})
}

func TestComputeSegments_InvalidInput(t *testing.T) {
	cases := map[string][]Item{
		"empty":     nil,
		"zero":      {{ID: "a", Value: 0}},
		"negative":  {{ID: "a", Value: 2}, {ID: "b", Value: -1}},
		"nan":       {{ID: "a", Value: math.NaN()}},
		"inf":       {{ID: "a", Value: math.Inf(1)}},
		"no id":     {{ID: "", Value: 1}},
		"duplicate": {{ID: "a", Value: 1}, {ID: "a", Value: 2}},
	}
	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			segs, err := ComputeSegments(items)
			assert.Nil(t, segs)
			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.NotEmpty(t, invalid.Error())
		})
	}
}

func TestComputeSegments_EmptyListIsWholeListError(t *testing.T) {
	_, err := ComputeSegments(nil)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, -1, invalid.Index)
	assert.ErrorIs(t, err, errNoItems)
}

func TestAngleOf_Axes(t *testing.T) {
	assert.Equal(t, 0.0, AngleOf(5, 0))
	assert.Equal(t, math.Pi, AngleOf(-5, 0))
	assert.Equal(t, math.Pi, AngleOf(0, 0))
	assert.InDelta(t, math.Pi/2, AngleOf(0, 5), 1e-12)
	assert.InDelta(t, -math.Pi/2, AngleOf(0, -5), 1e-12)
}

func TestAngleOf_Quadrants(t *testing.T) {
	assert.InDelta(t, math.Pi/4, AngleOf(1, 1), 1e-12)
	assert.InDelta(t, 3*math.Pi/4, AngleOf(-1, 1), 1e-12)
	assert.InDelta(t, -math.Pi/4, AngleOf(1, -1), 1e-12)
	assert.InDelta(t, 5*math.Pi/4, AngleOf(-1, -1), 1e-12)
}

func TestAngleOf_StaysInRange(t *testing.T) {
	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180
		dx, dy := math.Cos(rad)*50, math.Sin(rad)*50
		a := AngleOf(dx, dy)
		assert.GreaterOrEqual(t, a, -math.Pi/2)
		assert.Less(t, a, 3*math.Pi/2)
		// Same direction as the stdlib, modulo a full turn.
		diff := math.Mod(a-math.Atan2(dy, dx)+4*math.Pi, 2*math.Pi)
		assert.InDelta(t, 0, math.Min(diff, 2*math.Pi-diff), 1e-9, "deg %d", deg)
	}
}

func TestAngleOf_WrapsToReference(t *testing.T) {
	a := AngleOf(-1e-320, -1)
	assert.Less(t, a, 3*math.Pi/2)
	assert.GreaterOrEqual(t, a, -math.Pi/2)
}

func TestRadiusOf(t *testing.T) {
	assert.Equal(t, 5.0, RadiusOf(3, 4))
	assert.Equal(t, 5.0, RadiusOf(-3, -4))
	assert.Equal(t, 0.0, RadiusOf(0, 0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "23.46%", FormatPercent(0.23456))
	assert.Equal(t, "25%", FormatPercent(0.25))
	assert.Equal(t, "33.33%", FormatPercent(1.0/3))
	assert.Equal(t, "100%", FormatPercent(1))
}
