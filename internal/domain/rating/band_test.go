package rating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{100, BandGreat},
		{80, BandGreat},
		{79, BandGood},
		{60, BandGood},
		{59, BandOK},
		{40, BandOK},
		{39, BandFair},
		{20, BandFair},
		{19, BandPoor},
		{0, BandPoor},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Classify(tc.score), "score %v", tc.score)
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	require.Equal(t, BandPoor, Classify(-5))
	require.Equal(t, BandGreat, Classify(150))
}

func TestClassifyIsTotal(t *testing.T) {
	for r := -10.0; r <= 110; r++ {
		band := Classify(r)
		switch band {
		case BandGreat, BandGood, BandOK, BandFair, BandPoor:
		default:
			t.Fatalf("unexpected band %q for %v", band, r)
		}
	}
}

func TestAdaptersShareThresholds(t *testing.T) {
	desc := Describe(80)
	require.Equal(t, BandGreat, desc.Label)
	require.Equal(t, "#4ADE80", desc.Hex.Text)
	require.Equal(t, "#ECFDF5", desc.Hex.Background)
	require.Equal(t, "text-emerald-400", desc.CSS.Text)

	desc = Describe(12)
	require.Equal(t, BandPoor, desc.Label)
	require.Equal(t, "#F87171", desc.Hex.Text)
	require.Equal(t, "bg-red-50", desc.CSS.Background)
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0.0, Clamp(-3))
	require.Equal(t, 100.0, Clamp(140))
	require.Equal(t, 55.0, Clamp(55))
}

func TestDelta(t *testing.T) {
	require.Equal(t, 5.0, Delta(80, 75))
	require.Equal(t, -10.0, Delta(60, 70))
}
