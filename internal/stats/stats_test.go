package stats

import (
	"testing"

	"parks-api/internal/park"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(id string, d, area int, lat, lng float64) park.Park {
	return park.Park{ID: id, Name: id, District: d, Area: area, Coordinates: park.Coordinates{Lat: lat, Lng: lng}}
}

func TestCompute(t *testing.T) {
	parks := []park.Park{
		p("A", 1, 100000, 48.21, 16.37),
		p("B", 1, 200000, 48.20, 16.36),
		p("C", 2, 50000, 48.23, 16.40),
		p("D", 22, 1000000, 48.22, 16.50),
	}
	s := Compute(parks)

	assert.Equal(t, 4, s.ParkCount)
	assert.Equal(t, 1350000, s.TotalArea)
	assert.InDelta(t, 337500, s.AverageArea, 1e-6)
	assert.InDelta(t, 0.32688, s.Coverage, 1e-4)

	require.Len(t, s.Districts, 3)
	d1 := s.Districts[0]
	assert.Equal(t, DistrictStats{District: 1, Name: "Innere Stadt", TotalArea: 300000, ParkCount: 2, Percentage: 10, AvgParkSize: 150000}, d1)
	assert.Equal(t, []int{1, 22, 2}, districtsOf(s.TopByPercentage))
	assert.Equal(t, []int{22, 1, 2}, districtsOf(s.TopByArea))

	assert.Equal(t, []string{"D", "B", "A", "C"}, idsOf(s.LargestParks))
	assert.Equal(t, "C", s.Northernmost.ID)
	assert.Equal(t, "B", s.Southernmost.ID)
	assert.Equal(t, "D", s.Easternmost.ID)
	assert.Equal(t, "B", s.Westernmost.ID)
	assert.Equal(t, "C", s.Smallest.ID)
	assert.Equal(t, "D", s.Largest.ID)
	assert.Equal(t, "A", s.Median.ID, "even count takes the lower middle")
	assert.Equal(t, "C", s.MostCentered.ID)
}

func TestComputeTiesKeepFirst(t *testing.T) {
	s := Compute([]park.Park{p("first", 1, 10, 48.2, 16.3), p("second", 1, 10, 48.2, 16.3), p("third", 1, 30, 48.1, 16.4)})
	assert.Equal(t, "first", s.Smallest.ID)
	assert.Equal(t, "first", s.Northernmost.ID)
	assert.Equal(t, "second", s.Median.ID)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)
	assert.Zero(t, s.ParkCount)
	assert.Empty(t, s.Districts)
	assert.NotNil(t, s.LargestParks)
	assert.Nil(t, s.Median)
	assert.Nil(t, s.MostCentered)
}

func TestComputeTopFive(t *testing.T) {
	var parks []park.Park
	for d := 1; d <= 8; d++ {
		parks = append(parks, p("x", d, d*1000, 48.2, 16.3))
	}
	s := Compute(parks)
	assert.Len(t, s.TopByArea, 5)
	assert.Len(t, s.TopByPercentage, 5)
	assert.Len(t, s.LargestParks, 5)
	assert.Equal(t, 8, s.TopByArea[0].District)
}

func TestFormatArea(t *testing.T) {
	cases := map[float64]string{
		1600000: "1.60 km²",
		1000000: "1.00 km²",
		38000:   "3.80 ha",
		12345.6: "1.23 ha",
		10000:   "1.00 ha",
		9999:    "9999 m²",
		500:     "500 m²",
		0:       "0 m²",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatArea(in), "%v", in)
	}
}

func districtsOf(ds []DistrictStats) []int {
	out := make([]int, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.District)
	}
	return out
}

func idsOf(ps []park.Park) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
