package catalog

import (
	"testing"

	"parks-api/internal/override"
	"parks-api/internal/park"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []park.Park {
	return []park.Park{
		{ID: "1", Name: "Zierpark", Address: "Gasse 1, 1100 Wien", District: 10, Area: 500,
			Coordinates: park.Coordinates{Lat: 48.17, Lng: 16.38}, Amenities: []string{"Grünfläche", "Spielplatz"}},
		{ID: "2", Name: "Ärztepark", Address: "Spitalgasse, 1090 Wien", District: 9, Area: 1500,
			Coordinates: park.Coordinates{Lat: 48.22, Lng: 16.35}, Amenities: []string{"Grünfläche"}},
		{ID: "3", Name: "Augarten", Address: "Obere Augartenstraße, 1020 Wien", District: 2, Area: 520000,
			Coordinates: park.Coordinates{Lat: 48.2318, Lng: 16.3947}, Amenities: []string{"Spielplatz", "Hundezone", "Grünfläche"}},
		{ID: "4", Name: "Burggarten", Address: "Burgring, 1010 Wien", District: 1, Area: 38000,
			Coordinates: park.Coordinates{Lat: 48.2014, Lng: 16.3644}, Amenities: []string{"Grünfläche", "Bänke"}},
		{ID: "5", Name: "Kleiner Park", Address: "Ring, 1010 Wien", District: 1, Area: 500,
			Coordinates: park.Coordinates{Lat: 48.2082, Lng: 16.3738}, Amenities: []string{"Bänke"}},
	}
}

func idsOf(ps []park.Park) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestParseSort(t *testing.T) {
	s, err := ParseSort("")
	require.NoError(t, err)
	assert.Equal(t, SortAreaDesc, s)
	s, err = ParseSort("name_desc")
	require.NoError(t, err)
	assert.Equal(t, SortNameDesc, s)
	_, err = ParseSort("random")
	assert.Error(t, err)
}

func TestApplyFilters(t *testing.T) {
	ps := fixtures()
	cases := []struct {
		name string
		q    Query
		want []string
	}{
		{"no filter keeps input order", Query{Sort: SortNone}, []string{"1", "2", "3", "4", "5"}},
		{"search name case-insensitive", Query{Search: "GARTEN", Sort: SortNone}, []string{"3", "4"}},
		{"search address", Query{Search: "spitalgasse", Sort: SortNone}, []string{"2"}},
		{"district", Query{District: 1, Sort: SortNone}, []string{"4", "5"}},
		{"amenities all required", Query{Amenities: []string{"Spielplatz", "Grünfläche"}, Sort: SortNone}, []string{"1", "3"}},
		{"combined", Query{Search: "park", District: 1, Amenities: []string{"Bänke"}, Sort: SortNone}, []string{"5"}},
		{"no match", Query{Search: "prater"}, []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, idsOf(Apply(ps, c.q)))
		})
	}
}

func TestApplySort(t *testing.T) {
	ps := fixtures()
	origin := park.Coordinates{Lat: 48.2085, Lng: 16.3721}
	cases := []struct {
		name string
		q    Query
		want []string
	}{
		{"area desc stable", Query{Sort: SortAreaDesc}, []string{"3", "4", "2", "1", "5"}},
		{"area asc stable", Query{Sort: SortAreaAsc}, []string{"1", "5", "2", "4", "3"}},
		{"name asc german", Query{Sort: SortNameAsc}, []string{"2", "3", "4", "5", "1"}},
		{"name desc german", Query{Sort: SortNameDesc}, []string{"1", "5", "4", "3", "2"}},
		{"district", Query{Sort: SortDistrict}, []string{"4", "5", "3", "2", "1"}},
		{"nearest", Query{Sort: SortNearest, Origin: &origin}, []string{"5", "4", "2", "3", "1"}},
		{"nearest without origin", Query{Sort: SortNearest}, []string{"1", "2", "3", "4", "5"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, idsOf(Apply(ps, c.q)))
		})
	}
}

func TestApplyDoesNotReorderInput(t *testing.T) {
	ps := fixtures()
	_ = Apply(ps, Query{Sort: SortNameAsc})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, idsOf(ps))
}

func TestDistrictsAndAmenities(t *testing.T) {
	ps := fixtures()
	assert.Equal(t, []int{1, 2, 9, 10}, Districts(ps))
	assert.Equal(t, []string{"Bänke", "Grünfläche", "Hundezone", "Spielplatz"}, Amenities(ps))
	assert.Empty(t, Districts(nil))
}

func TestFind(t *testing.T) {
	ps := fixtures()
	p, ok := Find(ps, "3")
	require.True(t, ok)
	assert.Equal(t, "Augarten", p.Name)

	p, ok = Find(ps, "aerztepark")
	require.True(t, ok)
	assert.Equal(t, "2", p.ID)

	_, ok = Find(ps, "prater")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	store := override.New(map[string]override.Override{
		"3":          {Description: "Barockgarten"},
		"burggarten": {Tips: []string{"Schmetterlingshaus"}},
	})
	ps := fixtures()

	byID := Merge(ps[2], store)
	assert.Equal(t, "Barockgarten", byID.Description)

	bySlug := Merge(ps[3], store)
	assert.Equal(t, []string{"Schmetterlingshaus"}, bySlug.Tips)
	assert.Empty(t, ps[3].Tips, "merge must not touch the cached record")

	none := Merge(ps[0], store)
	assert.Equal(t, ps[0], none)
	none.Amenities[0] = "changed"
	assert.Equal(t, "Grünfläche", ps[0].Amenities[0])
}

func TestNearby(t *testing.T) {
	ps := fixtures()
	store := override.New(map[string]override.Override{"4": {Description: "Palmenhaus"}})

	near := Nearby(ps, ps[4], 2, store)
	require.Len(t, near, 2)
	assert.Equal(t, "4", near[0].Park.ID)
	assert.Equal(t, "Palmenhaus", near[0].Park.Description)
	assert.Equal(t, "2", near[1].Park.ID)
	assert.Less(t, near[0].DistanceKm, near[1].DistanceKm)

	all := Nearby(ps, ps[4], 0, nil)
	assert.Len(t, all, 4)
	for _, r := range all {
		assert.NotEqual(t, "5", r.Park.ID)
	}
}
