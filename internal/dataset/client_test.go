package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGetter struct {
	body  []byte
	err   error
	calls int
	url   string
}

func (s *stubGetter) Get(_ context.Context, url string) ([]byte, error) {
	s.calls++
	s.url = url
	return s.body, s.err
}

const twoFeatures = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [16.37, 48.21]},
     "properties": {"OBJECTID": 42, "ANL_NAME": "Rathauspark"}},
    {"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[16.0, 48.0], [16.2, 48.0], [16.2, 48.2], [16.0, 48.0]]]},
     "properties": {"ANL_NAME": "Dreieck"}}
  ]
}`

func TestQueryURL(t *testing.T) {
	assert.Equal(t,
		"https://data.wien.gv.at/daten/geo?service=WFS&request=GetFeature&version=1.1.0&typeName=ogdwien:PARKINFOOGD&srsName=EPSG:4326&outputFormat=json",
		QueryURL(""))
	assert.Equal(t, "http://mirror.local/geo"+query, QueryURL("http://mirror.local/geo"))
}

func TestFetchDecodesFeatures(t *testing.T) {
	g := &stubGetter{body: []byte(twoFeatures)}
	c := NewClient(g, "")
	fs, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, c.URL(), g.url)

	p, ok := fs[0].Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, 48.21, p.Lat())
	assert.EqualValues(t, 42, fs[0].Properties["OBJECTID"])
	_, ok = fs[1].Geometry.(orb.Polygon)
	assert.True(t, ok)
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name string
		g    *stubGetter
		want error
	}{
		{"transport", &stubGetter{err: errors.New("boom")}, nil},
		{"not json", &stubGetter{body: []byte("<html>")}, ErrDecode},
		{"empty", &stubGetter{body: []byte(`{"type":"FeatureCollection","features":[]}`)}, ErrEmptyDataset},
		{"missing features", &stubGetter{body: []byte(`{"type":"FeatureCollection"}`)}, ErrEmptyDataset},
		{"wrong type", &stubGetter{body: []byte(`{"type":"Feature","features":[{"type":"Feature"}]}`)}, ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := NewClient(tt.g, "").Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, fs)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Equal(t, 1, tt.g.calls)
		})
	}
}

func TestSynthetic(t *testing.T) {
	fs := Synthetic()
	require.Len(t, fs, 5)

	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.Properties.MustString("PARKNAME"))
		_, ok := f.Geometry.(orb.Point)
		assert.True(t, ok)
	}
	assert.Equal(t, []string{"Stadtpark", "Burggarten", "Volksgarten", "Augarten", "Schönbrunner Schlosspark"}, names)
	assert.Equal(t, 1600000.0, fs[4].Properties["FLAECHE_M2"])
	assert.Equal(t, orb.Point{16.3947, 48.2318}, fs[3].Geometry)

	fs[0].Properties["PARKNAME"] = "changed"
	assert.Equal(t, "Stadtpark", Synthetic()[0].Properties["PARKNAME"])
}
