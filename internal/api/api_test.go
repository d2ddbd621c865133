package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parks-api/internal/override"
	"parks-api/internal/park"
	"parks-api/internal/prefs"
	"parks-api/internal/storage"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParks struct {
	parks   []park.Park
	err     error
	cleared int
}

func (f *fakeParks) GetParks(context.Context) ([]park.Park, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.parks, nil
}

func (f *fakeParks) ClearCache(context.Context) error {
	f.cleared++
	return nil
}

func samplePark(id, name string, d, area int, lat, lng float64, amenities ...string) park.Park {
	return park.Park{
		ID: id, Name: name, Address: name + ", Wien", District: d, Area: area,
		Coordinates: park.Coordinates{Lat: lat, Lng: lng}, Amenities: amenities, Category: "Park",
	}
}

func newTestServer(t *testing.T, src *fakeParks) (*httptest.Server, *prefs.Store) {
	t.Helper()
	if src.parks == nil {
		src.parks = []park.Park{
			samplePark("1", "Stadtpark", 1, 65000, 48.2052, 16.3797, "Grünfläche", "Sitzgelegenheiten"),
			samplePark("2", "Burggarten", 1, 38000, 48.2014, 16.3644, "Grünfläche"),
			samplePark("4", "Augarten", 2, 520000, 48.2318, 16.3947, "Grünfläche", "Spielplatz"),
			samplePark("5", "Schönbrunner Schlosspark", 13, 1600000, 48.1858, 16.3019, "Grünfläche", "Sitzgelegenheiten"),
		}
	}
	ps := prefs.New(storage.NewMemory())
	mux := BuildRoutes(Deps{
		Parks:       src,
		Overrides:   override.New(map[string]override.Override{"augarten": {Description: "Ältester Barockgarten Wiens"}}),
		Prefs:       ps,
		AdminToken:  "secret",
		SiteBaseURL: "https://example.at",
		Now:         func() time.Time { return time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC) },
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, ps
}

func do(t *testing.T, srv *httptest.Server, method, path string, headers map[string]string, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestListParks(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})

	resp, body := do(t, srv, http.MethodGet, "/parks", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("cache-control"))
	assert.Contains(t, resp.Header.Get("content-type"), "application/json")

	var out listResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 4, out.Count)
	assert.Equal(t, "desc", string(out.Sort))
	assert.Equal(t, "5", out.Parks[0].ID)
	assert.Equal(t, []int{1, 2, 13}, out.Districts)
	assert.Equal(t, []string{"Grünfläche", "Sitzgelegenheiten", "Spielplatz"}, out.Amenities)
}

func TestListParksQuery(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})
	cases := []struct {
		path string
		want []string
	}{
		{"/parks?district=1&sort=name_asc", []string{"2", "1"}},
		{"/parks?district=all&search=GARTEN&sort=asc", []string{"2", "4"}},
		{"/parks?amenities=Gr%C3%BCnfl%C3%A4che,Sitzgelegenheiten&sort=district_asc", []string{"1", "5"}},
		{"/parks?sort=nearest&lat=48.2085&lng=16.3721", []string{"1", "2", "4", "5"}},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			resp, body := do(t, srv, http.MethodGet, c.path, nil, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var out listResponse
			require.NoError(t, json.Unmarshal(body, &out))
			ids := []string{}
			for _, p := range out.Parks {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, c.want, ids)
		})
	}
}

func TestListParksBadQuery(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})
	for _, path := range []string{"/parks?district=24", "/parks?district=x", "/parks?sort=random", "/parks?lat=48.2", "/parks?lat=91&lng=16"} {
		resp, body := do(t, srv, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Contains(t, string(body), "message")
	}
}

func TestDataUnavailable(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{err: errors.New("no park data available")})
	for _, path := range []string{"/parks", "/parks/1", "/stats", "/districts", "/sitemap.xml"} {
		resp, body := do(t, srv, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
		assert.JSONEq(t, `{"message":"park data is currently unavailable"}`, string(body))
	}
}

func TestParkDetail(t *testing.T) {
	srv, ps := newTestServer(t, &fakeParks{})
	require.NoError(t, ps.AddFavorite(context.Background(), "c1", "4"))

	resp, body := do(t, srv, http.MethodGet, "/parks/augarten", map[string]string{"x-client-id": "c1"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out detailResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "4", out.Park.ID)
	assert.Equal(t, "Ältester Barockgarten Wiens", out.Park.Description)
	assert.True(t, out.Favorite)
	require.Len(t, out.Nearby, 3)
	assert.Equal(t, "1", out.Nearby[0].Park.ID)
	for _, n := range out.Nearby {
		assert.NotEqual(t, "4", n.Park.ID)
	}

	resp, body = do(t, srv, http.MethodGet, "/parks/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Stadtpark", out.Park.Name)
	assert.False(t, out.Favorite)

	resp, _ = do(t, srv, http.MethodGet, "/parks/prater", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatsAndDistricts(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})

	resp, body := do(t, srv, http.MethodGet, "/stats", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var s map[string]any
	require.NoError(t, json.Unmarshal(body, &s))
	assert.EqualValues(t, 4, s["parkCount"])
	assert.Equal(t, "2.22 km²", s["totalAreaFormatted"])

	resp, body = do(t, srv, http.MethodGet, "/districts", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ds []districtEntry
	require.NoError(t, json.Unmarshal(body, &ds))
	require.Len(t, ds, 23)
	assert.Equal(t, "Innere Stadt", ds[0].Name)
	assert.Equal(t, 2, ds[0].ParkCount)
	assert.Equal(t, 0, ds[2].ParkCount)
}

func TestSitemap(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})
	resp, body := do(t, srv, http.MethodGet, "/sitemap.xml", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("content-type"), "application/xml")
	assert.Contains(t, string(body), "<loc>https://example.at/index/schoenbrunner-schlosspark</loc>")
	assert.Contains(t, string(body), "<lastmod>2024-05-06T00:00:00Z</lastmod>")
}

func TestFavoritesFlow(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})
	client := map[string]string{"x-client-id": "client-1"}

	resp, _ := do(t, srv, http.MethodGet, "/favorites", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, srv, http.MethodPut, "/favorites/1", client, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"1","favorite":true}`, string(body))

	resp, body = do(t, srv, http.MethodPost, "/favorites/gone/toggle", client, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"gone","favorite":true}`, string(body))

	resp, body = do(t, srv, http.MethodGet, "/favorites", client, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fav favoritesResponse
	require.NoError(t, json.Unmarshal(body, &fav))
	assert.Equal(t, []string{"1", "gone"}, fav.IDs)
	require.Len(t, fav.Parks, 1)
	assert.Equal(t, "Stadtpark", fav.Parks[0].Name)

	resp, body = do(t, srv, http.MethodDelete, "/favorites/1", client, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"1","favorite":false}`, string(body))
}

func TestPrefs(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})
	client := map[string]string{"x-client-id": "client-1"}

	resp, body := do(t, srv, http.MethodGet, "/prefs", client, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"searchTerm":"","district":0,"sortOrder":"desc","amenities":[],"locationPermission":null}`, string(body))

	resp, body = do(t, srv, http.MethodPut, "/prefs", client, `{"searchTerm":"garten","district":2,"sortOrder":"nearest","amenities":["Spielplatz"],"locationPermission":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"searchTerm":"garten","district":2,"sortOrder":"nearest","amenities":["Spielplatz"],"locationPermission":false}`, string(body))

	resp, _ = do(t, srv, http.MethodPut, "/prefs", client, `{"sortOrder":"random"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPut, "/prefs", client, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRefresh(t *testing.T) {
	src := &fakeParks{}
	srv, _ := newTestServer(t, src)

	resp, _ := do(t, srv, http.MethodPost, "/refresh", nil, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPost, "/refresh", map[string]string{"x-admin-token": "wrong"}, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, src.cleared)

	resp, body := do(t, srv, http.MethodPost, "/refresh", map[string]string{"x-admin-token": "secret"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"count":4}`, string(body))
	assert.Equal(t, 1, src.cleared)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, &fakeParks{})
	resp, _ := do(t, srv, http.MethodPost, "/parks", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
