package proxychain

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const target = "https://data.example.org/geo?service=WFS&outputFormat=json"

func TestExpand(t *testing.T) {
	raw, err := Parse("", "https://corsproxy.io/?{+url}")
	require.NoError(t, err)
	u, err := raw.Expand(target)
	require.NoError(t, err)
	assert.Equal(t, "https://corsproxy.io/?"+target, u)
	assert.Equal(t, "corsproxy.io", raw.Name)

	enc, err := Parse("", "https://api.allorigins.win/raw?url={url}")
	require.NoError(t, err)
	u, err = enc.Expand(target)
	require.NoError(t, err)
	assert.Equal(t, "https://api.allorigins.win/raw?url=https%3A%2F%2Fdata.example.org%2Fgeo%3Fservice%3DWFS%26outputFormat%3Djson", u)

	direct, err := Parse("", DirectTemplate)
	require.NoError(t, err)
	assert.Equal(t, "direct", direct.Name)
}

func TestParseAllDefaults(t *testing.T) {
	ps, err := ParseAll(DefaultTemplates)
	require.NoError(t, err)
	c := New(ps, 0)
	assert.Equal(t, []string{"corsproxy.io", "api.allorigins.win", "cors-anywhere.herokuapp.com"}, c.Proxies())
}

func TestGetFallsThroughToNextProxy(t *testing.T) {
	var badHits, goodHits int32
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&badHits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&goodHits, 1)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, target, r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer good.Close()

	ps, err := ParseAll([]string{bad.URL + "/?{+url}", good.URL + "/raw?url={url}"})
	require.NoError(t, err)
	body, err := New(ps, time.Second).Get(context.Background(), target)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.EqualValues(t, 1, atomic.LoadInt32(&badHits))
	assert.EqualValues(t, 1, atomic.LoadInt32(&goodHits))
}

func TestGetSkipsNonSuccessStatus(t *testing.T) {
	notModified := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer notModified.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer good.Close()

	ps, err := ParseAll([]string{notModified.URL + "/?{+url}", good.URL + "/?{+url}"})
	require.NoError(t, err)
	body, err := New(ps, time.Second).Get(context.Background(), target)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	ps, err = ParseAll([]string{notModified.URL + "/?{+url}"})
	require.NoError(t, err)
	_, err = New(ps, time.Second).Get(context.Background(), target)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotModified, se.Code)
}

func TestGetStopsAtFirstSuccess(t *testing.T) {
	var second int32
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer first.Close()
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&second, 1)
	}))
	defer other.Close()

	ps, err := ParseAll([]string{first.URL + "/?{+url}", other.URL + "/?{+url}"})
	require.NoError(t, err)
	_, err = New(ps, time.Second).Get(context.Background(), target)
	require.NoError(t, err)
	assert.Zero(t, atomic.LoadInt32(&second))
}

func TestGetTimeoutCountsAsFailure(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer slow.Close()
	fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fast":1}`))
	}))
	defer fast.Close()

	ps, err := ParseAll([]string{slow.URL + "/?{+url}", fast.URL + "/?{+url}"})
	require.NoError(t, err)
	body, err := New(ps, 50*time.Millisecond).Get(context.Background(), target)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fast":1}`, string(body))
}

func TestGetAllFail(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	ps, err := ParseAll([]string{down.URL + "/a?{+url}", down.URL + "/b?{+url}"})
	require.NoError(t, err)
	_, err = New(ps, time.Second).Get(context.Background(), target)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllProxiesFailed)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
}

func TestGetNoProxies(t *testing.T) {
	_, err := New(nil, time.Second).Get(context.Background(), target)
	assert.ErrorIs(t, err, ErrNoProxies)
}
