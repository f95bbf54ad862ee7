package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glypha-labs/glypha/internal/font"
	"github.com/glypha-labs/glypha/internal/registry"
	"github.com/glypha-labs/glypha/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newAPI(t *testing.T) (*Client, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(server.New(reg, server.WithLogger(logger), server.WithVersion("1.4.0")).Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL+"/api", WithHTTPClient(ts.Client())), reg
}

func TestEndToEndScenario(t *testing.T) {
	c, _ := newAPI(t)
	ctx := context.Background()

	roboto, err := c.CreateFont(ctx, font.Input{Name: "Roboto"})
	require.NoError(t, err)
	assert.Equal(t, 1, roboto.ID)
	assert.Equal(t, "Roboto", roboto.Name)

	sansation, err := c.CreateFont(ctx, font.Input{Name: "Sansation"})
	require.NoError(t, err)
	assert.Equal(t, 2, sansation.ID)

	fonts, err := c.ListFonts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []font.Record{roboto, sansation}, fonts)

	deleted, err := c.DeleteFont(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, roboto, deleted)

	fonts, err = c.ListFonts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []font.Record{sansation}, fonts)
}

func TestGetAndUpdate(t *testing.T) {
	c, _ := newAPI(t)
	ctx := context.Background()

	created, err := c.CreateFont(ctx, font.Input{Name: "Montserrat", Size: "16px", Category: "Moderna"})
	require.NoError(t, err)

	updated, err := c.UpdateFont(ctx, created.ID, font.Patch{Weight: strPtr("bold")})
	require.NoError(t, err)
	assert.Equal(t, font.WeightBold, updated.Weight)
	assert.Equal(t, "16px", updated.Size)

	got, err := c.GetFont(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRemoteErrors(t *testing.T) {
	c, reg := newAPI(t)
	ctx := context.Background()

	_, err := c.CreateFont(ctx, font.Input{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Equal(t, 0, reg.Len())

	_, err = c.UpdateFont(ctx, 5, font.Patch{Name: strPtr("Lato")})
	assert.Equal(t, http.StatusNotFound, StatusOf(err))

	_, err = c.DeleteFont(ctx, 5)
	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusNotFound, re.Status)
	assert.Equal(t, "error deleting font: font 5 not found", re.Message)
	assert.Equal(t, "DELETE /fonts/5: status 404: error deleting font: font 5 not found", re.Error())

	_, err = c.GetFont(ctx, 5)
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestServerVersion(t *testing.T) {
	c, _ := newAPI(t)
	v, err := c.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestStatusTextFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream down</html>"))
	}))
	defer ts.Close()

	_, err := New(ts.URL).ListFonts(context.Background())
	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusBadGateway, re.Status)
	assert.Equal(t, "Bad Gateway", re.Message)
}

func TestRequestHeaders(t *testing.T) {
	var gotUA, gotCT string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCT = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"name":"Roboto"}`))
	}))
	defer ts.Close()

	rec, err := New(ts.URL+"/", WithUserAgent("glypha-test")).CreateFont(context.Background(), font.Input{Name: "Roboto"})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "glypha-test", gotUA)
	assert.Equal(t, "application/json", gotCT)
}

func TestTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(url).ListFonts(context.Background())
	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 0, re.Status)
	assert.NotNil(t, re.Err)
}

func TestLocalFailuresAreRemoteErrors(t *testing.T) {
	t.Run("bad base url", func(t *testing.T) {
		_, err := New("http://bad\x7fhost/api").ListFonts(context.Background())
		var re *RemoteError
		require.True(t, errors.As(err, &re), "got %T: %v", err, err)
		assert.Equal(t, 0, re.Status)
		assert.Equal(t, "creating request", re.Message)
		assert.Equal(t, "/fonts", re.Path)
		assert.NotNil(t, re.Err)
	})

	t.Run("unencodable body", func(t *testing.T) {
		err := New("http://localhost").do(context.Background(), http.MethodPost, "/fonts", make(chan int), nil)
		var re *RemoteError
		require.True(t, errors.As(err, &re), "got %T: %v", err, err)
		assert.Equal(t, 0, StatusOf(err))
		assert.Equal(t, "encoding request body", re.Message)
	})
}

func TestCancelledContext(t *testing.T) {
	c, _ := newAPI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListFonts(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMalformedSuccessBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).ListFonts(context.Background())
	assert.Equal(t, http.StatusOK, StatusOf(err))
}
