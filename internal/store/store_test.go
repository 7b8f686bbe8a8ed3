package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/recview/internal/record"
)

const usersJSON = `[
	{"id":1,"name":"Leanne Graham","address":{"city":"Gwenborough"}},
	{"id":2,"name":"Ervin Howell","address":{"city":"Wisokyburgh"}}
]`

func serve(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, usersJSON)

	records, err := NewHTTPFetcher(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "name", "address"}, records[0].Keys())
}

func TestHTTPFetcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", wantErr: ErrUnexpectedStatus},
		{name: "not found", status: http.StatusNotFound, body: "", wantErr: ErrUnexpectedStatus},
		{name: "object body", status: http.StatusOK, body: `{"id":1}`, wantErr: record.ErrNotArray},
		{name: "malformed", status: http.StatusOK, body: `[{"id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := serve(t, tt.status, tt.body)
			_, err := NewHTTPFetcher(srv.URL).Fetch(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHTTPFetcher_DefaultEndpoint(t *testing.T) {
	assert.Equal(t, DefaultEndpoint, NewHTTPFetcher("").Endpoint())
}

func TestHTTPFetcher_SkipsNonObjects(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[{"id":1}, 2, "x", null, {"id":2}]`)

	records, err := NewHTTPFetcher(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStore_Load(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, usersJSON)
	s := New(NewHTTPFetcher(srv.URL))

	assert.True(t, s.Loading())
	assert.Empty(t, s.Records())

	require.NoError(t, s.Load(context.Background()))
	assert.False(t, s.Loading())
	assert.Len(t, s.Records(), 2)
	assert.NoError(t, s.Err())

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, int32(1), hits.Load(), "second load must not refetch")
}

func TestStore_LoadFailure(t *testing.T) {
	srv, hits := serve(t, http.StatusBadGateway, "")
	s := New(NewHTTPFetcher(srv.URL))

	err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrFetchFailure)
	require.ErrorIs(t, err, ErrUnexpectedStatus)

	assert.False(t, s.Loading())
	assert.NotNil(t, s.Records())
	assert.Empty(t, s.Records())
	assert.ErrorIs(t, s.Err(), ErrFetchFailure)

	_ = s.Load(context.Background())
	assert.Equal(t, int32(1), hits.Load(), "failures are not retried")
}

func TestStore_ConcurrentLoad(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, usersJSON)
	s := New(NewHTTPFetcher(srv.URL))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Load(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	assert.Len(t, s.Records(), 2)
}

type fetcherFunc func(ctx context.Context) ([]record.Record, error)

func (f fetcherFunc) Fetch(ctx context.Context) ([]record.Record, error) { return f(ctx) }

func TestStore_NilRecordsBecomeEmpty(t *testing.T) {
	s := New(fetcherFunc(func(context.Context) ([]record.Record, error) { return nil, nil }))
	require.NoError(t, s.Load(context.Background()))
	assert.NotNil(t, s.Records())
}

func TestStore_FetcherError(t *testing.T) {
	boom := errors.New("boom")
	s := New(fetcherFunc(func(context.Context) ([]record.Record, error) { return nil, boom }))

	err := s.Load(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, ErrFetchFailure)
}

func TestLoggingTransport_PassesThrough(t *testing.T) {
	srv, hits := serve(t, http.StatusTeapot, "tea")

	client := &http.Client{Transport: NewLoggingTransport(nil)}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}
