package directory

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-control-admin/internal/platform/httpclient"
	"animal-control-admin/internal/session"
)

const testBaseURL = "http://api.test"

func TestCached_FetchesOncePerSession(t *testing.T) {
	mt := httpmock.NewMockTransport()
	hc, err := httpclient.NewWithTransport(testBaseURL, time.Second, mt)
	require.NoError(t, err)

	mt.RegisterResponder(http.MethodGet, testBaseURL+"/pets/",
		httpmock.NewStringResponder(http.StatusOK, `[{"id":1,"name":"Firulais","species":"canine","owner_name":"Ana"}]`))
	mt.RegisterResponder(http.MethodGet, testBaseURL+"/users/",
		httpmock.NewStringResponder(http.StatusOK, `[{"id":7,"first_name":"Ana","last_name":"Pérez"}]`))

	dir := NewCached(NewClient(hc), time.Minute)
	ctx := session.WithSession(context.Background(), session.New("a"))

	for i := 0; i < 3; i++ {
		pets, err := dir.Pets(ctx)
		require.NoError(t, err)
		require.Len(t, pets, 1)
	}
	assert.Equal(t, 1, mt.GetCallCountInfo()["GET "+testBaseURL+"/pets/"])

	// otra sesión => otro fetch
	_, err = dir.Pets(session.WithSession(context.Background(), session.New("b")))
	require.NoError(t, err)
	assert.Equal(t, 2, mt.GetCallCountInfo()["GET "+testBaseURL+"/pets/"])

	users, err := dir.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", users[0].DisplayName())

	dir.Invalidate()
	_, err = dir.Pets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, mt.GetCallCountInfo()["GET "+testBaseURL+"/pets/"])
}

func TestCached_DoesNotCacheErrors(t *testing.T) {
	mt := httpmock.NewMockTransport()
	hc, err := httpclient.NewWithTransport(testBaseURL, time.Second, mt)
	require.NoError(t, err)

	mt.RegisterResponder(http.MethodGet, testBaseURL+"/users/",
		httpmock.NewStringResponder(http.StatusBadGateway, "upstream"))

	dir := NewCached(NewClient(hc), time.Minute)
	_, err = dir.Users(context.Background())
	require.Error(t, err)
	_, err = dir.Users(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, mt.GetCallCountInfo()["GET "+testBaseURL+"/users/"])
}

func TestUser_DisplayNameFallsBackToUsername(t *testing.T) {
	assert.Equal(t, "ana01", User{Username: "ana01"}.DisplayName())
}
