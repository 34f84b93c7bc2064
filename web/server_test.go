package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"uni_bot_go/db"
)

type fakeContent struct {
	courses []db.Course
	places  []db.Place
	users   int64
	err     error
}

func (f fakeContent) ListCourses(context.Context) ([]db.Course, error) { return f.courses, f.err }
func (f fakeContent) ListPlaces(context.Context) ([]db.Place, error)   { return f.places, f.err }
func (f fakeContent) CountUsers(context.Context) (int64, error)        { return f.users, f.err }

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, content Content, pinger Pinger, path string) (int, []byte) {
	t.Helper()
	app := NewApp(content, pinger, time.Now())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	code, body := get(t, fakeContent{}, fakePinger{}, "/health")
	require.Equal(t, http.StatusOK, code)

	var info healthInfo
	require.NoError(t, json.Unmarshal(body, &info))
	require.Equal(t, "ok", info.Status)

	code, body = get(t, fakeContent{}, fakePinger{err: errors.New("refused")}, "/health")
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.NoError(t, json.Unmarshal(body, &info))
	require.Equal(t, "degraded", info.Status)
	require.Equal(t, "refused", info.Database)
}

func TestPlaces(t *testing.T) {
	content := fakeContent{places: []db.Place{{ID: 1, Name: "درب اصلی", Group: db.PlaceGate, Latitude: 35.7, Longitude: 51.4}}}
	code, body := get(t, content, fakePinger{}, "/api/places")
	require.Equal(t, http.StatusOK, code)

	var places []db.Place
	require.NoError(t, json.Unmarshal(body, &places))
	require.Equal(t, content.places, places)
}

func TestCoursesEmptyIsArray(t *testing.T) {
	code, body := get(t, fakeContent{}, fakePinger{}, "/api/courses")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, "[]", string(body))
}

func TestStats(t *testing.T) {
	code, body := get(t, fakeContent{users: 12}, fakePinger{}, "/api/stats")
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"users":12}`, string(body))
}

func TestAPIError(t *testing.T) {
	code, _ := get(t, fakeContent{err: errors.New("db down")}, fakePinger{}, "/api/courses")
	require.Equal(t, http.StatusInternalServerError, code)
}
