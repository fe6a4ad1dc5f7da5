package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"climate-api/internal/application/validator"
	"climate-api/internal/domain/entity"
	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/gateway/queue"
	"climate-api/internal/domain/gateway/ratelimit"
	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/internal/domain/usecase/health"
	"climate-api/internal/infra/database"
	"climate-api/internal/infra/database/dbtest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, contextPath string, stations []entity.Station, observations []entity.Observation) *echo.Echo {
	t.Helper()
	store := dbtest.Open(t, stations, observations)

	e := echo.New()
	e.Validator = validator.NewEchoValidator()
	api := e.Group(contextPath)

	NewClimateController(api, contextPath, climate.NewClimateUseCase(db.NewSQLCObservationGateway(store))).InitClimateRoutes()
	NewHealthController(api, health.NewHealthUseCase(
		db.NewSQLCHealthDBGateway(store, database.DriverSQLite),
		ratelimit.NewRedisRateLimitGateway(nil),
		queue.NewSQSHealthGateway(nil, "climate-report"),
	)).InitHealthRoutes()
	InitSwaggerRoutes(api)
	return e
}

func sampleServer(t *testing.T) *echo.Echo {
	stations, observations := dbtest.Sample()
	return newServer(t, "", stations, observations)
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	rec := get(sampleServer(t), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Equal(t, "Available routes:"+
		"<br/>/api/v1.0/precipitation"+
		"<br/>/api/v1.0/stations"+
		"<br/>/api/v1.0/tobs"+
		"<br/>/api/v1.0/&lt;start&gt;"+
		"<br/>/api/v1.0/&lt;start&gt;/&lt;end&gt;", rec.Body.String())
}

func TestIndex_ContextPath(t *testing.T) {
	stations, observations := dbtest.Sample()
	e := newServer(t, "/climate", stations, observations)

	assert.Contains(t, get(e, "/climate/").Body.String(), "<br/>/climate/api/v1.0/stations")
	assert.Equal(t, http.StatusOK, get(e, "/climate/api/v1.0/stations").Code)
}

func TestPrecipitation(t *testing.T) {
	rec := get(sampleServer(t), "/api/v1.0/precipitation")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"2017-01-01":0.2,"2017-01-02":null}`, rec.Body.String())
}

func TestStations(t *testing.T) {
	rec := get(sampleServer(t), "/api/v1.0/stations")

	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.ElementsMatch(t, []string{"WAIKIKI 717.2, HI US", "KANEOHE 838.1, HI US"}, names)
}

func TestTobs(t *testing.T) {
	rec := get(sampleServer(t), "/api/v1.0/tobs")

	require.Equal(t, http.StatusOK, rec.Code)
	var temperatures []float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &temperatures))
	assert.ElementsMatch(t, []float64{58, 60, 62}, temperatures)
}

func TestTobs_EmptyDataset(t *testing.T) {
	rec := get(newServer(t, "", nil, nil), "/api/v1.0/tobs")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"No observations available"}`, rec.Body.String())
}

func TestTemperatureStats(t *testing.T) {
	rec := get(sampleServer(t), "/api/v1.0/2017-01-01/2017-01-02")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[58,60,62]`, rec.Body.String())
}

func TestTemperatureStatsFromStart(t *testing.T) {
	rec := get(sampleServer(t), "/api/v1.0/2017-01-02")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[62,62,62]`, rec.Body.String())
}

func TestTemperatureStats_ClientErrors(t *testing.T) {
	cases := map[string]string{
		"/api/v1.0/not-a-date":            "Invalid date not-a-date, expected format YYYY-MM-DD",
		"/api/v1.0/2017-02-30":            "Invalid date 2017-02-30, expected format YYYY-MM-DD",
		"/api/v1.0/2017-01-01/01-02-2017": "Invalid date 01-02-2017, expected format YYYY-MM-DD",
		"/api/v1.0/2017-01-02/2017-01-01": "End date 2017-01-01 is before start date 2017-01-02",
	}

	e := sampleServer(t)
	for path, message := range cases {
		t.Run(path, func(t *testing.T) {
			rec := get(e, path)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body model.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, message, body.Error)
		})
	}
}

func TestTemperatureStats_NoObservations(t *testing.T) {
	e := sampleServer(t)

	for _, path := range []string{"/api/v1.0/2018-01-01/2018-12-31", "/api/v1.0/2020-01-01"} {
		rec := get(e, path)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
}

func TestStoreFailure(t *testing.T) {
	stations, observations := dbtest.Sample()
	store := dbtest.Open(t, stations, observations)
	e := echo.New()
	e.Validator = validator.NewEchoValidator()
	NewClimateController(e.Group(""), "", climate.NewClimateUseCase(db.NewSQLCObservationGateway(store))).InitClimateRoutes()
	require.NoError(t, store.Close())

	rec := get(e, "/api/v1.0/precipitation")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := get(sampleServer(t), "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var body model.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.StatusUp, body.Status)
	assert.Equal(t, model.StatusDisabled, body.RateLimiter.Status)
	assert.Equal(t, model.StatusDisabled, body.Queue.Status)
}

func TestHealth_DatabaseDown(t *testing.T) {
	stations, observations := dbtest.Sample()
	store := dbtest.Open(t, stations, observations)
	e := echo.New()
	NewHealthController(e.Group(""), health.NewHealthUseCase(
		db.NewSQLCHealthDBGateway(store, database.DriverSQLite),
		ratelimit.NewRedisRateLimitGateway(nil),
		queue.NewSQSHealthGateway(nil, "climate-report"),
	)).InitHealthRoutes()
	require.NoError(t, store.Close())

	rec := get(e, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSwagger(t *testing.T) {
	rec := get(sampleServer(t), "/swagger/doc.json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1.0/{start}/{end}")
}

