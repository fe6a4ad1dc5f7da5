package controller

import (
	"errors"
	"html"
	"net/http"
	"strings"

	"climate-api/internal/application/validator"
	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1.0"

type climateRoute struct {
	path    string
	display string
	handler echo.HandlerFunc
}

type dateRangeParams struct {
	Start string `param:"start" validate:"required,datetime=2006-01-02"`
	End   string `param:"end" validate:"omitempty,datetime=2006-01-02"`
}

type ClimateController struct {
	api         *echo.Group
	contextPath string
	useCase     climate.UseCase
}

func NewClimateController(api *echo.Group, contextPath string, useCase climate.UseCase) *ClimateController {
	return &ClimateController{api: api, contextPath: strings.TrimSuffix(contextPath, "/"), useCase: useCase}
}

// routes is the fixed table of climate endpoints; the index page is rendered from it
func (controller *ClimateController) routes() []climateRoute {
	return []climateRoute{
		{path: apiPrefix + "/precipitation", display: apiPrefix + "/precipitation", handler: controller.Precipitation},
		{path: apiPrefix + "/stations", display: apiPrefix + "/stations", handler: controller.Stations},
		{path: apiPrefix + "/tobs", display: apiPrefix + "/tobs", handler: controller.Tobs},
		{path: apiPrefix + "/:start", display: apiPrefix + "/<start>", handler: controller.TemperatureStatsFromStart},
		{path: apiPrefix + "/:start/:end", display: apiPrefix + "/<start>/<end>", handler: controller.TemperatureStats},
	}
}

// InitClimateRoutes initializes the index and climate routes
func (controller *ClimateController) InitClimateRoutes() {
	controller.api.GET("/", controller.Index)
	for _, route := range controller.routes() {
		controller.api.GET(route.path, route.handler)
	}
}

// Index godoc
// @Summary List available routes
// @Description Lists every climate route as an HTML page
// @Tags climate
// @Produce html
// @Success 200 {string} string "Route listing"
// @Router / [get]
func (controller *ClimateController) Index(c echo.Context) error {
	var page strings.Builder
	page.WriteString("Available routes:")
	for _, route := range controller.routes() {
		page.WriteString("<br/>")
		page.WriteString(html.EscapeString(controller.contextPath + route.display))
	}
	return c.HTML(http.StatusOK, page.String())
}

// Precipitation godoc
// @Summary Precipitation by date
// @Description Maps every observation date to its precipitation. Stations sharing a date overwrite each other; missing values are null.
// @Tags climate
// @Produce json
// @Success 200 {object} map[string]number "Date to precipitation"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/v1.0/precipitation [get]
func (controller *ClimateController) Precipitation(c echo.Context) error {
	precipitation, err := controller.useCase.PrecipitationByDate(c.Request().Context())
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, precipitation)
}

// Stations godoc
// @Summary Station names
// @Description Lists each station name once
// @Tags climate
// @Produce json
// @Success 200 {array} string "Station names"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/v1.0/stations [get]
func (controller *ClimateController) Stations(c echo.Context) error {
	stations, err := controller.useCase.ListStations(c.Request().Context())
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, stations)
}

// Tobs godoc
// @Summary Trailing-year temperatures
// @Description Temperatures observed after one year before the most recent date, up to and including it
// @Tags climate
// @Produce json
// @Success 200 {array} number "Temperatures"
// @Failure 500 {object} model.ErrorResponse "Empty dataset or internal server error"
// @Router /api/v1.0/tobs [get]
func (controller *ClimateController) Tobs(c echo.Context) error {
	temperatures, err := controller.useCase.RecentTemperatures(c.Request().Context())
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, temperatures)
}

// TemperatureStatsFromStart godoc
// @Summary Temperature summary from a start date
// @Description [min, avg, max] temperature from start through the most recent date. An empty array means no observations.
// @Tags climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)"
// @Success 200 {array} number "[min, avg, max]"
// @Failure 400 {object} model.ErrorResponse "Invalid date"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/v1.0/{start} [get]
func (controller *ClimateController) TemperatureStatsFromStart(c echo.Context) error {
	params, err := controller.bindDates(c)
	if err != nil {
		return controller.fail(c, err)
	}

	start, err := climate.ParseDate(params.Start)
	if err != nil {
		return controller.fail(c, err)
	}

	summary, err := controller.useCase.TemperatureStatsFromStart(c.Request().Context(), start)
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// TemperatureStats godoc
// @Summary Temperature summary over a date range
// @Description [min, avg, max] temperature for start <= date <= end. An empty array means no observations in range.
// @Tags climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)"
// @Param end path string true "End date (YYYY-MM-DD)"
// @Success 200 {array} number "[min, avg, max]"
// @Failure 400 {object} model.ErrorResponse "Invalid date or end before start"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/v1.0/{start}/{end} [get]
func (controller *ClimateController) TemperatureStats(c echo.Context) error {
	params, err := controller.bindDates(c)
	if err != nil {
		return controller.fail(c, err)
	}

	start, err := climate.ParseDate(params.Start)
	if err != nil {
		return controller.fail(c, err)
	}
	end, err := climate.ParseDate(params.End)
	if err != nil {
		return controller.fail(c, err)
	}

	summary, err := controller.useCase.TemperatureStats(c.Request().Context(), start, end)
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// bindDates binds and validates the date path parameters
func (controller *ClimateController) bindDates(c echo.Context) (dateRangeParams, error) {
	var params dateRangeParams
	if err := c.Bind(&params); err != nil {
		return params, err
	}
	if err := c.Validate(params); err != nil {
		return params, &climate.DateError{Value: validator.FirstInvalidValue(err)}
	}
	return params, nil
}

// fail maps domain errors to status codes; no-data outcomes are an empty array, not an error
func (controller *ClimateController) fail(c echo.Context, err error) error {
	var dateErr *climate.DateError
	switch {
	case errors.As(err, &dateErr):
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("climate.error.invalid-date", dateErr.Value)})
	case errors.Is(err, climate.ErrInvalidRange):
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("climate.error.invalid-range", c.Param("start"), c.Param("end"))})
	case errors.Is(err, climate.ErrNoObservationsInRange):
		return c.JSON(http.StatusOK, []float64{})
	case errors.Is(err, climate.ErrEmptyDataset):
		log.Error(msg.GetMessage("climate.error.empty-dataset"), zap.String("uri", c.Request().RequestURI))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("climate.error.empty-dataset")})
	default:
		log.Error(msg.GetMessage("climate.error.internal"), zap.String("uri", c.Request().RequestURI), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("climate.error.internal")})
	}
}
