package controller

import (
	_ "climate-api/docs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// InitSwaggerRoutes serves the generated API documentation under /swagger/*
func InitSwaggerRoutes(api *echo.Group) {
	api.GET("/swagger/*", echoSwagger.WrapHandler)
}
