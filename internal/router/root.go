package router

import (
	"net/http"

	"github.com/Flexingg/Savings-Web/internal/httputil"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs     string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Healthz  string `json:"healthz" example:"https://example.com/healthz"`      // Healthiness check
	Version  string `json:"version" example:"https://example.com/version"`      // Endpoint returning the version of the backend
	Metrics  string `json:"metrics" example:"https://example.com/metrics"`      // Endpoint returning Prometheus metrics
	Data     string `json:"data" example:"https://example.com/api/data"`        // Combined settings and expenses view
	Expenses string `json:"expenses" example:"https://example.com/api/expenses"` // Expense ledger
	Settings string `json:"settings" example:"https://example.com/api/settings"` // Budget settings
	WeekInfo string `json:"week_info" example:"https://example.com/api/week-info"` // Week enumeration view
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString("baseURL")

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:     url + "/docs/index.html",
			Healthz:  url + "/healthz",
			Version:  url + "/version",
			Metrics:  url + "/metrics",
			Data:     url + "/api/data",
			Expenses: url + "/api/expenses",
			Settings: url + "/api/settings",
			WeekInfo: url + "/api/week-info",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
