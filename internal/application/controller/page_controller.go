package controller

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-page/internal/domain/gateway/file"
	"weather-page/pkg/msg"
)

// PageController serves the generated page the way a static host would.
type PageController struct {
	api         *echo.Group
	pageGateway file.PageGateway
}

func NewPageController(api *echo.Group, pageGateway file.PageGateway) *PageController {
	return &PageController{api: api, pageGateway: pageGateway}
}

// InitPageRoutes initializes page routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("/", controller.ServePage)
	controller.api.GET("/index.html", controller.ServePage)
}

// ServePage returns the last rendered page, or 404 before the first generation run.
func (controller *PageController) ServePage(c echo.Context) error {
	if _, err := controller.pageGateway.Stat(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("preview.page-missing", controller.pageGateway.Path())})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return c.File(controller.pageGateway.Path())
}
