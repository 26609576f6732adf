package filesystem

import (
	"github.com/dirview/dirview/pkg/sorting"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, filesystemService *Service, sorter sorting.Sorter) {
	h := &handler{
		filesystemService: filesystemService,
		sorter:            sorter,
	}

	e.GET("/", h.index)
	e.GET("/files", h.list)
	e.GET("/download", h.download)
	e.DELETE("/delete", h.delete)
}
