package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const placeholderHTML = "<p>foo</p>"

const videoHTML = `
    <video width="640" height="360" controls autoplay muted>
    <source src="/resources/video.mp4" type="video/mp4">
    Your browser does not support the video tag.
    </video>
`

type handler struct{}

func (h *handler) placeholder(c echo.Context) error {
	return errors.WithStack(c.HTML(http.StatusOK, placeholderHTML))
}

// video embeds the demo clip served from the resources directory.
func (h *handler) video(c echo.Context) error {
	return errors.WithStack(c.HTML(http.StatusOK, videoHTML))
}
