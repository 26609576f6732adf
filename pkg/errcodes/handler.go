package errcodes

import (
	"net/http"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/errutils"
)

// ErrorTemplate is the template the handler renders for browser requests.
const ErrorTemplate = "error.html"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Payload is the body of an error response, used both for the JSON encoding
// and as the data of the error template.
type Payload struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// Handle is an Echo error handler that uses HTTP errors accordingly, and any
// generic error will be interpreted as an internal server error. Browser
// requests get a rendered error page, clients asking for JSON get the JSON
// payload.
func (h *Handler) Handle(err error, c echo.Context) {
	if errutils.IsIgnorableErr(err) {
		logger.FromEchoContext(c).Err(err).Warn("broken pipe")
		return
	}
	if c.Response().Committed {
		logger.FromEchoContext(c).Err(err).Warn("error after response was committed")
		return
	}

	payload := h.generatePayload(err)

	// Internal server errors
	if payload.StatusCode == http.StatusInternalServerError {
		logger.FromEchoContext(c).Err(err).Error("server error")
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(payload.StatusCode); err != nil {
			logger.FromEchoContext(c).Err(errors.WithStack(err)).Error("error handler head error")
		}
		return
	}

	if !wantsJSON(c.Request()) {
		rerr := c.Render(payload.StatusCode, ErrorTemplate, payload)
		if rerr == nil {
			return
		}
		if !errors.Is(rerr, echo.ErrRendererNotRegistered) {
			logger.FromEchoContext(c).Err(errors.WithStack(rerr)).Error("error handler render error")
		}
	}

	if err := c.JSON(payload.StatusCode, map[string]interface{}{"error": payload}); err != nil {
		logger.FromEchoContext(c).Err(errors.WithStack(err)).Error("error handler json error")
	}
}

func (h *Handler) generatePayload(err error) Payload {
	code := ""
	msg := ""
	httpCode := http.StatusInternalServerError

	// Echo errors
	var he *echo.HTTPError
	if ok := errors.As(err, &he); ok {
		httpCode = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(he.Code)
		}
		code = strcase.ToSnake(msg)
	}

	// Custom errors
	var e *Error
	if ok := errors.As(err, &e); ok {
		httpCode = e.HTTPCode
		code = e.Code
		msg = e.Message
	}

	// Internal server errors that aren't Echo errors or custom errors. The
	// underlying message is never surfaced since it can carry filesystem
	// paths.
	if httpCode == http.StatusInternalServerError {
		code = "internal_server_error"
		msg = "Internal Server Error"
	}

	return Payload{
		Code:       code,
		Message:    msg,
		StatusCode: httpCode,
	}
}

func wantsJSON(req *http.Request) bool {
	accept := req.Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
