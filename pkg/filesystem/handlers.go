package filesystem

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/dirview/dirview/pkg/binder"
	"github.com/dirview/dirview/pkg/errcodes"
	"github.com/dirview/dirview/pkg/pathreq"
	"github.com/dirview/dirview/pkg/sorting"
	"github.com/dirview/dirview/pkg/views"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

type handler struct {
	filesystemService *Service
	sorter            sorting.Sorter
}

func (h *handler) index(c echo.Context) error {
	return h.renderListing(c, views.IndexTemplate)
}

func (h *handler) list(c echo.Context) error {
	return h.renderListing(c, views.FileListTemplate)
}

func (h *handler) renderListing(c echo.Context, template string) error {
	ctx := c.Request().Context()

	// Bind query params. Unknown params are tolerated here, the path/file pair
	// is resolved leniently below.
	c.Set(binder.DisallowUnknownParams, false)
	params := ListQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	spec, err := sorting.FromQuery(params.Sorting)
	if err != nil {
		return errcodes.ValidationError(err.Error())
	}

	req, err := pathreq.Parse(c.QueryString())
	if err != nil {
		return requestError(err)
	}

	entries, err := h.filesystemService.ReadDirectory(ctx, req.Directory)
	if err != nil {
		return readError(err)
	}
	entries = h.sorter.Sort(entries, spec)

	return errors.WithStack(c.Render(http.StatusOK, template, views.NewListing(req, spec, entries)))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := pathreq.ParseFile(c.QueryString())
	if err != nil {
		return requestError(err)
	}

	if err := h.filesystemService.Delete(ctx, req.FullPath); err != nil {
		return fileError(err, "Deleting this file")
	}

	return errors.WithStack(c.NoContent(http.StatusOK))
}

func (h *handler) download(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromContext(ctx)

	req, err := pathreq.ParseFile(c.QueryString())
	if err != nil {
		return requestError(err)
	}

	f, info, err := h.filesystemService.Open(ctx, req.FullPath)
	if err != nil {
		return fileError(err, "Reading this file")
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return errors.WithStack(err)
	}
	log.Debug("serving file", logger.Data{"path": req.FullPath, "mimetype": mtype.String()})

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, mtype.String())
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", info.Name()))
	http.ServeContent(res, c.Request(), info.Name(), info.ModTime(), f)
	return nil
}

// requestError maps path resolution failures to HTTP errors.
func requestError(err error) error {
	switch {
	case errors.Is(err, pathreq.ErrOutsideRoot):
		return errcodes.Forbidden("Accessing paths outside of the browsing root")
	case errors.Is(err, pathreq.ErrMalformedQuery):
		return errcodes.MalformedQuery()
	case errors.Is(err, pathreq.ErrFileRequired):
		return errcodes.ValidationError(`"file" is required`)
	}
	return errors.WithStack(err)
}

// readError maps directory listing failures to HTTP errors. Anything that
// isn't a failure to open the directory itself is an internal error, and its
// message never reaches the client.
func readError(err error) error {
	if errors.Is(err, ErrReadingDirectory) {
		if errors.Is(err, fs.ErrPermission) {
			return errcodes.Forbidden("Access to this directory")
		}
		return errcodes.NotFound("Directory")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errcodes.RequestTimeout()
	}
	return errors.WithStack(err)
}

// fileError maps single file failures to HTTP errors.
func fileError(err error, action string) error {
	switch {
	case errors.Is(err, ErrIsDirectory):
		return errcodes.ValidationError("Directories can't be used here, only files.")
	case errors.Is(err, fs.ErrNotExist):
		return errcodes.NotFound("File")
	case errors.Is(err, fs.ErrPermission):
		return errcodes.Forbidden(action)
	}
	return errors.WithStack(err)
}
