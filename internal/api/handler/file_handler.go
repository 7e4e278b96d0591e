package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/ports"
)

// FileHandler stores and serves opaque blobs.
type FileHandler struct {
	service ports.FileService
}

func NewFileHandler(service ports.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Upload stores the raw request body.
//
// @Summary      Upload file
// @Tags         files
// @Accept       application/octet-stream
// @Produce      json
// @Param        property  query     string  true   "Owning property"
// @Param        filename  query     string  false  "File name"
// @Success      201       {object}  uploadResponse
// @Failure      400       {object}  errorResponse
// @Failure      413       {object}  errorResponse
// @Router       /api/files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	req := c.Request()
	id, err := h.service.Upload(req.Context(), claims, ports.UploadInput{
		Property:    c.QueryParam("property"),
		Filename:    c.QueryParam("filename"),
		ContentType: req.Header.Get(echo.HeaderContentType),
		Body:        req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, uploadResponse{ID: id, URL: "/api/files/" + id})
}

// Download godoc
// @Summary      Download file
// @Tags         files
// @Produce      application/octet-stream
// @Param        id  path  string  true  "File id"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/files/{id} [get]
func (h *FileHandler) Download(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	file, err := h.service.Download(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	filename := file.Filename
	if filename == "" {
		filename = "file"
	}
	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.Itoa(len(file.Data)))
	header.Set("Cache-Control", "private, max-age=31536000")
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
