package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// SocialFeedHandler serves curated social posts.
type SocialFeedHandler struct {
	service ports.SocialFeedService
}

func NewSocialFeedHandler(service ports.SocialFeedService) *SocialFeedHandler {
	return &SocialFeedHandler{service: service}
}

// List godoc
// @Summary      List social posts
// @Tags         social-feed
// @Produce      json
// @Param        property  query  string  true   "Property id"
// @Param        platform  query  string  false  "Platform filter"
// @Param        limit     query  int     false  "1..200, default 50"
// @Success      200       {array}  domain.SocialPost
// @Router       /api/social-feed [get]
func (h *SocialFeedHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	// An unparsable limit falls back to the default.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	posts, err := h.service.List(c.Request().Context(), claims, c.QueryParam("property"), c.QueryParam("platform"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create godoc
// @Summary      Add social post
// @Tags         social-feed
// @Accept       json
// @Produce      json
// @Param        body  body      socialPostRequest  true  "Post"
// @Success      201   {object}  idResponse
// @Router       /api/social-feed [post]
func (h *SocialFeedHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req socialPostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), claims, ports.SocialPostInput{
		Property:  req.Property,
		Platform:  req.Platform,
		ImageURL:  req.ImageURL,
		Timestamp: ts,
		Permalink: req.Permalink,
		Caption:   req.Caption,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Delete godoc
// @Summary      Delete social post
// @Tags         social-feed
// @Param        id        path   string  true  "Post id"
// @Param        property  query  string  true  "Property id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /api/social-feed/{id} [delete]
func (h *SocialFeedHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), claims, c.Param("id"), c.QueryParam("property")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, domain.InvalidInput("timestamp must be an RFC 3339 date-time")
}
