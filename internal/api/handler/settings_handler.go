package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// SettingsHandler serves the per-property campaign list and target
// configuration. Writes are admin-only.
type SettingsHandler struct {
	campaigns ports.CampaignService
	targets   ports.TargetService
}

func NewSettingsHandler(campaigns ports.CampaignService, targets ports.TargetService) *SettingsHandler {
	return &SettingsHandler{campaigns: campaigns, targets: targets}
}

// GetCampaigns godoc
// @Summary      Get campaigns
// @Tags         campaigns
// @Produce      json
// @Param        property  query     string  true  "Property id"
// @Success      200       {object}  domain.CampaignSet
// @Failure      404       {object}  errorResponse
// @Router       /api/campaigns [get]
func (h *SettingsHandler) GetCampaigns(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	set, err := h.campaigns.Get(c.Request().Context(), claims, c.QueryParam("property"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, set)
}

// PutCampaigns godoc
// @Summary      Replace campaigns
// @Description  Entries without a label are dropped; a missing id is derived from the label.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        body  body      campaignsRequest  true  "Campaigns"
// @Success      200   {object}  domain.CampaignSet
// @Failure      403   {object}  errorResponse
// @Router       /api/campaigns [put]
func (h *SettingsHandler) PutCampaigns(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req campaignsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	property := req.Property
	if property == "" {
		property = c.QueryParam("property")
	}

	var campaigns []domain.Campaign
	if req.Campaigns != nil {
		campaigns = make([]domain.Campaign, 0, len(req.Campaigns))
		for _, item := range req.Campaigns {
			campaigns = append(campaigns, domain.Campaign{
				ID:      item.ID,
				Label:   item.Label,
				Visible: item.Visible == nil || *item.Visible,
				Color:   item.Color,
			})
		}
	}

	set, err := h.campaigns.Put(c.Request().Context(), claims, property, campaigns)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, set)
}

// GetTargets godoc
// @Summary      Get targets
// @Tags         targets
// @Produce      json
// @Param        property  query     string  true  "Property id"
// @Success      200       {object}  domain.TargetSet
// @Failure      404       {object}  errorResponse
// @Router       /api/targets [get]
func (h *SettingsHandler) GetTargets(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	set, err := h.targets.Get(c.Request().Context(), claims, c.QueryParam("property"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, set)
}

// PutTargets godoc
// @Summary      Replace targets
// @Tags         targets
// @Accept       json
// @Produce      json
// @Param        body  body      targetsRequest  true  "Target configuration"
// @Success      200   {object}  domain.TargetSet
// @Failure      403   {object}  errorResponse
// @Router       /api/targets [put]
func (h *SettingsHandler) PutTargets(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req targetsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	property := req.Property
	if property == "" {
		property = c.QueryParam("property")
	}
	if req.Config == nil {
		return domain.InvalidInput("property and config are required")
	}

	set, err := h.targets.Put(c.Request().Context(), claims, property, *req.Config)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, set)
}
