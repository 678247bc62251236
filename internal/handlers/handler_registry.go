package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// registryHandler serves register-wide metrics.
type registryHandler struct {
	shareholderService portssvc.ShareholderSvcFacade
}

func registerRegistryRoutes(rg *gin.RouterGroup, shareholderService portssvc.ShareholderSvcFacade) {
	h := &registryHandler{shareholderService: shareholderService}

	rg.GET("/registry/summary", h.summary)
}

// summary godoc
// @Summary Registry summary
// @Description Returns shareholder headcount and total outstanding shares.
// @Tags registry
// @Produce json
// @Success 200 {object} dto.RegistrySummaryResponse
// @Security BearerAuth
// @Router /registry/summary [get]
func (h *registryHandler) summary(c *gin.Context) {
	resp, err := h.shareholderService.RegistrySummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build registry summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}
