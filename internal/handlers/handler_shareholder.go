package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/SscSPs/share_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shareholderHandler handles HTTP requests for the share register.
type shareholderHandler struct {
	shareholderService portssvc.ShareholderSvcFacade
}

func newShareholderHandler(ss portssvc.ShareholderSvcFacade) *shareholderHandler {
	return &shareholderHandler{shareholderService: ss}
}

// registerShareholderRoutes registers register-maintenance routes. Listing
// and mutation are admin only; a shareholder can read and edit their own
// record through /shareholders/me.
func registerShareholderRoutes(rg *gin.RouterGroup, shareholderService portssvc.ShareholderSvcFacade) {
	h := newShareholderHandler(shareholderService)

	shareholders := rg.Group("/shareholders")
	{
		shareholders.GET("/me", h.getOwnProfile)
		shareholders.PUT("/me", h.updateOwnProfile)
		shareholders.GET("/:taxID", h.getShareholder)
		shareholders.GET("/:taxID/changelog", h.getChangeLog)

		admin := shareholders.Group("", middleware.RequireAdmin())
		{
			admin.GET("", h.listShareholders)
			admin.POST("", h.createShareholder)
			admin.PUT("/:taxID", h.updateShareholder)
			admin.DELETE("/:taxID", h.deleteShareholder)
			admin.POST("/batch-delete", h.batchDelete)
			admin.POST("/import", h.bulkImport)
		}
	}
}

// createShareholder godoc
// @Summary Create a shareholder
// @Description Registers a new entry with zero shares and no credential.
// @Tags shareholders
// @Accept json
// @Produce json
// @Param shareholder body dto.UpsertShareholderRequest true "Shareholder details"
// @Success 201 {object} dto.ShareholderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders [post]
func (h *shareholderHandler) createShareholder(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.UpsertShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	holder, err := h.shareholderService.CreateShareholder(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to create shareholder")
		return
	}
	c.JSON(http.StatusCreated, dto.ToShareholderResponse(holder))
}

// listShareholders godoc
// @Summary List shareholders
// @Description Pages through the register, optionally filtered by name or tax ID.
// @Tags shareholders
// @Produce json
// @Param search query string false "Name or tax ID fragment"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListShareholdersResponse
// @Security BearerAuth
// @Router /shareholders [get]
func (h *shareholderHandler) listShareholders(c *gin.Context) {
	var params dto.ListShareholdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	holders, err := h.shareholderService.ListShareholders(c.Request.Context(), params.Search, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list shareholders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShareholdersResponse(holders))
}

// getShareholder godoc
// @Summary Get a shareholder
// @Description Retrieves one entry. Shareholders may only fetch their own record.
// @Tags shareholders
// @Produce json
// @Param taxID path string true "Tax ID"
// @Success 200 {object} dto.ShareholderResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders/{taxID} [get]
func (h *shareholderHandler) getShareholder(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	holder, err := h.shareholderService.GetShareholder(c.Request.Context(), principal, c.Param("taxID"))
	if err != nil {
		respondError(c, err, "Failed to get shareholder")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareholderResponse(holder))
}

// getOwnProfile godoc
// @Summary Get own record
// @Tags shareholders
// @Produce json
// @Success 200 {object} dto.ShareholderResponse
// @Security BearerAuth
// @Router /shareholders/me [get]
func (h *shareholderHandler) getOwnProfile(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	holder, err := h.shareholderService.GetShareholder(c.Request.Context(), principal, principal.ID)
	if err != nil {
		respondError(c, err, "Failed to get own record")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareholderResponse(holder))
}

// updateOwnProfile godoc
// @Summary Update own contact fields
// @Description Edits the caller's own contact fields; every change lands in the audit trail.
// @Tags shareholders
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.ShareholderResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders/me [put]
func (h *shareholderHandler) updateOwnProfile(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	holder, err := h.shareholderService.UpdateOwnProfile(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareholderResponse(holder))
}

// updateShareholder godoc
// @Summary Update a shareholder
// @Tags shareholders
// @Accept json
// @Produce json
// @Param taxID path string true "Tax ID"
// @Param shareholder body dto.UpsertShareholderRequest true "Shareholder details"
// @Success 200 {object} dto.ShareholderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders/{taxID} [put]
func (h *shareholderHandler) updateShareholder(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.UpsertShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	holder, err := h.shareholderService.UpdateShareholder(c.Request.Context(), principal, c.Param("taxID"), req)
	if err != nil {
		respondError(c, err, "Failed to update shareholder")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareholderResponse(holder))
}

// deleteShareholder godoc
// @Summary Delete a shareholder
// @Tags shareholders
// @Param taxID path string true "Tax ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders/{taxID} [delete]
func (h *shareholderHandler) deleteShareholder(c *gin.Context) {
	if err := h.shareholderService.DeleteShareholder(c.Request.Context(), c.Param("taxID")); err != nil {
		respondError(c, err, "Failed to delete shareholder")
		return
	}
	c.Status(http.StatusNoContent)
}

// batchDelete godoc
// @Summary Batch delete shareholders
// @Tags shareholders
// @Accept json
// @Produce json
// @Param batch body dto.BatchDeleteRequest true "Tax IDs to delete"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders/batch-delete [post]
func (h *shareholderHandler) batchDelete(c *gin.Context) {
	var req dto.BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	deleted, err := h.shareholderService.BatchDeleteShareholders(c.Request.Context(), req.TaxIDs)
	if err != nil {
		respondError(c, err, "Failed to batch delete shareholders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// bulkImport godoc
// @Summary Bulk import shareholders
// @Description Upserts register rows; share quantities replace or accumulate per the flag.
// @Tags shareholders
// @Accept json
// @Produce json
// @Param import body dto.BulkImportRequest true "Import rows"
// @Success 200 {object} dto.BulkImportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders/import [post]
func (h *shareholderHandler) bulkImport(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.shareholderService.BulkImport(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to import shareholders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getChangeLog godoc
// @Summary Get a shareholder's audit trail
// @Tags shareholders
// @Produce json
// @Param taxID path string true "Tax ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ChangeLogEntryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /shareholders/{taxID}/changelog [get]
func (h *shareholderHandler) getChangeLog(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var params dto.ListShareholdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.shareholderService.GetChangeLog(c.Request.Context(), principal, c.Param("taxID"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to get change log")
		return
	}
	c.JSON(http.StatusOK, dto.ToChangeLogResponse(entries))
}
