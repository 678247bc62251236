package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/SscSPs/share_registry_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestHandler handles HTTP requests for the transfer-request workflow.
type requestHandler struct {
	requestService portssvc.RequestSvcFacade
}

func newRequestHandler(rs portssvc.RequestSvcFacade) *requestHandler {
	return &requestHandler{requestService: rs}
}

// registerRequestRoutes registers the transfer-request routes. Decisions are
// admin only; submission and cancellation belong to the applicant.
func registerRequestRoutes(rg *gin.RouterGroup, requestService portssvc.RequestSvcFacade) {
	h := newRequestHandler(requestService)

	requests := rg.Group("/requests")
	{
		requests.POST("", h.submitRequest)
		requests.GET("", h.listRequests)
		requests.GET("/:requestID", h.getRequest)
		requests.DELETE("/:requestID", h.deleteRequest)

		admin := requests.Group("", middleware.RequireAdmin())
		{
			admin.POST("/:requestID/approve", h.approveRequest)
			admin.POST("/:requestID/reject", h.rejectRequest)
		}
	}
}

// submitRequestResponse pairs the created request with the applicant's
// balance picture at submission time.
type submitRequestResponse struct {
	Request     dto.TransferRequestResponse `json:"request"`
	Reservation *dto.ReservationSnapshot    `json:"reservation,omitempty"`
}

// submitRequest godoc
// @Summary Submit a transfer request
// @Description Creates a Pending request if the applicant's unreserved balance covers the amount.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.SubmitTransferRequest true "Request details"
// @Success 201 {object} submitRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} map[string]any "Insufficient available shares, with reservation breakdown"
// @Security BearerAuth
// @Router /requests [post]
func (h *requestHandler) submitRequest(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var req dto.SubmitTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	request, snapshot, err := h.requestService.SubmitRequest(c.Request.Context(), principal, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientAvailable) && snapshot != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":       err.Error(),
				"reservation": snapshot,
			})
			return
		}
		respondError(c, err, "Failed to submit transfer request")
		return
	}

	c.JSON(http.StatusCreated, submitRequestResponse{
		Request:     dto.ToTransferRequestResponse(request),
		Reservation: snapshot,
	})
}

// listRequests godoc
// @Summary List transfer requests
// @Description Admins see all requests; shareholders see only their own.
// @Tags requests
// @Produce json
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListTransferRequestsResponse
// @Security BearerAuth
// @Router /requests [get]
func (h *requestHandler) listRequests(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requests, err := h.requestService.ListRequests(c.Request.Context(), principal, params)
	if err != nil {
		respondError(c, err, "Failed to list transfer requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransferRequestsResponse(requests))
}

// getRequest godoc
// @Summary Get a transfer request
// @Tags requests
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} dto.TransferRequestResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /requests/{requestID} [get]
func (h *requestHandler) getRequest(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	request, err := h.requestService.GetRequest(c.Request.Context(), principal, c.Param("requestID"))
	if err != nil {
		respondError(c, err, "Failed to get transfer request")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferRequestResponse(request))
}

// approveRequest godoc
// @Summary Approve a transfer request
// @Description Executes the transfer, then marks the request Approved. A stale balance leaves it Pending.
// @Tags requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param approval body dto.ApproveRequestBody false "Target tax ID when not set at submission"
// @Success 200 {object} dto.TransferRequestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already decided"
// @Failure 422 {object} ErrorResponse "Applicant balance too low"
// @Security BearerAuth
// @Router /requests/{requestID}/approve [post]
func (h *requestHandler) approveRequest(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var body dto.ApproveRequestBody
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.requestService.ApproveRequest(c.Request.Context(), principal, c.Param("requestID"), body)
	if err != nil {
		respondError(c, err, "Failed to approve transfer request")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferRequestResponse(request))
}

// rejectRequest godoc
// @Summary Reject a transfer request
// @Tags requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param rejection body dto.RejectRequestBody true "Rejection reason"
// @Success 200 {object} dto.TransferRequestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already decided"
// @Security BearerAuth
// @Router /requests/{requestID}/reject [post]
func (h *requestHandler) rejectRequest(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	var body dto.RejectRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.requestService.RejectRequest(c.Request.Context(), principal, c.Param("requestID"), body)
	if err != nil {
		respondError(c, err, "Failed to reject transfer request")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferRequestResponse(request))
}

// deleteRequest godoc
// @Summary Cancel a transfer request
// @Description Removes a Pending request. Decided requests stay on record.
// @Tags requests
// @Param requestID path string true "Request ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No longer cancellable"
// @Security BearerAuth
// @Router /requests/{requestID} [delete]
func (h *requestHandler) deleteRequest(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	if err := h.requestService.DeleteRequest(c.Request.Context(), principal, c.Param("requestID")); err != nil {
		respondError(c, err, "Failed to cancel transfer request")
		return
	}
	c.Status(http.StatusNoContent)
}
