package handler

import (
	"log/slog"
	"net/http"

	"lostfound/internal/delivery/http/middleware"
	"lostfound/internal/delivery/http/response"
	"lostfound/internal/domain/entity"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler holds dependencies for listing moderation handlers
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// TransitionRequest represents the request body for a status change
type TransitionRequest struct {
	Event string `json:"event" validate:"required,oneof=approve reject resolve reopen"`
}

// TransitionResponse is the outcome of a status change
type TransitionResponse struct {
	Listing *entity.Listing       `json:"listing"`
	From    entity.ListingStatus  `json:"from"`
	To      entity.ListingStatus  `json:"to"`
	Report  *entity.PublishReport `json:"report,omitempty"`
}

// TransitionListing applies a moderation or owner event to a listing
func (h *ListingHandler) TransitionListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User ID not found in context")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transition input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.listingUC.TransitionListing(c.Request().Context(), actor, listingID, entity.ListingEvent(req.Event))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TransitionResponse{
		Listing: result.Listing,
		From:    result.From,
		To:      result.To,
		Report:  result.Report,
	})
}

// GetListingDeliveries returns the alert audit trail of a listing
func (h *ListingHandler) GetListingDeliveries(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User ID not found in context")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	logs, err := h.listingUC.ListDeliveries(c.Request().Context(), actor, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
