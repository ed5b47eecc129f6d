package handler

import (
	"log/slog"

	deliverycontext "beautymap/internal/delivery/context"
	"beautymap/internal/delivery/http/response"
	"beautymap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves the review ledger
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ListReviews returns the reviews of ?providerId, newest first
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	providerID, ok := queryID(c, "providerId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "providerId is required")
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), providerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toReviewResponses(reviews))
}

// CreateReview records the caller's review of a provider
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)

	var req usecase.CreateReviewInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), profile.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toReviewResponse(review))
}

// DeleteReview removes a review written by the caller
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), deliverycontext.GetProfile(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// CheckReview tells the caller whether they already reviewed :providerId
func (h *ReviewHandler) CheckReview(c echo.Context) error {
	providerID, ok := pathID(c, "providerId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	check, err := h.reviewUC.CheckReview(c.Request().Context(), deliverycontext.GetProfile(c).ID, providerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, check)
}
