package handler

import (
	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/discovery"
	"skillswap/internal/domain/skill"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BrowseHandler struct {
	uc usecase.BrowseUsecase
}

func NewBrowseHandler(uc usecase.BrowseUsecase) *BrowseHandler {
	return &BrowseHandler{uc: uc}
}

func (h *BrowseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/browse", h.Browse)
}

func (h *BrowseHandler) Browse(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	// Browsing defaults to teaching listings, mirroring the browse view.
	listingType, ok := skill.ParseListingType(c.Query("type", string(skill.ListingTypeTeach)))
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid listing type", nil, nil)
	}

	spec := discovery.Spec{
		SearchTerm:  c.Query("search"),
		Category:    c.Query("category", discovery.CategoryAll),
		ListingType: listingType,
	}

	result, err := h.uc.Browse(c.Context(), userID, spec)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBrowseResponse(result.Listings, result.Categories))
}
