package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/match"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type requestConnectionRequest struct {
	SkillID uuid.UUID `json:"skill_id"`
	Message string    `json:"message"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/matches")
	grp.Post("/", h.Request)
	grp.Post("/:id/accept", h.Accept)
	grp.Post("/:id/decline", h.Decline)
}

func (h *MatchHandler) Request(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req requestConnectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.RequestConnection(c.Context(), userID, usecase.RequestConnectionInput{
		SkillID: req.SkillID,
		Message: req.Message,
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewMatchResponse(created))
}

func (h *MatchHandler) Accept(c fiber.Ctx) error {
	return h.respond(c, match.StatusAccepted)
}

func (h *MatchHandler) Decline(c fiber.Ctx) error {
	return h.respond(c, match.StatusDeclined)
}

func (h *MatchHandler) respond(c fiber.Ctx, to match.Status) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Respond(c.Context(), userID, matchID, to)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(updated))
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match request not found", nil, err)
	case errors.Is(err, usecase.ErrOwnSkill):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Cannot request your own skill", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, match.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Match request already resolved", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
