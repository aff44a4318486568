package handler

import (
	"log/slog"
	"net/http"

	"rewear/internal/delivery/http/response"
	"rewear/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommunityHandler holds dependencies for the community board handlers.
type CommunityHandler struct {
	uc     usecase.CommunityUsecase
	logger *slog.Logger
}

// NewCommunityHandler is the constructor for CommunityHandler, injected by Fx.
func NewCommunityHandler(uc usecase.CommunityUsecase, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListThoughts returns the latest community posts, newest first.
func (h *CommunityHandler) ListThoughts(c echo.Context) error {
	thoughts, err := h.uc.ListThoughts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toThoughtResponses(thoughts), "")
}

type postThoughtRequest struct {
	Author string `json:"author" validate:"required,max=100"`
	Text   string `json:"text" validate:"required,max=1000"`
}

// PostThought publishes a new community post.
func (h *CommunityHandler) PostThought(c echo.Context) error {
	var req postThoughtRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid thought input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	thought, err := h.uc.PostThought(c.Request().Context(), usecase.PostThoughtInput{
		Author: req.Author,
		Text:   req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toThoughtResponse(thought),
		"Thought shared")
}
