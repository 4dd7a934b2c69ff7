package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/umithief/motovibe6/internal/delivery/api/middleware"
	"github.com/umithief/motovibe6/internal/delivery/api/response"
	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/usecase"
)

// ForumHandlerParams holds dependencies for ForumHandler, injected by Fx.
type ForumHandlerParams struct {
	fx.In

	ForumUC usecase.ForumUsecase
	Logger  *slog.Logger
}

// ForumHandler serves the community board.
type ForumHandler struct {
	forumUC usecase.ForumUsecase
	logger  *slog.Logger
}

// NewForumHandler is the constructor for ForumHandler
func NewForumHandler(params ForumHandlerParams) *ForumHandler {
	return &ForumHandler{
		forumUC: params.ForumUC,
		logger:  params.Logger,
	}
}

// CreateTopicRequest represents a new board thread
type CreateTopicRequest struct {
	Title    string               `json:"title" validate:"required"`
	Content  string               `json:"content" validate:"required"`
	Category entity.ForumCategory `json:"category" validate:"required"`
	Tags     []string             `json:"tags"`
}

// AddCommentRequest represents a reply
type AddCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListTopics returns the threads, newest first.
func (h *ForumHandler) ListTopics(c echo.Context) error {
	topics, err := h.forumUC.ListTopics(c.Request().Context())
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusOK, topics)
}

// CreateTopic opens a thread authored by the caller.
func (h *ForumHandler) CreateTopic(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Geçersiz oturum.")
	}

	var req CreateTopicRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	topic, err := h.forumUC.CreateTopic(c.Request().Context(), &usecase.CreateTopicInput{
		AuthorID:   userID,
		AuthorName: middleware.GetUserName(c),
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Tags:       req.Tags,
	})
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusCreated, topic)
}

// AddComment appends the caller's reply to a thread.
func (h *ForumHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Geçersiz oturum.")
	}

	topicID, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	comment, err := h.forumUC.AddComment(c.Request().Context(), &usecase.AddCommentInput{
		TopicID:    topicID,
		AuthorID:   userID,
		AuthorName: middleware.GetUserName(c),
		Content:    req.Content,
	})
	if err != nil {
		return response.FailWith(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

// LikeTopic adds one like.
func (h *ForumHandler) LikeTopic(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.forumUC.LikeTopic(c.Request().Context(), id); err != nil {
		return response.FailWith(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ViewTopic counts one view.
func (h *ForumHandler) ViewTopic(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.forumUC.ViewTopic(c.Request().Context(), id); err != nil {
		return response.FailWith(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
