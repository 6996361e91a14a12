package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/social-api/internal/api/metrics"
	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      postContentRequest  true  "Post content"
// @Success      201   {object}  postMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ctxCaller(c), req.Content)
	if err != nil {
		return err
	}
	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, postMessageResponse{
		Message:      "Post created successfully",
		postResponse: toPostResponse(post),
	})
}

// List handles GET /posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context(), ctxCaller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  postResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := pathID(c, domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), ctxCaller(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// ListByUser handles GET /posts/user/:id.
//
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      int  true  "Author user ID"
// @Success      200  {array}   postSummaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/user/{id} [get]
func (h *PostHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	posts, err := h.service.ListByUser(c.Request().Context(), ctxCaller(c), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostSummaries(posts))
}

// Update handles PUT /posts/:id.
//
// @Summary      Edit a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      int                 true  "Post ID"
// @Param        body  body      postContentRequest  true  "New content"
// @Success      200   {object}  postMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	var req postContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), ctxCaller(c), id, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AuthorizationDeniedTotal.WithLabelValues("post", "update").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, postMessageResponse{
		Message:      "Post updated successfully",
		postResponse: toPostResponse(post),
	})
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ctxCaller(c), id); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			metrics.AuthorizationDeniedTotal.WithLabelValues("post", "delete").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted successfully"})
}
