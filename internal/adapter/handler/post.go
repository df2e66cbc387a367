package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	postdto "github.com/thien06012001/backend/internal/adapter/dto/post"
	postUsecase "github.com/thien06012001/backend/internal/usecase/post"
)

// Post handles event discussion HTTP requests
type Post struct {
	postService postUsecase.Service
	logger      *zap.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService postUsecase.Service, logger *zap.Logger) *Post {
	return &Post{
		postService: postService,
		logger:      logger,
	}
}

// GetEventPosts handles GET /events/:id/discussions
func (h *Post) GetEventPosts(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	posts, err := h.postService.GetEventPosts(c.Request().Context(), eventID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, posts)
}

// CreatePost handles POST /events/:id/discussions
func (h *Post) CreatePost(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req postdto.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	post, err := h.postService.CreatePost(c.Request().Context(), postUsecase.CreatePostInput{
		EventID: eventID,
		UserID:  caller,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, post)
}

// GetPost handles GET /posts/:id
func (h *Post) GetPost(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	post, err := h.postService.GetPost(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, post)
}

// UpdatePost handles PUT /posts/:id
func (h *Post) UpdatePost(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req postdto.UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	post, err := h.postService.UpdatePost(c.Request().Context(), id, caller, postUsecase.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/:id
func (h *Post) DeletePost(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.postService.DeletePost(c.Request().Context(), id, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// GetPostComments handles GET /posts/:id/comments
func (h *Post) GetPostComments(c echo.Context) error {
	postID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	comments, err := h.postService.GetPostComments(c.Request().Context(), postID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, comments)
}

// CreateComment handles POST /posts/:id/comments
func (h *Post) CreateComment(c echo.Context) error {
	postID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req postdto.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	comment, err := h.postService.CreateComment(c.Request().Context(), postUsecase.CreateCommentInput{
		PostID:  postID,
		UserID:  caller,
		Content: req.Content,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, comment)
}

// UpdateComment handles PUT /comments/:id
func (h *Post) UpdateComment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req postdto.UpdateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	comment, err := h.postService.UpdateComment(c.Request().Context(), id, caller, req.Content)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/:id
func (h *Post) DeleteComment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	caller, err := callerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.postService.DeleteComment(c.Request().Context(), id, caller); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
