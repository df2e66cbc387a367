package post

// CreatePostRequest represents the request to open a discussion thread
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest represents a partial post edit
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

// CreateCommentRequest represents the request to reply to a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateCommentRequest represents a comment edit
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
