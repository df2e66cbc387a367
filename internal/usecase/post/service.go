package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/thien06012001/backend/internal/domain/entities"
)

// Service defines the discussion business logic interface. Discussions
// are posts attached to an event with their comment threads.
type Service interface {
	// GetEventPosts lists all posts of an event with their comments
	GetEventPosts(ctx context.Context, eventID uuid.UUID) ([]*entities.Post, error)

	// GetPost retrieves a single post
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)

	// CreatePost opens a discussion thread; participants and the event
	// owner only
	CreatePost(ctx context.Context, input CreatePostInput) (*entities.Post, error)

	// UpdatePost edits the post body, author only
	UpdatePost(ctx context.Context, id, callerID uuid.UUID, input UpdatePostInput) (*entities.Post, error)

	// DeletePost removes a post; the author or the event owner
	DeletePost(ctx context.Context, id, callerID uuid.UUID) error

	// GetPostComments lists the comments on a post
	GetPostComments(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error)

	// CreateComment replies to a post
	CreateComment(ctx context.Context, input CreateCommentInput) (*entities.Comment, error)

	// UpdateComment edits a comment, author only
	UpdateComment(ctx context.Context, id, callerID uuid.UUID, content string) (*entities.Comment, error)

	// DeleteComment removes a comment; the author or the event owner
	DeleteComment(ctx context.Context, id, callerID uuid.UUID) error
}
