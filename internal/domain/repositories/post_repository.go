package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/thien06012001/backend/internal/domain/entities"
)

// PostRepository defines the interface for discussion post data access
type PostRepository interface {
	// Create creates a new post
	Create(ctx context.Context, post *entities.Post) error

	// FindByID retrieves a post by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Post, error)

	// FindByEventID retrieves all posts for an event with their comments
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Post, error)

	// Update updates an existing post
	Update(ctx context.Context, post *entities.Post) error

	// Delete deletes a post
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *entities.Comment) error

	// FindByID retrieves a comment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error)

	// FindByPostID retrieves all comments on a post
	FindByPostID(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error)

	// Update updates an existing comment
	Update(ctx context.Context, comment *entities.Comment) error

	// Delete deletes a comment
	Delete(ctx context.Context, id uuid.UUID) error
}
