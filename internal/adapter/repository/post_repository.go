package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post
func (r *postRepository) Create(ctx context.Context, post *entities.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID retrieves a post by its ID
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Where("id = ?", id).
		First(&post).Error

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByEventID retrieves all posts for an event with their comments
func (r *postRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Post, error) {
	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// Update updates an existing post
func (r *postRepository) Update(ctx context.Context, post *entities.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete deletes a post
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Post{}, id).Error
}

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment
func (r *commentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID retrieves a comment by its ID
func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&comment).Error

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPostID retrieves all comments on a post
func (r *commentRepository) FindByPostID(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// Update updates an existing comment
func (r *commentRepository) Update(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete deletes a comment
func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Comment{}, id).Error
}
