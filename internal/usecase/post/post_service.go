package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/thien06012001/backend/errors"
	"github.com/thien06012001/backend/internal/domain/entities"
	"github.com/thien06012001/backend/internal/domain/repositories"
)

// PostService implements the Service interface
type PostService struct {
	postRepo        repositories.PostRepository
	commentRepo     repositories.CommentRepository
	eventRepo       repositories.EventRepository
	participantRepo repositories.ParticipantRepository
	logger          *zap.Logger
}

var _ Service = (*PostService)(nil)

// NewPostService creates a new post service
func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		postRepo:        postRepo,
		commentRepo:     commentRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

// GetEventPosts lists all posts of an event with their comments
func (s *PostService) GetEventPosts(ctx context.Context, eventID uuid.UUID) ([]*entities.Post, error) {
	if _, err := s.findEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.postRepo.FindByEventID(ctx, eventID)
}

// GetPost retrieves a single post
func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("post")
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// CreatePostInput represents input for opening a discussion thread
type CreatePostInput struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Title   string
	Content string
}

// CreatePost opens a discussion thread on an event. The author must be a
// participant or the event owner.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*entities.Post, error) {
	event, err := s.findEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, event, input.UserID, "post in this event"); err != nil {
		return nil, err
	}

	post := &entities.Post{
		EventID: input.EventID,
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// UpdatePostInput represents a partial post edit. Nil fields are left
// unchanged.
type UpdatePostInput struct {
	Title   *string
	Content *string
}

// UpdatePost edits the post body. Only the author may edit.
func (s *PostService) UpdatePost(ctx context.Context, id, callerID uuid.UUID, input UpdatePostInput) (*entities.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, apperrors.ErrPermissionDenied("edit this post")
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post. The author or the event owner may delete.
func (s *PostService) DeletePost(ctx context.Context, id, callerID uuid.UUID) error {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		event, err := s.findEvent(ctx, post.EventID)
		if err != nil {
			return err
		}
		if event.OwnerID != callerID {
			return apperrors.ErrPermissionDenied("delete this post")
		}
	}
	return s.postRepo.Delete(ctx, id)
}

// GetPostComments lists the comments on a post
func (s *PostService) GetPostComments(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByPostID(ctx, postID)
}

// CreateCommentInput represents input for replying to a post
type CreateCommentInput struct {
	PostID  uuid.UUID
	UserID  uuid.UUID
	Content string
}

// CreateComment replies to a post. The commenter must be a participant or
// the event owner.
func (s *PostService) CreateComment(ctx context.Context, input CreateCommentInput) (*entities.Comment, error) {
	post, err := s.GetPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	event, err := s.findEvent(ctx, post.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, event, input.UserID, "comment in this event"); err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		PostID:  input.PostID,
		UserID:  input.UserID,
		Content: input.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// UpdateComment edits a comment. Only the author may edit.
func (s *PostService) UpdateComment(ctx context.Context, id, callerID uuid.UUID, content string) (*entities.Comment, error) {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != callerID {
		return nil, apperrors.ErrPermissionDenied("edit this comment")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment. The author or the event owner may
// delete.
func (s *PostService) DeleteComment(ctx context.Context, id, callerID uuid.UUID) error {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != callerID {
		post, err := s.GetPost(ctx, comment.PostID)
		if err != nil {
			return err
		}
		event, err := s.findEvent(ctx, post.EventID)
		if err != nil {
			return err
		}
		if event.OwnerID != callerID {
			return apperrors.ErrPermissionDenied("delete this comment")
		}
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *PostService) findEvent(ctx context.Context, eventID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("event")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

func (s *PostService) findComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("comment")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

func (s *PostService) requireMember(ctx context.Context, event *entities.Event, userID uuid.UUID, action string) error {
	if event.OwnerID == userID {
		return nil
	}
	joined, err := s.participantRepo.Exists(ctx, event.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to check participation: %w", err)
	}
	if !joined {
		return apperrors.ErrPermissionDenied(action)
	}
	return nil
}
