package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"yourssu.com/blog/internal/dto"
	"yourssu.com/blog/internal/model"
	"yourssu.com/blog/internal/repository"
	"yourssu.com/blog/pkg/apperror"
)

type CommentService interface {
	Create(ctx context.Context, articleID uint, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Update(ctx context.Context, articleID, commentID uint, req dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, articleID, commentID uint, req dto.DeleteCommentRequest) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	hasher      PasswordHasher
}

func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository, userRepo repository.UserRepository, hasher PasswordHasher) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		hasher:      hasher,
	}
}

func (s *commentService) Create(ctx context.Context, articleID uint, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	user, err := s.authorize(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// Any authenticated user may comment; the article only has to exist.
	article, err := s.resolveArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	// Content is stored exactly as submitted, like article bodies.
	comment := &model.Comment{
		Content:   req.Content,
		ArticleID: article.ID,
		UserID:    user.ID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &dto.CommentResponse{
		ID:      comment.ID,
		Email:   user.Email,
		Content: comment.Content,
	}, nil
}

func (s *commentService) Update(ctx context.Context, articleID, commentID uint, req dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	user, err := s.authorize(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	article, err := s.resolveArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	comment, err := s.resolveComment(ctx, commentID, article, req.Email)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return &dto.CommentResponse{
		ID:      comment.ID,
		Email:   user.Email,
		Content: comment.Content,
	}, nil
}

func (s *commentService) Delete(ctx context.Context, articleID, commentID uint, req dto.DeleteCommentRequest) error {
	if _, err := s.authorize(ctx, req.Email, req.Password); err != nil {
		return err
	}

	article, err := s.resolveArticle(ctx, articleID)
	if err != nil {
		return err
	}

	comment, err := s.resolveComment(ctx, commentID, article, req.Email)
	if err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, comment.ID)
}

func (s *commentService) authorize(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperror.ErrWrongPassword
	}

	return user, nil
}

func (s *commentService) resolveArticle(ctx context.Context, articleID uint) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrArticleNotFound
		}
		return nil, err
	}

	return article, nil
}

// resolveComment checks ownership before article membership: when both the
// owner and the article are wrong, UserNotMatch wins.
func (s *commentService) resolveComment(ctx context.Context, commentID uint, article *model.Article, email string) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrCommentNotFound
		}
		return nil, err
	}

	switch {
	case comment.User.Email != email:
		return nil, apperror.ErrUserNotMatch
	case comment.ArticleID != article.ID:
		return nil, apperror.ErrArticleNotMatch
	}

	return comment, nil
}
