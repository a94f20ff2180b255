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

type ArticleService interface {
	Create(ctx context.Context, req dto.CreateArticleRequest) (*dto.ArticleResponse, error)
	Update(ctx context.Context, articleID uint, req dto.UpdateArticleRequest) (*dto.ArticleResponse, error)
	Delete(ctx context.Context, articleID uint, req dto.DeleteArticleRequest) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	hasher      PasswordHasher
}

func NewArticleService(articleRepo repository.ArticleRepository, userRepo repository.UserRepository, hasher PasswordHasher) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		hasher:      hasher,
	}
}

func (s *articleService) Create(ctx context.Context, req dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	user, err := s.authorize(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// Title and content are stored exactly as submitted; the projection
	// must round-trip them byte for byte.
	article := &model.Article{
		Title:   req.Title,
		Content: req.Content,
		UserID:  user.ID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return &dto.ArticleResponse{
		ID:      article.ID,
		Email:   user.Email,
		Title:   article.Title,
		Content: article.Content,
	}, nil
}

func (s *articleService) Update(ctx context.Context, articleID uint, req dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	user, err := s.authorize(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	article, err := s.resolveOwned(ctx, articleID, req.Email)
	if err != nil {
		return nil, err
	}

	article.Update(req.Title, req.Content)
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return &dto.ArticleResponse{
		ID:      article.ID,
		Email:   user.Email,
		Title:   article.Title,
		Content: article.Content,
	}, nil
}

func (s *articleService) Delete(ctx context.Context, articleID uint, req dto.DeleteArticleRequest) error {
	if _, err := s.authorize(ctx, req.Email, req.Password); err != nil {
		return err
	}

	article, err := s.resolveOwned(ctx, articleID, req.Email)
	if err != nil {
		return err
	}

	return s.articleRepo.Delete(ctx, article.ID)
}

// authorize resolves the requester by email and checks the password.
// Existence is always checked before the credential so a missing user is
// reported as UserNotFound, never WrongPassword.
func (s *articleService) authorize(ctx context.Context, email, password string) (*model.User, error) {
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

// resolveOwned looks the article up before comparing owners: a nonexistent
// article is ArticleNotFound even when the requester would not own it.
func (s *articleService) resolveOwned(ctx context.Context, articleID uint, email string) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrArticleNotFound
		}
		return nil, err
	}

	if article.User.Email != email {
		return nil, apperror.ErrUserNotMatch
	}

	return article, nil
}
