package service_test

import (
	"context"

	"gorm.io/gorm"
	"yourssu.com/blog/internal/model"
)

// Mock repositories with overridable behavior, one func field per method.
// Lookups default to record-not-found, writes default to success.

type mockUserRepo struct {
	createFunc      func(ctx context.Context, user *model.User) error
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	deleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockArticleRepo struct {
	createFunc   func(ctx context.Context, article *model.Article) error
	findByIDFunc func(ctx context.Context, id uint) (*model.Article, error)
	updateFunc   func(ctx context.Context, article *model.Article) error
	deleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockArticleRepo) Create(ctx context.Context, article *model.Article) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepo) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockArticleRepo) Update(ctx context.Context, article *model.Article) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockCommentRepo struct {
	createFunc   func(ctx context.Context, comment *model.Comment) error
	findByIDFunc func(ctx context.Context, id uint) (*model.Comment, error)
	updateFunc   func(ctx context.Context, comment *model.Comment) error
	deleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCommentRepo) Update(ctx context.Context, comment *model.Comment) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockHasher pairs "hashed:"+plaintext with its input so tests can assert
// both directions without real bcrypt work.
type mockHasher struct {
	hashFunc   func(plaintext string) (string, error)
	verifyFunc func(plaintext, hash string) bool
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (m *mockHasher) Verify(plaintext, hash string) bool {
	if m.verifyFunc != nil {
		return m.verifyFunc(plaintext, hash)
	}
	return hash == "hashed:"+plaintext
}
