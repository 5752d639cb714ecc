package testutil

import (
	"fmt"
	"testing"

	"github.com/0xIG/article-crud/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		name:     "Test User",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Email:        b.email,
		HashPassword: string(hashedPassword),
		Name:         b.name,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// ArticleBuilder creates test articles with a builder pattern
type ArticleBuilder struct {
	title       string
	description string
	content     string
	author      *domain.User
}

// NewArticleBuilder creates a new ArticleBuilder with default values
func NewArticleBuilder() *ArticleBuilder {
	return &ArticleBuilder{
		title:       fmt.Sprintf("Test Article %s", uuid.New().String()[:8]),
		description: "A short description",
		content:     "Full article content body",
	}
}

// WithTitle sets the title
func (b *ArticleBuilder) WithTitle(title string) *ArticleBuilder {
	b.title = title
	return b
}

// WithDescription sets the description
func (b *ArticleBuilder) WithDescription(description string) *ArticleBuilder {
	b.description = description
	return b
}

// WithContent sets the content
func (b *ArticleBuilder) WithContent(content string) *ArticleBuilder {
	b.content = content
	return b
}

// WithAuthor sets the author
func (b *ArticleBuilder) WithAuthor(author *domain.User) *ArticleBuilder {
	b.author = author
	return b
}

// Build creates the article in the database and returns it
func (b *ArticleBuilder) Build(t *testing.T, db *gorm.DB) *domain.Article {
	t.Helper()

	author := b.author
	if author == nil {
		author, _ = NewUserBuilder().Build(t, db)
	}

	article := &domain.Article{
		Title:       b.title,
		Description: b.description,
		Content:     b.content,
		AuthorID:    author.ID,
	}

	if err := db.Create(article).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}
	article.Author = *author

	return article
}
