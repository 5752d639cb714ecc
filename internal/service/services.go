package service

import (
	"github.com/0xIG/article-crud/internal/config"
	"github.com/0xIG/article-crud/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Article *ArticleService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, cfg),
		Article: NewArticleService(repos.Article),
	}
}
