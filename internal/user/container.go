package user

import (
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, oauthConfig *oauth2.Config) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, NewGoogleAuthenticator(oauthConfig))
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
