package user

import (
	"context"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type GoogleProfile struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

// GoogleAuthenticator turns an authorization code into tokens and a profile.
type GoogleAuthenticator interface {
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Profile(ctx context.Context, token *oauth2.Token) (*GoogleProfile, error)
}

type googleAuthenticator struct {
	cfg *oauth2.Config
}

func NewGoogleAuthenticator(cfg *oauth2.Config) GoogleAuthenticator {
	return &googleAuthenticator{cfg: cfg}
}

func (g *googleAuthenticator) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.cfg.Exchange(ctx, code)
}

func (g *googleAuthenticator) Profile(ctx context.Context, token *oauth2.Token) (*GoogleProfile, error) {
	srv, err := oauth2api.NewService(ctx, option.WithTokenSource(g.cfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}
	info, err := srv.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &GoogleProfile{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
