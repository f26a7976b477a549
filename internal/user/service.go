package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/rpm-planner/internal/auth"
	"github.com/saulo-duarte/rpm-planner/internal/config"
)

const (
	DefaultRole = "user"
	SessionTTL  = 7 * 24 * time.Hour
)

var (
	ErrMissingCode   = errors.New("authorization code is required")
	ErrGoogleAuth    = errors.New("google authentication failed")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
)

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*LoginResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
}

type userService struct {
	repo   UserRepository
	google GoogleAuthenticator
}

func NewService(repo UserRepository, google GoogleAuthenticator) UserService {
	return &userService{repo: repo, google: google}
}

// GoogleLogin exchanges code with Google, creates or refreshes the matching
// user and issues a session token.
func (s *userService) GoogleLogin(ctx context.Context, code string) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMissingCode
	}

	token, err := s.google.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		return nil, ErrGoogleAuth
	}
	profile, err := s.google.Profile(ctx, token)
	if err != nil {
		log.WithError(err).Warn("Google userinfo lookup failed")
		return nil, ErrGoogleAuth
	}

	u, err := s.repo.GetByGoogleID(profile.ID)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return nil, err
	}
	isNew := u == nil
	if isNew {
		u = &User{ID: uuid.New(), GoogleID: profile.ID, Role: DefaultRole}
	}
	u.Email = profile.Email
	u.Name = profile.Name
	u.Picture = profile.Picture

	if u.EncryptedGoogleAccessToken, err = config.Encrypt(token.AccessToken); err != nil {
		log.WithError(err).Error("Failed to encrypt access token")
		return nil, err
	}
	// Google only sends a refresh token on first consent; keep the old one.
	if token.RefreshToken != "" {
		if u.EncryptedGoogleRefreshToken, err = config.Encrypt(token.RefreshToken); err != nil {
			log.WithError(err).Error("Failed to encrypt refresh token")
			return nil, err
		}
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		u.GoogleTokenExpiry = &expiry
	}

	if isNew {
		err = s.repo.Create(u)
	} else {
		err = s.repo.Update(u)
	}
	if err != nil {
		log.WithError(err).Error("Failed to save user")
		return nil, err
	}

	jwtToken, err := auth.GenerateJWT(u.ID.String(), u.Role, SessionTTL)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT")
		return nil, err
	}

	log.WithFields(logrus.Fields{"user_id": u.ID, "new": isNew}).Info("User signed in")
	return &LoginResponse{Token: jwtToken, User: toResponse(u)}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidUserID
	}
	u, err := s.repo.GetByID(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to get user")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	resp := toResponse(u)
	return &resp, nil
}
