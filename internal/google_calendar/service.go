package googlecalendar

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/user"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	ErrUserNotFound          = errors.New("user not found for calendar integration")
	ErrDecryptionFailed      = errors.New("failed to decrypt user's google token")
	ErrMissingCalendarTokens = errors.New("user has no google access token")
)

// Calendar inserts events into one user's primary calendar.
type Calendar interface {
	InsertEvent(ctx context.Context, event *gcal.Event) (string, error)
}

type CalendarService interface {
	ForUser(ctx context.Context, userID uuid.UUID) (Calendar, error)
}

type calendarService struct {
	userRepo    user.UserRepository
	oauthConfig *oauth2.Config
}

func NewCalendarService(userRepo user.UserRepository, oauthConfig *oauth2.Config) CalendarService {
	return &calendarService{
		userRepo:    userRepo,
		oauthConfig: oauthConfig,
	}
}

type googleCalendar struct {
	srv *gcal.Service
}

func (c *googleCalendar) InsertEvent(ctx context.Context, event *gcal.Event) (string, error) {
	ev, err := c.srv.Events.Insert(PrimaryCalendar, event).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return ev.Id, nil
}

func (s *calendarService) ForUser(ctx context.Context, userID uuid.UUID) (Calendar, error) {
	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &googleCalendar{srv: srv}, nil
}

func (s *calendarService) getCalendarClient(ctx context.Context, userID uuid.UUID) (*gcal.Service, error) {
	log := config.WithContext(ctx)

	u, err := s.userRepo.GetByID(userID.String())
	if err != nil {
		log.WithError(err).Error("Failed to retrieve user for calendar client")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.EncryptedGoogleAccessToken == "" {
		return nil, ErrMissingCalendarTokens
	}

	accessToken, err := config.Decrypt(u.EncryptedGoogleAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt access token")
		return nil, ErrDecryptionFailed
	}
	var refreshToken string
	if u.EncryptedGoogleRefreshToken != "" {
		if refreshToken, err = config.Decrypt(u.EncryptedGoogleRefreshToken); err != nil {
			log.WithError(err).Error("Failed to decrypt refresh token")
			return nil, ErrDecryptionFailed
		}
	}

	token := &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}
	if u.GoogleTokenExpiry != nil {
		token.Expiry = *u.GoogleTokenExpiry
	}

	tokenSource := s.oauthConfig.TokenSource(ctx, token)
	newToken, err := tokenSource.Token()
	if err != nil {
		log.WithError(err).Error("Failed to refresh Google token")
		return nil, err
	}

	if newToken.AccessToken != accessToken {
		s.persistToken(ctx, u, newToken)
	}

	client := oauth2.NewClient(ctx, tokenSource)
	srv, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.WithError(err).Error("Failed to create Calendar service client")
		return nil, err
	}

	return srv, nil
}

// persistToken stores a refreshed access token. Failures only cost a refresh
// on the next call, so they are logged and ignored.
func (s *calendarService) persistToken(ctx context.Context, u *user.User, tok *oauth2.Token) {
	log := config.WithContext(ctx)

	enc, err := config.Encrypt(tok.AccessToken)
	if err != nil {
		log.WithError(err).Warn("Failed to encrypt refreshed token")
		return
	}
	u.EncryptedGoogleAccessToken = enc
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry
		u.GoogleTokenExpiry = &expiry
	}
	if err := s.userRepo.Update(u); err != nil {
		log.WithError(err).Warn("Failed to persist refreshed Google token")
		return
	}
	log.Info("Google token refreshed")
}
