package services

import (
	"context"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=services

// SessionReader resolves a stored session token to its account.
type SessionReader interface {
	GetBySession(ctx context.Context, session string) (*models.Account, error)
}

// SessionService resolves the x-session header to an account.
type SessionService struct {
	reader SessionReader
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(reader SessionReader) *SessionService {
	return &SessionService{reader: reader}
}

// Authenticate returns the account whose current session equals token.
// Only the latest session issued by Login matches.
func (svc *SessionService) Authenticate(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	account, err := svc.reader.GetBySession(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to get account by session", "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrUnauthenticated
	}
	return account, nil
}
