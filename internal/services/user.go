package services

import (
	"context"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// UsernameReader looks up accounts by display name.
type UsernameReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

// UserService serves public profiles.
type UserService struct {
	accounts UsernameReader
	skins    SkinLister
}

// NewUserService creates a new UserService instance.
func NewUserService(accounts UsernameReader, skins SkinLister) *UserService {
	return &UserService{accounts: accounts, skins: skins}
}

// GetUser returns the public profile of username.
func (svc *UserService) GetUser(ctx context.Context, username string) (*models.PublicUser, error) {
	account, err := svc.lookup(ctx, username)
	if err != nil {
		return nil, err
	}
	return &models.PublicUser{
		ID:             account.ID,
		Username:       account.Username,
		AboutMe:        account.AboutMe,
		ProfilePicture: account.ProfilePicture,
	}, nil
}

// ListUserSkins returns the skins owned by username, oldest first.
func (svc *UserService) ListUserSkins(ctx context.Context, username string) ([]models.SkinView, error) {
	account, err := svc.lookup(ctx, username)
	if err != nil {
		return nil, err
	}

	skins, err := svc.skins.ListByOwner(ctx, account.ID)
	if err != nil {
		logger.Log.Errorw("failed to list skins", "account_id", account.ID, "err", err)
		return nil, err
	}

	views := make([]models.SkinView, 0, len(skins))
	for _, s := range skins {
		views = append(views, s.View())
	}
	return views, nil
}

func (svc *UserService) lookup(ctx context.Context, username string) (*models.Account, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}
	account, err := svc.accounts.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get account", "username", username, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}
