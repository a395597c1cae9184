package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=services

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByCredentials(ctx context.Context, email, password string) (*models.Account, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, account *models.Account) error
	UpdateSession(ctx context.Context, id, session string) error
	UpdateEmail(ctx context.Context, id, email string) error
	UpdateProfile(ctx context.Context, id, username, aboutMe string) error
}

// SkinLister lists the skins an account owns.
type SkinLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Skin, error)
}

// AccountService handles registration, login and profile changes.
// Email, password and session are only ever stored as codec ciphertext.
type AccountService struct {
	reader AccountReader
	writer AccountWriter
	skins  SkinLister
	codec  Encrypter
	events *EventPublisher
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(
	reader AccountReader,
	writer AccountWriter,
	skins SkinLister,
	codec Encrypter,
	events *EventPublisher,
) *AccountService {
	return &AccountService{
		reader: reader,
		writer: writer,
		skins:  skins,
		codec:  codec,
		events: events,
	}
}

// Register creates a new account. Checks run in order: field bounds, username
// taken, email taken, password confirmation.
func (svc *AccountService) Register(ctx context.Context, username, email, password, confirmPassword string) error {
	email = normalizeEmail(email)

	if err := validateUsername(username); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("username already exists", "username", username)
		return ErrUsernameExists
	}

	encryptedEmail := svc.codec.Encrypt(email)
	existing, err = svc.reader.GetByEmail(ctx, encryptedEmail)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("email already exists", "username", username)
		return ErrEmailExists
	}

	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	account := &models.Account{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     encryptedEmail,
		Password:  svc.codec.Encrypt(password),
		CreatedAt: time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, account); err != nil {
		logger.Log.Errorw("failed to save account", "username", username, "err", err)
		return accountWriteError(err)
	}

	svc.events.Publish(ctx, models.Event{Type: models.EventAccountRegistered, AccountID: account.ID})
	return nil
}

// Login matches the encrypted credentials against the store and replaces the
// account's session with a fresh token, which is returned.
func (svc *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrAccountNotFound
	}

	account, err := svc.reader.GetByCredentials(ctx, svc.codec.Encrypt(email), svc.codec.Encrypt(password))
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", err
	}
	if account == nil {
		return "", ErrAccountNotFound
	}

	session := svc.codec.Encrypt(uuid.NewString())
	if err := svc.writer.UpdateSession(ctx, account.ID, session); err != nil {
		logger.Log.Errorw("failed to store session", "account_id", account.ID, "err", err)
		return "", err
	}

	svc.events.Publish(ctx, models.Event{Type: models.EventAccountLogin, AccountID: account.ID})
	return session, nil
}

// Me returns the caller's own account with the email decrypted and the ids of
// the skins they own.
func (svc *AccountService) Me(ctx context.Context, account *models.Account) (*models.AccountView, error) {
	email, err := svc.codec.Decrypt(account.Email)
	if err != nil {
		logger.Log.Errorw("failed to decrypt email", "account_id", account.ID, "err", err)
		return nil, fmt.Errorf("decrypt email: %w", err)
	}

	skins, err := svc.skins.ListByOwner(ctx, account.ID)
	if err != nil {
		logger.Log.Errorw("failed to list skins", "account_id", account.ID, "err", err)
		return nil, err
	}

	refs := make([]models.SkinRef, 0, len(skins))
	for _, s := range skins {
		refs = append(refs, models.SkinRef{ID: s.ID})
	}

	return &models.AccountView{
		ID:             account.ID,
		Email:          email,
		Date:           account.CreatedAt,
		Session:        account.Session,
		Username:       account.Username,
		AboutMe:        account.AboutMe,
		ProfilePicture: account.ProfilePicture,
		Skins:          refs,
	}, nil
}

// UpdateEmail replaces the account's email.
func (svc *AccountService) UpdateEmail(ctx context.Context, account *models.Account, email string) error {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	encryptedEmail := svc.codec.Encrypt(email)
	existing, err := svc.reader.GetByEmail(ctx, encryptedEmail)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return err
	}
	if existing != nil && existing.ID != account.ID {
		return ErrEmailExists
	}

	if err := svc.writer.UpdateEmail(ctx, account.ID, encryptedEmail); err != nil {
		logger.Log.Errorw("failed to update email", "account_id", account.ID, "err", err)
		return accountWriteError(err)
	}
	return nil
}

// UpdateProfile replaces the account's username and about-me text.
func (svc *AccountService) UpdateProfile(ctx context.Context, account *models.Account, username, aboutMe string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if utf8.RuneCountInString(aboutMe) > MaxAboutMeLength {
		return ErrAboutMeTooLong
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if existing != nil && existing.ID != account.ID {
		return ErrUsernameExists
	}

	if err := svc.writer.UpdateProfile(ctx, account.ID, username, aboutMe); err != nil {
		logger.Log.Errorw("failed to update profile", "account_id", account.ID, "err", err)
		return accountWriteError(err)
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// accountWriteError maps unique index violations to the pre-check errors.
func accountWriteError(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		return ErrUsernameExists
	case errors.Is(err, models.ErrDuplicateEmail):
		return ErrEmailExists
	default:
		return err
	}
}
