package devapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

// Accounts registers and authenticates users of the development backend.
type Accounts struct {
	store  model.AccountStore
	tokens *TokenService
	cost   int
	now    func() time.Time
	logger *logger.Logger
}

func NewAccounts(store model.AccountStore, tokens *TokenService, now func() time.Time, logger *logger.Logger) *Accounts {
	if now == nil {
		now = time.Now
	}
	return &Accounts{store: store, tokens: tokens, cost: bcrypt.DefaultCost, now: now, logger: logger}
}

func (a *Accounts) Register(ctx context.Context, reg model.Registration) (model.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	a.logger.Debug("Accounts: registering user", "email", email)

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), a.cost)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := a.store.Create(ctx, model.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(reg.Name),
		PasswordHash: hash,
		CreatedAt:    a.now(),
	})
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Accounts: email already registered", "email", email)
			return model.AuthResult{}, err
		}
		return model.AuthResult{}, fmt.Errorf("failed to create account: %w", err)
	}

	tokens, err := a.tokens.Issue(ctx, account.ID)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Accounts: user registered", "user_id", account.ID)
	return model.AuthResult{User: summary(account), Tokens: tokens}, nil
}

func (a *Accounts) Login(ctx context.Context, creds model.Credentials) (model.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	account, err := a.store.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(creds.Password)); err != nil {
		a.logger.Info("Accounts: wrong password", "user_id", account.ID)
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	tokens, err := a.tokens.Issue(ctx, account.ID)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Accounts: user logged in", "user_id", account.ID)
	return model.AuthResult{User: summary(account), Tokens: tokens}, nil
}

func (a *Accounts) Profile(ctx context.Context, userID uuid.UUID) (model.User, error) {
	account, err := a.store.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	return summary(account), nil
}

func summary(account model.Account) model.User {
	return model.User{ID: account.ID.String(), Email: account.Email, Name: account.Name}
}
