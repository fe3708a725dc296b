package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

type authService struct {
	accounts    AccountRepository
	restaurants RestaurantRepository
	hasher      PasswordHasher
	tokens      TokenIssuer
	now         func() time.Time
}

// NewAuthService builds the owner registration/login service.
func NewAuthService(accounts AccountRepository, restaurants RestaurantRepository, hasher PasswordHasher, tokens TokenIssuer) AuthService {
	return &authService{
		accounts:    accounts,
		restaurants: restaurants,
		hasher:      hasher,
		tokens:      tokens,
		now:         time.Now,
	}
}

// Register creates the restaurant tenant and its owner account in one step
// and returns a fresh token, mirroring the product's combined sign-up.
func (s *authService) Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	email, err := admindomain.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	name, err := admindomain.NewRestaurantName(cmd.RestaurantName)
	if err != nil {
		return nil, err
	}
	if len(cmd.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.accounts.FindByEmail(ctx, email.String())
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	restaurant := &admindomain.Restaurant{
		Name:      name.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	account := &admindomain.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(cmd.OwnerName),
		RestaurantID: restaurant.ID,
		CreatedAt:    now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	restaurant.OwnerAccountID = account.ID
	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID, account.Email.String(), account.Name, restaurant.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, Account: *account, Restaurant: *restaurant}, nil
}

// Login verifies credentials and mints a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	normalized, err := admindomain.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, normalized.String())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	restaurant, err := s.restaurants.FindByID(ctx, account.RestaurantID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID, account.Email.String(), account.Name, restaurant.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, Account: *account, Restaurant: *restaurant}, nil
}

// Current resolves the authenticated account and its restaurant.
func (s *authService) Current(ctx context.Context, accountID string) (*admindomain.Account, *admindomain.Restaurant, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	restaurant, err := s.restaurants.FindByID(ctx, account.RestaurantID)
	if err != nil {
		return nil, nil, err
	}
	return account, restaurant, nil
}
