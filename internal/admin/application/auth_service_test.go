package application

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
)

type fakeAccountRepository struct {
	accounts []*admindomain.Account
	nextID   int
}

func (f *fakeAccountRepository) FindByEmail(_ context.Context, email string) (*admindomain.Account, error) {
	for _, account := range f.accounts {
		if account.Email.String() == email {
			return account, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id string) (*admindomain.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeAccountRepository) Create(_ context.Context, account *admindomain.Account) error {
	f.nextID++
	account.ID = "acc-" + strconv.Itoa(f.nextID)
	f.accounts = append(f.accounts, account)
	return nil
}

type fakeRestaurantRepo struct {
	restaurants map[string]*admindomain.Restaurant
	nextID      int
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[string]*admindomain.Restaurant)}
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id string) (*admindomain.Restaurant, error) {
	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return restaurant, nil
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *admindomain.Restaurant) error {
	f.nextID++
	restaurant.ID = "rest-" + strconv.Itoa(f.nextID)
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, restaurant *admindomain.Restaurant) error {
	if _, ok := f.restaurants[restaurant.ID]; !ok {
		return ErrNotFound
	}
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(accountID, _, _, restaurantID string) (string, error) {
	return "token-" + accountID + "-" + restaurantID, nil
}

func newAuthFixture() (AuthService, *fakeAccountRepository, *fakeRestaurantRepo) {
	accounts := &fakeAccountRepository{}
	restaurants := newFakeRestaurantRepo()
	service := NewAuthService(accounts, restaurants, fakeHasher{}, fakeTokenIssuer{})
	return service, accounts, restaurants
}

func TestRegisterCreatesTenantAndOwner(t *testing.T) {
	service, accounts, restaurants := newAuthFixture()

	result, err := service.Register(context.Background(), RegisterCommand{
		RestaurantName: " Trattoria Lumen ",
		OwnerName:      " Ada ",
		Email:          " Owner@Example.com ",
		Password:       "longenough",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "owner@example.com", result.Account.Email.String())
	assert.Equal(t, "Ada", result.Account.Name)
	assert.Equal(t, "Trattoria Lumen", result.Restaurant.Name)
	assert.Equal(t, result.Restaurant.ID, result.Account.RestaurantID)
	assert.Equal(t, result.Account.ID, result.Restaurant.OwnerAccountID)

	require.Len(t, accounts.accounts, 1)
	stored := restaurants.restaurants[result.Restaurant.ID]
	require.NotNil(t, stored)
	assert.Equal(t, result.Account.ID, stored.OwnerAccountID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _, _ := newAuthFixture()
	cmd := RegisterCommand{
		RestaurantName: "Trattoria Lumen",
		Email:          "owner@example.com",
		Password:       "longenough",
	}

	_, err := service.Register(context.Background(), cmd)
	require.NoError(t, err)

	cmd.RestaurantName = "Another Place"
	_, err = service.Register(context.Background(), cmd)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterCommand{RestaurantName: "X", Email: "bad", Password: "longenough"})
	assert.Error(t, err)

	_, err = service.Register(ctx, RegisterCommand{RestaurantName: " ", Email: "a@b.example", Password: "longenough"})
	assert.Error(t, err)

	_, err = service.Register(ctx, RegisterCommand{RestaurantName: "X", Email: "a@b.example", Password: "short"})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterCommand{
		RestaurantName: "Trattoria Lumen",
		Email:          "owner@example.com",
		Password:       "longenough",
	})
	require.NoError(t, err)

	result, err := service.Login(ctx, "Owner@Example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, result.Account.ID)
	assert.Equal(t, registered.Restaurant.ID, result.Restaurant.ID)
	assert.NotEmpty(t, result.Token)

	_, err = service.Login(ctx, "owner@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(ctx, "stranger@example.com", "longenough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(ctx, "not-an-address", "longenough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrent(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterCommand{
		RestaurantName: "Trattoria Lumen",
		Email:          "owner@example.com",
		Password:       "longenough",
	})
	require.NoError(t, err)

	account, restaurant, err := service.Current(ctx, registered.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, account.ID)
	assert.Equal(t, registered.Restaurant.ID, restaurant.ID)

	_, _, err = service.Current(ctx, "acc-ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
