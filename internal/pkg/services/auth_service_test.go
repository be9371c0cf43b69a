package services

import (
	"context"
	"testing"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) InsertUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func TestSignup(t *testing.T) {
	repo := new(MockUserStore)
	service := NewAuthService(repo, bcrypt.MinCost)

	repo.On("UserByEmail", mock.Anything, "new@example.com").Return(nil, nil)

	var inserted models.User
	repo.On("InsertUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		inserted = u
		return true
	})).Return("65f1a2b3c4d5e6f7a8b9c0d3", nil)

	id, err := service.Signup(context.Background(), models.SignupRequest{
		Name:     "Asha Verma",
		Email:    "new@example.com",
		Mobile:   "9876543210",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// The stored password must be a bcrypt hash of the submitted one.
	assert.NotEqual(t, "s3cret", inserted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Password), []byte("s3cret")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := new(MockUserStore)
	service := NewAuthService(repo, bcrypt.MinCost)

	repo.On("UserByEmail", mock.Anything, "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil)

	_, err := service.Signup(context.Background(), models.SignupRequest{
		Name:     "Asha Verma",
		Email:    "taken@example.com",
		Mobile:   "9876543210",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, consts.ErrorEmailAlreadyRegistered)
	repo.AssertNotCalled(t, "InsertUser", mock.Anything, mock.Anything)
}

func TestSignupMissingFields(t *testing.T) {
	repo := new(MockUserStore)
	service := NewAuthService(repo, bcrypt.MinCost)

	_, err := service.Signup(context.Background(), models.SignupRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, consts.ErrorMissingRequiredFields)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	stored := &models.User{
		ID:        userID,
		Email:     "asha@example.com",
		Mobile:    "9876543210",
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}

	repo := new(MockUserStore)
	service := NewAuthService(repo, bcrypt.MinCost)
	repo.On("UserByEmail", mock.Anything, "asha@example.com").Return(stored, nil)

	user, token, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
	assert.Equal(t, "token-"+userID.Hex(), token)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockUserStore)
	service := NewAuthService(repo, bcrypt.MinCost)
	repo.On("UserByEmail", mock.Anything, "asha@example.com").Return(&models.User{
		Email:    "asha@example.com",
		Password: string(hashed),
	}, nil)

	_, _, err = service.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, consts.ErrorInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(MockUserStore)
	service := NewAuthService(repo, bcrypt.MinCost)
	repo.On("UserByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, _, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, consts.ErrorInvalidCredentials)
}
