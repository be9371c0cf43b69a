package services

import (
	"context"
	"fmt"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/consts"
	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   UserStore
	bcryptCost int
}

func NewAuthService(userRepo UserStore, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	if req.Email == "" || req.Mobile == "" || req.Password == "" {
		return "", consts.ErrorMissingRequiredFields
	}

	existing, err := s.userRepo.UserByEmail(ctx, req.Email)
	if err != nil {
		return "", consts.ErrorPersistenceFailed
	}
	if existing != nil {
		return "", consts.ErrorEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		logger.Error(ctx, "auth : hashing password failed: %v", err)
		return "", consts.ErrorPersistenceFailed
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC(),
	}

	return s.userRepo.InsertUser(ctx, user)
}

// Login verifies credentials and issues the placeholder cookie token. The
// token scheme is not a real session protocol; it only marks a logged-in
// browser for the UI.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", consts.ErrorMissingRequiredFields
	}

	user, err := s.userRepo.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", consts.ErrorPersistenceFailed
	}
	if user == nil {
		return nil, "", consts.ErrorInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", consts.ErrorInvalidCredentials
	}

	token := fmt.Sprintf("token-%s", user.ID.Hex())
	return user, token, nil
}
