package services

import (
	"errors"
	"strings"
	"time"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account not verified")
	ErrBadVerifyToken     = errors.New("invalid verification token")
)

// AuthService owns registration, verification and login.
type AuthService struct {
	userRepo  *repository.UserRepository
	email     *EmailService
	jwtSecret string
	jwtTTL    time.Duration
	log       *zap.Logger
}

func NewAuthService(repo *repository.UserRepository, email *EmailService, secret string, ttl time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  repo,
		email:     email,
		jwtSecret: secret,
		jwtTTL:    ttl,
		log:       log,
	}
}

// Register creates an unverified user and mails the verification link.
func (s *AuthService) Register(name, email, password, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "customer",
		VerifyToken: uuid.NewString(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.email.SendVerificationEmail(user.Email, user.VerifyToken); err != nil {
		// the account exists either way; verification can be re-sent
		s.log.Warn("verification e-mail failed", zap.String("email", user.Email), zap.Error(err))
	}
	return user, nil
}

// Verify flips a user to verified by their mailed token.
func (s *AuthService) Verify(token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrBadVerifyToken
	}
	user, err := s.userRepo.FindByVerifyToken(token)
	if err != nil {
		return nil, ErrBadVerifyToken
	}
	if err := s.userRepo.Update(user.ID, map[string]any{
		"verified":     true,
		"verify_token": "",
	}); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(user.ID)
}

// Login checks credentials and issues a JWT. Unverified accounts are
// rejected; admins pass regardless of the verified flag.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Verified && user.Role != "admin" {
		return "", nil, ErrNotVerified
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
