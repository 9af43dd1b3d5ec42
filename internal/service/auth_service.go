// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"os"
	"time"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/mailer"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/memory"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ResetWithRecoveryKey(ctx context.Context, req *dto.RecoveryResetRequest) error
	Logout(tokenId string)
	CurrentSession(ctx context.Context, tokenId string) (*entity.SessionSnapshot, error)
	Profile(ctx context.Context, email string) (*dto.ProfileDTO, error)
	EnsureBootstrapModerator(ctx context.Context) error
}

type authService struct {
	users          contract.UserRepository
	sessions       *memory.SessionRepository
	emailService   mailer.IEmailService
	eventPublisher events.Publisher
}

func NewAuthService(
	users contract.UserRepository,
	sessions *memory.SessionRepository,
	emailService mailer.IEmailService,
	eventPublisher events.Publisher,
) IAuthService {
	return &authService{
		users:          users,
		sessions:       sessions,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

// recoveryKeyAlphabet drops the lookalike characters 0/O, 1/I and L.
const recoveryKeyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const sessionTTL = 24 * time.Hour

func generateRecoveryKey() (string, error) {
	key := make([]byte, 6)
	for i := range key {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(recoveryKeyAlphabet))))
		if err != nil {
			return "", err
		}
		key[i] = recoveryKeyAlphabet[n.Int64()]
	}
	return string(key), nil
}

func avatarURLFor(email string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/pixel-art/svg?seed=%s", url.QueryEscape(email))
}

func ToProfileDTO(user *entity.User) dto.ProfileDTO {
	return dto.ProfileDTO{
		Email:       user.Email,
		FullName:    user.FullName,
		AvatarURL:   avatarURLFor(user.Email),
		Plan:        string(user.Plan),
		IsPremium:   user.IsPremium(),
		IsModerator: user.IsModerator,
		UsageStats:  user.UsageStats,
		JoinedAt:    user.JoinedAt,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	// 1. Check for existing user
	existing, err := s.users.FindOne(ctx, specification.UserByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Mint the recovery key shown exactly once at signup
	recoveryKey, err := generateRecoveryKey()
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		RecoveryCode: recoveryKey,
		Plan:         entity.PlanBudget,
		UsageStats:   entity.UsageStats{},
		JoinedAt:     time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	token, _, err := s.openSession(user)
	if err != nil {
		return nil, err
	}

	// Best effort: mail the recovery key and announce the signup
	go func() {
		if emailErr := s.emailService.SendRecoveryKey(user.Email, user.FullName, recoveryKey); emailErr != nil {
			fmt.Printf("Error sending recovery key email: %v\n", emailErr)
		}
	}()
	s.publish(events.NewUserSignedUp(user.Email, string(user.Plan)))

	return &dto.SignupResponse{
		Token:       token,
		RecoveryKey: recoveryKey,
		Profile:     ToProfileDTO(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.openSession(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:   token,
		Profile: ToProfileDTO(user),
	}, nil
}

func (s *authService) ResetWithRecoveryKey(ctx context.Context, req *dto.RecoveryResetRequest) error {
	user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: req.Email})
	if err != nil {
		return err
	}
	if user == nil || user.RecoveryCode != req.RecoveryKey {
		// Same error either way so the endpoint does not leak which
		// accounts exist.
		return ErrInvalidRecoveryKey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Rotate the recovery key, a key only works once
	newKey, err := generateRecoveryKey()
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.RecoveryCode = newKey
	user.UpdatedAt = time.Now()
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	s.sessions.DeleteByEmail(user.Email)

	go func() {
		if emailErr := s.emailService.SendRecoveryKey(user.Email, user.FullName, newKey); emailErr != nil {
			fmt.Printf("Error sending rotated recovery key email: %v\n", emailErr)
		}
	}()
	return nil
}

func (s *authService) Logout(tokenId string) {
	s.sessions.Delete(tokenId)
}

func (s *authService) CurrentSession(ctx context.Context, tokenId string) (*entity.SessionSnapshot, error) {
	session, found := s.sessions.Get(tokenId)
	if !found {
		return nil, ErrSessionExpired
	}
	return session, nil
}

func (s *authService) Profile(ctx context.Context, email string) (*dto.ProfileDTO, error) {
	user, err := s.users.FindOne(ctx, specification.UserByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	profile := ToProfileDTO(user)
	return &profile, nil
}

// EnsureBootstrapModerator seeds the moderator account named in the
// environment. It runs on every boot and is a no-op once the account
// exists.
func (s *authService) EnsureBootstrapModerator(ctx context.Context) error {
	email := os.Getenv("BOOTSTRAP_ADMIN_EMAIL")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.users.FindOne(ctx, specification.UserByEmail{Email: email})
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.IsModerator {
			return nil
		}
		existing.IsModerator = true
		existing.UpdatedAt = time.Now()
		return s.users.Save(ctx, existing)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	recoveryKey, err := generateRecoveryKey()
	if err != nil {
		return err
	}

	moderator := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "System Moderator",
		PasswordHash: string(hash),
		RecoveryCode: recoveryKey,
		Plan:         entity.PlanLegend,
		IsModerator:  true,
		UsageStats:   entity.UsageStats{},
		JoinedAt:     time.Now(),
		UpdatedAt:    time.Now(),
	}
	return s.users.Save(ctx, moderator)
}

func (s *authService) openSession(user *entity.User) (string, *entity.SessionSnapshot, error) {
	tokenId := uuid.New().String()
	expiresAt := time.Now().Add(sessionTTL)

	claims := jwt.MapClaims{
		"jti":       tokenId,
		"email":     user.Email,
		"moderator": user.IsModerator,
		"exp":       expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", nil, errors.New("JWT_SECRET is not set")
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}

	snapshot := &entity.SessionSnapshot{
		TokenId:     tokenId,
		Email:       user.Email,
		FullName:    user.FullName,
		AvatarURL:   avatarURLFor(user.Email),
		Plan:        user.Plan,
		IsModerator: user.IsModerator,
		UsageStats:  user.UsageStats,
		JoinedAt:    user.JoinedAt,
		ExpiresAt:   expiresAt,
	}
	s.sessions.Save(snapshot)

	return signedToken, snapshot, nil
}

func (s *authService) publish(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("Warn: failed to publish %s: %v\n", event.EventType(), err)
	}
}
