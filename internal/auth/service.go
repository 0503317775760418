package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/anirudhs017/event-management-backend/config"
	"github.com/anirudhs017/event-management-backend/internal/apperror"
	"github.com/anirudhs017/event-management-backend/utils"
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*User, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenPair, *User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo          Repository
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:          repo,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLHours) * time.Hour,
	}
}

// =============================
// Register
func (s *service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.Persistence(err)
	}

	return user, nil
}

// =============================
// Login
func (s *service) Login(ctx context.Context, req *LoginRequest) (*TokenPair, *User, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, nil, apperror.Persistence(err)
	}
	if user == nil {
		return nil, nil, apperror.Validation("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, apperror.Validation("invalid credentials")
	}

	accessToken, err := s.generateToken(user, s.accessSecret, s.accessTTL)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.generateToken(user, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, user, nil
}

// =============================
// Refresh
func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if s.isBlacklisted(ctx, refreshToken) {
		return "", apperror.Validation("refresh token has been revoked")
	}

	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.refreshSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", apperror.Validation("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.Validation("invalid refresh token claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return "", apperror.Validation("user_id missing in refresh token")
	}

	user, err := s.repo.FindByID(ctx, uint(userIDFloat))
	if err != nil {
		return "", apperror.Persistence(err)
	}
	if user == nil {
		return "", apperror.NotFound("user not found")
	}

	return s.generateToken(user, s.accessSecret, s.accessTTL)
}

// =============================
// Logout revokes a refresh token by blacklisting it in redis until its own
// expiry would have passed anyway.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if utils.RedisClient == nil {
		return nil
	}
	key := blacklistKey(refreshToken)
	return utils.RedisClient.Set(ctx, key, "revoked", s.refreshTTL).Err()
}

func (s *service) isBlacklisted(ctx context.Context, refreshToken string) bool {
	if utils.RedisClient == nil {
		return false
	}
	n, err := utils.RedisClient.Exists(ctx, blacklistKey(refreshToken)).Result()
	return err == nil && n > 0
}

func blacklistKey(token string) string {
	return fmt.Sprintf("auth:blacklist:%s", token)
}

func (s *service) GetUserByID(ctx context.Context, id uint) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (s *service) generateToken(user *User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
