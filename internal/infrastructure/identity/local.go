package identity

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

// LocalAuthority is the self-contained identity mode: accounts live in the
// service's own user collection and tokens are HS256 JWTs it signs itself.
type LocalAuthority struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewLocalAuthority(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *LocalAuthority {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &LocalAuthority{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (a *LocalAuthority) Authenticate(ctx context.Context, phone, password string) (string, error) {
	if phone == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := a.users.FindByPhone(ctx, phone)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return a.generateToken(user)
}

// Register creates a local account with a bcrypt-hashed password.
func (a *LocalAuthority) Register(ctx context.Context, phone, password, fullName string) (*domain.User, error) {
	if phone == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Phone:        phone,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return a.users.Create(ctx, user)
}

func (a *LocalAuthority) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"phone": user.Phone,
		"exp":   time.Now().Add(a.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(a.jwtSecret))
}
