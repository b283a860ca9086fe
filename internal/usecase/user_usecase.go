package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"siap-spj-backend/internal/access"
	"siap-spj-backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("username atau password salah")
	ErrInvalidRole        = errors.New("role tidak dikenal")
	ErrMissingField       = errors.New("username dan password wajib diisi")
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// Authenticator memeriksa kredensial dan mengembalikan user beserta role-nya.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (model.User, error)
}

type BcryptAuthenticator struct {
	repo UserStore
}

func NewBcryptAuthenticator(repo UserStore) *BcryptAuthenticator {
	return &BcryptAuthenticator{repo: repo}
}

func (a *BcryptAuthenticator) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	// 1. Cari user berdasarkan username
	user, err := a.repo.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}

	// 2. Bandingkan password (input vs hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Println("Bcrypt Error:", err)
		return model.User{}, ErrInvalidCredentials
	}
	return user, nil
}

type UserUsecase struct {
	repo   UserStore
	auth   Authenticator
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewUserUsecase(repo UserStore, auth Authenticator, secret string, ttl time.Duration) *UserUsecase {
	return &UserUsecase{repo: repo, auth: auth, secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (u *UserUsecase) Register(ctx context.Context, username, nama, password string, role access.Role) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingField
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		Username: username,
		Nama:     nama,
		Password: hashed,
		Role:     role,
	}
	if err := u.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login mengembalikan JWT berisi username dan role.
func (u *UserUsecase) Login(ctx context.Context, username, password string) (string, model.User, error) {
	user, err := u.auth.Authenticate(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return "", model.User{}, err
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      u.now().Add(u.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(u.secret)
	if err != nil {
		return "", model.User{}, err
	}
	return t, user, nil
}

func (u *UserUsecase) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return u.repo.GetByUsername(ctx, username)
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
