package usecase

import (
	"fmt"
	"time"

	"sirup-monitor/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthUsecase: semua akun memakai satu passphrase bersama; user dikenali dari username.
type AuthUsecase struct {
	state      *StateUsecase
	secret     []byte
	passphrase []byte // bcrypt hash
}

func NewAuthUsecase(state *StateUsecase, secret []byte, passphrase string) (*AuthUsecase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthUsecase{state: state, secret: secret, passphrase: hash}, nil
}

func (a *AuthUsecase) Login(username, password string) (string, model.User, error) {
	user, ok := a.state.Snapshot().FindUserByUsername(username)
	if !ok {
		return "", model.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passphrase, []byte(password)); err != nil {
		return "", model.User{}, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"opd_id":   user.OpdID,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(a.secret)
	if err != nil {
		return "", model.User{}, fmt.Errorf("gagal membuat token: %w", err)
	}
	return t, user, nil
}
