package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookrental/model"
	"bookrental/util/hash"
	jwtutil "bookrental/util/jwt"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadInput        = errors.New("bad input")
	ErrInvalidCreds    = errors.New("invalid credentials")
	ErrAccountInactive = errors.New("account is inactive")
)

const tokenTTLHours = 24

type Users interface {
	Create(ctx context.Context, u model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, bool)
}

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	users  Users
	secret string
}

func New(users Users, secret string) Service { return &service{users: users, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 6 {
		return nil, "", ErrBadInput
	}

	if _, exists := s.users.ByEmail(ctx, email); exists {
		return nil, "", ErrEmailTaken
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	// The store only rejects duplicate emails, which the pre-check can
	// miss under a concurrent register for the same address.
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", ErrEmailTaken
	}

	token, err := jwtutil.Issue(s.secret, u.ID, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", ErrBadInput
	}

	u, ok := s.users.ByEmail(ctx, email)
	if !ok {
		return nil, "", ErrInvalidCreds
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCreds
	}
	if !u.IsActive {
		return nil, "", ErrAccountInactive
	}

	token, err := jwtutil.Issue(s.secret, u.ID, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
