package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"dropz-server/internal/observability"
	"dropz-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrEmailDoesNotExist  = errors.New("email does not exist")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	logger    *observability.Logger
}

func New(store AuthStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// RegisteredUser is the outcome of a successful registration
type RegisteredUser struct {
	User  store.User `json:"user"`
	Token string     `json:"token"`
}

// Register creates an email account and returns a signed session token
func (p *AuthProcessor) Register(ctx context.Context, email, password string, wallet *string) (RegisteredUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	_, err := p.store.GetUserByEmail(ctx, email)
	if err == nil {
		return RegisteredUser{}, ErrEmailAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check existing email", err)
		return RegisteredUser{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return RegisteredUser{}, err
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:        &email,
		Wallet:       wallet,
		PasswordHash: string(hashedPassword),
		LoginType:    "email",
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create user", err)
		return RegisteredUser{}, err
	}

	token, err := p.generateJWTToken(user)
	if err != nil {
		p.logger.Error(ctx, "failed to generate jwt token", err)
		return RegisteredUser{}, err
	}

	p.logger.Info(ctx, "user registered")
	return RegisteredUser{User: user, Token: token}, nil
}

// Login verifies credentials and returns a signed session token
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrEmailDoesNotExist
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token, err := p.generateJWTToken(user)
	if err != nil {
		p.logger.Error(ctx, "failed to generate jwt token", err)
		return "", err
	}
	return token, nil
}

// GetUser retrieves the account behind a session
func (p *AuthProcessor) GetUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return store.User{}, err
	}
	return user, nil
}
