package services

import (
	"context"
	"errors"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"inspectra/internal/dto"
	"inspectra/internal/entities"
	"inspectra/internal/events"
	"inspectra/internal/repositories"
	"inspectra/pkg/eventbus"
	apperrors "inspectra/pkg/errors"
	"inspectra/pkg/idgen"
	"inspectra/pkg/utils"
)

// AuthService is the mock identity layer: a two-state session machine
// (anonymous / authenticated) over an in-memory user list. Passwords are
// compared in plaintext and there is no token model; failures land in a
// single error slot that the next command overwrites.
type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	idGen          idgen.Generator
	bus            *eventbus.Bus
	logger         *zap.Logger

	isAuthenticated bool
	currentUser     *dto.CurrentUserDTO
	lastError       null.String
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	idGen idgen.Generator,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		idGen:          idGen,
		bus:            bus,
		logger:         logger,
	}
}

func (s *AuthService) snapshot() dto.SessionDTO {
	session := dto.SessionDTO{
		IsAuthenticated: s.isAuthenticated,
		Error:           s.lastError,
	}
	if s.currentUser != nil {
		user := *s.currentUser
		session.CurrentUser = &user
	}
	return session
}

// Session returns the current session state.
func (s *AuthService) Session() dto.SessionDTO {
	return s.snapshot()
}

func userEntityToDTO(entity *entities.User) *dto.UserDTO {
	if entity == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:       entity.ID,
		Email:    entity.Email,
		Name:     entity.Name,
		FullName: entity.FullName,
		Role:     string(entity.Role),
	}
}

func (s *AuthService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *userEntityToDTO(&users[i]))
	}
	return dtos, nil
}

// Login authenticates against the user list. The failure message is the
// same for an unknown email and a wrong password so neither leaks.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) dto.SessionDTO {
	s.lastError = null.String{}

	user, err := s.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil || user.Password != payload.Password {
		s.isAuthenticated = false
		s.currentUser = nil
		s.lastError = null.StringFrom(apperrors.ErrInvalidCredentials.Error())
		s.logger.Warn("login failed", zap.String("email", utils.NormalizeEmail(payload.Email)))
		return s.snapshot()
	}

	s.isAuthenticated = true
	s.currentUser = &dto.CurrentUserDTO{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
	s.logger.Info("login succeeded", zap.String("user_id", user.ID))
	return s.snapshot()
}

// Logout returns to the anonymous state unconditionally.
func (s *AuthService) Logout() dto.SessionDTO {
	s.isAuthenticated = false
	s.currentUser = nil
	s.lastError = null.String{}
	return s.snapshot()
}

// Register validates in order (name, email shape, password length, email
// uniqueness), appends the new user at the front of the list and
// auto-authenticates. Any failure sets the error slot and leaves both the
// user list and the session untouched.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) dto.SessionDTO {
	s.lastError = null.String{}

	fullName := strings.TrimSpace(payload.FullName)
	email := utils.NormalizeEmail(payload.Email)

	if fullName == "" {
		return s.fail("name is required")
	}
	if !strings.Contains(email, "@") {
		return s.fail("invalid email")
	}
	if len(payload.Password) < 6 {
		return s.fail("password is too short (min 6 characters)")
	}
	if _, err := s.userRepository.FindUserByEmail(ctx, email); err == nil {
		return s.fail(apperrors.ErrEmailTaken.Error())
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return s.fail(err.Error())
	}

	user := entities.User{
		ID:       s.idGen.NewID(),
		Email:    email,
		Password: payload.Password,
		Name:     utils.FirstToken(fullName),
		FullName: fullName,
		Role:     entities.RoleEditor,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return s.fail(err.Error())
	}

	s.isAuthenticated = true
	s.currentUser = &dto.CurrentUserDTO{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	s.bus.Publish(ctx, events.UserRegisteredEvent{User: user})
	return s.snapshot()
}

// ClearError clears the error slot without touching the session state.
func (s *AuthService) ClearError() dto.SessionDTO {
	s.lastError = null.String{}
	return s.snapshot()
}

func (s *AuthService) fail(message string) dto.SessionDTO {
	s.lastError = null.StringFrom(message)
	s.logger.Warn("register rejected", zap.String("reason", message))
	return s.snapshot()
}
