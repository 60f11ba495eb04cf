package auth

import (
	"context"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
	"github.com/jhoicas/kape-pos-api/pkg/jwt"
	"github.com/jhoicas/kape-pos-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// UseCase casos de uso de cuentas: registro, login, identidad, administración.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de cuentas.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta: hashea el password con bcrypt y persiste. No hay
// check previo de duplicado; el constraint único de username decide y el repo
// devuelve ErrUsernameExists, así dos registros concurrentes nunca crean dos
// cuentas con el mismo username.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	user := &entity.User{
		Username:     in.Username,
		Name:         in.Name,
		Role:         in.Role,
		PasswordHash: hash,
		Active:       active,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Message:  "User registered successfully",
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// Login autentica por username/password y emite el token de sesión.
// Una cuenta inactiva se rechaza antes de comparar la contraseña: la política
// es rechazarla aunque la contraseña sea correcta.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Active {
		return nil, domain.ErrInactiveAccount
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			Active:   user.Active,
		},
	}, nil
}

// CurrentUser devuelve la identidad del token (rol leído fresco de la DB).
func (uc *UseCase) CurrentUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Active:   user.Active,
	}, nil
}

// List devuelve todas las cuentas ordenadas por id, sin hash ni contraseña.
func (uc *UseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Role:     u.Role,
			Active:   u.Active,
		})
	}
	return out, nil
}

// SetActive actualiza el flag active de una cuenta.
func (uc *UseCase) SetActive(ctx context.Context, id int64, active bool) (*dto.ToggleActiveResponse, error) {
	user, err := uc.userRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.ToggleActiveResponse{ID: user.ID, Active: user.Active}, nil
}

// ResetPassword genera una contraseña temporal de 8 caracteres alfanuméricos,
// guarda su hash y devuelve el texto plano una única vez: no puede recuperarse
// después. La contraseña anterior deja de ser válida de inmediato.
func (uc *UseCase) ResetPassword(ctx context.Context, id int64) (*dto.ResetPasswordResponse, error) {
	plain, err := password.GenerateTemporary()
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.UpdatePassword(ctx, id, hash)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.ResetPasswordResponse{
		Message:  "Password reset successfully",
		Username: user.Username,
		Password: plain,
	}, nil
}
