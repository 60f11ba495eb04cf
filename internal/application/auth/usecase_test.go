package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kape-pos-api/internal/application/auth"
	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/pkg/password"
)

// fakeUserRepo implementación en memoria de repository.UserRepository.
// Reproduce el contrato del adaptador Postgres: unique constraint sobre
// username y (nil, nil) cuando la fila no existe.
type fakeUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameExists
		}
	}
	f.seq++
	user.ID = f.seq
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for i := int64(1); i <= f.seq; i++ {
		if u, ok := f.users[i]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, id int64, active bool) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u.Active = active
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u.PasswordHash = hash
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetRoleByID(_ context.Context, id int64) (string, error) {
	u, ok := f.users[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.Role, nil
}

func testUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:   "test-secret-key-for-unit-tests",
		ExpHours: 6,
		Issuer:   "kape-pos-test",
	})
	return uc, repo
}

func register(t *testing.T, uc *auth.UseCase, username, pass, role string) int64 {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: username,
		Name:     username,
		Role:     role,
		Password: pass,
	})
	require.NoError(t, err)
	return out.ID
}

func TestRegister_GuardaHashNuncaTextoPlano(t *testing.T) {
	uc, repo := testUseCase()
	id := register(t, uc, "alice", "secret123", "admin")

	stored := repo.users[id]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, password.Verify("secret123", stored.PasswordHash))
}

func TestRegister_UsernameDuplicadoRetornaConflicto(t *testing.T) {
	uc, _ := testUseCase()
	register(t, uc, "alice", "secret123", "admin")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice", Name: "Alice 2", Role: "barista", Password: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestLogin_Exitoso_EmiteToken(t *testing.T) {
	uc, _ := testUseCase()
	register(t, uc, "alice", "secret123", "admin")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "admin", out.User.Role)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva_RechazadaAunConPasswordCorrecta(t *testing.T) {
	uc, _ := testUseCase()
	id := register(t, uc, "alice", "secret123", "admin")
	_, err := uc.SetActive(context.Background(), id, false)
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount,
		"la política rechaza cuentas inactivas antes de comparar la contraseña")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := testUseCase()
	register(t, uc, "alice", "secret123", "admin")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "nop"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestResetPassword_InvalidaLaAnterior(t *testing.T) {
	uc, _ := testUseCase()
	id := register(t, uc, "alice", "secret123", "admin")

	out, err := uc.ResetPassword(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Len(t, out.Password, 8)
	assert.NotEqual(t, "secret123", out.Password)

	// La contraseña anterior ya no sirve; la temporal sí.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: out.Password})
	assert.NoError(t, err)
}

func TestResetPassword_UsuarioInexistente(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.ResetPassword(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestList_NuncaExponeHashes(t *testing.T) {
	uc, _ := testUseCase()
	register(t, uc, "alice", "secret123", "admin")
	register(t, uc, "bob", "hunter2", "barista")

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID, "orden por id ascendente")
	assert.Equal(t, "alice", out[0].Username)
	assert.Equal(t, "bob", out[1].Username)
}
