package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mock_repository "github.com/vfg2006/marketplace-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	t.Run("autentica o usuário e emite um token válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
			ID:           7,
			Name:         "Ana",
			Email:        "ana@example.com",
			PasswordHash: hashPassword(t, "Senha@Forte1"),
			Active:       true,
			RoleID:       2,
		}, nil)

		service := NewService(userRepo, authTestConfig())

		token, err := service.LoginUser("  Ana@Example.com ", "Senha@Forte1")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "Ana", claims.UserName)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("rejeita senha incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
			ID:           7,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
			Active:       true,
		}, nil)

		service := NewService(userRepo, authTestConfig())

		_, err := service.LoginUser("ana@example.com", "senha-errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejeita conta desativada sem conferir a senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
			ID:     7,
			Active: false,
		}, nil)

		service := NewService(userRepo, authTestConfig())

		_, err := service.LoginUser("ana@example.com", "Senha@Forte1")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("rejeita usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

		service := NewService(userRepo, authTestConfig())

		_, err := service.LoginUser("ninguem@example.com", "qualquer")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejeita credenciais em branco sem consultar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mock_repository.NewMockUserRepository(ctrl), authTestConfig())

		_, err := service.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("rejeita token assinado com outro segredo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
			ID:           7,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
			Active:       true,
		}, nil)

		issuer := NewService(userRepo, &config.Config{Auth: config.Auth{Secret: "outro-segredo"}})
		token, err := issuer.LoginUser("ana@example.com", "Senha@Forte1")
		require.NoError(t, err)

		verifier := NewService(mock_repository.NewMockUserRepository(ctrl), authTestConfig())
		_, err = verifier.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejeita token malformado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mock_repository.NewMockUserRepository(ctrl), authTestConfig())

		_, err := service.ValidateToken("nem-um-jwt")
		assert.Error(t, err)
	})
}

func TestService_CreateUser(t *testing.T) {
	t.Run("normaliza o email, aplica hash e cria inativo com papel padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "ana@example.com", user.Email)
			assert.False(t, user.Active)
			assert.Equal(t, 3, user.RoleID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Forte1")))
			return user, nil
		})

		service := NewService(userRepo, authTestConfig())

		created, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        " Ana@Example.com ",
			PasswordHash: "Senha@Forte1",
		})

		assert.NoError(t, err)
		require.NotNil(t, created)
	})

	t.Run("rejeita email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{ID: 7}, nil)

		service := NewService(userRepo, authTestConfig())

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@example.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("rejeita cadastro sem dados obrigatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mock_repository.NewMockUserRepository(ctrl), authTestConfig())

		_, err := service.CreateUser(&domain.User{Name: "Ana"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := NewService(nil, authTestConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"aceita senha com todos os requisitos", "Senha@Forte1", false},
		{"rejeita senha curta", "S@f1", true},
		{"rejeita senha sem maiúscula", "senha@forte1", true},
		{"rejeita senha sem minúscula", "SENHA@FORTE1", true},
		{"rejeita senha sem número", "Senha@Forte", true},
		{"rejeita senha sem caractere especial", "SenhaForte1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_GenerateStrongPassword(t *testing.T) {
	t.Run("administrador gera senha forte para o usuário alvo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		targetUser := &domain.User{ID: 8, PasswordHash: "hash-antigo"}

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
		userRepo.EXPECT().GetUserByID(8).Return(targetUser, nil)
		userRepo.EXPECT().UpdateUser(targetUser).Return(nil)

		service := NewService(userRepo, authTestConfig())

		password, err := service.GenerateStrongPassword(1, 8)

		require.NoError(t, err)
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NotEqual(t, "hash-antigo", targetUser.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(targetUser.PasswordHash), []byte(password)))
	})

	t.Run("rejeita solicitante sem perfil de administrador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: 3}, nil)

		service := NewService(userRepo, authTestConfig())

		_, err := service.GenerateStrongPassword(2, 8)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("troca a senha quando a atual confere e a nova é forte", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := &domain.User{ID: 7, PasswordHash: hashPassword(t, "Senha@Antiga1")}

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(user, nil)
		userRepo.EXPECT().UpdateUser(user).Return(nil)

		service := NewService(userRepo, authTestConfig())

		err := service.ChangePassword(7, "Senha@Antiga1", "Senha@Nova22")

		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Nova22")))
	})

	t.Run("rejeita senha atual incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
			ID:           7,
			PasswordHash: hashPassword(t, "Senha@Antiga1"),
		}, nil)

		service := NewService(userRepo, authTestConfig())

		err := service.ChangePassword(7, "senha-errada", "Senha@Nova22")
		assert.Error(t, err)
	})

	t.Run("rejeita nova senha fraca sem persistir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mock_repository.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
			ID:           7,
			PasswordHash: hashPassword(t, "Senha@Antiga1"),
		}, nil)

		service := NewService(userRepo, authTestConfig())

		err := service.ChangePassword(7, "Senha@Antiga1", "fraca")
		assert.Error(t, err)
	})
}
