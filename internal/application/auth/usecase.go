package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain"
	"github.com/jhoicas/smarthr-api/internal/domain/repository"
	"github.com/jhoicas/smarthr-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de cuentas HR/empleado. No hay registro self-service:
// las cuentas se aprovisionan desde la consola de RRHH.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

// Login verifica emp_id/password contra el hash bcrypt de la cuenta activa
// y devuelve un JWT con el tipo de cuenta. Cuenta inexistente, inactiva o
// password incorrecto colapsan en ErrUnauthorized: el login no revela cuál
// de los tres falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.EmpID == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	account, err := uc.accountRepo.FindActiveByEmpID(in.EmpID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.EmpID, account.AccountType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.SessionUser{
			EmpID:       account.EmpID,
			AccountType: account.AccountType,
			Status:      account.Status,
		},
	}, nil
}
