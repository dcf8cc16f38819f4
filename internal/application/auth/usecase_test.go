package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/smarthr-api/internal/application/auth"
	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/internal/domain"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
	"github.com/jhoicas/smarthr-api/pkg/jwt"
)

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func (f *fakeAccountRepo) FindActiveByEmpID(empID string) (*entity.Account, error) {
	acc := f.accounts[empID]
	if acc == nil || acc.Status != "active" {
		return nil, nil
	}
	return acc, nil
}

func newAuthUseCase(t *testing.T, accounts ...*entity.Account) *auth.AuthUseCase {
	t.Helper()
	m := map[string]*entity.Account{}
	for _, a := range accounts {
		m[a.EmpID] = a
	}
	return auth.NewAuthUseCase(
		&fakeAccountRepo{accounts: m},
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "smarthr-test"},
	)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_OK(t *testing.T) {
	uc := newAuthUseCase(t, &entity.Account{
		EmpID:        "E005",
		PasswordHash: hashOf(t, "secreta123"),
		AccountType:  entity.AccountHR,
		Status:       "active",
	})

	resp, err := uc.Login(dto.LoginRequest{EmpID: "E005", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "E005", resp.User.EmpID)
	assert.Equal(t, entity.AccountHR, resp.User.AccountType)

	empID, accountType, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "E005", empID)
	assert.Equal(t, entity.AccountHR, accountType)
}

// Cuenta inexistente, password malo e inactiva devuelven el mismo error.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	uc := newAuthUseCase(t,
		&entity.Account{EmpID: "E005", PasswordHash: hashOf(t, "buena"), AccountType: entity.AccountEmployee, Status: "active"},
		&entity.Account{EmpID: "E009", PasswordHash: hashOf(t, "buena"), AccountType: entity.AccountEmployee, Status: "inactive"},
	)

	cases := []dto.LoginRequest{
		{EmpID: "E404", Password: "buena"},
		{EmpID: "E005", Password: "mala"},
		{EmpID: "E009", Password: "buena"},
		{EmpID: "", Password: ""},
	}
	for _, in := range cases {
		_, err := uc.Login(in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "emp_id=%q", in.EmpID)
	}
}
