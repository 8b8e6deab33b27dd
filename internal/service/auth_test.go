package service

import (
	"context"
	"net/http"
	"testing"

	"winback/internal/core"
	"winback/internal/dto"
	cErr "winback/internal/pkg/error"
	"winback/internal/tabular"
	"winback/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func manualLoginDto(email, password string) *dto.ManualLoginDto {
	return &dto.ManualLoginDto{Email: email, Password: password}
}

func authRow(fullName, email, team, status, password string) []string {
	row := make([]string, 14)
	row[1] = fullName
	row[2] = email
	row[4] = team
	row[10] = status
	row[13] = password
	return row
}

func authTestService(t *testing.T, source *fakeSource) *AuthService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return &AuthService{
		trace:     trace,
		logger:    zap.NewNop(),
		tables:    NewTableReader(source),
		scope:     newScope(true),
		secretKey: "test-secret",
	}
}

func TestFindAuthByEmailCaseInsensitive(t *testing.T) {
	records := []tabular.AuthRecord{
		{Email: "A.Nguyen@Corp.VN", FullName: "Nguyen Van A"},
	}

	record, found := findAuthByEmail(records, "a.nguyen@corp.vn")
	assert.True(t, found)
	assert.Equal(t, "Nguyen Van A", record.FullName)

	_, found = findAuthByEmail(records, "b.tran@corp.vn")
	assert.False(t, found)
}

// 檢查順序固定：帳號不存在 404 → 未啟用 403 → 密碼錯 401
func TestManualLoginErrorOrder(t *testing.T) {
	source := &fakeSource{rows: map[tabular.Table][][]string{
		tabular.TableAuthentication: {
			{"header"},
			authRow("Nguyen Van A", "a.nguyen@corp.vn", "Ex-North", core.StatusActive, "1234"),
			authRow("Tran Thi B", "b.tran@corp.vn", "Ex-South", "Inactive", "5678"),
		},
		tabular.TableDecentralization: {{"header"}},
	}}
	s := authTestService(t, source)

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{"unknown account", "ghost@corp.vn", "whatever", http.StatusNotFound},
		{"inactive account wins over wrong password", "b.tran@corp.vn", "wrong", http.StatusForbidden},
		{"wrong password", "a.nguyen@corp.vn", "wrong", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ManualLogin(context.Background(), manualLoginDto(tt.email, tt.password))
			require.Error(t, err)
			var appErr *cErr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.HttpCode())
		})
	}
}

func TestManualLoginSuccessSignsToken(t *testing.T) {
	source := &fakeSource{rows: map[tabular.Table][][]string{
		tabular.TableAuthentication: {
			{"header"},
			authRow("Nguyen Van A", "a.nguyen@corp.vn", "Ex-North", core.StatusActive, "1234"),
		},
		tabular.TableDecentralization: {
			{"header"},
			{"a.nguyen", "ST1", "Leader", "HCM", "T1", "HCM-T1"},
		},
	}}
	s := authTestService(t, source)

	resp, err := s.ManualLogin(context.Background(), manualLoginDto("a.nguyen@corp.vn", "1234"))
	require.NoError(t, err)

	assert.Equal(t, "Nguyen Van A", resp.FullName)
	assert.Equal(t, "a.nguyen", resp.PICCode)
	assert.Equal(t, "Leader", resp.Role)
	assert.Equal(t, "HCM", resp.Region)
	assert.Equal(t, "ST1", resp.Subteam)
	require.NotEmpty(t, resp.Token)

	claims := &core.Claims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "a.nguyen@corp.vn", claims.Email)
	assert.Equal(t, "a.nguyen", claims.PICCode)
}

// 授權表查無 PIC 時 profile 回顯示用預設值，而非報錯
func TestManualLoginWithoutAuthorizationRow(t *testing.T) {
	source := &fakeSource{rows: map[tabular.Table][][]string{
		tabular.TableAuthentication: {
			{"header"},
			authRow("Nguyen Van A", "a.nguyen@corp.vn", "Ex-North", core.StatusActive, "1234"),
		},
		tabular.TableDecentralization: {{"header"}},
	}}
	s := authTestService(t, source)

	resp, err := s.ManualLogin(context.Background(), manualLoginDto("a.nguyen@corp.vn", "1234"))
	require.NoError(t, err)
	assert.Equal(t, string(core.RoleMember), resp.Role)
	assert.Equal(t, core.ScopeNA, resp.Region)
}
