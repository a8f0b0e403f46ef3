package roles

import (
	"arogyanetra-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasbinAuthorizer(t *testing.T) {
	authorizer, err := NewCasbinAuthorizer()
	require.NoError(t, err)

	tests := []struct {
		name        string
		accountType string
		method      string
		path        string
		want        bool
	}{
		{"user reads own card", constvars.AccountTypeUser, "GET", "/cards/me", true},
		{"user downloads qr", constvars.AccountTypeUser, "GET", "/cards/me/qr.png", true},
		{"user saves wizard step", constvars.AccountTypeUser, "PUT", "/profile/wizard/steps/2", true},
		{"user removes staged file", constvars.AccountTypeUser, "DELETE", "/documents/staging/7c0e", true},
		{"user cannot identify", constvars.AccountTypeUser, "POST", "/identify/facescan", false},
		{"doctor identifies", constvars.AccountTypeDoctor, "GET", "/identify/search", true},
		{"doctor has no card", constvars.AccountTypeDoctor, "GET", "/cards/me", false},
		{"doctor cannot upload", constvars.AccountTypeDoctor, "POST", "/documents/staging/commit", false},
		{"admin inherits doctor", constvars.AccountTypeAdmin, "DELETE", "/identify/current", true},
		{"everyone reads me", constvars.AccountTypeAdmin, "GET", "/auth/me", true},
		{"everyone logs out", constvars.AccountTypeUser, "POST", "/auth/logout", true},
		{"method must match", constvars.AccountTypeUser, "DELETE", "/cards/me", false},
		{"unknown account type", "Nurse", "GET", "/auth/me", false},
		{"no account type", "", "GET", "/auth/me", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := authorizer.Authorize(tt.accountType, tt.method, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestParsePolicy_RejectsMalformedLine(t *testing.T) {
	_, _, err := parsePolicy("p, User, GET\n")
	assert.Error(t, err)

	policies, groupings, err := parsePolicy("# comment\np, User, GET, /x\n\ng, Admin, User\n")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"User", "GET", "/x"}}, policies)
	assert.Equal(t, [][]string{{"Admin", "User"}}, groupings)
}
