package app

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAuth(t *testing.T) {
	t.Helper()
	EditUser, authHash = "", nil
	t.Cleanup(func() { EditUser, authHash = "", nil })
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("MySecurePassword123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"), hash)

	// different salt every time
	hash2, err := HashPassword("MySecurePassword123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("MySecurePassword123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{"Correct password", "MySecurePassword123", hash, true, false},
		{"Wrong password", "WrongPassword456", hash, false, false},
		{"Invalid hash format", "MySecurePassword123", "invalid", false, true},
		{"Wrong algorithm", "MySecurePassword123", "$bcrypt$v=1$m=65536,t=1,p=4$salt$hash", false, true},
		{"Broken salt", "MySecurePassword123", "$argon2id$v=19$m=65536,t=1,p=4$!!$hash", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateAuthFile(t *testing.T) {
	authFile := filepath.Join(t.TempDir(), "auth.secret")
	t.Setenv("AUTH_FILE", authFile)

	require.NoError(t, CreateAuthFile("testuser", "TestPassword123456", false))

	info, err := os.Stat(authFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0400), info.Mode().Perm())

	content, err := os.ReadFile(authFile)
	require.NoError(t, err)
	user, hash, ok := strings.Cut(strings.TrimSpace(string(content)), ":")
	require.True(t, ok, "auth file should contain username:hash")
	assert.Equal(t, "testuser", user)

	match, err := VerifyPassword("TestPassword123456", hash)
	require.NoError(t, err)
	assert.True(t, match)

	// overwrite without prompting
	require.NoError(t, CreateAuthFile("newuser", "NewPassword123456", true))
	content, err = os.ReadFile(authFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "newuser:"))
}

func TestLoadAuthCredentials(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		wantUser    string
		wantErr     bool
		wantAuthNil bool
	}{
		{name: "File not exists (dev mode)", wantAuthNil: true},
		{name: "Invalid format (missing colon)", content: ptr("invalidformat"), wantErr: true, wantAuthNil: true},
		{name: "Invalid format (empty)", content: ptr(""), wantErr: true, wantAuthNil: true},
		{name: "Invalid format (empty hash)", content: ptr("user:"), wantErr: true, wantAuthNil: true},
		{name: "Invalid hash", content: ptr("user:plaintext"), wantErr: true, wantAuthNil: true},
	}

	hash, err := HashPassword("TestPassword123456")
	require.NoError(t, err)
	tests = append(tests, struct {
		name        string
		content     *string
		wantUser    string
		wantErr     bool
		wantAuthNil bool
	}{name: "Valid auth file", content: ptr("testuser:" + hash + "\n"), wantUser: "testuser"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetAuth(t)
			authFile := filepath.Join(t.TempDir(), "auth.secret")
			t.Setenv("AUTH_FILE", authFile)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(authFile, []byte(*tt.content), 0600))
			}

			err := LoadAuthCredentials()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantUser, EditUser)
			assert.Equal(t, tt.wantAuthNil, authHash == nil)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	}

	password := "TestPassword123456"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	basic := func(user, pass string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
	}

	tests := []struct {
		name       string
		devMode    bool
		authHeader string
		wantStatus int
	}{
		{"Valid credentials", false, basic("admin", password), http.StatusOK},
		{"Invalid password", false, basic("admin", "wrongpassword"), http.StatusUnauthorized},
		{"Invalid username", false, basic("wronguser", password), http.StatusUnauthorized},
		{"No auth header", false, "", http.StatusUnauthorized},
		{"Dev mode (no auth file)", true, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetAuth(t)
			if !tt.devMode {
				EditUser, authHash = "admin", []byte(hash)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/day/20250101", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			RequireAuth(next)(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Unauthorized\n", w.Body.String())
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Equal(t, "success", w.Body.String())
			}
		})
	}
}

func ptr(s string) *string {
	return &s
}

func TestParseArgon2Hash(t *testing.T) {
	hash, err := HashPassword("TestPassword123456")
	require.NoError(t, err)

	h, err := parseArgon2Hash(hash)
	require.NoError(t, err)
	assert.Equal(t, uint32(argon2Memory), h.memory)
	assert.Equal(t, uint32(argon2Time), h.time)
	assert.Equal(t, uint8(argon2Threads), h.threads)
	assert.Len(t, h.salt, saltLen)
	assert.Len(t, h.key, argon2KeyLen)
	assert.Equal(t, hash, h.String())

	_, err = parseArgon2Hash("$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$")
	assert.ErrorIs(t, err, errInvalidHash)
}
