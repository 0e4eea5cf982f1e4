package app

import (
	"bufio"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Edit mode credentials, empty when no auth file exists
var (
	EditUser string
	authHash []byte
)

const DefaultAuthFile = "auth.secret"

// Argon2id parameters for new hashes (OWASP recommended)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

var errInvalidHash = errors.New("invalid hash format")

// argon2Hash is a decoded $argon2id$v=19$m=...,t=...,p=...$salt$key string
type argon2Hash struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func (h argon2Hash) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key))
}

func parseArgon2Hash(s string) (argon2Hash, error) {
	parts := strings.Split(s, "$")
	if len(parts) != 6 {
		return argon2Hash{}, errInvalidHash
	}
	if parts[1] != "argon2id" {
		return argon2Hash{}, fmt.Errorf("not an argon2id hash: %q", parts[1])
	}

	var h argon2Hash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.memory, &h.time, &h.threads); err != nil {
		return argon2Hash{}, fmt.Errorf("failed to parse hash parameters: %w", err)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return argon2Hash{}, fmt.Errorf("failed to decode salt: %w", err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return argon2Hash{}, fmt.Errorf("failed to decode hash: %w", err)
	}
	if len(h.key) == 0 {
		return argon2Hash{}, errInvalidHash
	}
	return h, nil
}

// AuthFilePath returns $AUTH_FILE, or auth.secret next to the binary
func AuthFilePath() (string, error) {
	if path := os.Getenv("AUTH_FILE"); path != "" {
		return path, nil
	}
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(execPath), DefaultAuthFile), nil
}

// LoadAuthCredentials loads the edit mode credentials. A missing file leaves
// edit mode unprotected.
func LoadAuthCredentials() error {
	path, err := AuthFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️  No auth file at %s, edit mode is UNPROTECTED (local development only)", path)
			log.Printf("   Create one with: feiertag-kalender hash-password")
			EditUser, authHash = "", nil
			return nil
		}
		return fmt.Errorf("failed to read auth file: %w", err)
	}

	// username:hash
	user, hash, ok := strings.Cut(strings.TrimSpace(string(data)), ":")
	if !ok || user == "" || hash == "" {
		return fmt.Errorf("invalid auth file format (expected: username:hash)")
	}
	if _, err := parseArgon2Hash(hash); err != nil {
		return fmt.Errorf("invalid hash in %s: %w", path, err)
	}

	EditUser = user
	authHash = []byte(hash)

	log.Printf("✅ Basic Auth enabled for edit mode (user: %s, file: %s)", EditUser, path)
	return nil
}

// HashPassword creates an Argon2id hash of the password
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	h := argon2Hash{
		memory:  argon2Memory,
		time:    argon2Time,
		threads: argon2Threads,
		salt:    salt,
		key:     argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen),
	}
	return h.String(), nil
}

// VerifyPassword checks a password against an Argon2id hash, using the
// parameters stored in the hash
func VerifyPassword(password, hash string) (bool, error) {
	h, err := parseArgon2Hash(hash)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(password), h.salt, h.time, h.memory, h.threads, uint32(len(h.key)))
	return subtle.ConstantTimeCompare(h.key, got) == 1, nil
}

// RequireAuth is a middleware that enforces Basic Auth for edit mode writes
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// no credentials loaded, dev mode
		if authHash == nil {
			next(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if ok && checkCredentials(user, pass) {
			next(w, r)
			return
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="Feiertagskalender Edit Mode"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		log.Printf("⚠️  Failed auth attempt from %s (user: %s)", r.RemoteAddr, user)
	}
}

func checkCredentials(user, pass string) bool {
	if subtle.ConstantTimeCompare([]byte(user), []byte(EditUser)) != 1 {
		return false
	}
	match, err := VerifyPassword(pass, string(authHash))
	if err != nil {
		log.Printf("Error verifying password: %v", err)
		return false
	}
	return match
}

// CreateAuthFile writes username and hashed password to the auth file,
// read-only for the owner
func CreateAuthFile(username, password string, overwrite bool) error {
	authFile, err := AuthFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(authFile); err == nil {
		if !overwrite && !confirm(fmt.Sprintf("Auth file already exists: %s\nOverwrite? (y/N): ", authFile)) {
			return fmt.Errorf("aborted")
		}
		// read-only, remove before writing
		if err := os.Remove(authFile); err != nil {
			return fmt.Errorf("failed to remove existing auth file: %w", err)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := os.WriteFile(authFile, []byte(username+":"+hash+"\n"), 0400); err != nil {
		return fmt.Errorf("failed to write auth file: %w", err)
	}

	fmt.Printf("✅ Auth file created: %s (mode: 0400 read-only)\n", authFile)
	fmt.Printf("   Username: %s\n", username)
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
