package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// stubUser holds the account's identity attributes as a flat map, the way the
// real auth service returns them, plus the credential hash kept out of every
// response.
type stubUser struct {
	attrs        map[string]any
	passwordHash []byte
}

type userTable struct {
	mu      sync.Mutex
	byEmail map[string]*stubUser
	byID    map[string]*stubUser
}

func newUserTable() *userTable {
	return &userTable{
		byEmail: make(map[string]*stubUser),
		byID:    make(map[string]*stubUser),
	}
}

type authHandlers struct {
	users  *userTable
	secret string
	log    zerolog.Logger
}

func newAuthHandlers(users *userTable, secret string, log zerolog.Logger) *authHandlers {
	return &authHandlers{users: users, secret: secret, log: log}
}

// signup creates an account from the posted payload. Every field other than
// the password is stored verbatim as an identity attribute, which mirrors how
// the production service folds optional profile fields into the user object.
func (h *authHandlers) signup(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid payload", "request body must be JSON")
	}

	name, _ := payload["name"].(string)
	email, _ := payload["email"].(string)
	password, _ := payload["password"].(string)
	if name == "" || email == "" || password == "" {
		return apiError(c, http.StatusBadRequest, "Missing required fields", "name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	attrs := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		if k == "password" {
			continue
		}
		attrs[k] = v
	}
	attrs["id"] = uuid.NewString()

	h.users.mu.Lock()
	if _, exists := h.users.byEmail[email]; exists {
		h.users.mu.Unlock()
		return apiError(c, http.StatusConflict, "User already exists", "An account with this email already exists.")
	}
	user := &stubUser{attrs: attrs, passwordHash: hash}
	h.users.byEmail[email] = user
	h.users.byID[attrs["id"].(string)] = user
	h.users.mu.Unlock()

	token, err := h.issueToken(attrs)
	if err != nil {
		return err
	}
	h.log.Info().Str("email", email).Msg("stub: user signed up")
	return c.JSON(http.StatusCreated, map[string]any{"token": token, "user": attrs})
}

// login returns only a detail field on failure; the console's login path
// reads nothing else.
func (h *authHandlers) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "", "request body must be JSON")
	}

	h.users.mu.Lock()
	user, ok := h.users.byEmail[req.Email]
	h.users.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(user.passwordHash, []byte(req.Password)) != nil {
		return apiError(c, http.StatusUnauthorized, "", "Invalid email or password")
	}

	token, err := h.issueToken(user.attrs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": user.attrs})
}

// updateProfile merges the posted fields into the stored user and returns the
// whole updated object, which the console adopts wholesale.
func (h *authHandlers) updateProfile(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return apiError(c, http.StatusBadRequest, "Invalid payload", "request body must be JSON")
	}

	userID, _ := payload["user_id"].(string)
	if userID == "" {
		return apiError(c, http.StatusBadRequest, "Missing user_id", "user_id is required")
	}

	h.users.mu.Lock()
	defer h.users.mu.Unlock()
	user, ok := h.users.byID[userID]
	if !ok {
		return apiError(c, http.StatusNotFound, "User not found", "No account matches that user_id.")
	}
	for k, v := range payload {
		if k == "user_id" || k == "id" || k == "password" {
			continue
		}
		user.attrs[k] = v
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user.attrs})
}

func (h *authHandlers) issueToken(attrs map[string]any) (string, error) {
	claims := jwt.MapClaims{
		"sub":   attrs["id"],
		"email": attrs["email"],
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.secret))
}
