// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi "ince" (thin) olmalı:
//  1. Request body'yi parse et (JSON → struct)
//  2. Validate et
//  3. Service katmanını çağır
//  4. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı içermez, ASLA doğrudan DB'ye erişmez.
package handlers

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"

	"github.com/akinalp/patievi/models"
	"github.com/akinalp/patievi/pkg"
	"github.com/akinalp/patievi/router"
	"github.com/akinalp/patievi/services"
)

// invalidCredentialsBody, sign-in'in 401 gövdesi.
// "Kullanıcı yok" ve "şifre yanlış" için AYNI değer kullanılır —
// iki durum response'tan ayırt edilemez (enumeration koruması).
var invalidCredentialsBody = struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}{
	Message: "Invalid email or password",
	Code:    "invalid_credentials",
}

// AuthHandler, auth endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService services.AuthService

	// chaosSignOut açıkken geçerli bir sign-out %10 ihtimalle 402 ile
	// reddedilir. Client'ların hata toleransını denemek için;
	// varsayılan kapalı.
	chaosSignOut bool
}

// NewAuthHandler, constructor.
func NewAuthHandler(authService services.AuthService, chaosSignOut bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		chaosSignOut: chaosSignOut,
	}
}

// SignUp godoc
// POST /users/sign-up
// Body: { "email": "...", "password": "..." } (şifre 8–72 karakter)
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request, _ *router.MatchResult) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	if err := h.authService.SignUp(r.Context(), req); err != nil {
		if errors.Is(err, pkg.ErrAlreadyExists) {
			// Bilinçli olarak generic: email'in kayıtlı olup olmadığı
			// response'tan anlaşılmamalı.
			pkg.Message(w, http.StatusBadRequest, "Unable to create user")
			return
		}
		pkg.Error(w, err)
		return
	}

	pkg.Message(w, http.StatusCreated, "User created")
}

// SignIn godoc
// POST /users/sign-in
// Başarıda yeni oturumun 128 karakterlik hex token'ı döner.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request, _ *router.MatchResult) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.authService.SignIn(r.Context(), req)
	if err != nil {
		if errors.Is(err, pkg.ErrUnauthorized) {
			pkg.JSON(w, http.StatusUnauthorized, invalidCredentialsBody)
			return
		}
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// SignOut godoc
// DELETE /users/sign-out
// Header: Authorization: Bearer <token>
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request, _ *router.MatchResult) {
	token, ok := bearerToken(w, r)
	if !ok {
		return
	}

	if h.chaosSignOut && rand.Float64() < 0.1 {
		pkg.Message(w, http.StatusPaymentRequired, "Payment Required")
		return
	}

	if err := h.authService.SignOut(token); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			pkg.Message(w, http.StatusNotFound, "Session does not exist")
			return
		}
		pkg.Error(w, err)
		return
	}

	pkg.Message(w, http.StatusOK, "Signed out")
}

// Me godoc
// GET /users/me
// RequireSession middleware gerektirir — context'te user bilgisi olur.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ *router.MatchResult) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.Message(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// decodeCredentials, body'yi parse edip validate eder.
// Hata durumunda response'u kendisi yazar ve ok=false döner.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (*models.CredentialsRequest, bool) {
	var req models.CredentialsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ValidationError(w, []pkg.Issue{{
			Field:   "body",
			Message: "must be valid JSON",
		}})
		return nil, false
	}

	if issues := req.Validate(); len(issues) > 0 {
		pkg.ValidationError(w, issues)
		return nil, false
	}

	return &req, true
}

// BearerToken, Authorization header değerinden bearer token'ı çıkarır.
// Başarısızlıkta boş token ile kullanıcıya gösterilecek mesajı döner;
// status code'u caller seçer (sign-out 400, middleware 401).
// Scheme karşılaştırması case-insensitive'dir ("bearer" da kabul edilir).
// Header'ı parse eden TEK yer burasıdır — aynı header her endpoint'te
// aynı şekilde çözülür.
func BearerToken(header string) (token, errMessage string) {
	if header == "" {
		return "", "Authorization header required"
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", "Authorization scheme must be Bearer"
	}
	if !found || strings.TrimSpace(rest) == "" {
		return "", "Bearer token required"
	}

	return strings.TrimSpace(rest), ""
}

// bearerToken, BearerToken'ın handler tarafı: hata durumunda 400 yazar.
func bearerToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, errMessage := BearerToken(r.Header.Get("Authorization"))
	if errMessage != "" {
		pkg.Message(w, http.StatusBadRequest, errMessage)
		return "", false
	}
	return token, true
}

// contextKey, context'te değer taşımak için özel key tipi.
// String key kullanmak paketler arası çakışmaya neden olabilir.
type contextKey string

// UserContextKey, RequireSession middleware'ının context'e koyduğu
// kullanıcıya handler'lardan erişmek için kullanılır.
const UserContextKey contextKey = "user"
