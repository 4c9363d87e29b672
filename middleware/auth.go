// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware bir fonksiyondur: router.HandlerFunc alır, router.HandlerFunc
// döner. Kendi işini yapar (token doğrula), sonra next'i çağırır;
// hata varsa next çağrılmaz — request burada durur.
package middleware

import (
	"context"
	"net/http"

	"github.com/akinalp/patievi/handlers"
	"github.com/akinalp/patievi/pkg"
	"github.com/akinalp/patievi/router"
	"github.com/akinalp/patievi/services"
)

// AuthMiddleware, oturum token'ı doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireSession, canlı bir oturum zorunlu kılar.
// Token yoksa, store'da yoksa veya süresi geçmişse → 401; next ÇAĞRILMAZ.
// Geçerliyse kullanıcı context'e eklenir — handler'lar
// r.Context().Value(handlers.UserContextKey) ile erişir.
func (m *AuthMiddleware) RequireSession(next router.HandlerFunc) router.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, match *router.MatchResult) {
		// Header, sign-out ile aynı parser'dan geçer — aynı değer her
		// endpoint'te aynı şekilde çözülür. Tek fark status: burada 401.
		token, errMessage := handlers.BearerToken(r.Header.Get("Authorization"))
		if errMessage != "" {
			pkg.Message(w, http.StatusUnauthorized, errMessage)
			return
		}

		user, err := m.authService.CurrentUser(r.Context(), token)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		next(w, r.WithContext(ctx), match)
	}
}
