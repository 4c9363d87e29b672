package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// TokenLength, oturum token'ının byte uzunluğu.
// Hex render edildiğinde 2x karakter olur (128).
const TokenLength = 64

// Session, başarılı sign-in sonrası verilen opaque bearer oturumudur.
// JWT değildir — token tamamen rastgeledir, anlamı sadece store'daki
// kayıttan gelir. Oluşturulduktan sonra değişmez (immutable).
type Session struct {
	Token     [TokenLength]byte
	UserID    int64
	ExpiresAt time.Time
}

// NewSession, verilen kullanıcı için yeni bir oturum üretir.
// Token crypto/rand'dan okunur — 64 byte'ta collision ihtimali
// kriptografik olarak ihmal edilebilir, ayrıca kontrol edilmez.
func NewSession(userID int64, ttl time.Duration) (*Session, error) {
	s := &Session{
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}

	if _, err := rand.Read(s.Token[:]); err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return s, nil
}

// TokenString, token'ın transport formatını döner:
// her zaman tam 128 karakter, lowercase hex.
func (s *Session) TokenString() string {
	return hex.EncodeToString(s.Token[:])
}

// ExpiredAt, oturumun verilen anda süresinin dolmuş olup olmadığını döner.
// Store'un lazy sweep'i henüz çalışmamış olabilir — süre kontrolü
// eviction zamanlamasına bırakılmaz.
func (s *Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Refreshed, aynı token ve kullanıcıyla yeni bir expiry penceresi taşıyan
// türev oturum döner. Henüz hiçbir handler çağırmıyor — oturum yenileme
// gereksinimi netleşirse kullanılacak kanca.
func (s *Session) Refreshed(ttl time.Duration) *Session {
	return &Session{
		Token:     s.Token,
		UserID:    s.UserID,
		ExpiresAt: time.Now().Add(ttl),
	}
}
