// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda
// API'den gelen/giden verilerin şeklini de belirler. `json:"email"` gibi
// tag'ler struct field'larının JSON'a nasıl serialize edileceğini söyler.
package models

import (
	"regexp"
	"time"

	"github.com/akinalp/patievi/pkg"
)

// emailRegex, basit email format kontrolü.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Bcrypt en fazla 72 byte'lık input kabul eder — üst sınır oradan gelir.
const (
	passwordMinLen = 8
	passwordMaxLen = 72
)

// User, bir kullanıcı hesabını temsil eder.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // API response'a DAHİL ETME (güvenlik!)
	CreatedAt    time.Time `json:"created_at"`
}

// CredentialsRequest, sign-up ve sign-in'de frontend'den gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, request'in geçerli olup olmadığını kontrol eder ve
// tespit edilen TÜM sorunları liste olarak döner — frontend hepsini
// tek seferde gösterebilsin diye ilk hatada durmayız.
//
// Kurallar:
//   - Email: basit format kontrolü (a@b.c)
//   - Password: 8–72 byte
func (r *CredentialsRequest) Validate() []pkg.Issue {
	var issues []pkg.Issue

	if !emailRegex.MatchString(r.Email) {
		issues = append(issues, pkg.Issue{
			Field:   "email",
			Message: "must be a well-formed email address",
		})
	}

	// bcrypt input sınırı 72 BYTE'tır, karakter değil — multibyte
	// şifreler byte olarak ölçülür, yoksa burada geçen şifre hash
	// aşamasında reddedilir.
	passwordLen := len(r.Password)
	if passwordLen < passwordMinLen || passwordLen > passwordMaxLen {
		issues = append(issues, pkg.Issue{
			Field:   "password",
			Message: "must be between 8 and 72 characters",
		})
	}

	return issues
}
