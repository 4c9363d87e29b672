// Package services, business logic katmanını barındırır.
//
// Service, handler (HTTP) ile repository (veri) arasında oturur:
// şifre hash'leme, oturum üretme, yetki kontrolleri burada yaşar.
// Service ASLA http.Request/Response bilmez, ASLA doğrudan SQL çalıştırmaz.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/patievi/models"
	"github.com/akinalp/patievi/pkg"
	"github.com/akinalp/patievi/repository"
)

// AuthService interface'i — dışarıya açık API.
// Handler bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	// SignUp, yeni hesap oluşturur. Email kayıtlıysa pkg.ErrAlreadyExists döner.
	SignUp(ctx context.Context, req *models.CredentialsRequest) error
	// SignIn, kimliği doğrular ve yeni oturumun token string'ini döner.
	// Bilinmeyen email ve yanlış şifre AYNI hatayı üretir — hesap varlığı
	// sızdırılmaz.
	SignIn(ctx context.Context, req *models.CredentialsRequest) (string, error)
	// SignOut, oturumu siler. Token store'da yoksa pkg.ErrNotFound döner.
	SignOut(token string) error
	// CurrentUser, canlı bir oturum token'ından kullanıcıyı çözer.
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo   repository.UserRepository
	sessions   repository.SessionStore
	sessionTTL time.Duration
}

// NewAuthService, constructor.
func NewAuthService(
	userRepo repository.UserRepository,
	sessions repository.SessionStore,
	sessionTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) SignUp(ctx context.Context, req *models.CredentialsRequest) error {
	// Bcrypt hash (cost=12). Validation handler'da yapıldı —
	// buraya gelen request şekilsel olarak geçerlidir.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	return s.userRepo.Create(ctx, user) // ErrAlreadyExists olabilir
}

func (s *authService) SignIn(ctx context.Context, req *models.CredentialsRequest) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			// "Böyle kullanıcı yok" ile "şifre yanlış" aynı cevap —
			// fark edilebilir olsaydı email enumeration mümkün olurdu.
			return "", fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
	}

	session, err := models.NewSession(user.ID, s.sessionTTL)
	if err != nil {
		return "", err
	}

	s.sessions.Add(session)

	// Fırsatçı sweep — ayrı bir timer yok, temizlik yeni oturum
	// eklendikçe yapılır.
	s.sessions.RemoveExpired()

	return session.TokenString(), nil
}

func (s *authService) SignOut(token string) error {
	// Varlık kontrolü ve silme store içinde tek lock altında yapılır;
	// ayrı bir Has çağrısı iki sign-out'un da başarılı görünmesine
	// izin verirdi.
	if !s.sessions.Remove(token) {
		return fmt.Errorf("%w: session does not exist", pkg.ErrNotFound)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	session, ok := s.sessions.Get(token)
	if !ok {
		return nil, fmt.Errorf("%w: invalid or expired token", pkg.ErrUnauthorized)
	}

	// Oturum canlı ama kullanıcı silinmiş olabilir.
	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	return user, nil
}
