package repository

import "github.com/akinalp/patievi/models"

// SessionStore, canlı oturumların process-local deposudur.
//
// Diğer repository'lerden farkı: kayıtlar SQLite'ta değil bellekte yaşar.
// Oturumlar restart'ta kaybolur — kullanıcı tekrar sign-in yapar.
// Kalıcı oturum ve node'lar arası paylaşım bilinçli olarak kapsam dışıdır.
type SessionStore interface {
	// Add, oturumu token string'i altında kaydeder ve expiry index'ine ekler.
	Add(session *models.Session)
	// Get, token'a karşılık gelen canlı oturumu döner.
	// Süresi geçmiş bir oturum henüz sweep edilmemiş olsa bile yok sayılır.
	Get(token string) (*models.Session, bool)
	// Has, Get ile aynı görünürlük kurallarıyla varlık kontrolü yapar.
	Has(token string) bool
	// Remove, oturumu siler ve token'ın store'da olup olmadığını döner.
	// Varlık kontrolü ve silme tek lock altında gerçekleşir — aynı
	// token'la yarışan iki çağrıdan yalnızca biri true görür.
	Remove(token string) bool
	// RemoveExpired, süresi dolan oturumları temizler ve kaç tane
	// sildiğini döner. Timer yoktur — sign-in sonrası fırsatçı çağrılır.
	RemoveExpired() int
}
