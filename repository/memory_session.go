package repository

import (
	"container/heap"
	"sync"
	"time"

	"github.com/akinalp/patievi/models"
)

// memorySessionStore, SessionStore'un in-memory implementasyonu.
//
// İki yapı birlikte tutulur ve TEK mutex altında mutate edilir:
//   - sessions: token string → oturum
//   - expiry:   expiry anına göre sıralı min-heap
//
// İnvariant: her canlı oturum için iki yapıda da tam bir kayıt vardır.
// Remove yalnızca map'ten siler; heap'teki kayıt stale kalır ve sırası
// geldiğinde RemoveExpired tarafından atılır. Compound operasyonlar
// (check-then-mutate) mutex bırakılmadan tamamlanır — handler'lar
// paralel OS thread'lerinde koşar.
//
// Heap neden (sıralı append yeterliyken)?
// Şu an her oturum aynı TTL ile açılıyor, insertion order zaten expiry
// order. Ama Refreshed() gibi farklı pencereli oturumlar eklenirse
// sıra bozulur — dayanılan invariant expiry order olduğu için index
// baştan heap olarak kuruldu.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	expiry   expiryHeap
}

// NewMemorySessionStore, boş bir in-memory session store oluşturur.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*models.Session),
	}
}

func (s *memorySessionStore) Add(session *models.Session) {
	token := session.TokenString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = session
	heap.Push(&s.expiry, expiryEntry{
		token:     token,
		expiresAt: session.ExpiresAt,
	})
}

func (s *memorySessionStore) Get(token string) (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok || session.ExpiredAt(time.Now()) {
		return nil, false
	}
	return session, true
}

func (s *memorySessionStore) Has(token string) bool {
	_, ok := s.Get(token)
	return ok
}

func (s *memorySessionStore) Remove(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[token]
	delete(s.sessions, token)
	// Heap entry'si yerinde bırakılır — RemoveExpired sırası gelince
	// map'te karşılığı olmayan entry'yi sessizce atar.
	return ok
}

func (s *memorySessionStore) RemoveExpired() int {
	now := time.Now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()

	// Heap'in başı hâlâ canlıysa gerisi de canlıdır — orada dururuz.
	for len(s.expiry) > 0 {
		head := s.expiry[0]
		if head.expiresAt.After(now) {
			break
		}
		heap.Pop(&s.expiry)

		// Entry stale olabilir: token Remove ile silinmiş ya da aynı
		// token daha geç bir expiry ile yeniden eklenmiş (Refreshed)
		// olabilir. Map'teki oturumun süresi GERÇEKTEN dolmuşsa silinir.
		if session, ok := s.sessions[head.token]; ok && session.ExpiredAt(now) {
			delete(s.sessions, head.token)
			removed++
		}
	}

	return removed
}

// expiryEntry, heap'teki tek bir (expiry, token) kaydı.
type expiryEntry struct {
	token     string
	expiresAt time.Time
}

// expiryHeap, expiresAt'e göre sıralı min-heap.
// container/heap'in istediği interface metodları aşağıda.
type expiryHeap []expiryEntry

func (h expiryHeap) Len() int           { return len(h) }
func (h expiryHeap) Less(i, j int) bool { return h[i].expiresAt.Before(h[j].expiresAt) }
func (h expiryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *expiryHeap) Push(x any)        { *h = append(*h, x.(expiryEntry)) }

func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}
