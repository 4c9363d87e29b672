// Package router, method + path pattern tabanlı request yönlendirmesini sağlar.
//
// net/http'nin ServeMux'ı yerine neden kendi router'ımız var?
// Dispatch semantiği farklı: ServeMux en spesifik pattern'ı seçer
// (precedence), burada ise eşleşme tamamen yapısaldır ve birden fazla
// route aynı request'e eşleşirse bu bir konfigürasyon hatası olarak
// raporlanır — sessizce biri seçilmez.
//
// Pattern sözdizimi:
//   - literal segment:      /animals
//   - named parameter:      /animals/:id   (tam bir segment yakalar)
//   - trailing rest:        /client/{*path} (kalan segmentleri liste olarak
//     yakalar, sıfır segment de olabilir; sadece sonda ve en fazla bir tane)
package router

import "net/http"

// MatchResult, bir request'in pattern'a eşleşmesinin sonucudur.
// Request başına üretilir, handler dönünce atılır.
type MatchResult struct {
	// Path, eşleşen somut path (r.URL.Path).
	Path string
	// Params, named parameter → yakalanan segment.
	Params map[string]string
	// Rest, rest parameter → yakalanan segment listesi (sıralı, boş olabilir).
	Rest map[string][]string
}

// HandlerFunc, bir route'un request işleyicisi.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, m *MatchResult)

// Route, tek bir logical endpoint'i temsil eder.
// Construction sonrası immutable'dır; ömrü boyunca Router'a aittir.
//
// Çoğu route NewRoute ile kurulur; state taşıyan route'lar
// (ör. handlers.ClientRoute) interface'i doğrudan implement eder.
type Route interface {
	// Pattern, route'un path template'i.
	Pattern() string
	// Method, route'un kabul ettiği HTTP metodu (GET/POST/PUT/DELETE).
	Method() string
	// Handle, eşleşen request'i işler. SADECE pattern ve method'un
	// eşleştiği request'lerle çağrılmalıdır — Router bunu garanti eder.
	Handle(w http.ResponseWriter, r *http.Request, m *MatchResult)
}

// funcRoute, fonksiyonla tanımlanan basit route.
type funcRoute struct {
	method  string
	pattern string
	fn      HandlerFunc
}

// NewRoute, sabit veya parametreli bir route oluşturur.
func NewRoute(method, pattern string, fn HandlerFunc) Route {
	return &funcRoute{method: method, pattern: pattern, fn: fn}
}

func (r *funcRoute) Pattern() string { return r.pattern }
func (r *funcRoute) Method() string  { return r.method }

func (r *funcRoute) Handle(w http.ResponseWriter, req *http.Request, m *MatchResult) {
	r.fn(w, req, m)
}
