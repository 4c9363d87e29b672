package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/akinalp/patievi/pkg"
	"github.com/akinalp/patievi/pkg/logger"
)

// İzin verilen HTTP metodları. Başka bir metodla route kaydetmek
// konfigürasyon hatasıdır.
var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// registeredRoute, bir Route ile derlenmiş pattern'ını birlikte tutar.
type registeredRoute struct {
	route   Route
	pattern *pattern
}

// name, log'larda route'u tanımlayan kimlik.
func (rr *registeredRoute) name() string {
	return rr.route.Method() + " " + rr.route.Pattern()
}

// shouldHandle, route'un verilen request'i işleyip işlemeyeceğini söyler.
// Eşleşme tamamen yapısaldır: pattern tutacak VE method eşit olacak.
// Route'lar arası precedence/spesifiklik sıralaması yoktur.
func (rr *registeredRoute) shouldHandle(method, path string) (*MatchResult, bool) {
	if method != rr.route.Method() {
		return nil, false
	}
	return rr.pattern.match(path)
}

// handle, route'un handler'ını çağırır. shouldHandle false iken
// çağrılmak bir Router bug'ıdır — sessizce yutulmaz, panic atılır.
func (rr *registeredRoute) handle(w http.ResponseWriter, r *http.Request) {
	m, ok := rr.shouldHandle(r.Method, r.URL.Path)
	if !ok {
		panic(fmt.Sprintf(
			"router: inconsistent state: handle called on %s for non-matching request %s %s",
			rr.name(), r.Method, r.URL.Path,
		))
	}
	rr.route.Handle(w, r, m)
}

// Router, kayıtlı route'ların sıralı kümesini tutar ve her request için
// dispatch yapar. Route listesi startup'ta doldurulur, sonrasında
// read-only'dir — lock gerekmez.
type Router struct {
	log    *logger.Logger
	routes []*registeredRoute
}

// New, boş bir Router oluşturur.
func New(log *logger.Logger) *Router {
	return &Router{log: log}
}

// Register, bir route ekler. Pattern ve method Register anında doğrulanır;
// geçersizse panic — startup'ta patlar, request sırasında değil.
func (rt *Router) Register(route Route) {
	if !allowedMethods[route.Method()] {
		panic(fmt.Sprintf("router: route %q has unsupported method %q",
			route.Pattern(), route.Method()))
	}

	p, err := compilePattern(route.Pattern())
	if err != nil {
		panic("router: " + err.Error())
	}

	rt.routes = append(rt.routes, &registeredRoute{route: route, pattern: p})
}

// ServeHTTP, tek dispatch giriş noktası — Router bir http.Handler'dır.
//
// Her request için TÜM route'lar test edilir ve eşleşenler toplanır:
//   - 0 eşleşme → 404 Not Found
//   - 1 eşleşme → o route'un handler'ı çağrılır
//   - 2+ eşleşme → konfigürasyon hatası: route kimlikleri loglanır,
//     caller'a opak bir 500 döner. Route kümeleri bu dala hiç girilmeyecek
//     şekilde kurulmalıdır; dal defensive invariant kontrolüdür.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var matched []*registeredRoute

	for _, rr := range rt.routes {
		if _, ok := rr.shouldHandle(r.Method, r.URL.Path); ok {
			matched = append(matched, rr)
		}
	}

	switch len(matched) {
	case 0:
		pkg.Message(w, http.StatusNotFound, "Not Found")

	case 1:
		matched[0].handle(w, r)

	default:
		names := make([]string, len(matched))
		for i, rr := range matched {
			names[i] = rr.name()
		}
		rt.log.Error("multiple routes matched the same request: %s %s: [%s]",
			r.Method, r.URL.Path, strings.Join(names, ", "))
		pkg.Message(w, http.StatusInternalServerError, "Server Error")
	}
}
