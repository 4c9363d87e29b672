package handlers

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/akinalp/patievi/router"
)

// ClientRoute, /client altındaki referans client'ı servis eden
// catch-all asset route'u. Diğer route'lardan farklı olarak state taşıdığı
// için router.Route interface'ini doğrudan implement eder.
//
// Dosyalar binary'ye gömülüdür (static.ClientFS) — disk erişimi yoktur,
// bundle dışına path traversal yapısal olarak mümkün değildir.
type ClientRoute struct {
	clientFS fs.FS
}

// NewClientRoute, constructor.
// clientFS: client dosyalarını kök olarak içeren FS (bkz. static paketi).
func NewClientRoute(clientFS fs.FS) *ClientRoute {
	return &ClientRoute{clientFS: clientFS}
}

func (c *ClientRoute) Pattern() string { return "/client/{*path}" }
func (c *ClientRoute) Method() string  { return http.MethodGet }

// Handle, rest parametresindeki segmentleri dosya yoluna çevirip servis eder.
//
//   - /client        → 301 /client/ (göreli asset path'leri doğru çözülsün)
//   - /client/       → index.html
//   - /client/x/y.js → x/y.js, yoksa 404 sayfası
func (c *ClientRoute) Handle(w http.ResponseWriter, r *http.Request, m *router.MatchResult) {
	parts := m.Rest["path"]

	if len(parts) == 0 {
		if !strings.HasSuffix(m.Path, "/") {
			w.Header().Set("Location", m.Path+"/")
			w.WriteHeader(http.StatusMovedPermanently)
			return
		}
		c.serveFile(w, "index.html", http.StatusOK)
		return
	}

	// Gömülü FS dışına çıkmak yapısal olarak imkansız; yine de geçersiz
	// path'ler (".." vb.) bundle'da olmayan dosyayla aynı cevabı alır.
	rel := path.Join(parts...)
	if !fs.ValidPath(rel) {
		c.serveFile(w, "404.html", http.StatusNotFound)
		return
	}

	info, err := fs.Stat(c.clientFS, rel)
	if err != nil || info.IsDir() {
		c.serveFile(w, "404.html", http.StatusNotFound)
		return
	}

	c.serveFile(w, rel, http.StatusOK)
}

// serveFile, gömülü dosyayı verilen status ile yazar.
func (c *ClientRoute) serveFile(w http.ResponseWriter, name string, status int) {
	data, err := fs.ReadFile(c.clientFS, name)
	if err != nil {
		http.Error(w, "file missing from client bundle: "+name, http.StatusInternalServerError)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
