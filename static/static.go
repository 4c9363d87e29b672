// Package static, referans client'ı binary'ye gömer.
//
// Dosyalar derleme zamanında gömülür; runtime'da disk erişimi yoktur
// ve deploy tek binary'dir.
package static

import "embed"

// ClientFS, client/ dizinindeki referans client dosyalarını içerir.
// Kullanım: fs.Sub(ClientFS, "client") ile alt dizine eriş.
//
//go:embed all:client
var ClientFS embed.FS
