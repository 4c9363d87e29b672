// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error
// değişkenleri tanımlarız; karşılaştırma string yerine errors.Is ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Service katmanı bunları döner, handler katmanı HTTP status code'larına map'ler.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)
