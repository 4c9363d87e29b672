package router

import (
	"fmt"
	"strings"
)

// segmentKind, derlenmiş pattern'daki segment tipleri.
type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentParam               // :name — tam bir segment
	segmentRest                // {*name} — kalan tüm segmentler (sıfır dahil)
)

type segment struct {
	kind segmentKind
	// literal'da segment metni, param/rest'te parametre adı
	value string
}

// pattern, bir path template'in derlenmiş hali.
// Register sırasında bir kez derlenir, her request'te match edilir.
type pattern struct {
	raw      string
	segments []segment
	// hasRest true ise son segment rest parametresidir.
	hasRest bool
}

// compilePattern, template'i segment listesine derler.
// Geçersiz template bir konfigürasyon hatasıdır — error döner,
// Register bunu panic'e çevirir.
func compilePattern(raw string) (*pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return nil, fmt.Errorf("pattern %q must start with '/'", raw)
	}

	p := &pattern{raw: raw}

	// "/" → sıfır segment; onun dışında baştaki '/' atılıp bölünür.
	trimmed := strings.TrimPrefix(raw, "/")
	if trimmed == "" {
		return p, nil
	}

	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return nil, fmt.Errorf("pattern %q has a parameter with no name", raw)
			}
			p.segments = append(p.segments, segment{kind: segmentParam, value: name})

		case strings.HasPrefix(part, "{*") && strings.HasSuffix(part, "}"):
			name := part[2 : len(part)-1]
			if name == "" {
				return nil, fmt.Errorf("pattern %q has a rest parameter with no name", raw)
			}
			if i != len(parts)-1 {
				return nil, fmt.Errorf("pattern %q: rest parameter must be the last segment", raw)
			}
			p.segments = append(p.segments, segment{kind: segmentRest, value: name})
			p.hasRest = true

		case part == "":
			return nil, fmt.Errorf("pattern %q has an empty segment", raw)

		default:
			p.segments = append(p.segments, segment{kind: segmentLiteral, value: part})
		}
	}

	return p, nil
}

// match, somut bir path'i pattern'a karşı test eder.
// Eşleşirse parametreleri çıkarılmış bir MatchResult döner.
//
// Trailing slash yapıyı değiştirmez ("/animals/" ile "/animals" aynı
// segmentlere sahiptir); handler ayrım gerekiyorsa MatchResult.Path'e bakar
// (ör. ClientRoute'un dizin redirect'i).
func (p *pattern) match(path string) (*MatchResult, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")

	var parts []string
	if trimmed != "" {
		parts = strings.Split(trimmed, "/")
	}

	// Rest yoksa segment sayısı birebir tutmalı; rest varsa path en az
	// rest öncesi segmentler kadar uzun olmalı (rest sıfır segment yakalayabilir).
	fixed := len(p.segments)
	if p.hasRest {
		fixed--
		if len(parts) < fixed {
			return nil, false
		}
	} else if len(parts) != fixed {
		return nil, false
	}

	m := &MatchResult{Path: path}

	for i := 0; i < fixed; i++ {
		seg := p.segments[i]
		part := parts[i]

		switch seg.kind {
		case segmentLiteral:
			if part != seg.value {
				return nil, false
			}
		case segmentParam:
			if part == "" {
				return nil, false
			}
			if m.Params == nil {
				m.Params = make(map[string]string)
			}
			m.Params[seg.value] = part
		}
	}

	if p.hasRest {
		rest := p.segments[len(p.segments)-1]
		captured := append([]string{}, parts[fixed:]...)
		m.Rest = map[string][]string{rest.value: captured}
	}

	return m, true
}
