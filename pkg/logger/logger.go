// Package logger, console çıktısını log dosyalarına aynalayan
// (mirror) basit bir log katmanıdır.
//
// Her log satırı hem terminale hem de seviyesine göre bir dosyaya yazılır:
//   - info / debug → stdout + out.log
//   - warn / error → stderr + err.log
//
// io.MultiWriter iki hedefe aynı anda yazar — ayrı bir goroutine veya
// buffer yönetimi gerekmez. Dosyalar append modunda açılır, böylece
// restart'lar arası log kaybolmaz.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	standardLogFilename = "out.log"
	errorLogFilename    = "err.log"
)

// Logger, seviyeli log yazıcısı.
// Altta iki *log.Logger tutar — biri standart akış, biri hata akışı.
type Logger struct {
	standard *log.Logger
	errors   *log.Logger

	standardFile *os.File
	errorFile    *os.File
}

// New, verilen dizinde out.log ve err.log dosyalarını açar ve
// console + dosya hedefli bir Logger döner.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	stdFile, err := os.OpenFile(filepath.Join(dir, standardLogFilename),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open standard log file: %w", err)
	}

	errFile, err := os.OpenFile(filepath.Join(dir, errorLogFilename),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		stdFile.Close()
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}

	flags := log.Ldate | log.Ltime

	return &Logger{
		standard:     log.New(io.MultiWriter(os.Stdout, stdFile), "", flags),
		errors:       log.New(io.MultiWriter(os.Stderr, errFile), "", flags),
		standardFile: stdFile,
		errorFile:    errFile,
	}, nil
}

// Info, bilgilendirme satırı yazar (stdout + out.log).
func (l *Logger) Info(format string, args ...any) {
	l.standard.Printf("[info] "+format, args...)
}

// Debug, geliştirme detayı yazar (stdout + out.log).
func (l *Logger) Debug(format string, args ...any) {
	l.standard.Printf("[debug] "+format, args...)
}

// Warn, uyarı satırı yazar (stderr + err.log).
func (l *Logger) Warn(format string, args ...any) {
	l.errors.Printf("[warn] "+format, args...)
}

// Error, hata satırı yazar (stderr + err.log).
func (l *Logger) Error(format string, args ...any) {
	l.errors.Printf("[err] "+format, args...)
}

// Close, log dosyalarını kapatır. Process sonlanırken çağrılmalıdır.
func (l *Logger) Close() error {
	stdErr := l.standardFile.Close()
	errErr := l.errorFile.Close()
	if stdErr != nil {
		return stdErr
	}
	return errErr
}
