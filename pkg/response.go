package pkg

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// MessageBody, tek mesajlı yanıtların gövdesi.
// API kontratı gereği hata ve onay yanıtları {"message": "..."} şeklindedir.
type MessageBody struct {
	Message string `json:"message"`
}

// Issue, validation sırasında tespit edilen tek bir sorunu temsil eder.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationBody, 400 validation yanıtının gövdesi — sorun listesi taşır.
type ValidationBody struct {
	Message string  `json:"message"`
	Issues  []Issue `json:"issues"`
}

// JSON, verilen datayı olduğu gibi JSON olarak gönderir.
// json.NewEncoder stream'e yazar — ara buffer gerekmez.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Message, {"message": "..."} gövdeli yanıt gönderir.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, MessageBody{Message: message})
}

// ValidationError, 400 + sorun listesi gönderir.
func ValidationError(w http.ResponseWriter, issues []Issue) {
	JSON(w, http.StatusBadRequest, ValidationBody{
		Message: "Validation failed",
		Issues:  issues,
	})
}

// Error, domain error'ı uygun HTTP status code'una çevirip gönderir.
// errors.Is() kullanıldığı için wrap edilmiş error'lar da doğru match eder.
//
// Bilinen sentinel'lere map olmayan hatalar internal sayılır: detay
// client'a sızdırılmaz (driver/kütüphane mesajları iç yapıyı ele verir),
// loglanıp opak bir gövde döner.
func Error(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[response] internal error: %v", err)
		Message(w, status, "Server Error")
		return
	}

	Message(w, status, err.Error())
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
