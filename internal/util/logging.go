package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	HandleErrorWithCode(w, message, "", statusCode)
}

// HandleErrorWithCode пишет JSON-ошибку с машинно-читаемым кодом.
// Код нужен клиенту, чтобы отличить истёкший access-токен от прочих отказов
func HandleErrorWithCode(w http.ResponseWriter, message string, code string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    code,
	}

	json.NewEncoder(w).Encode(errorResponse)
}
