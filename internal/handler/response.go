package handler

import (
	"encoding/json"
	"net/http"

	"hybrid-auth-server/internal/model/requestresponse"
)

// sendErrorResponse отправляет ответ об ошибке JSON с указанным кодом статуса и сообщением
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
