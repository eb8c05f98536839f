package requestresponse

// HealthResponse : ответ проверки живости сервера
type HealthResponse struct {
	Message   string `json:"message" example:"сервер работает"`
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}
