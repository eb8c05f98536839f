package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hybrid-auth-server/internal/model/requestresponse"
	"hybrid-auth-server/internal/service"
)

type ModuleHandler struct {
	moduleService *service.ModuleService
}

func NewModuleHandler(moduleService *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// ListModules godoc
// @Summary Список учебных модулей
// @Description Возвращает каталог модулей. Доступно только с действующим access токеном
// @Tags Modules
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} model.Module
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/modules [get]
func (h *ModuleHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	modules, err := h.moduleService.ListModules(r.Context())
	if err != nil {
		log.Println(err)
		sendErrorResponse(w, 500, "внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(modules)
}

// Health godoc
// @Summary Проверка живости сервера
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.HealthResponse
// @Router /api/health [get]
func (h *ModuleHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := requestresponse.HealthResponse{
		Message:   "сервер работает",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}
