package model

// Module : учебный модуль, доступный авторизованным пользователям
type Module struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
