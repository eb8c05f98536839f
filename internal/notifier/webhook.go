package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hybrid-auth-server/internal/util"
)

// reuseAlert : тело POST-запроса при попытке повторного
// использования уже ротированного refresh-токена
type reuseAlert struct {
	Event     string    `json:"event"`
	UserUUID  string    `json:"user_uuid"`
	TokenUUID string    `json:"token_uuid"`
	Timestamp time.Time `json:"timestamp"`
}

// NotifyRefreshReuse отправляет на webhook сигнал о предъявлении refresh-токена,
// чья запись уже изъята. Сам запрос при этом всё равно отклоняется,
// webhook — только наблюдаемость
func NotifyRefreshReuse(webhookURL string, timeout time.Duration, userUUID string, tokenUUID string) error {
	payload, err := json.Marshal(reuseAlert{
		Event:     "refresh_token_reuse",
		UserUUID:  userUUID,
		TokenUUID: tokenUUID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return util.LogError("ошибка сериализации webhook-уведомления", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return util.LogError("ошибка отправки webhook", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook ответил статусом %d", resp.StatusCode)
	}

	return nil
}
