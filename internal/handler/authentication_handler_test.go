package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/handler"
	"hybrid-auth-server/internal/repository"
	"hybrid-auth-server/internal/security"
	"hybrid-auth-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, accessTTL string) *httptest.Server {
	t.Helper()

	cfg := &config.AppConfig{
		JWT: config.JWTConfig{
			AccessSecretKey:  "access-secret-key",
			RefreshSecretKey: "refresh-secret-key",
			AccessTokenTTL:   accessTTL,
			RefreshTokenTTL:  "1h",
			Issuer:           "Hybrid-auth-server",
		},
		Cookie: config.CookieConfig{Name: "refreshToken", Path: "/api"},
		Users: []config.SeedUser{
			{Email: "user@example.com", Password: "password123", Name: "Test User"},
		},
		Modules: []config.SeedModule{
			{Name: "JavaScript Basics", Description: "Learn JavaScript fundamentals"},
		},
	}

	directory, err := repository.NewUserRepository(cfg.Users)
	require.NoError(t, err)

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(repository.NewMemoryRefreshRepository(), cfg, jwtService, directory)
	moduleService := service.NewModuleService(repository.NewModuleRepository(cfg.Modules))

	authHandler, err := handler.NewAuthenticationHandler(authService, cfg)
	require.NoError(t, err)
	moduleHandler := handler.NewModuleHandler(moduleService)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/refresh-token", authHandler.RefreshToken)
		r.Post("/logout", authHandler.Logout)
		r.Get("/health", moduleHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Get("/me", authHandler.GetCurrentUser)
			r.Get("/modules", moduleHandler.ListModules)
		})
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doLogin(t *testing.T, server *httptest.Server, email, password string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func refreshCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "refreshToken" {
			return cookie
		}
	}
	return nil
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func getProtected(t *testing.T, server *httptest.Server, path, accessToken string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, server.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// 1. Успешный логин: access-токен в теле, refresh-токен в HttpOnly cookie
func TestLogin_SetsCookieAndReturnsAccessToken(t *testing.T) {
	server := newTestServer(t, "1m")

	resp := doLogin(t, server, "user@example.com", "password123")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := refreshCookie(t, resp)
	require.NotNil(t, cookie, "refresh-токен должен уходить в cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)

	var body struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.AccessToken)
	assert.Equal(t, "user@example.com", body.User.Email)

	// refresh-токен не должен попадать в тело ответа
	assert.NotEqual(t, cookie.Value, body.AccessToken)
}

// 2. Неверный пароль: 401, cookie не выставляется
func TestLogin_WrongPassword(t *testing.T) {
	server := newTestServer(t, "1m")

	resp := doLogin(t, server, "user@example.com", "не-тот-пароль")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, refreshCookie(t, resp))
}

// 3. Полный цикл: логин, защищённый ресурс, истечение access-токена,
// refresh по cookie, повтор старого refresh-токена
func TestEndToEnd_LoginExpireRefreshReplay(t *testing.T) {
	server := newTestServer(t, "300ms")

	loginResp := doLogin(t, server, "user@example.com", "password123")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	oldCookie := refreshCookie(t, loginResp)
	require.NotNil(t, oldCookie)

	var loginBody struct {
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, loginResp, &loginBody)

	// свежий access-токен открывает защищённые ресурсы
	meResp := getProtected(t, server, "/api/me", loginBody.AccessToken)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
	meResp.Body.Close()

	modulesResp := getProtected(t, server, "/api/modules", loginBody.AccessToken)
	assert.Equal(t, http.StatusOK, modulesResp.StatusCode)
	modulesResp.Body.Close()

	// после истечения TTL тот же токен отклоняется с кодом TOKEN_EXPIRED
	time.Sleep(350 * time.Millisecond)

	expiredResp := getProtected(t, server, "/api/me", loginBody.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, expiredResp.StatusCode)
	var expiredBody struct {
		Code string `json:"code"`
	}
	decodeBody(t, expiredResp, &expiredBody)
	assert.Equal(t, security.CodeTokenExpired, expiredBody.Code)

	// refresh по cookie выдаёт новый рабочий access-токен и новую cookie
	refreshReq, err := http.NewRequest(http.MethodPost, server.URL+"/api/refresh-token", nil)
	require.NoError(t, err)
	refreshReq.AddCookie(oldCookie)

	refreshResp, err := http.DefaultClient.Do(refreshReq)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, refreshResp.StatusCode)

	newCookie := refreshCookie(t, refreshResp)
	require.NotNil(t, newCookie)
	assert.NotEqual(t, oldCookie.Value, newCookie.Value)

	var refreshBody struct {
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, refreshResp, &refreshBody)

	freshResp := getProtected(t, server, "/api/me", refreshBody.AccessToken)
	assert.Equal(t, http.StatusOK, freshResp.StatusCode)
	freshResp.Body.Close()

	// старый access-токен остаётся просроченным
	stillExpired := getProtected(t, server, "/api/me", loginBody.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, stillExpired.StatusCode)
	stillExpired.Body.Close()

	// старый refresh-токен ротирован и отклоняется навсегда
	replayReq, err := http.NewRequest(http.MethodPost, server.URL+"/api/refresh-token", nil)
	require.NoError(t, err)
	replayReq.AddCookie(oldCookie)

	replayResp, err := http.DefaultClient.Do(replayReq)
	require.NoError(t, err)
	defer replayResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, replayResp.StatusCode)
}

// 4. Refresh без cookie: 401
func TestRefresh_NoCookie(t *testing.T) {
	server := newTestServer(t, "1m")

	resp, err := http.Post(server.URL+"/api/refresh-token", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// 5. Logout идемпотентен и очищает cookie
func TestLogout_IdempotentAndClearsCookie(t *testing.T) {
	server := newTestServer(t, "1m")

	loginResp := doLogin(t, server, "user@example.com", "password123")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	loginResp.Body.Close()
	cookie := refreshCookie(t, loginResp)
	require.NotNil(t, cookie)

	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodPost, server.URL+"/api/logout", nil)
		require.NoError(t, err)
		req.AddCookie(cookie)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cleared := refreshCookie(t, resp)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
		resp.Body.Close()
	}

	// после logout ротация по старой cookie невозможна
	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/refresh-token", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// 6. Logout без cookie — тоже успех
func TestLogout_NoCookie(t *testing.T) {
	server := newTestServer(t, "1m")

	resp, err := http.Post(server.URL+"/api/logout", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// 7. Health доступен без авторизации
func TestHealth(t *testing.T) {
	server := newTestServer(t, "1m")

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// 8. Защищённые ресурсы без токена: 401 без кода TOKEN_EXPIRED
func TestProtected_NoToken(t *testing.T) {
	server := newTestServer(t, "1m")

	resp, err := http.Get(server.URL + "/api/modules")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Code)
}
