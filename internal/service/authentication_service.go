package service

import (
	"context"
	"errors"
	"log"
	"time"

	"hybrid-auth-server/config"
	"hybrid-auth-server/internal/model"
	"hybrid-auth-server/internal/notifier"
	"hybrid-auth-server/internal/ports"
	"hybrid-auth-server/internal/security"
	"hybrid-auth-server/internal/util"
)

type AuthenticationService struct {
	refreshStore ports.RefreshStoreInterface
	*config.AppConfig
	jwtService    ports.JWTServiceInterface
	userDirectory ports.UserDirectory
}

func NewAuthenticationService(
	store ports.RefreshStoreInterface,
	cfg *config.AppConfig,
	jwtService ports.JWTServiceInterface,
	userDirectory ports.UserDirectory,
) *AuthenticationService {
	return &AuthenticationService{
		store,
		cfg,
		jwtService,
		userDirectory,
	}
}

// Login аутентифицирует пользователя по email и паролю.
// На успех выпускает access-токен (короткий TTL) и refresh-токен (длинный TTL),
// запись о refresh-токене кладётся в хранилище. Какое именно поле неверно,
// ошибка не раскрывает
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.TokensPair, *model.User, error) {
	user, err := s.userDirectory.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, security.ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, security.ErrInvalidCredentials
	}

	refreshToken, record, err := s.jwtService.IssueRefreshToken(user.UUID)
	if err != nil {
		return nil, nil, util.LogError("ошибка выпуска refresh-токена", err)
	}

	if err := s.refreshStore.SaveRefreshToken(ctx, record); err != nil {
		return nil, nil, util.LogError("ошибка сохранения refresh-токена", err)
	}

	accessToken, err := s.jwtService.IssueAccessToken(user)
	if err != nil {
		return nil, nil, util.LogError("ошибка выпуска access-токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, user, nil
}

// RefreshToken выполняет ротацию refresh-токена.
// Порядок шагов фиксирован: подпись, изъятие записи, срок действия, хэш.
// Изъятие атомарно, поэтому из двух конкурентных ротаций одного токена
// успешна ровно одна. Токен одноразовый: после успешной ротации его
// повторное предъявление навсегда отклоняется, даже при валидной подписи
func (s *AuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	if refreshToken == "" {
		return nil, security.ErrTokenMissing
	}

	claims, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	record, err := s.refreshStore.TakeByUUID(ctx, claims.TokenUUID)
	if err != nil {
		if errors.Is(err, security.ErrRefreshRecordNotFound) {
			// подпись валидна, а записи нет: ротация, logout или повтор.
			// Для клиента неразличимо, но повтор стоит подсветить
			s.notifyReuse(claims.UserUUID, claims.TokenUUID)
			return nil, security.ErrRefreshRecordNotFound
		}
		return nil, util.LogError("не удалось изъять запись refresh-токена", err)
	}

	if record.Expired(time.Now().UTC()) {
		log.Printf("refresh-токен %s просрочен", record.UUID)
		return nil, security.ErrRefreshRecordExpired
	}

	if err := security.CompareRefreshToken(record, refreshToken); err != nil {
		log.Printf("refresh-токен %s не совпал с хэшем записи", record.UUID)
		return nil, security.ErrRefreshRecordNotFound
	}

	user, err := s.userDirectory.FindByUUID(ctx, record.UserUUID)
	if err != nil {
		log.Printf("владелец refresh-токена %s не найден", record.UUID)
		return nil, security.ErrRefreshRecordNotFound
	}

	newRefreshToken, newRecord, err := s.jwtService.IssueRefreshToken(user.UUID)
	if err != nil {
		return nil, util.LogError("ошибка выпуска refresh-токена", err)
	}

	if err := s.refreshStore.SaveRefreshToken(ctx, newRecord); err != nil {
		return nil, util.LogError("не удалось сохранить refresh-токен", err)
	}

	accessToken, err := s.jwtService.IssueAccessToken(user)
	if err != nil {
		return nil, util.LogError("ошибка выпуска access-токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout удаляет запись refresh-токена. Операция идемпотентна:
// повторный выход, пустой или мусорный токен ошибкой не считаются
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		log.Printf("logout с невалидным refresh-токеном: %v", err)
		return nil
	}

	if err := s.refreshStore.DeleteByUUID(ctx, claims.TokenUUID); err != nil {
		log.Printf("не удалось удалить запись refresh-токена %s: %v", claims.TokenUUID, err)
	}

	return nil
}

func (s *AuthenticationService) notifyReuse(userUUID, tokenUUID string) {
	if s.AppConfig == nil || s.Webhook.URL == "" {
		return
	}

	timeout, err := time.ParseDuration(s.Webhook.Timeout)
	if err != nil {
		timeout = 5 * time.Second
	}

	go func() {
		if err := notifier.NotifyRefreshReuse(s.Webhook.URL, timeout, userUUID, tokenUUID); err != nil {
			log.Printf("ошибка отправки webhook: %v", err)
		}
	}()
}
