package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

const tokenIssuer = "print-order-admin"

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

// generateHashString генерирует SHA-1 хеш из строки
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// issueToken создает подписанный JWT для пользователя
func (h *AuthHandler) issueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		UserID: user.ID,
		Role:   role.Role(user.Role),
	})

	return token.SignedString([]byte(h.Config.JWT.Token))
}

func toUserResponse(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// RegisterUser регистрация нового пользователя
// @Summary Регистрация пользователя
// @Description Создание нового пользователя в системе
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// Проверяем существует ли пользователь
	exists, _ := h.Repository.UserExistsByLogin(request.Login)
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("пользователь с таким логином уже существует"))
		return
	}

	// Хешируем пароль
	hashedPassword := generateHashString(request.Password)

	// Определяем роль (по умолчанию Clinic)
	userRole := request.Role
	if userRole < 0 || userRole > 2 {
		userRole = 0
	}

	user, err := h.Repository.CreateUser(request.Login, hashedPassword, request.FullName, request.Email, userRole)
	if err != nil {
		logrus.Error("Error creating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("ошибка регистрации пользователя"))
		return
	}

	// Генерируем JWT токен сразу при регистрации
	accessToken, err := h.issueToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "пользователь успешно зарегистрирован",
		"user":    toUserResponse(user),
		"data":    accessToken, // JWT токен
	})
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// Хешируем входной пароль
	hashedPassword := generateHashString(request.Password)

	// Проверяем пользователя в базе данных
	user, err := h.Repository.GetUserByLogin(request.Login)
	if err != nil || user.Password != hashedPassword {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный логин или пароль"))
		return
	}

	accessToken, err := h.issueToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "пользователь успешно авторизован",
		"user_id":    user.ID,
		"role":       user.Role,
		"token":      accessToken,
		"login":      user.Login,
		"expires_in": int(h.Config.JWT.ExpiresIn.Seconds()),
		"token_type": "Bearer",
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса пользователя с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	// Получение токена из заголовка
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	// Удаление префикса "Bearer "
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// Парсинг токена для получения TTL
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Вычисление TTL до истечения токена
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		// Токен уже истек
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "пользователь успешно вышел из системы",
		})
		return
	}

	// Добавление токена в blacklist
	err = h.RedisClient.WriteJWTToBlacklist(context.Background(), tokenString, ttl)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "пользователь успешно вышел из системы",
	})
}

// GetUserProfile получение профиля текущего пользователя
// @Summary Профиль пользователя
// @Description Возвращает данные авторизованного пользователя
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	id, ok := userID.(uint)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("некорректный идентификатор пользователя"))
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile обновление профиля текущего пользователя
// @Summary Обновление профиля
// @Description Обновляет имя и/или пароль авторизованного пользователя
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	id, ok := userID.(uint)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("некорректный идентификатор пользователя"))
		return
	}

	var request dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	var fullName, password *string
	if request.FullName != "" {
		fullName = &request.FullName
	}
	if request.Password != "" {
		hashed := generateHashString(request.Password)
		password = &hashed
	}

	if err := h.Repository.UpdateUser(id, fullName, password); err != nil {
		logrus.Error("Error updating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("ошибка обновления профиля"))
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) errorHandler(ctx *gin.Context, status int, err error) {
	ctx.JSON(status, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}
