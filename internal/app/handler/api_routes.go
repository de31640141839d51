package handler

import (
	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Прайс-лист (Price Tables) ============
	priceTables := api.Group("/price-tables")
	{
		// Публичные эндпоинты (без авторизации)
		priceTables.GET("", h.GetPriceTables)    // GET список
		priceTables.GET("/:id", h.GetPriceTable) // GET одна позиция

		// Только для администраторов (управление прайс-листом)
		priceTables.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreatePriceTable)       // POST создание
		priceTables.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdatePriceTable)    // PUT изменение
		priceTables.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeletePriceTable) // DELETE удаление
	}

	// ============ Заказы печатной продукции (Print Orders) ============
	orders := api.Group("/print-orders")
	{
		// Публичные эндпоинты: клиники отправляют заявки без регистрации
		orders.POST("/estimate", h.CalculateEstimate)            // POST предварительный расчет сметы
		orders.POST("", h.CreateOrder)                           // POST создание заказа
		orders.GET("", h.GetOrders)                              // GET список (фильтр по email)
		orders.GET("/:id", h.GetOrder)                           // GET один заказ
		orders.POST("/:id/approve", h.ApproveOrder)              // POST подтверждение сметы
		orders.POST("/:id/cancel", h.CancelOrder)                // POST отмена заказа
		orders.GET("/:id/estimate-pdf", h.GetEstimatePDF)        // GET PDF сметы

		// Для сотрудников и администраторов
		orders.PUT("/:id", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.UpdateOrder)                       // PUT смена статусов
		orders.GET("/:id/estimate-pdf/url", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.GetEstimatePDFURL) // GET ссылка на архив
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Clinic, role.Staff, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Clinic, role.Staff, role.Admin), h.AuthHandler.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Clinic, role.Staff, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
