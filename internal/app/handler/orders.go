package handler

import (
	"fmt"
	"net/http"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/service"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАКАЗЫ ============

// CalculateEstimate считает предварительную смету
// @Summary Предварительный расчет сметы
// @Description Подбирает позицию прайс-листа и возвращает смету без создания заказа
// @Tags PrintOrders
// @Accept json
// @Produce json
// @Param request body dto.EstimateRequest true "Параметры расчета"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/print-orders/estimate [post]
func (h *APIHandler) CalculateEstimate(c *gin.Context) {
	var request dto.EstimateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	estimate, err := h.Service.CalculateEstimate(service.EstimateRequest{
		ProductType:    request.ProductType,
		Quantity:       request.Quantity,
		Specifications: request.Specifications,
		DesignRequired: request.DesignRequired,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEstimateResponse(estimate))
}

// CreateOrder создает заказ печатной продукции
// @Summary Создание заказа
// @Description Принимает заявку клиники. Для паттерна reorder смета считается сразу
// @Tags PrintOrders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Данные заказа"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/print-orders [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	var deliveryDate *time.Time
	if request.DeliveryDate != nil && *request.DeliveryDate != "" {
		parsed, err := time.Parse(time.RFC3339, *request.DeliveryDate)
		if err != nil {
			// Дата без времени тоже принимается
			parsed, err = time.Parse("2006-01-02", *request.DeliveryDate)
			if err != nil {
				h.errorResponse(c, http.StatusBadRequest, "неверный формат даты доставки")
				return
			}
		}
		deliveryDate = &parsed
	}

	order, err := h.Service.CreateOrder(service.CreateOrderInput{
		ClinicName:     request.ClinicName,
		Email:          request.Email,
		Pattern:        ds.OrderPattern(request.Pattern),
		ProductType:    request.ProductType,
		Quantity:       request.Quantity,
		Specifications: request.Specifications,
		DeliveryDate:   deliveryDate,
		DesignRequired: request.DesignRequired,
		Notes:          request.Notes,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// GetOrders получает список заказов
// @Summary Получение списка заказов
// @Description Возвращает заказы, новые первыми. Параметр email фильтрует по клинике
// @Tags PrintOrders
// @Produce json
// @Param email query string false "Email клиники"
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/print-orders [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	orders, err := h.Service.ListOrders(c.Query("email"))
	if err != nil {
		logrus.Error("Error fetching orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения заказов")
		return
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders: responses,
		Total:  len(responses),
	})
}

// GetOrder получает один заказ
// @Summary Получение заказа
// @Description Возвращает заказ по его идентификатору
// @Tags PrintOrders
// @Produce json
// @Param id path string true "ID заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/print-orders/{id} [get]
func (h *APIHandler) GetOrder(c *gin.Context) {
	order, err := h.Service.GetOrder(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ApproveOrder подтверждает смету заказа
// @Summary Подтверждение сметы
// @Description Клиника принимает смету и выбирает способ оплаты. Только для паттерна reorder
// @Tags PrintOrders
// @Accept json
// @Produce json
// @Param id path string true "ID заказа"
// @Param request body dto.ApproveOrderRequest true "Способ оплаты"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/print-orders/{id}/approve [post]
func (h *APIHandler) ApproveOrder(c *gin.Context) {
	var request dto.ApproveOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	order, err := h.Service.ApproveOrder(c.Param("id"), ds.PaymentMethod(request.PaymentMethod))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateOrder изменяет статусы заказа
// @Summary Изменение заказа
// @Description Обновляет статусы заказа и оплаты (сотрудники и администраторы)
// @Tags PrintOrders
// @Accept json
// @Produce json
// @Param id path string true "ID заказа"
// @Param request body dto.UpdateOrderRequest true "Изменяемые поля"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/print-orders/{id} [put]
func (h *APIHandler) UpdateOrder(c *gin.Context) {
	var request dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	input := service.UpdateOrderInput{
		StripePaymentIntentID: request.StripePaymentIntentID,
	}
	if request.OrderStatus != nil {
		st := ds.OrderStatus(*request.OrderStatus)
		input.OrderStatus = &st
	}
	if request.PaymentStatus != nil {
		st := ds.PaymentStatus(*request.PaymentStatus)
		input.PaymentStatus = &st
	}
	if request.PaymentMethod != nil {
		m := ds.PaymentMethod(*request.PaymentMethod)
		input.PaymentMethod = &m
	}

	order, err := h.Service.UpdateOrder(c.Param("id"), input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// CancelOrder отменяет заказ
// @Summary Отмена заказа
// @Description Переводит заказ в статус cancelled, если он еще не завершен и не отменен
// @Tags PrintOrders
// @Produce json
// @Param id path string true "ID заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/print-orders/{id}/cancel [post]
func (h *APIHandler) CancelOrder(c *gin.Context) {
	order, err := h.Service.CancelOrder(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// GetEstimatePDF генерирует PDF сметы заказа
// @Summary PDF сметы
// @Description Пересчитывает смету по текущему прайс-листу и возвращает PDF документ
// @Tags PrintOrders
// @Produce application/pdf
// @Param id path string true "ID заказа"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/print-orders/{id}/estimate-pdf [get]
func (h *APIHandler) GetEstimatePDF(c *gin.Context) {
	order, estimate, err := h.Service.EstimateForOrder(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	pdfData, err := h.Renderer.RenderEstimate(order, estimate)
	if err != nil {
		logrus.Error("Error rendering estimate PDF: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка генерации PDF")
		return
	}

	// Архивируем копию в MinIO, неудача не мешает отдать документ
	if h.MinIOClient != nil {
		if _, err := h.MinIOClient.UploadEstimate(c.Request.Context(), order.ID, pdfData); err != nil {
			logrus.Errorf("Error archiving estimate for order %s: %v", order.ID, err)
		}
	}

	filename := storage.EstimateObjectName(order.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdfData)
}

// GetEstimatePDFURL отдает временную ссылку на архивную смету
// @Summary Ссылка на архивную смету
// @Description Возвращает временный URL (1 час) на PDF сметы из архива MinIO
// @Tags PrintOrders
// @Produce json
// @Param id path string true "ID заказа"
// @Success 200 {object} dto.EstimatePDFURLResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/print-orders/{id}/estimate-pdf/url [get]
func (h *APIHandler) GetEstimatePDFURL(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "архив смет недоступен")
		return
	}

	order, err := h.Service.GetOrder(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := storage.EstimateObjectName(order.ID)
	exists, err := h.MinIOClient.FileExists(c.Request.Context(), filename)
	if err != nil {
		logrus.Error("Error checking archived estimate: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка доступа к архиву")
		return
	}
	if !exists {
		h.errorResponse(c, http.StatusNotFound, "смета еще не сгенерирована")
		return
	}

	url, err := h.MinIOClient.GetFileURL(c.Request.Context(), filename)
	if err != nil {
		logrus.Error("Error generating presigned URL: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка генерации ссылки")
		return
	}

	c.JSON(http.StatusOK, dto.EstimatePDFURLResponse{
		OrderID: order.ID,
		URL:     url,
	})
}
