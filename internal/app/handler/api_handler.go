package handler

import (
	"errors"
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/pdf"
	"backend/internal/app/service"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Service     *service.PrintOrderService
	Renderer    pdf.EstimateRenderer
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(svc *service.PrintOrderService, renderer pdf.EstimateRenderer, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Service:     svc,
		Renderer:    renderer,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// handleServiceError переводит ошибки сервисного слоя в HTTP статусы
func (h *APIHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, err.Error())
	default:
		h.errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

// ============ Преобразование моделей в DTO ============

func toPriceTableResponse(entry *ds.PriceTable) dto.PriceTableResponse {
	return dto.PriceTableResponse{
		ID:                entry.ID,
		ProductType:       entry.ProductType,
		Quantity:          entry.Quantity,
		Price:             entry.Price,
		DesignFee:         entry.DesignFee,
		DesignFeeIncluded: entry.DesignFeeIncluded,
		Specifications:    entry.Specifications,
		DeliveryDays:      entry.DeliveryDays,
	}
}

func toOrderResponse(order *ds.PrintOrder) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:                    order.ID,
		ClinicName:            order.ClinicName,
		Email:                 order.Email,
		Pattern:               string(order.Pattern),
		ProductType:           order.ProductType,
		Quantity:              order.Quantity,
		Specifications:        order.Specifications,
		DeliveryDate:          order.DeliveryDate,
		DesignRequired:        order.DesignRequired,
		Notes:                 order.Notes,
		EstimatedPrice:        order.EstimatedPrice,
		PaymentStatus:         string(order.PaymentStatus),
		OrderStatus:           string(order.OrderStatus),
		StripePaymentIntentID: order.StripePaymentIntentID,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
	if order.PaymentMethod != nil {
		method := string(*order.PaymentMethod)
		resp.PaymentMethod = &method
	}
	return resp
}

func toEstimateResponse(estimate *service.Estimate) dto.EstimateResponse {
	return dto.EstimateResponse{
		EstimatedPrice: estimate.EstimatedPrice,
		Breakdown: dto.EstimateBreakdown{
			BasePrice: estimate.Breakdown.BasePrice,
			DesignFee: estimate.Breakdown.DesignFee,
			Total:     estimate.Breakdown.Total,
		},
		DeliveryDays: estimate.DeliveryDays,
		PriceTableID: estimate.PriceTableID,
	}
}
