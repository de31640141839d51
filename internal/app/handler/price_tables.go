package handler

import (
	"net/http"

	"backend/internal/app/dto"
	"backend/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПРАЙС-ЛИСТ ============

// GetPriceTables получает прайс-лист
// @Summary Получение прайс-листа
// @Description Возвращает все позиции прайс-листа, отсортированные по типу продукции и тиражу
// @Tags PriceTables
// @Produce json
// @Success 200 {object} dto.PriceTableListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/price-tables [get]
func (h *APIHandler) GetPriceTables(c *gin.Context) {
	entries, err := h.Service.ListPriceTables()
	if err != nil {
		logrus.Error("Error fetching price tables: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения прайс-листа")
		return
	}

	responses := make([]dto.PriceTableResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toPriceTableResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, dto.PriceTableListResponse{
		PriceTables: responses,
		Total:       len(responses),
	})
}

// GetPriceTable получает одну позицию прайс-листа
// @Summary Получение позиции прайс-листа
// @Description Возвращает позицию прайс-листа по её идентификатору
// @Tags PriceTables
// @Produce json
// @Param id path string true "ID позиции"
// @Success 200 {object} dto.PriceTableResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/price-tables/{id} [get]
func (h *APIHandler) GetPriceTable(c *gin.Context) {
	entry, err := h.Service.GetPriceTable(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPriceTableResponse(entry))
}

// CreatePriceTable создает позицию прайс-листа
// @Summary Создание позиции прайс-листа
// @Description Добавляет новую позицию прайс-листа (только администратор)
// @Tags PriceTables
// @Accept json
// @Produce json
// @Param request body dto.CreatePriceTableRequest true "Данные позиции"
// @Success 201 {object} dto.PriceTableResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/price-tables [post]
func (h *APIHandler) CreatePriceTable(c *gin.Context) {
	var request dto.CreatePriceTableRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	entry, err := h.Service.CreatePriceTable(service.CreatePriceTableInput{
		ProductType:       request.ProductType,
		Quantity:          request.Quantity,
		Price:             request.Price,
		DesignFee:         request.DesignFee,
		DesignFeeIncluded: request.DesignFeeIncluded,
		Specifications:    request.Specifications,
		DeliveryDays:      request.DeliveryDays,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPriceTableResponse(entry))
}

// UpdatePriceTable изменяет позицию прайс-листа
// @Summary Изменение позиции прайс-листа
// @Description Частично обновляет позицию прайс-листа (только администратор)
// @Tags PriceTables
// @Accept json
// @Produce json
// @Param id path string true "ID позиции"
// @Param request body dto.UpdatePriceTableRequest true "Изменяемые поля"
// @Success 200 {object} dto.PriceTableResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/price-tables/{id} [put]
func (h *APIHandler) UpdatePriceTable(c *gin.Context) {
	var request dto.UpdatePriceTableRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверные данные: "+err.Error())
		return
	}

	entry, err := h.Service.UpdatePriceTable(c.Param("id"), service.UpdatePriceTableInput{
		Price:             request.Price,
		DesignFee:         request.DesignFee,
		DesignFeeIncluded: request.DesignFeeIncluded,
		DeliveryDays:      request.DeliveryDays,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPriceTableResponse(entry))
}

// DeletePriceTable удаляет позицию прайс-листа
// @Summary Удаление позиции прайс-листа
// @Description Удаляет позицию прайс-листа (только администратор)
// @Tags PriceTables
// @Produce json
// @Param id path string true "ID позиции"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/price-tables/{id} [delete]
func (h *APIHandler) DeletePriceTable(c *gin.Context) {
	if err := h.Service.DeletePriceTable(c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "позиция прайс-листа удалена", nil)
}
