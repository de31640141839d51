package service

import "errors"

// Виды ошибок бизнес-логики. Хендлеры различают их через errors.Is:
// ErrValidation -> 400, ErrNotFound -> 404, все остальное - ошибка провайдера (500).
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
