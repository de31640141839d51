package service

import (
	"backend/internal/app/cache"
	"backend/internal/app/notify"
	"backend/internal/app/repository"
)

// PrintOrderService - ядро: прайс-лист, расчет смет, жизненный цикл заказов.
// Авторизацию не проверяет - это забота middleware.
type PrintOrderService struct {
	repo     *repository.Repository
	catalog  *cache.TTLCache
	notifier notify.Notifier
}

func NewPrintOrderService(repo *repository.Repository, catalog *cache.TTLCache, notifier notify.Notifier) *PrintOrderService {
	return &PrintOrderService{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
	}
}
