package api

import (
	"courierfin/internal/config"

	"github.com/go-chi/chi/v5"
)

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Config    *config.Config
	SecretKey string
}

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r *chi.Mux, deps ApiDependencies) {
	r.Use(ConfigMiddleware(deps.Config))

	r.Group(func(r chi.Router) {
		r.Get("/api/client-config", GetClientConfig)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(deps.SecretKey))

		// --- Маршруты курьера ---
		r.Get("/api/user/profile", GetUserProfile)
		r.Post("/api/user/settings", SaveUserSettings)
		r.Post("/api/user/shift", SaveShift)
		r.Get("/api/user/shifts", GetShifts)
		r.Delete("/api/user/shift/{date}", DeleteShift)
		r.Get("/api/user/stats", GetUserStats)
		r.Get("/api/user/shifts/export", ExportShifts)
		r.Get("/api/user/share-qr", GetShareQR)

		// --- Рейтинг ---
		r.Get("/api/leaderboard", GetLeaderboard)
	})

	// Демо-данные доступны только в dev-окружении
	if deps.Config != nil && deps.Config.AppEnv == "dev" {
		r.Post("/api/test/seed-leaderboard", SeedLeaderboard)
	}
}
