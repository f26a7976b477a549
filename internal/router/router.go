package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/rpm-planner/internal/auth"
	"github.com/saulo-duarte/rpm-planner/internal/middlewares"
	"github.com/saulo-duarte/rpm-planner/internal/rpmdata"
	"github.com/saulo-duarte/rpm-planner/internal/schedule"
	"github.com/saulo-duarte/rpm-planner/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	RPMDataHandler  *rpmdata.Handler
	ScheduleHandler *schedule.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/rpm-data", rpmdata.Routes(cfg.RPMDataHandler))
		r.Mount("/schedules", schedule.Routes(cfg.ScheduleHandler))
	})
	return r
}
