package main

import (
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/todo-service/config"
	"github.com/angeloszaimis/todo-service/internal/handler"
	"github.com/angeloszaimis/todo-service/internal/metrics"
	"github.com/angeloszaimis/todo-service/internal/middleware"
	"github.com/angeloszaimis/todo-service/internal/rejection"
	"github.com/angeloszaimis/todo-service/internal/router"
	"github.com/angeloszaimis/todo-service/internal/store"
)

func setupRoutes(log *slog.Logger, cfg *config.Config, st *store.Store, collector *metrics.Collector) http.Handler {
	todos := handler.NewTodoHandler(log, st, cfg.API.MaxBodyBytes)
	demo := handler.NewDemoHandler(log, cfg.API.MaxBodyBytes, cfg.API.ReadmePath)

	rt := router.New(log)

	rt.Handle(http.MethodGet, router.Pattern{router.Lit("todos")}, todos.List)
	rt.Handle(http.MethodPost, router.Pattern{router.Lit("todos")}, todos.Create)
	rt.Handle(http.MethodPut, router.Pattern{router.Lit("todos"), router.UintParam("id")}, todos.Update)
	// The auth predicate runs only after path and method match, so an
	// invalid id reports as a parameter failure, never as a 401.
	rt.Handle(http.MethodDelete, router.Pattern{router.Lit("todos"), router.UintParam("id")}, todos.Delete,
		router.HeaderExact("Authorization", cfg.API.BearerToken()))

	rt.Handle(http.MethodGet, router.Pattern{}, demo.Readme)
	rt.Handle(http.MethodGet, router.Pattern{router.Lit("hi")}, demo.Hi)
	rt.Handle(http.MethodGet, router.Pattern{router.Lit("hello"), router.StringParam("name")}, demo.Hello)
	rt.Handle(http.MethodGet, router.Pattern{router.Lit("sleep"), router.SecondsParam("seconds", cfg.API.MaxSleepSeconds)}, demo.Sleep)
	rt.Handle(http.MethodPost, router.Pattern{router.Lit("register")}, demo.Register)

	if collector != nil {
		metricsHandler := collector.Handler()
		rt.Handle(http.MethodGet, router.Pattern{router.Lit("metrics")},
			func(w http.ResponseWriter, r *http.Request, _ router.Params) *rejection.Rejection {
				metricsHandler(w, r)
				return nil
			})
	}

	return middleware.AccessLog(log, collector, rt)
}
