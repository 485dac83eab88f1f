// Package http is the JSON API surface, a thin adapter over the same
// services the telegram bot uses.
package http

import (
	"net/http"
	"time"

	"fintrack/internal/repository"
	"fintrack/internal/service"
)

type Server struct {
	*http.Server

	store    repository.Store
	recorder service.Recorder
	reporter service.Reporter
	planner  service.Planner
}

func NewServer(addr string, store repository.Store, recorder service.Recorder, reporter service.Reporter,
	planner service.Planner) *Server {
	s := &Server{
		store:    store,
		recorder: recorder,
		reporter: reporter,
		planner:  planner,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/", s.handleUser)
	mux.HandleFunc("/api/transaction", s.handleTransaction)
	mux.HandleFunc("/api/statistics/", s.handleStatistics)
	mux.HandleFunc("/api/goal", s.handleGoal)
	mux.HandleFunc("/api/budget", s.handleBudget)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/health", s.handleHealth)

	s.Server = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}
