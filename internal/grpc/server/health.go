// Package server реализует gRPC-сервер проверки состояния (grpc.health.v1)
// для оркестраторов, которые не умеют ходить в HTTP /health.
//
// Статус вычисляется на каждый Check по пингу базы данных.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
)

// ServiceName - имя сервиса, которое можно передать в HealthCheckRequest.
const ServiceName = "petcare"

const pingTimeout = 2 * time.Second

// Pinger проверяет доступность базы данных.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker отвечает на Check по результату пинга базы. Watch и List
// достаются от health.Server без изменений.
type HealthChecker struct {
	*health.Server
	db  Pinger
	log *slog.Logger
}

// NewHealthChecker создает новый экземпляр HealthChecker.
func NewHealthChecker(db Pinger, log *slog.Logger) *HealthChecker {
	return &HealthChecker{
		Server: health.NewServer(),
		db:     db,
		log:    log,
	}
}

// Check возвращает SERVING, если база доступна, иначе NOT_SERVING.
func (h *HealthChecker) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("health check: database ping failed", sl.Err(err))
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

// Server - gRPC-сервер с зарегистрированным HealthChecker.
type Server struct {
	grpc    *grpc.Server
	checker *HealthChecker
	log     *slog.Logger
}

// New создает gRPC-сервер проверки состояния.
func New(db Pinger, log *slog.Logger) *Server {
	s := grpc.NewServer()
	checker := NewHealthChecker(db, log)
	healthpb.RegisterHealthServer(s, checker)

	return &Server{
		grpc:    s,
		checker: checker,
		log:     log,
	}
}

// Serve принимает соединения на lis до вызова Stop.
func (s *Server) Serve(lis net.Listener) error {
	const op = "grpc.server.Serve"

	s.log.Info("gRPC health server starting", slog.String("address", lis.Addr().String()))
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListenAndServe слушает addr и обслуживает запросы.
func (s *Server) ListenAndServe(addr string) error {
	const op = "grpc.server.ListenAndServe"

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return s.Serve(lis)
}

// Stop помечает сервис как NOT_SERVING для Watch-клиентов и дожидается
// завершения активных вызовов.
func (s *Server) Stop() {
	s.checker.Shutdown()
	s.grpc.GracefulStop()
}
