// Package worker runs the scheduled background jobs alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"rewear/config"
	"rewear/internal/delivery"
	"rewear/internal/domain/lifecycle"
	"rewear/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	cron       *cron.Cron
	couponRepo repository.CouponRepository
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	CouponRepo repository.CouponRepository
}

// NewServer creates the cron runner that sweeps expired coupons.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:        params.Cfg,
		logger:     params.Logger,
		cron:       cron.New(),
		couponRepo: params.CouponRepo,
	}

	if _, err := srv.cron.AddFunc(params.Cfg.Coupons.SweepSchedule, srv.sweepExpiredCoupons); err != nil {
		return nil, errors.Wrap(err, "failed to schedule coupon sweep")
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the cron scheduler. It blocks until the scheduler stops so the
// runner keeps the process alive alongside the HTTP delivery.
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting coupon sweep worker",
		slog.String("schedule", s.cfg.Coupons.SweepSchedule))
	s.cron.Run()

	return nil
}

func (s *workerServer) sweepExpiredCoupons() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	swept, err := s.couponRepo.DeactivateExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Coupon sweep failed", slog.Any("error", err))

		return
	}

	if swept > 0 {
		s.logger.Info("Deactivated expired coupons", slog.Int64("count", swept))
	}
}

func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down coupon sweep worker")

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	return nil
}
