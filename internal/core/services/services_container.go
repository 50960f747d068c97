package services

import (
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
	"github.com/SscSPs/investment_admin_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher, metrics portssvc.MetricsRecorder) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Investment: NewInvestmentService(repos,
			WithEventPublisher(publisher),
			WithMetricsRecorder(metrics),
			WithRetryPolicy(RetryPolicy{
				MaxAttempts:    cfg.TxMaxAttempts,
				InitialBackoff: cfg.TxInitialBackoff,
				MaxBackoff:     cfg.TxMaxBackoff,
			}),
			WithDefaultCurrency(cfg.DefaultCurrency),
		),
	}
}
