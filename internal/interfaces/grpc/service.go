package grpcinterface

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/soheilhy/cmux"
	fundraiserv1 "github.com/tdex-network/fundraiser-daemon/api-spec/fundraiser/v1"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/interfaces"
	grpchandler "github.com/tdex-network/fundraiser-daemon/internal/interfaces/grpc/handler"
	"github.com/tdex-network/fundraiser-daemon/internal/interfaces/grpc/interceptor"
	"google.golang.org/grpc"
)

const (
	metricsPath = "/metrics"

	shutdownTimeout = 5 * time.Second
)

type ServiceOpts struct {
	Address string
	TLSKey  string
	TLSCert string

	FundraiserSvc application.FundraiserService
	PubSubSvc     application.PubSubService

	// MetricsRegistry collects the metrics exposed at /metrics. A new one is
	// created if not defined.
	MetricsRegistry *prometheus.Registry
}

func (o ServiceOpts) validate() error {
	if !isValidAddress(o.Address) {
		return fmt.Errorf("invalid listening address %s", o.Address)
	}
	if (o.TLSKey == "") != (o.TLSCert == "") {
		return fmt.Errorf("tls key and cert must be either both defined or not")
	}
	if o.TLSKey != "" {
		if !pathExists(o.TLSKey) {
			return fmt.Errorf("tls key file %s not found", o.TLSKey)
		}
		if !pathExists(o.TLSCert) {
			return fmt.Errorf("tls cert file %s not found", o.TLSCert)
		}
	}
	if o.FundraiserSvc == nil {
		return fmt.Errorf("fundraiser app service must not be null")
	}
	if o.PubSubSvc == nil {
		return fmt.Errorf("pubsub app service must not be null")
	}
	return nil
}

type service struct {
	opts ServiceOpts

	registry   *prometheus.Registry
	grpcServer *grpc.Server
	httpServer *http.Server
	mux        cmux.CMux
}

// NewService returns the gRPC interface of the daemon. gRPC, gRPC-web and
// the Prometheus metrics endpoint are all served on the same port.
func NewService(opts ServiceOpts) (interfaces.Service, error) {
	return newService(opts)
}

func newService(opts ServiceOpts) (*service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid opts: %s", err)
	}

	registry := opts.MetricsRegistry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := registry.Register(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	); err != nil {
		return nil, err
	}

	return &service{
		opts:     opts,
		registry: registry,
	}, nil
}

func (s *service) Start() error {
	grpcServer, err := s.newGRPCServer()
	if err != nil {
		return err
	}
	httpServer := s.newHTTPServer(grpcServer)

	mux, err := serveMux(
		s.opts.Address, s.opts.TLSKey, s.opts.TLSCert, grpcServer, httpServer,
	)
	if err != nil {
		return err
	}

	s.grpcServer = grpcServer
	s.httpServer = httpServer
	s.mux = mux

	log.Infof("fundraiser interface is listening on %s", s.opts.Address)
	return nil
}

func (s *service) Stop() {
	if s.grpcServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("error while shutting down http server")
	}
	s.grpcServer.GracefulStop()
	s.mux.Close()
	log.Debug("disabled fundraiser interface")
}

func (s *service) newGRPCServer() (*grpc.Server, error) {
	metrics, err := interceptor.NewMetrics(s.registry)
	if err != nil {
		return nil, err
	}

	grpcServer := grpc.NewServer(
		interceptor.UnaryInterceptor(metrics),
		interceptor.StreamInterceptor(metrics),
	)

	fundraiserHandler := grpchandler.NewFundraiserHandler(s.opts.FundraiserSvc)
	webhookHandler := grpchandler.NewWebhookHandler(s.opts.PubSubSvc)

	fundraiserv1.RegisterFundraiserServiceServer(grpcServer, fundraiserHandler)
	fundraiserv1.RegisterWebhookServiceServer(grpcServer, webhookHandler)

	return grpcServer, nil
}

func (s *service) newHTTPServer(grpcServer *grpc.Server) *http.Server {
	metricsHandler := promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
	return newGRPCWrappedServer(s.opts.Address, grpcServer, metricsHandler)
}
