package interceptor

import (
	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryInterceptor returns the unary interceptor that logs every request and
// keeps track of its outcome in the given metrics.
func UnaryInterceptor(metrics *Metrics) grpc.ServerOption {
	return grpc.UnaryInterceptor(
		middleware.ChainUnaryServer(
			unaryLogger,
			unaryMetricsHandler(metrics),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
	)
}

// StreamInterceptor returns the stream interceptor with a logrus log
func StreamInterceptor(metrics *Metrics) grpc.ServerOption {
	return grpc.StreamInterceptor(
		middleware.ChainStreamServer(
			streamLogger,
			streamMetricsHandler(metrics),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

var recoveryOpts = []grpc_recovery.Option{
	grpc_recovery.WithRecoveryHandler(recoverPanic),
}

// recoverPanic turns a panic in a handler into an Internal error so that a
// single bad request never takes the daemon down.
func recoverPanic(p interface{}) error {
	log.Errorf("recovered from panic: %v", p)
	return status.Error(codes.Internal, "internal error")
}
