// GT06 tracker client
//
// This is a demo device-side client: it dials a GT06 fleet-management
// server, logs in with an IMEI, and drives periodic location reports,
// the client-side mirror of the reference server's connection-handling
// loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/intelcon-group/gt06-client/internal/observability"
	"github.com/intelcon-group/gt06-client/pkg/gt06"
)

var (
	server          = flag.String("server", "", "GT06 server address (host:port); overrides GT06_SERVER")
	imei            = flag.String("imei", "", "Device IMEI to log in with; overrides GT06_IMEI")
	heartbeat       = flag.Duration("heartbeat", 180*time.Second, "Heart-beat period")
	reportPeriod    = flag.Duration("report-period", 30*time.Second, "Location report period")
	retryCount      = flag.Int("retries", 3, "Connect retries before arming a power restart")
	metricsAddr     = flag.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9090)")
	envFile         = flag.String("env-file", ".env", "Optional .env file to load into the environment")
)

func main() {
	flag.Parse()
	if err := godotenv.Load(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "no .env file loaded (%v); continuing with flags/environment\n", err)
	}

	addr := firstNonEmpty(*server, os.Getenv("GT06_SERVER"))
	deviceIMEI := firstNonEmpty(*imei, os.Getenv("GT06_IMEI"))
	if addr == "" || deviceIMEI == "" {
		fmt.Fprintln(os.Stderr, "gt06-client: -server and -imei (or GT06_SERVER/GT06_IMEI) are required")
		os.Exit(2)
	}

	logger := observability.NewLogrusLogger()
	registry := prometheus.NewRegistry()
	promMetrics := observability.NewPrometheus(registry)

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, registry, logger)
	}

	session, err := gt06.NewSession(gt06.NewTCPTransport(addr),
		gt06.WithHeartbeatPeriod(*heartbeat),
		gt06.WithRetryCount(*retryCount),
		gt06.WithLogger(logger),
		gt06.WithMetrics(promMetrics),
	)
	if err != nil {
		logger.Errorf("invalid session configuration: %v", err)
		os.Exit(1)
	}

	session.SetCallback(func(cmd gt06.Command) {
		traceID := uuid.NewString()
		logger.Infof("trace=%s server command: flag=0x%08X data=%q", traceID, cmd.ServerFlag, cmd.Data)
		if err := session.ReportDeviceCmd(cmd.ServerFlag, "OK"); err != nil {
			logger.Warnf("trace=%s failed to ack command: %v", traceID, err)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := session.Connect(ctx); err != nil {
		logger.Errorf("connect failed: %v", err)
		os.Exit(1)
	}
	if err := session.Login(ctx, deviceIMEI); err != nil {
		logger.Errorf("login failed: %v", err)
		os.Exit(1)
	}
	logger.Infof("logged in as %s, reporting every %s", deviceIMEI, *reportPeriod)

	ticker := time.NewTicker(*reportPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("shutting down")
			session.Close()
			return
		case <-ticker.C:
			reportOnce(session, logger)
		}
	}
}

// reportOnce sends a single simulated location+status report. A real
// device would read these values from its GPS module and status
// pins; this demo client jitters a fixed origin to produce plausible
// traffic for exercising a server.
func reportOnce(session *gt06.Session, logger gt06.Logger) {
	fix := gt06.LocationFix{
		Time:        time.Now(),
		Satellites:  12,
		Latitude:    31.824845156501 + rand.Float64()*0.001,
		Longitude:   117.24091089413 + rand.Float64()*0.001,
		SpeedKMH:    uint8(rand.Intn(120)),
		Course:      uint16(rand.Intn(360)),
		GPSFixed:    true,
		RealTimeGPS: true,
	}
	cell := gt06.LbsCell{MCC: 460, MNC: 0, LAC: 0x1234, CellID: 0x00ABCD}

	session.SetDeviceStatus(gt06.DeviceStatus{
		ACC: true, GPSTracking: true, Power: true,
		VoltageLevel: 4, GSMSignal: 3,
	})

	if err := session.ReportLocation(context.Background(), fix, cell, true); err != nil {
		logger.Warnf("location report failed: %v", err)
	}
}

func serveMetrics(addr string, registry *prometheus.Registry, logger gt06.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logger.Infof("serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Errorf("metrics server stopped: %v", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
