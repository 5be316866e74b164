// Command egpwcd runs the EGPWC core as an installable system service,
// driving it at a fixed tick from a live sensor bus and exposing its
// status over HTTP.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/takama/daemon"

	"github.com/stratux/egpwc/internal/egpwc"
	"github.com/stratux/egpwc/internal/egpwclog"
)

const (
	serviceName        = "egpwcd"
	serviceDescription = "Enhanced Ground Proximity Warning Computer core"
)

type egpwcdService struct {
	daemon.Daemon
	stop chan struct{}
}

func (s *egpwcdService) Manage() (string, error) {
	usage := "Usage: egpwcd install | remove | start | stop | status | run"

	if len(os.Args) < 2 {
		s.runForeground()
		return usage, nil
	}

	switch os.Args[1] {
	case "install":
		return s.Install()
	case "remove":
		return s.Remove()
	case "start":
		return s.Start()
	case "stop":
		return s.Stop()
	case "status":
		return s.Status()
	case "run":
		s.runForeground()
		return "egpwcd stopped", nil
	default:
		return usage, nil
	}
}

func (s *egpwcdService) runForeground() {
	readConfig()
	egpwclog.Debug = globalConfig.Debug

	startedAt = time.Now()

	reg := prometheus.NewRegistry()
	metrics := egpwc.NewMetrics(reg)

	bus := &liveBus{}
	if globalConfig.SerialPort != "" {
		go func() {
			if err := readSerialBus(globalConfig.SerialPort, bus); err != nil {
				egpwclog.Err("serial bus reader exited: %s", err)
			}
		}()
	}

	rt := egpwc.New(
		time.Duration(globalConfig.SelfTestSeconds)*time.Second,
		true,
		egpwc.Takeoff,
		globalConfig.pinPrograms(),
	)
	rt.UseMetrics(metrics)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/status", handleStatusRequest)
	server := &http.Server{Addr: globalConfig.MetricsAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			egpwclog.Err("status server exited: %s", err)
		}
	}()

	egpwclog.Inf("egpwcd starting, self-test %ds, tick %dms", globalConfig.SelfTestSeconds, globalConfig.TickMillis)

	tick := time.Duration(globalConfig.TickMillis) * time.Millisecond
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	ra1 := ra1View{b: bus}
	ra2 := ra2View{b: bus}

	for {
		select {
		case <-s.stop:
			server.Close()
			return
		case <-ticker.C:
			rt.Update(tick, egpwc.DiscreteInputs{}, ra1, ra2, bus, bus, bus)
			currentOutputs = rt.Outputs()
		}
	}
}

func main() {
	d, err := daemon.New(serviceName, serviceDescription, daemon.SystemDaemon)
	if err != nil {
		log.Fatalf("failed to create daemon: %s", err)
	}

	service := &egpwcdService{Daemon: d, stop: make(chan struct{})}
	status, err := service.Manage()
	if err != nil {
		log.Fatalln(status, err)
	}
	log.Println(status)
}
