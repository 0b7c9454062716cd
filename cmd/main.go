package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/bugsnag/panicwrap"
	"github.com/delciak/biolink/internal/api/rest"
	"github.com/delciak/biolink/internal/configure"
	"github.com/delciak/biolink/internal/global"
	"github.com/delciak/biolink/internal/health"
	"github.com/delciak/biolink/internal/monitoring"
	"github.com/delciak/biolink/internal/pprof"
	"github.com/delciak/biolink/internal/svc/limiter"
	"github.com/delciak/biolink/internal/svc/presence"
	"github.com/delciak/biolink/internal/svc/prometheus"
	"github.com/delciak/biolink/internal/svc/views"
	"go.uber.org/zap"
)

var (
	Version = "development"
	Unix    = ""
	Time    = "unknown"
	User    = "unknown"
)

func init() {
	debug.SetGCPercent(2000)
	if i, err := strconv.Atoi(Unix); err == nil {
		Time = time.Unix(int64(i), 0).Format(time.RFC3339)
	}
}

func main() {
	config := configure.New()

	exitStatus, err := panicwrap.BasicWrap(func(s string) {
		zap.S().Errorw("panic detected",
			"panic", s,
		)
	})
	if err != nil {
		zap.S().Errorw("failed to setup panic handler",
			"error", err,
		)
		os.Exit(2)
	}

	if exitStatus >= 0 {
		os.Exit(exitStatus)
	}

	if !config.NoHeader {
		zap.S().Info("Delciak Bio Link")
		zap.S().Infof("Version: %s", Version)
		zap.S().Infof("build.Time: %s", Time)
		zap.S().Infof("build.User: %s", User)
	}

	if err := config.Validate(); err != nil {
		zap.S().Fatalw("invalid config",
			"error", err,
		)
	}

	zap.S().Debugf("MaxProcs: %d", runtime.GOMAXPROCS(0))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	gCtx, cancel := global.WithCancel(global.New(context.Background(), config))

	{
		gCtx.Inst().Prometheus = prometheus.New(prometheus.Options{
			Labels: config.Monitoring.Labels.ToPrometheus(),
		})
	}

	{
		gCtx.Inst().Limiter = limiter.New()
	}

	{
		gCtx.Inst().Views = views.New(views.Options{
			Cooldown:  time.Second * time.Duration(config.Views.CooldownSeconds),
			JWTSecret: config.Credentials.JWTSecret,
		})
	}

	{
		gCtx.Inst().Presence = presence.New(gCtx, presence.Options{
			UserID:        config.Discord.UserID,
			PollInterval:  time.Second * time.Duration(config.Lanyard.PollIntervalSeconds),
			ViewsInterval: time.Second * time.Duration(config.Views.RefreshIntervalSeconds),
			Views:         gCtx.Inst().Views,
			Prometheus:    gCtx.Inst().Prometheus,
		})
	}

	wg := sync.WaitGroup{}

	if gCtx.Config().Health.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-health.New(gCtx)
		}()
	}
	if gCtx.Config().Monitoring.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-monitoring.New(gCtx)
		}()
	}
	if gCtx.Config().PProf.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-pprof.New(gCtx)
		}()
	}

	done := make(chan struct{})
	go func() {
		<-sig
		cancel()
		go func() {
			select {
			case <-time.After(time.Minute):
			case <-sig:
			}
			zap.S().Fatal("force shutdown")
		}()

		zap.S().Info("shutting down")

		wg.Wait()

		close(done)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := rest.New(gCtx); err != nil {
			zap.S().Fatalw("rest failed",
				"error", err,
			)
		}
	}()

	zap.S().Info("running")

	<-done

	zap.S().Info("shutdown")
	os.Exit(0)
}
