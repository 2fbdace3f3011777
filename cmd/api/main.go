package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fieldtrack/internal/application/services"
	"fieldtrack/internal/config"
	"fieldtrack/internal/domain/aggregate"
	"fieldtrack/internal/infrastructure/bus"
	"fieldtrack/internal/infrastructure/geo"
	httpHandler "fieldtrack/internal/infrastructure/http"
	"fieldtrack/internal/infrastructure/memory"
	jwtutil "fieldtrack/pkg/jwt"
	"fieldtrack/pkg/logger"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	root := &cli.Command{
		Name:  "fieldtrack",
		Usage: "Field sales tracking API",
		Commands: []*cli.Command{
			serveCommand(),
			distanceCommand(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, "")
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file loaded before the environment"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, c.String("env-file"))
		},
	}
}

func distanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "distance",
		Usage: "Print the great-circle distance in km between two points",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "from-lat", Required: true},
			&cli.FloatFlag{Name: "from-lng", Required: true},
			&cli.FloatFlag{Name: "to-lat", Required: true},
			&cli.FloatFlag{Name: "to-lng", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			from := aggregate.GeoLocation{Latitude: c.Float("from-lat"), Longitude: c.Float("from-lng")}
			to := aggregate.GeoLocation{Latitude: c.Float("to-lat"), Longitude: c.Float("to-lng")}
			fmt.Println(strconv.FormatFloat(geo.CalculateDistance(from, to), 'f', 3, 64))
			return nil
		},
	}
}

func runServer(ctx context.Context, envFile string) error {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Env); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	rnd := geo.NewRandom(cfg.RandomSeed)

	var source geo.PositionSource
	if cfg.Geo.Device != nil {
		source = geo.StaticSource{Latitude: cfg.Geo.Device.Latitude, Longitude: cfg.Geo.Device.Longitude}
	}
	resolver := geo.NewResolver(source, geo.WithTimeout(cfg.Geo.Timeout), geo.WithRandom(rnd))

	session := memory.NewSession(memory.DemoUsers(time.Now())...)
	eventBus := bus.NewInMemoryEventBus()
	jwtManager := jwtutil.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)

	svc, err := services.New(services.Dependencies{
		Session:  session,
		EventBus: eventBus,
		Location: resolver,
		Random:   rnd,
		JWT:      jwtManager,
	})
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := eventBus.Start(ctx); err != nil {
		return fmt.Errorf("start event bus: %w", err)
	}
	defer eventBus.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpHandler.NewRouter(svc, jwtManager, cfg.Server.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof(gctx, "fieldtrack API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Infof(context.Background(), "shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Infof(context.Background(), "server stopped")
	return nil
}
