package main

import (
	"context"
	"embed"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/jgardner8/NPuzzle/internal/config"
	"github.com/jgardner8/NPuzzle/internal/database"
	"github.com/jgardner8/NPuzzle/internal/handlers"
	"github.com/jgardner8/NPuzzle/internal/middleware"
)

//go:embed migrations/*.sql
var migrations embed.FS

var log = logrus.New()

func setupLogging() {
	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.InfoLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to set up log file: ", err)
		}
		log.AddHook(hook)
	}
}

func buildHandler(db *pgxpool.Pool) http.Handler {
	solve := handlers.NewSolveHandler(log)
	puzzles := handlers.NewPuzzleHandler(log, db, config.NewWebSocket())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /strategies", solve.Strategies)
	mux.HandleFunc("POST /solve", solve.Solve)
	mux.HandleFunc("POST /puzzles", puzzles.Create)
	mux.HandleFunc("GET /puzzles/{name}", puzzles.Fetch)
	mux.HandleFunc("POST /puzzles/{name}/solve", puzzles.Solve)
	mux.HandleFunc("GET /puzzles/{name}/records", puzzles.Records)
	mux.HandleFunc("/puzzles/{name}/watch", puzzles.Watch)

	return middleware.Wrap(mux,
		middleware.Cors(),
		middleware.Logging(log),
	)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	setupLogging()

	db, err := database.ConnectAndMigrate(mainCtx, migrations)
	if err != nil {
		log.Fatal("unable to connect to database: ", err)
	}
	defer db.Close()

	server := &http.Server{
		Addr:    config.Addr(),
		Handler: buildHandler(db),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", config.Addr())

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(server.ListenAndServe)
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 15*time.Second,
		)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Info("exit reason: ", err)
	}
}
