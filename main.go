package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/DedS3t/marble-backend/app/controllers"
	"github.com/DedS3t/marble-backend/pkg/routes"
	"github.com/DedS3t/marble-backend/platform/board"
	"github.com/DedS3t/marble-backend/platform/cache"
	"github.com/DedS3t/marble-backend/platform/cards"
	"github.com/DedS3t/marble-backend/platform/config"
	"github.com/DedS3t/marble-backend/platform/database"
	"github.com/DedS3t/marble-backend/platform/game"
	"github.com/DedS3t/marble-backend/platform/logging"
	"github.com/DedS3t/marble-backend/platform/queries"
	socket "github.com/DedS3t/marble-backend/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// openCatalog picks where tiles and cards are read from.
func openCatalog(cfg config.Config) (board.Catalog, func(), error) {
	if cfg.CatalogSource == "postgres" {
		db := database.PostgreSQLConnection(cfg)
		return queries.NewPgCatalog(db), func() { db.Close() }, nil
	}
	c, err := board.LoadFileCatalog()
	if err != nil {
		return nil, nil, err
	}
	return c, func() {}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	logging.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := cache.CreateRedisPool(cfg.RedisURL, cfg.RedisMaxIdle)
	defer pool.Close()

	cat, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		log.WithError(err).Fatal("open catalog")
	}
	defer closeCatalog()

	deck := cards.NewDeck(cat, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := deck.Refresh(ctx); err != nil {
		log.WithError(err).Fatal("load card deck")
	}

	sockets, err := socket.NewServer()
	if err != nil {
		log.WithError(err).Fatal("create socket.io server")
	}
	engine := game.NewEngine(
		cache.NewGameStore(pool, cfg.GameStateTTL),
		cat,
		deck,
		sockets,
		game.WithTurnDurations(cfg.FirstTurnDuration, cfg.TurnDuration),
	)
	defer engine.Close()
	sockets.Bind(engine)

	app := fiber.New()
	app.Use(cors.New(cors.Config{AllowOrigins: strings.Join(cfg.AllowedOrigins, ",")}))
	auth := jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	})
	routes.GameRoutes(app, controllers.NewGameController(engine), auth)
	routes.AuthRoutes(app, auth)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sockets.ListenAndServe(gctx, cfg.SocketAddr, cfg.AllowedOrigins)
	})
	g.Go(func() error {
		return app.Listen(cfg.HTTPAddr)
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server stopped")
	}
	log.Info("shut down")
}
