package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/careerpath/backend/config"
	"github.com/careerpath/backend/internal/api/handlers"
	"github.com/careerpath/backend/internal/api/middleware"
	"github.com/careerpath/backend/internal/api/routes"
	"github.com/careerpath/backend/internal/cache"
	"github.com/careerpath/backend/internal/catalog"
	"github.com/careerpath/backend/internal/logger"
	"github.com/careerpath/backend/internal/recommender"
	mongorepo "github.com/careerpath/backend/internal/repositories/mongo"
	pgrepo "github.com/careerpath/backend/internal/repositories/postgres"
	"github.com/careerpath/backend/internal/services"
	"github.com/careerpath/backend/internal/storage"
	"github.com/careerpath/backend/internal/workers"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	// Catalog source: Postgres when configured, embedded seed otherwise.
	var careerRepo pgrepo.CareerRepository
	var vectorRepo pgrepo.VectorRepository
	var snapshotRepo pgrepo.SnapshotRepository

	rows := catalog.Seed()
	if os.Getenv("POSTGRES_URI") != "" {
		if err := config.InitPostgres(); err != nil {
			log.WithError(err).Fatal("PostgreSQL init failed")
		}
		careerRepo = pgrepo.NewCareerRepo(config.PostgresDB)
		vectorRepo = pgrepo.NewVectorRepo(config.PostgresDB)
		snapshotRepo = pgrepo.NewSnapshotRepo(config.PostgresDB)

		if err := careerRepo.Migrate(); err != nil {
			log.WithError(err).Fatal("career table migration failed")
		}
		if err := vectorRepo.Migrate(); err != nil {
			log.WithError(err).Fatal("career_vectors table migration failed")
		}
		if err := snapshotRepo.Migrate(); err != nil {
			log.WithError(err).Fatal("model_snapshots table migration failed")
		}
		if err := careerRepo.SeedIfEmpty(ctx, rows); err != nil {
			log.WithError(err).Fatal("catalog seeding failed")
		}

		loaded, err := careerRepo.LoadAll(ctx)
		if err != nil {
			log.WithError(err).Fatal("catalog load failed")
		}
		rows = loaded
		log.WithField("careers", len(rows)).Info("catalog loaded from PostgreSQL")
	} else {
		log.WithField("careers", len(rows)).Info("POSTGRES_URI not set, using embedded catalog")
	}

	// Snapshot store: GCS bucket when configured, local directory otherwise.
	var snapStore storage.SnapshotStore
	if bucket := os.Getenv("SNAPSHOT_BUCKET"); bucket != "" {
		gcsStore, err := storage.NewGCSStore(ctx, bucket)
		if err != nil {
			log.WithError(err).Fatal("GCS snapshot store init failed")
		}
		snapStore = gcsStore
	} else {
		dir := os.Getenv("SNAPSHOT_DIR")
		if dir == "" {
			dir = "snapshots"
		}
		localStore, err := storage.NewLocalStore(dir)
		if err != nil {
			log.WithError(err).Fatal("local snapshot store init failed")
		}
		snapStore = localStore
	}

	// SNAPSHOT_RESTORE boots from a stored snapshot instead of fitting
	// the catalog, reproducing the exact scores of the snapshotted model.
	var engine *recommender.Engine
	if name := os.Getenv("SNAPSHOT_RESTORE"); name != "" {
		data, err := snapStore.Get(ctx, name)
		if err != nil {
			log.WithError(err).Fatal("snapshot read failed")
		}
		engine, err = recommender.Restore(data)
		if err != nil {
			log.WithError(err).Fatal("snapshot restore failed")
		}
		log.WithField("snapshot", name).Info("engine restored from snapshot")
	} else {
		var err error
		engine, err = recommender.NewEngine(rows)
		if err != nil {
			log.WithError(err).Fatal("engine fit failed")
		}
	}
	if vectorRepo != nil {
		ids, matrix := engine.Matrix()
		if err := vectorRepo.ReplaceAll(ctx, ids, matrix); err != nil {
			log.WithError(err).Warn("failed to persist fitted vectors")
		}
	}
	log.WithField("terms", engine.Dimension()).Info("engine fitted")

	// Redis: recommendation cache + event stream. Optional.
	var recCache cache.Cache
	if os.Getenv("REDIS_ADDR") != "" || os.Getenv("REDIS_URL") != "" {
		if err := config.InitRedis(); err != nil {
			log.WithError(err).Fatal("Redis init failed")
		}
		recCache = cache.NewRedisCache(config.RedisClient, "careerpath")
		log.Info("Redis connected")
	} else {
		log.Info("REDIS_ADDR not set, caching and query-log stream disabled")
	}

	// Mongo: query log, drained from the Redis stream. Optional.
	var logRepo mongorepo.QueryLogRepository
	if os.Getenv("MONGO_URI") != "" {
		if err := config.InitMongo(); err != nil {
			log.WithError(err).Fatal("MongoDB init failed")
		}
		if err := config.EnsureMongoIndexes(); err != nil {
			log.WithError(err).Warn("MongoDB index setup failed")
		}
		logRepo = mongorepo.NewQueryLogRepo(config.MongoDatabase())
		log.Info("MongoDB connected")

		if config.RedisClient != nil {
			pool := &workers.QueryLogWorkerPool{
				Redis:  config.RedisClient,
				Logs:   logRepo,
				Logger: log,
			}
			if err := pool.Start(ctx); err != nil {
				log.WithError(err).Fatal("query-log worker start failed")
			}
		}
	}

	careerSvc := services.NewCareerService(engine, recCache, config.RedisClient, log)
	modelSvc := services.NewModelService(engine, careerRepo, vectorRepo, snapshotRepo, logRepo, snapStore, recCache, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Career: handlers.NewCareerHandler(careerSvc),
		Admin:  handlers.NewAdminHandler(modelSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
