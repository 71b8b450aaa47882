package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"talentdesk/internal/ai"
	"talentdesk/internal/core/auth"
	"talentdesk/internal/core/cache"
	"talentdesk/internal/core/config"
	"talentdesk/internal/core/database"
	"talentdesk/internal/core/logger"
	"talentdesk/internal/core/server"
	"talentdesk/internal/feature/campaign"
	"talentdesk/internal/feature/candidate"
	"talentdesk/internal/feature/client"
	"talentdesk/internal/feature/job"
	"talentdesk/internal/feature/user"
	"talentdesk/internal/repo"
	"talentdesk/internal/service"
	"talentdesk/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&user.UserModel{},
			&candidate.CandidateModel{},
			&job.JobModel{},
			&client.ClientModel{},
			&campaign.CampaignModel{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var rc *cache.Cache
	if cfg.Redis.Addr != "" {
		rc = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	var gen ai.Generator = ai.Disabled{}
	if cfg.AI.APIKey != "" {
		g, err := ai.NewGemini(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatal("ai client init failed", zap.Error(err))
		}
		gen = g
		log.Info("ai generation enabled", zap.String("model", cfg.AI.Model))
	} else {
		log.Warn("no AI api key configured, job descriptions will be published unenhanced")
	}

	userRepo := repo.NewUserRepo(db)
	candRepo := repo.NewCandidateRepo(db, log)
	jobRepo := repo.NewJobRepo(db, log)
	clientRepo := repo.NewClientRepo(db)
	campRepo := repo.NewCampaignRepo(db)

	svcs := router.Services{
		Users:      userRepo,
		Candidates: service.NewCandidateService(candRepo, log),
		Jobs:       service.NewJobService(jobRepo, gen, log),
		Clients:    service.NewClientService(clientRepo),
		Campaigns:  service.NewCampaignService(campRepo, gen, log),
		Analytics:  service.NewAnalyticsService(candRepo, jobRepo, clientRepo, rc),
		Import:     service.NewImportService(jobRepo, campRepo, candRepo, log),
	}

	r := router.NewAPIEngine(log, svcs, jwter)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("open database failed", zap.Error(err))
	}
	return db
}
