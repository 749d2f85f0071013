package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/atelier-works/portfolio-api/config"
	"github.com/atelier-works/portfolio-api/internal/api/handlers"
	"github.com/atelier-works/portfolio-api/internal/api/middleware"
	"github.com/atelier-works/portfolio-api/internal/api/routes"
	"github.com/atelier-works/portfolio-api/internal/auth"
	"github.com/atelier-works/portfolio-api/internal/crypto"
	"github.com/atelier-works/portfolio-api/internal/logger"
	"github.com/atelier-works/portfolio-api/internal/mailer"
	"github.com/atelier-works/portfolio-api/internal/models"
	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/services"
	"github.com/atelier-works/portfolio-api/internal/storage"
	"github.com/atelier-works/portfolio-api/internal/workers"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	db, err := config.OpenPostgres(cfg.PostgresURI)
	if err != nil {
		l.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Media{},
		&models.Work{},
		&models.WorkDetail{},
		&models.InstagramPost{},
		&models.ContactSubmission{},
		&models.CareerSubmission{},
	); err != nil {
		l.Fatalf("migration error: %v", err)
	}
	l.Info("PostgreSQL connected")

	rdb, err := config.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		l.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	codec, err := crypto.NewFieldCodec(cfg.EncryptionKey, l)
	if err != nil {
		l.Fatalf("field codec init error: %v", err)
	}

	// The transport decryptor is optional: without a private key the decrypt
	// middleware passes bodies through untouched.
	var decryptor *crypto.TransportDecryptor
	if cfg.RSAPrivateKey != "" {
		decryptor, err = crypto.NewTransportDecryptor(cfg.RSAPrivateKey)
		if err != nil {
			l.Fatalf("RSA key error: %v", err)
		}
	} else {
		l.Warn("RSA_PRIVATE_KEY not set, transport decryption disabled")
	}

	issuer := auth.NewIssuer(cfg.JWTSecret)

	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		l.Fatalf("upload dir error: %v", err)
	}

	mail := mailer.NewSMTP(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		APILink:  cfg.APILink,
	}, l)

	mediaRepo := pgrepo.NewMediaRepo(db)
	workRepo := pgrepo.NewWorkRepo(db)
	detailRepo := pgrepo.NewWorkDetailRepo(db)
	instagramRepo := pgrepo.NewInstagramRepo(db)
	contactRepo := pgrepo.NewContactRepo(db, codec)
	careerRepo := pgrepo.NewCareerRepo(db, codec)

	mediaSvc := services.NewMediaService(mediaRepo, workRepo, detailRepo, store, l)
	workSvc := services.NewWorkService(workRepo, mediaRepo)
	detailSvc := services.NewWorkDetailService(detailRepo)
	instagramSvc := services.NewInstagramService(instagramRepo)
	contactSvc := services.NewContactService(contactRepo, mail, l)
	careerSvc := services.NewCareerService(careerRepo, mediaRepo, mail, cfg.APILink, l)

	cleanup := workers.NewCleanupWorker(contactRepo, careerRepo, mediaRepo, store, cfg.RetentionDays, l)
	if err := cleanup.Start(); err != nil {
		l.Fatalf("cleanup worker error: %v", err)
	}
	defer cleanup.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	r.Use(middleware.RateLimit(rdb, cfg.TrustedIPs, l))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.ClientURL == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{cfg.ClientURL}
	}
	r.Use(cors.New(corsCfg))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	deps := routes.Deps{
		Issuer:     issuer,
		Decryptor:  decryptor,
		Log:        l,
		Media:      handlers.NewMediaHandler(mediaSvc),
		Contact:    handlers.NewContactHandler(contactSvc),
		Career:     handlers.NewCareerHandler(careerSvc),
		Work:       handlers.NewWorkHandler(workSvc),
		WorkDetail: handlers.NewWorkDetailHandler(detailSvc),
		Instagram:  handlers.NewInstagramHandler(instagramSvc),
	}
	if cfg.EnableTokenMint {
		deps.Token = handlers.NewTokenHandler(issuer)
	}
	routes.Register(r, deps)

	l.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		l.Fatalf("server error: %v", err)
	}
}
