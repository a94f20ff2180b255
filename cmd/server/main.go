package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"yourssu.com/blog/internal/config"
	"yourssu.com/blog/internal/handler"
	"yourssu.com/blog/internal/middleware"
	"yourssu.com/blog/internal/model"
	"yourssu.com/blog/internal/repository"
	"yourssu.com/blog/internal/service"
	"yourssu.com/blog/pkg/database"
	"yourssu.com/blog/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := validator.RegisterNotBlank(); err != nil {
		log.Fatalf("failed to register validation: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	hasher := service.NewBcryptHasher()

	userService := service.NewUserService(userRepo, hasher)
	userHandler := handler.NewUserHandler(userService)

	articleService := service.NewArticleService(articleRepo, userRepo, hasher)
	articleHandler := handler.NewArticleHandler(articleService)

	commentService := service.NewCommentService(commentRepo, articleRepo, userRepo, hasher)
	commentHandler := handler.NewCommentHandler(commentService)

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		user := api.Group("/user")
		user.POST("/join", userHandler.Join)
		user.DELETE("/delete", userHandler.Delete)

		articles := api.Group("/articles")
		articles.POST("", articleHandler.Create)
		articles.PATCH("/:articleId", articleHandler.Update)
		articles.DELETE("/:articleId", articleHandler.Delete)

		comments := api.Group("/comments")
		comments.POST("/:articleId", commentHandler.Create)
		comments.PATCH("/:articleId/:commentId", commentHandler.Update)
		comments.DELETE("/:articleId/:commentId", commentHandler.Delete)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Comment{},
	)
}
