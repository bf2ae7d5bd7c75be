package main

import (
	"log"
	"strings"

	"github.com/Sandee004/Voterz/internal/config"
	"github.com/Sandee004/Voterz/internal/database"
	"github.com/Sandee004/Voterz/internal/handlers"
	"github.com/Sandee004/Voterz/internal/middleware"
	"github.com/Sandee004/Voterz/internal/services"

	_ "github.com/Sandee004/Voterz/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Voterz API
// @version         1.0
// @description     Election backend: organizations create and publish elections, voters submit anonymous ballots
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	electionService := services.NewElectionService(db)
	questionService := services.NewQuestionService(db)
	ballotService := services.NewBallotService(db)
	resultsService := services.NewResultsService(db)

	authHandler := handlers.NewAuthHandler(authService)
	electionHandler := handlers.NewElectionHandler(electionService, authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	ballotHandler := handlers.NewBallotHandler(ballotService)
	resultsHandler := handlers.NewResultsHandler(resultsService, authService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.GET("/live", electionHandler.Live)
		api.POST("/submit_ballot", ballotHandler.SubmitBallot)

		owner := api.Group("")
		owner.Use(middleware.JWTAuth(authService))
		{
			owner.POST("/election", electionHandler.CreateElection)
			owner.GET("/election", electionHandler.GetElection)
			owner.POST("/questions", questionHandler.CreateQuestions)
			owner.GET("/questions", questionHandler.ListQuestions)
			owner.GET("/preview", electionHandler.Preview)
			owner.GET("/results", resultsHandler.GetResults)
			owner.POST("/build", electionHandler.Build)
		}
	}

	log.Printf("listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
