package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"bizza/cmd"
	httpadapter "bizza/internal/adapters/in/http"
	"bizza/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetStalePendingProposalsQueryHandler(),
		staleAge(configs),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		OpenAPIPath:      goDotEnvVariable("OPENAPI_PATH"),
		ProposalStaleAge: goDotEnvVariable("PROPOSAL_STALE_AGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func staleAge(configs cmd.Config) time.Duration {
	age, err := time.ParseDuration(configs.ProposalStaleAge)
	if err != nil || age <= 0 {
		log.Fatalf("Invalid PROPOSAL_STALE_AGE: %q", configs.ProposalStaleAge)
	}
	return age
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	validation, err := httpadapter.OpenAPIValidation(configs.OpenAPIPath)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI contract: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateStartOrderCommandHandler(),
		app.CreateAssignCrewCommandHandler(),
		app.CreateSubmitBudgetProposalCommandHandler(),
		app.CreateApproveBudgetProposalCommandHandler(),
		app.CreateRejectBudgetProposalCommandHandler(),
		app.CreateUpdateProposalItemsCommandHandler(),
		app.CreateRecordExpenseCommandHandler(),
		app.CreateUpdateProgressCommandHandler(),
		app.CreateAddDocumentationCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSubmitReviewCommandHandler(),
		app.CreateRegisterTeamMemberCommandHandler(),
		app.CreateGetOrderDetailQueryHandler(),
		app.CreateGetForemanOrdersQueryHandler(),
		app.CreateGetTeamMembersQueryHandler(),
	)
	server.RegisterRoutes(e, []byte(configs.JWTSecret), validation)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
