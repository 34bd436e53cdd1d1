package main

import (
	"fmt"
	"log/slog"
	"os"

	"packagetracker/cmd"
	httpadapter "packagetracker/internal/adapters/in/http"
	"packagetracker/internal/adapters/out/postgres/outboxrepo"
	"packagetracker/internal/adapters/out/postgres/packagerepo"
	"packagetracker/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateDispatchNoticesCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		SendGridAPIKey:    goDotEnvVariable("SENDGRID_API_KEY"),
		SendGridFromEmail: goDotEnvVariable("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  goDotEnvVariable("SENDGRID_FROM_NAME"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&packagerepo.PackageDTO{},
		&packagerepo.PackageUpdateDTO{},
		&outboxrepo.NoticeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterPackageCommandHandler(),
		app.CreateEditPackageDetailsCommandHandler(),
		app.CreateAddPackageUpdateCommandHandler(),
		app.CreateEditPackageUpdateCommandHandler(),
		app.CreateRemovePackageCommandHandler(),
		app.CreateGetAllPackagesQueryHandler(),
		app.CreateGetPackageByCodeQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
