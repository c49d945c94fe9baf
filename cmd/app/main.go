package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"production/cmd"
	_ "production/docs"
	httpin "production/internal/adapters/in/http"
	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/adapters/out/postgres/panrepo"
	"production/internal/adapters/out/postgres/workcenterrepo"
	"production/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Production Pipeline API
//	@version		1.0
//	@description	Tracks production orders through charging, mixing and
//	@description	extrusion, with the two buffers between them and the
//	@description	workcenter and pan bindings each phase requires.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)

	gormDB, err := openGormDB(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.ProductionOrderDTO{},
		&panrepo.PanDTO{},
		&workcenterrepo.WorkcenterDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetProductionOrdersQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// createDbIfNotExists connects to the maintenance database and creates the
// application database when missing. AutoMigrate needs an existing database
// to connect to.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
}

func openGormDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver unique violations into gorm.ErrDuplicatedKey,
	// which the order repository maps to the duplicate-number conflict.
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreatePanCommandHandler(),
		app.CreateCreateWorkcenterCommandHandler(),
		app.CreateMoveOrderCommandHandler(),
		app.CreateAssignPanCommandHandler(),
		app.CreateGetProductionOrdersQueryHandler(),
		app.CreateGetProductionOrderQueryHandler(),
		app.CreateGetProductionOrdersByPhaseQueryHandler(),
		app.CreateGetProductionOrdersByBufferQueryHandler(),
		app.CreateGetPansQueryHandler(),
		app.CreateGetWorkcentersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
