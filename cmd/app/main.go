package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/kurtadodoli/sevenfour-sub008/cmd"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/cancellationrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/courierrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/customorderrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/deliveryrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/orderrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/productrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderStatusTopic:   goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		DeliveryMaxPerDay:       goDotEnvIntVariable("DELIVERY_MAX_PER_DAY"),
		DeliveryLeadDays:        goDotEnvIntVariable("DELIVERY_LEAD_DAYS"),
		DeliveryEnforceLeadTime: goDotEnvBoolVariable("DELIVERY_ENFORCE_LEAD_TIME", true),
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

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %s", key, raw)
	}
	return value
}

func goDotEnvBoolVariable(key string, fallback bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %s", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customorderrepo.CustomOrderDTO{},
		&cancellationrepo.CancellationRequestDTO{},
		&deliveryrepo.DeliveryScheduleDTO{},
		&courierrepo.CourierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
