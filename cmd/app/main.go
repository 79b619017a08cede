package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleetops/cmd"
	httpadapter "fleetops/internal/adapters/in/http"
	"fleetops/internal/adapters/out/postgres/catalogitemrepo"
	"fleetops/internal/adapters/out/postgres/purchaseorderrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&purchaseorderrepo.PurchaseOrderDTO{},
		&purchaseorderrepo.LineItemDTO{},
		&catalogitemrepo.CatalogItemDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreatePurchaseOrderCommandHandler(),
		app.CreateAddOrUpdateLineItemCommandHandler(),
		app.CreateRemoveLineItemCommandHandler(),
		app.CreateReceiveLineItemCommandHandler(),
		app.CreateUnreceiveLineItemCommandHandler(),
		app.CreateSetTaxConfigurationCommandHandler(),
		app.CreateSetFreightCommandHandler(),
		app.CreateClosePurchaseOrderCommandHandler(),
		app.CreateSetOrderStageCommandHandler(),
		app.CreateCreateCatalogItemCommandHandler(),
		app.CreateGetPurchaseOrderQueryHandler(),
		app.CreateGetOpenPurchaseOrdersQueryHandler(),
	)
	httpadapter.RegisterRoutes(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
