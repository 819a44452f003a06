package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"foodmate/cmd"
	httpserver "foodmate/internal/adapters/in/http"
	"foodmate/internal/adapters/out/memstore"
	"foodmate/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store := memstore.NewStore()
	if configs.SeedDemoData {
		if err := store.Seed(); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	app := cmd.NewCompositionRoot(configs, store, logger)

	jobManager := jobs.NewJobManager(
		app.CreateAssignPartnerCommandHandler(),
		configs.AssignmentSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		SeedDemoData:       goDotEnvVariable("SEED_DEMO_DATA") == "true",
		AssignmentSchedule: goDotEnvVariable("ASSIGNMENT_SCHEDULE"),
	}
	if config.AssignmentSchedule == "" {
		config.AssignmentSchedule = "* * * * * *"
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

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateAddDishCommandHandler(),
		app.CreateRemoveDishCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateApplyOfferCommandHandler(),
		app.CreateAddTipCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateFilterDishesQueryHandler(),
		app.CreateGetRestaurantsQueryHandler(),
		app.CreateGetOffersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUserProfileQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
