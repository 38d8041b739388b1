package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"
	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/adapters/catalog"
	"trip-itinerary-service/internal/adapters/planstore"
	"trip-itinerary-service/internal/adapters/routing"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/platform/db"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root. It wires concrete adapters
// (Postgres, Redis, Azure Maps) behind ports and plans one trip.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		destination  = flag.String("destination", "", "city to plan a trip for (required)")
		days         = flag.Int("days", 3, "trip length in days")
		styles       = flag.String("styles", "", "comma-separated travel styles")
		requirements = flag.String("requirements", "", "comma-separated must-have tags")
		budget       = flag.Int("budget", 0, "price tier ceiling (0 uses the default)")
		owner        = flag.String("owner", "", "owner id to save the plan under")
		diagnostics  = flag.Bool("diagnostics", false, "include candidate selection diagnostics")
		save         = flag.Bool("save", false, "persist the plan (requires DATABASE_URL)")
	)
	flag.Parse()

	if strings.TrimSpace(*destination) == "" {
		log.Fatal("-destination is required")
	}

	var provider ports.RoutingProvider
	azureKey := os.Getenv("AZURE_MAPS_SUBSCRIPTION_KEY")
	if strings.TrimSpace(azureKey) != "" {
		p, err := routing.NewAzureRouteProvider(azureKey)
		if err != nil {
			log.Fatal(err)
		}
		provider = p
	} else {
		log.Println("AZURE_MAPS_SUBSCRIPTION_KEY not set, estimating travel from direct-line distance only")
	}

	oracle := services.NewDistanceOracle(provider, 0)

	var (
		source ports.CandidateSource
		store  ports.PlanStore
	)
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		dbConn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer dbConn.Close()

		var catalogCache *cache.RedisCatalogCache
		if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
			client := redis.NewClient(&redis.Options{Addr: addr})
			catalogCache = cache.NewRedisCatalogCache(client, 0)
		}

		source = catalog.NewPostgresCatalog(dbConn, catalogCache)
		store = planstore.NewPostgresPlanStore(dbConn)
	} else {
		seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")
		c, err := catalog.NewJSONCatalog(seedPath)
		if err != nil {
			log.Fatal(err)
		}
		source = c
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := services.PlanTripRequest{
		OwnerID:      *owner,
		Destination:  *destination,
		DurationDays: *days,
		Styles:       splitList(*styles),
		Requirements: splitList(*requirements),
		BudgetTier:   *budget,
		Diagnostics:  *diagnostics,
		Save:         *save,
	}

	planner := &services.Planner{Oracle: oracle}
	result, err := services.PlanTrip(ctx, req, source, store, planner)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(append(out, '\n'))
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
