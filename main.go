package main

import (
	"fmt"
	"log"

	"github.com/Atsuyko/restaurant/configs"
	"github.com/Atsuyko/restaurant/routes"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectionDB(cfg.DBSource); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if cfg.Seed {
		if err := configs.SeedCatalog(); err != nil {
			log.Fatalf("seed catalog failed: %v", err)
		}
	}

	r := routes.SetupRouter(configs.DB())

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
