package main

import (
	"alxtravel/src/boot"
	"alxtravel/src/common"
	"alxtravel/src/db"
	"alxtravel/src/lib"
	"alxtravel/src/utils"
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"path"
	"time"

	"github.com/gookit/goutil/dump"
	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	showReport := flag.Bool("dump", false, "dump the seed report when done")
	flag.Parse()

	if utils.IsLocal() {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("Error loading .env: %s\n", err.Error())
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	gormDB := boot.InitDb()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags)
	svc := common.NewService(db.NewStore(gormDB), lib.NewLogPublisher(logger))
	seeder := &common.Seeder{
		Service: svc,
		Rand:    rand.New(rand.NewPCG(uint64(*seed), uint64(*seed>>1))),
		Logger:  logger,
	}

	report, err := seeder.Run(context.Background())
	if err != nil {
		log.Fatalf("Error seeding database: %s", err.Error())
	}
	if *showReport {
		dump.P(report)
	}
}
