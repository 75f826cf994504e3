package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/khoahotran/personal-site/adapters/persistence"
	"github.com/khoahotran/personal-site/internal/application/usecase/onboarding"
	"github.com/khoahotran/personal-site/internal/config"
	"github.com/khoahotran/personal-site/internal/domain/cv"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

// Seeds the configured store by running onboarding against a CV file:
//
//	go run ./scripts/seed_site.go -cv resume.txt -headline "Staff engineer" -focus "Platform,Writing"
func main() {
	cvPath := flag.String("cv", "", "path to a plain-text CV")
	headline := flag.String("headline", "", "profile headline")
	intent := flag.String("intent", "", "site intent, e.g. 'Get hired'")
	focus := flag.String("focus", "", "comma separated focus areas")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)
	ctx := context.Background()

	var text string
	if *cvPath != "" {
		data, err := os.ReadFile(*cvPath)
		if err != nil {
			log.Fatalf("cannot read cv: %v", err)
		}
		if err := cv.CheckReadable(data); err != nil {
			log.Fatalf("cv rejected: %v", err)
		}
		text = string(data)
	}

	var repo site.Repository
	if cfg.Store.Driver == config.StorePostgres {
		pool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
		if err != nil {
			log.Fatalf("cannot connect DB: %v", err)
		}
		defer pool.Close()
		repo = persistence.NewPostgresSiteRepo(pool, appLogger)
	} else {
		repo = persistence.NewFileSiteRepo(cfg.Store.Path, appLogger)
	}

	uc := onboarding.NewApplyOnboardingUseCase(repo, nil, appLogger)
	out, err := uc.Execute(ctx, onboarding.ApplyOnboardingInput{Submission: onboarding.Submission{
		Headline:   *headline,
		Intent:     *intent,
		FocusAreas: strings.Split(*focus, ","),
		CVText:     text,
	}})
	if err != nil {
		log.Fatalf("cannot apply onboarding: %v", err)
	}

	fmt.Printf("seeded %d categories and %d entries (%d skills detected)\n",
		len(out.Result.Categories), len(out.Result.Entries), len(out.Result.Analysis.Skills))
}
