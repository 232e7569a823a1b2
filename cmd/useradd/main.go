// Command useradd creates a corpdesk identity, e.g. the first admin:
//
//	useradd -d postgres://... -email root@corp.io -role admin
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/corpdesk/internal/server/config"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/corpdesk/internal/server/services"
	"github.com/dmitrijs2005/corpdesk/internal/useradd"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {

	_ = godotenv.Load()

	defaults := &config.Config{}
	defaults.LoadDefaults()
	dsn := defaults.DatabaseDSN
	if v, ok := os.LookupEnv("DATABASE_URL"); ok && v != "" {
		dsn = v
	}

	opts, err := useradd.ParseFlags(os.Args[1:], dsn)
	if err != nil {
		return err
	}

	db, err := repomanager.Open(ctx, opts.DatabaseDSN, 1)
	if err != nil {
		return err
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(db, m)
	_, err = useradd.Run(ctx, opts, us, bufio.NewReader(os.Stdin), os.Stdout)
	return err
}
