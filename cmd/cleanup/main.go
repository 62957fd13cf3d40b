package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	dbadapter "taskflow/internal/adapter/db"
	"taskflow/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	app := cli.NewApp()
	app.Name = "cleanup"
	app.Usage = "delete every user and task from the configured database"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "yes", Usage: "confirm the deletion"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logger.Fatal("cleanup failed", zap.Error(err))
	}
}

func run(c *cli.Context) error {
	if !c.Bool("yes") {
		return errors.New("refusing to delete data without --yes")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	zap.L().Info("connected to mysql", zap.String("host", cfg.DbHost), zap.String("database", cfg.DbName))

	result, err := dbadapter.Wipe(context.Background(), db)
	if err != nil {
		return err
	}

	zap.L().Info("database cleaned",
		zap.Int64("deleted_users", result.Users),
		zap.Int64("deleted_tasks", result.Tasks),
	)
	return nil
}
