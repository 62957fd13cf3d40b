package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"taskflow/pkg/client"
)

func main() {
	app := cli.NewApp()
	app.Name = "taskctl"
	app.Usage = "manage your tasks from the terminal"
	app.Version = "0.1.0"
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "api",
			Value:  "http://localhost:8080/api",
			Usage:  "base URL of the task API",
			EnvVar: "TASKFLOW_API",
		},
		cli.StringFlag{
			Name:   "session",
			Value:  defaultSessionPath(),
			Usage:  "file holding the login session",
			EnvVar: "TASKFLOW_SESSION",
		},
		cli.StringFlag{
			Name:   "lang",
			Usage:  "language for server messages (en, fr)",
			EnvVar: "TASKFLOW_LANG",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log requests and errors to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		if !c.GlobalBool("verbose") {
			return nil
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	}
	app.Commands = append(userCommands(), taskCommands()...)

	if err := app.Run(os.Args); err != nil {
		zap.L().Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".taskflow-session.json"
	}
	return filepath.Join(dir, "taskflow", "session.json")
}

func newClient(c *cli.Context) *client.Client {
	opts := []client.Option{}
	if lang := c.GlobalString("lang"); lang != "" {
		opts = append(opts, client.WithLanguage(lang))
	}
	return client.New(c.GlobalString("api"), client.NewFileStore(c.GlobalString("session")), opts...)
}
