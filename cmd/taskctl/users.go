package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
)

func userCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "register",
			Usage: "create an account and log in",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name"},
				cli.StringFlag{Name: "email"},
				cli.StringFlag{Name: "password"},
			},
			Action: func(c *cli.Context) error {
				session, err := newClient(c).Register(context.Background(), c.String("name"), c.String("email"), c.String("password"))
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "registered and logged in as %s <%s>\n", session.User.Name, session.User.Email)
				return nil
			},
		},
		{
			Name:  "login",
			Usage: "log in and store the session",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "email"},
				cli.StringFlag{Name: "password"},
			},
			Action: func(c *cli.Context) error {
				session, err := newClient(c).Login(context.Background(), c.String("email"), c.String("password"))
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "logged in as %s <%s>\n", session.User.Name, session.User.Email)
				return nil
			},
		},
		{
			Name:  "logout",
			Usage: "forget the stored session",
			Action: func(c *cli.Context) error {
				return newClient(c).Logout()
			},
		},
		{
			Name:  "me",
			Usage: "show the logged-in user",
			Action: func(c *cli.Context) error {
				user, err := newClient(c).Me(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", user.ID, user.Name, user.Email)
				return nil
			},
		},
		{
			Name:  "profile",
			Usage: "change name and email",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name"},
				cli.StringFlag{Name: "email"},
			},
			Action: func(c *cli.Context) error {
				user, err := newClient(c).UpdateProfile(context.Background(), c.String("name"), c.String("email"))
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "profile updated: %s <%s>\n", user.Name, user.Email)
				return nil
			},
		},
		{
			Name:  "password",
			Usage: "change password",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "current"},
				cli.StringFlag{Name: "new"},
			},
			Action: func(c *cli.Context) error {
				message, err := newClient(c).ChangePassword(context.Background(), c.String("current"), c.String("new"))
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, message)
				return nil
			},
		},
	}
}
