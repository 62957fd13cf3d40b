package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli"

	"taskflow/pkg/client"
)

func taskCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "tasks",
			Usage: "list, add, edit and delete tasks",
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "list your tasks, newest first",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "status", Value: client.StatusAll, Usage: "all, todo, in-progress or done"},
						cli.StringFlag{Name: "search", Usage: "text to find in title or description"},
					},
					Action: withBoard(listTasks),
				},
				{
					Name:      "show",
					Usage:     "show one task",
					ArgsUsage: "<id>",
					Action:    showTask,
				},
				{
					Name:      "add",
					Usage:     "create a task",
					ArgsUsage: "<title>",
					Flags:     taskFlags(),
					Action:    withBoard(addTask),
				},
				{
					Name:      "update",
					Usage:     "change fields of a task",
					ArgsUsage: "<id>",
					Flags: append(taskFlags(),
						cli.StringFlag{Name: "title"},
						cli.BoolFlag{Name: "clear-due", Usage: "remove the due date"},
						cli.BoolFlag{Name: "undone", Usage: "mark as not completed"},
					),
					Action: withBoard(updateTask),
				},
				{
					Name:      "done",
					Usage:     "mark a task as done",
					ArgsUsage: "<id>",
					Action:    withBoard(completeTask),
				},
				{
					Name:      "delete",
					Usage:     "delete a task",
					ArgsUsage: "<id>",
					Action:    withBoard(deleteTask),
				},
			},
		},
	}
}

func taskFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "description"},
		cli.StringFlag{Name: "status", Usage: "todo, in-progress or done"},
		cli.StringFlag{Name: "priority", Usage: "Low, Medium or High"},
		cli.StringFlag{Name: "due", Usage: "YYYY-MM-DD or RFC3339"},
		cli.StringFlag{Name: "color"},
		cli.StringFlag{Name: "recurrence", Usage: "none, daily, weekly or monthly"},
		cli.StringSliceFlag{Name: "day", Usage: "recurrence weekday, repeatable"},
		cli.StringSliceFlag{Name: "tag", Usage: "tag, repeatable"},
		cli.BoolFlag{Name: "completed"},
	}
}

type boardAction func(c *cli.Context, board *client.Board) error

// withBoard loads the task list before running action and prints every
// notification the board emits.
func withBoard(action boardAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		out := c.App.Writer
		board := client.NewBoard(newClient(c), client.NotifierFunc(func(n client.Notification) {
			if n.Kind == client.NotifyError {
				fmt.Fprintln(c.App.ErrWriter, n.Message)
				return
			}
			fmt.Fprintln(out, n.Message)
		}))
		if err := board.Load(context.Background()); err != nil {
			return err
		}
		return action(c, board)
	}
}

func listTasks(c *cli.Context, board *client.Board) error {
	printTasks(c.App.Writer, board.Filtered(c.String("status"), c.String("search")))
	return nil
}

func showTask(c *cli.Context) error {
	id, err := requireArg(c, "id")
	if err != nil {
		return err
	}
	task, err := newClient(c).GetTask(context.Background(), id)
	if err != nil {
		return err
	}
	printTasks(c.App.Writer, []client.Task{task})
	if task.Description != "" {
		fmt.Fprintln(c.App.Writer, task.Description)
	}
	return nil
}

func addTask(c *cli.Context, board *client.Board) error {
	title := strings.TrimSpace(strings.Join(c.Args(), " "))
	if title == "" {
		return errors.New("a title is required")
	}

	task, err := board.Add(context.Background(), client.NewTask{
		Title:          title,
		Description:    c.String("description"),
		Status:         c.String("status"),
		Priority:       c.String("priority"),
		DueDate:        c.String("due"),
		Completed:      c.Bool("completed"),
		Color:          c.String("color"),
		Recurrence:     c.String("recurrence"),
		RecurrenceDays: c.StringSlice("day"),
		Tags:           c.StringSlice("tag"),
	})
	if err != nil {
		return err
	}
	printTasks(c.App.Writer, []client.Task{task})
	return nil
}

func updateTask(c *cli.Context, board *client.Board) error {
	id, err := requireArg(c, "id")
	if err != nil {
		return err
	}

	var patch client.TaskPatch
	for name, dst := range map[string]**string{
		"title":       &patch.Title,
		"description": &patch.Description,
		"status":      &patch.Status,
		"priority":    &patch.Priority,
		"due":         &patch.DueDate,
		"color":       &patch.Color,
		"recurrence":  &patch.Recurrence,
	} {
		if c.IsSet(name) {
			value := c.String(name)
			*dst = &value
		}
	}
	if c.Bool("clear-due") {
		patch.DueDate = nil
		patch.ClearDueDate = true
	}
	if c.Bool("completed") || c.Bool("undone") {
		completed := c.Bool("completed")
		patch.Completed = &completed
	}
	if c.IsSet("day") {
		days := c.StringSlice("day")
		patch.RecurrenceDays = &days
	}
	if c.IsSet("tag") {
		tags := c.StringSlice("tag")
		patch.Tags = &tags
	}

	task, err := board.Patch(context.Background(), id, patch)
	if err != nil {
		return err
	}
	printTasks(c.App.Writer, []client.Task{task})
	return nil
}

func completeTask(c *cli.Context, board *client.Board) error {
	id, err := requireArg(c, "id")
	if err != nil {
		return err
	}
	done := "done"
	completed := true
	_, err = board.Patch(context.Background(), id, client.TaskPatch{Status: &done, Completed: &completed})
	return err
}

func deleteTask(c *cli.Context, board *client.Board) error {
	id, err := requireArg(c, "id")
	if err != nil {
		return err
	}
	return board.Remove(context.Background(), id)
}

func requireArg(c *cli.Context, name string) (string, error) {
	value := strings.TrimSpace(c.Args().First())
	if value == "" {
		return "", fmt.Errorf("missing <%s> argument", name)
	}
	return value, nil
}

func printTasks(out io.Writer, tasks []client.Task) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE\tTAGS")
	for _, task := range tasks {
		due := "-"
		if task.DueDate != nil {
			due = *task.DueDate
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.Key(), task.Title, task.Status, task.Priority, due, strings.Join(task.Tags, ","))
	}
	_ = w.Flush()
}
