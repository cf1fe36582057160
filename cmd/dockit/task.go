// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Krisha434/dockit/internal/report"
	"github.com/Krisha434/dockit/internal/task"
	"github.com/Krisha434/dockit/pkg/types"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the task list (add, list, update, complete, delete)",
	Long: `Task manages a personal to-do list persisted in a local SQLite database.
Each task has a title, description, priority (Low/Medium/High), due date,
and completion status.`,
}

// --- add subcommand ---

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openTaskStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")
		due, _ := cmd.Flags().GetString("due")

		id, err := store.Add(context.Background(), args[0], description, types.Priority(priority), due)
		if err != nil {
			return err
		}
		fmt.Printf("Added task %d\n", id)
		return nil
	},
}

// --- list subcommand ---

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openTaskStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		tasks, err := store.List(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return report.WriteJSON(os.Stdout, tasks)
		}
		report.WriteTasks(os.Stdout, tasks)
		return nil
	},
}

// --- update subcommand ---

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		store, err := openTaskStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		// Only flags the user actually set are applied.
		var fields task.UpdateFields
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			fields.Title = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			fields.Description = &v
		}
		if cmd.Flags().Changed("priority") {
			v, _ := cmd.Flags().GetString("priority")
			p := types.Priority(v)
			fields.Priority = &p
		}
		if cmd.Flags().Changed("due") {
			v, _ := cmd.Flags().GetString("due")
			fields.DueDate = &v
		}
		if cmd.Flags().Changed("done") {
			v, _ := cmd.Flags().GetBool("done")
			fields.Completed = &v
		}

		if err := store.Update(context.Background(), id, fields); err != nil {
			return err
		}
		fmt.Printf("Updated task %d\n", id)
		return nil
	},
}

// --- complete subcommand ---

var taskCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		store, err := openTaskStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Complete(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Completed task %d\n", id)
		return nil
	},
}

// --- delete subcommand ---

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		store, err := openTaskStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted task %d\n", id)
		return nil
	},
}

// --- shared helpers ---

func openTaskStore(cmd *cobra.Command) (*task.Store, error) {
	cfg := loadConfig().Tasks
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	return task.Open(cfg)
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func init() {
	taskCmd.PersistentFlags().String("db", "", "SQLite database file (default: tasks.db_path from config, or dockit.db)")

	taskAddCmd.Flags().String("description", "", "task description")
	taskAddCmd.Flags().String("priority", "Medium", "priority: Low, Medium, or High")
	taskAddCmd.Flags().String("due", "", "due date (YYYY-MM-DD)")

	taskListCmd.Flags().Bool("json", false, "output tasks as JSON")

	taskUpdateCmd.Flags().String("title", "", "new title")
	taskUpdateCmd.Flags().String("description", "", "new description")
	taskUpdateCmd.Flags().String("priority", "", "new priority: Low, Medium, or High")
	taskUpdateCmd.Flags().String("due", "", "new due date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().Bool("done", false, "completion status")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskCompleteCmd)
	taskCmd.AddCommand(taskDeleteCmd)

	rootCmd.AddCommand(taskCmd)
}
