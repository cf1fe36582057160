// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Krisha434/dockit/internal/docindex"
	"github.com/Krisha434/dockit/internal/report"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Maintain the document index (add, search, similar, remove)",
	Long: `Index maintains a local searchable document store. Markdown and PDF
files are ingested with their extracted text; full-text queries run
through SQLite FTS5 and similarity lookups compare embedding vectors.`,
}

// --- add subcommand ---

var indexAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Extract, embed, and index a Markdown or PDF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		title, _ := cmd.Flags().GetString("title")
		category, _ := cmd.Flags().GetString("category")

		id, err := store.Add(context.Background(), args[0], title, category)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed document %d\n", id)
		return nil
	},
}

// --- list subcommand ---

var indexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all indexed documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		docs, err := store.List(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return report.WriteJSON(os.Stdout, docs)
		}
		report.WriteDocuments(os.Stdout, docs)
		return nil
	},
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over indexed documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		category, _ := cmd.Flags().GetString("category")
		limit, _ := cmd.Flags().GetInt("limit")

		results, err := store.Search(context.Background(), args[0], category, limit)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return report.WriteJSON(os.Stdout, results)
		}
		report.WriteDocuments(os.Stdout, results)
		return nil
	},
}

// --- similar subcommand ---

var indexSimilarCmd = &cobra.Command{
	Use:   "similar <id>",
	Short: "Find documents similar to the given one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		store, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		topK, _ := cmd.Flags().GetInt("top")
		results, err := store.Similar(context.Background(), id, topK)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return report.WriteJSON(os.Stdout, results)
		}
		report.WriteSimilar(os.Stdout, results)
		return nil
	},
}

// --- remove subcommand ---

var indexRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a document from the index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		store, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Remove(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("Removed document %d\n", id)
		return nil
	},
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export index metadata to a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openIndex(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		out, _ := cmd.Flags().GetString("out")
		if err := store.Export(context.Background(), out); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", out)
		return nil
	},
}

// --- shared helpers ---

func openIndex(cmd *cobra.Command) (*docindex.Store, error) {
	cfg := loadConfig().Index
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "index.db"
	}
	if cmd.Flags().Changed("max-results") || cfg.MaxResults == 0 {
		cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	return docindex.Open(cfg)
}

func init() {
	indexCmd.PersistentFlags().String("db", "", "SQLite database file (default: index.db_path from config, or index.db)")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of search results")

	indexAddCmd.Flags().String("title", "", "document title (default: filename)")
	indexAddCmd.Flags().String("category", "", "document category (default: general)")

	indexListCmd.Flags().Bool("json", false, "output documents as JSON")

	indexSearchCmd.Flags().String("category", "", "filter by category")
	indexSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")

	indexSimilarCmd.Flags().Int("top", 5, "number of similar documents to return")
	indexSimilarCmd.Flags().Bool("json", false, "output results as JSON")

	indexExportCmd.Flags().String("out", "index-export.yaml", "export file path")

	indexCmd.AddCommand(indexAddCmd)
	indexCmd.AddCommand(indexListCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexSimilarCmd)
	indexCmd.AddCommand(indexRemoveCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
