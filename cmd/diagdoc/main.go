package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"diagdoc/internal/agent"
	"diagdoc/internal/config"
	"diagdoc/internal/pipeline"
	"diagdoc/internal/plan"
	"diagdoc/internal/report"
	"diagdoc/internal/session"
	"diagdoc/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "diagdoc",
		Short: "AI-powered diagnostic report generator",
	}
	dbPath string

	runLanguage        string
	runOutput          string
	runIdentifier      string
	runStructurePrompt string

	renderOutput   string
	renderLanguage string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "diagdoc.db", "Path to the local session database (SQLite)")

	runCmd.Flags().StringVarP(&runLanguage, "language", "l", "", "Report language code (uk, ru, en); detected from the transcript when empty")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output .docx path (default: diagnostics/<id>/diagnostic_report_<id>.docx)")
	runCmd.Flags().StringVar(&runIdentifier, "id", "", "Session identifier (auto-generated when empty)")
	runCmd.Flags().StringVar(&runStructurePrompt, "structure", "", "Optional paragraph describing the desired document structure")

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output .docx path")
	renderCmd.Flags().StringVarP(&renderLanguage, "language", "l", "", "Report language code")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [transcript.txt]",
	Short: "Run the full pipeline on a transcript file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		transcript, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read transcript: %v", err)
		}
		if len(strings.TrimSpace(string(transcript))) < 10 {
			log.Fatal("Transcript is too short or empty.")
		}

		cfg, err := config.LoadConfig("config.yaml")
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.AI.APIKey == "" {
			log.Fatal("AI API key not configured (set DIAGDOC_API_KEY or ai.api_key in config.yaml)")
		}

		client, err := agent.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("Failed to create AI client: %v", err)
		}

		store, err := storage.NewSessionStore(dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer store.Close()

		runner := pipeline.NewRunner(
			agent.NewPortraitExtractor(client),
			agent.NewStructurePlanner(client),
			store,
		)

		result, err := runner.Run(ctx, string(transcript), pipeline.Options{
			Identifier:      runIdentifier,
			OutputPath:      runOutput,
			Language:        runLanguage,
			StructurePrompt: runStructurePrompt,
		})
		if err != nil {
			log.Fatalf("Pipeline failed: %v", err)
		}

		fmt.Printf("🎉 Done! Session %s, report at %s (language: %s)\n",
			result.Identifier, result.DocxPath, result.Language)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [plan.json]",
	Short: "Render an existing document plan to a .docx file, without model calls",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read plan file: %v", err)
		}

		p, err := plan.Normalize(string(raw))
		if err != nil {
			log.Fatalf("Invalid document plan: %v", err)
		}

		st := session.New()
		st.Set(session.KeyDocStructure, p)

		path, err := report.Generate(st, renderOutput, renderLanguage)
		if err != nil {
			log.Fatalf("Rendering failed: %v", err)
		}
		fmt.Printf("✅ Document generated: %s\n", path)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded diagnostic sessions",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store, err := storage.NewSessionStore(dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()

		sessions, err := store.ListSessions(ctx)
		if err != nil {
			log.Fatalf("Failed to list sessions: %v", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return
		}

		for _, s := range sessions {
			fmt.Printf("%s  %s  lang=%s  facts=%d  %s\n",
				s.Identifier, s.CreatedAt.Format("2006-01-02 15:04"), s.Language, len(s.Facts), s.DocxPath)
		}
	},
}
