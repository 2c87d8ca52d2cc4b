package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"diagdoc/internal/agent"
	"diagdoc/internal/report"
	"diagdoc/internal/session"
	"diagdoc/internal/storage"

	"github.com/google/uuid"
)

// Runner executes one document-generation invocation: fact extraction,
// structure planning, and rendering run strictly in sequence because each
// stage depends on the previous stage's state writes.
type Runner struct {
	Extractor *agent.PortraitExtractor
	Planner   *agent.StructurePlanner
	Store     *storage.SessionStore
}

type Options struct {
	Identifier      string // auto-generated when empty
	OutputDir       string // default: diagnostics/<identifier>
	OutputPath      string // default: <output_dir>/diagnostic_report_<identifier>.docx
	Language        string // default: detected from the transcript
	StructurePrompt string // optional caller guidance for the planner
}

type Result struct {
	Identifier string
	DocxPath   string
	Language   string
	Facts      []string
	State      *session.State
}

func NewRunner(extractor *agent.PortraitExtractor, planner *agent.StructurePlanner, store *storage.SessionStore) *Runner {
	return &Runner{Extractor: extractor, Planner: planner, Store: store}
}

func (r *Runner) Run(ctx context.Context, transcript string, opts Options) (*Result, error) {
	identifier := opts.Identifier
	if identifier == "" {
		identifier = NewIdentifier()
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join("diagnostics", identifier)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	transcriptPath := filepath.Join(outputDir, "transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(transcript), 0644); err != nil {
		return nil, fmt.Errorf("failed to save transcript: %w", err)
	}

	language := opts.Language
	if language == "" {
		language = DetectLanguage(transcript)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(outputDir, fmt.Sprintf("diagnostic_report_%s.docx", identifier))
	}

	st := session.Seed(map[string]any{
		session.KeyOutputPath: outputPath,
		session.KeyLanguage:   language,
		session.KeyTranscript: transcriptPath,
	})

	fmt.Println("🔎 Extracting client portrait...")
	facts, err := r.Extractor.Extract(ctx, st, transcript)
	if err != nil {
		return nil, err
	}
	fmt.Printf("✅ Extracted %d facts.\n", len(facts))

	fmt.Println("🗂  Planning document structure...")
	if err := r.Planner.Plan(ctx, st, opts.StructurePrompt); err != nil {
		return nil, err
	}

	fmt.Println("📝 Rendering document...")
	docxPath, err := report.Generate(st, "", "")
	if err != nil {
		return nil, err
	}
	fmt.Printf("✅ Document generated: %s\n", docxPath)

	if err := st.SaveSnapshot(filepath.Join(outputDir, "state.json")); err != nil {
		log.Printf("Warning: failed to save state snapshot: %v", err)
	}

	if r.Store != nil {
		rec := storage.SessionRecord{
			Identifier: identifier,
			CreatedAt:  time.Now().UTC(),
			Language:   language,
			Transcript: transcript,
			Facts:      facts,
			Plan:       planSnapshot(st),
			DocxPath:   docxPath,
		}
		if err := r.Store.SaveSession(ctx, rec); err != nil {
			log.Printf("Warning: failed to record session: %v", err)
		}
	}

	return &Result{
		Identifier: identifier,
		DocxPath:   docxPath,
		Language:   language,
		Facts:      facts,
		State:      st,
	}, nil
}

func planSnapshot(st *session.State) any {
	v, _ := st.Get(session.KeyDocStructure)
	return v
}

// NewIdentifier returns a per-run identifier: timestamp plus a short random
// suffix, readable in directory listings and unique enough across runs.
func NewIdentifier() string {
	return fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
}
