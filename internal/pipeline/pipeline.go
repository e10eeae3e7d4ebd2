// Package pipeline wires extraction, decoding, validation, and
// materialization into one synchronous run. Parse and validation failures
// are recovered only far enough to persist debug artifacts, then re-raised;
// the caller decides whether to keep or delete the target directory.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"protoforge/internal/extract"
	"protoforge/internal/materialize"
	"protoforge/internal/schema"
)

// Options carries everything a run needs. Shared configuration is passed in
// here explicitly; the pipeline never reads ambient process-wide state.
type Options struct {
	// TargetDir is the project directory to materialize into. Each run owns
	// its directory exclusively.
	TargetDir string
	// Description is the original human request, used as a documentation
	// fallback when the model omits an overview.
	Description string
	// Logger receives debug-level stage tracing. Nil disables logging.
	Logger *zap.Logger
}

// Result is the caller-visible outcome of a successful run.
type Result struct {
	Success  bool                `json:"success"`
	Files    []materialize.Entry `json:"files"`
	Parsed   *schema.Spec        `json:"parsed"`
	Warnings []string            `json:"warnings,omitempty"`
}

// Run turns a raw model completion into a materialized project package.
//
// On a ParseError or ValidationError the degraded path still writes
// prototype.raw.txt, prototype.parse-error.txt, and a best-effort
// prototype.json (when the candidate at least decoded) before the error
// propagates, so failed runs stay debuggable.
func Run(rawText string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	candidate := extract.Candidate(rawText)
	log.Debug("extracted candidate", zap.Int("bytes", len(candidate)))

	raw, err := extract.Decode(candidate, rawText)
	if err != nil {
		log.Debug("decode failed", zap.Error(err))
		writeFailureArtifacts(opts.TargetDir, rawText, err, nil)
		return nil, err
	}

	res, err := schema.Validate(raw)
	if err != nil {
		log.Debug("validation failed", zap.Error(err))
		writeFailureArtifacts(opts.TargetDir, rawText, err, raw)
		return nil, err
	}
	log.Debug("spec validated",
		zap.Int("snippets", len(res.Spec.Snippets)),
		zap.Int("warnings", len(res.Warnings)))

	manifest, err := materialize.Materialize(res.Spec, opts.TargetDir, opts.Description, rawText, res.Warnings)
	if err != nil {
		return nil, err
	}
	log.Debug("project materialized", zap.Int("files", len(manifest.Files)))

	return &Result{
		Success:  true,
		Files:    manifest.Files,
		Parsed:   manifest.Spec,
		Warnings: manifest.Warnings,
	}, nil
}

// writeFailureArtifacts persists debugging context for a failed run. These
// writes are best-effort: the original error is what propagates, so I/O
// problems here are deliberately swallowed.
func writeFailureArtifacts(targetDir, rawText string, cause error, raw map[string]any) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return
	}

	_ = os.WriteFile(filepath.Join(targetDir, "prototype.raw.txt"), []byte(rawText), 0644)
	_ = os.WriteFile(filepath.Join(targetDir, "prototype.parse-error.txt"), []byte(formatFailure(cause)), 0644)

	if raw != nil {
		if data, err := json.MarshalIndent(raw, "", "  "); err == nil {
			_ = os.WriteFile(filepath.Join(targetDir, "prototype.json"), append(data, '\n'), 0644)
		}
	}
}

func formatFailure(cause error) string {
	var sb []byte
	sb = fmt.Appendf(sb, "%s\n", cause.Error())

	if pe, ok := cause.(*extract.ParseError); ok {
		sb = fmt.Appendf(sb, "\n--- candidate context ---\n%s\n", pe.Context())
	}
	if ve, ok := cause.(*schema.ValidationError); ok && len(ve.Diagnostics) > 0 {
		sb = fmt.Appendf(sb, "\n--- diagnostics ---\n")
		for _, d := range ve.Diagnostics {
			sb = fmt.Appendf(sb, "%s: %s\n", d.Path, d.Reason)
		}
	}
	return string(sb)
}
