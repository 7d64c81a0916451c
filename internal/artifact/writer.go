package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// SavePrimary writes the extracted text as <base>.txt.
func (w *implWriter) SavePrimary(ctx context.Context, base, text string) (string, error) {
	return w.write(ctx, base+".txt", text)
}

// SaveRaw writes the untouched model response as <base>.raw.txt.
func (w *implWriter) SaveRaw(ctx context.Context, base, text string) (string, error) {
	return w.write(ctx, base+".raw.txt", text)
}

// SaveReport renders the text as a styled docx at <base>.docx.
func (w *implWriter) SaveReport(ctx context.Context, base, text string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.outputDir, base+".docx")
	if err := renderDocx(base, text, path); err != nil {
		return "", fmt.Errorf("render docx: %w", err)
	}

	w.logger.Debug(ctx, "Wrote report: %s", path)
	return path, nil
}

func (w *implWriter) write(ctx context.Context, name, text string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.outputDir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", name, err)
	}

	w.logger.Debug(ctx, "Wrote artifact: %s", path)
	return path, nil
}
