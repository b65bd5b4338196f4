// Package generator drives the pipeline: load a schema, compile it, render
// the declaration text and write it out. It also hosts the watch mode that
// reruns the pipeline whenever the schema file changes.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/myme/tsxapi/internal/compiler"
	"github.com/myme/tsxapi/internal/schema"
	"github.com/myme/tsxapi/internal/typescript"
)

// Options selects the schema source, the output destination and the compiler
// configuration. SchemaPath "-" reads standard input; an empty OutputPath
// writes to standard output.
type Options struct {
	SchemaPath string
	OutputPath string
	Compiler   compiler.Options
}

type Generator struct {
	logger *slog.Logger

	// Stdin and Stdout back the "-" source and the default destination;
	// tests swap them for buffers.
	Stdin  io.Reader
	Stdout io.Writer
}

func New(logger *slog.Logger) *Generator {
	return &Generator{
		logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Generate runs the pipeline once.
func (g *Generator) Generate(opts Options) error {
	doc, err := g.load(opts.SchemaPath)
	if err != nil {
		return err
	}

	root, err := compiler.Compile(doc, opts.Compiler)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	out := typescript.Serialize(root)
	if err := g.write(opts.OutputPath, out); err != nil {
		return err
	}

	g.logger.Info("Generated typings",
		"schema", sourceName(opts.SchemaPath),
		"output", destName(opts.OutputPath),
		"bytes", len(out))
	return nil
}

// Watch regenerates on every change to the schema file until ctx is
// cancelled. The containing directory is watched rather than the file
// itself, so editors that save atomically keep triggering. A failing
// regeneration is logged and watching continues.
func (g *Generator) Watch(ctx context.Context, opts Options) error {
	if opts.SchemaPath == "" || opts.SchemaPath == "-" {
		return errors.New("watch mode requires a schema file path")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(opts.SchemaPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	if err := g.Generate(opts); err != nil {
		g.logger.Error("Generation failed", "error", err)
	}
	g.logger.Info("Watching schema for changes", "path", opts.SchemaPath)

	filename := filepath.Base(opts.SchemaPath)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			g.logger.Debug("Schema file changed", "event", event.Op.String(), "file", event.Name)
			if err := g.Generate(opts); err != nil {
				g.logger.Error("Generation failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.logger.Error("File watcher error", "error", err)
		}
	}
}

func (g *Generator) load(path string) (*schema.Value, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(g.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return schema.Parse(data)
	}
	g.logger.Debug("Loading schema", "path", path)
	return schema.Load(path)
}

func (g *Generator) write(path, text string) error {
	if path == "" {
		if _, err := io.WriteString(g.Stdout, text); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func destName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
