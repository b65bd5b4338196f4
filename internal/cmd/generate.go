package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/myme/tsxapi/internal/compiler"
	"github.com/myme/tsxapi/internal/generator"
)

type Generate struct {
	Schema     string `arg:"" optional:"" default:"-" help:"Schema file to compile, or '-' for stdin"`
	Output     string `help:"Write the declarations to this file instead of stdout" short:"o" env:"TSXAPI_OUTPUT"`
	XAPIImport string `name:"xapi-import" help:"Module the generated import line pulls the client from" default:"jsxapi" env:"TSXAPI_XAPI_IMPORT"`
	ClassName  string `name:"class-name" help:"Name of the generated main class" default:"TypedXAPI" env:"TSXAPI_CLASS_NAME"`
	Base       string `help:"Base class the main class extends" default:"XAPI" env:"TSXAPI_BASE"`
	Connect    bool   `help:"Emit the connect factory export" default:"true" negatable:""`
	Watch      bool   `help:"Keep running and regenerate whenever the schema file changes" short:"w"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	opts := generator.Options{
		SchemaPath: g.Schema,
		OutputPath: g.Output,
		Compiler: compiler.Options{
			XAPIImport:  g.XAPIImport,
			ClassName:   g.ClassName,
			Base:        g.Base,
			WithConnect: g.Connect,
		},
	}

	gen := generator.New(logger)
	if g.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return gen.Watch(ctx, opts)
	}
	return gen.Generate(opts)
}
