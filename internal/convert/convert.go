// Package convert implements the conversion of source files into rdf graphs.
package convert

//spellchecker:words context errors github ieograph internal crid exporter prompt registry serialize source stats triplestore graph progress
import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/FAU-CDI/ieograph"
	"github.com/FAU-CDI/ieograph/internal/crid"
	"github.com/FAU-CDI/ieograph/internal/exporter"
	"github.com/FAU-CDI/ieograph/internal/prompt"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/serialize"
	"github.com/FAU-CDI/ieograph/internal/stats"
	"github.com/FAU-CDI/ieograph/internal/triplestore/graph"
	"github.com/FAU-CDI/ieograph/pkg/progress"
)

// Options configure a conversion.
type Options struct {
	Format serialize.Format
	Output string // output path, defaults to the input path with the extension of Format

	Resolver    *registry.Resolver // resolves registries, nil means a resolver without a prompter
	Prompter    prompt.Prompter    // asked before overwriting the input, nil means never ask
	MaxAttempts int                // maximum attempts per question

	Cache  string           // directory to keep triples in while building, empty means memory
	SQL    *exporter.SQL    // if non-nil, triples are additionally exported into this database
	Cypher *exporter.Cypher // if non-nil, triples are additionally exported into this graph database

	Stats *stats.Stats // receives progress information, may be nil
}

// Result describes a completed conversion.
type Result struct {
	Output   string                   // path the graph was written to
	Graph    graph.Stats              // statistics about the graph
	Products map[crid.ProductType]int // number of exchanges by product type
	Tags     []string                 // record tags found in the input
	Stages   []stats.StageStats       // timing of the stages run so far
}

// Close closes the exporters held by opts.
func (opts *Options) Close(ctx context.Context) error {
	var errs []error
	if opts.SQL != nil {
		errs = append(errs, opts.SQL.Close())
	}
	if opts.Cypher != nil {
		errs = append(errs, opts.Cypher.Close(ctx))
	}
	return errors.Join(errs...)
}

func (opts *Options) resolver() *registry.Resolver {
	if opts.Resolver == nil {
		opts.Resolver = &registry.Resolver{MaxAttempts: opts.MaxAttempts}
	}
	return opts.Resolver
}

func (opts *Options) prompter() prompt.Prompter {
	if opts.Prompter == nil {
		return prompt.Batch{}
	}
	return opts.Prompter
}

func (opts *Options) engine() graph.Engine {
	if opts.Cache == "" {
		return graph.MemoryEngine{}
	}
	return graph.DiskEngine{Path: opts.Cache}
}

// read opens the file at path and passes it to parse.
func read[T any](opts *Options, path string, parse func(r io.Reader, name string) (T, error)) (result T, err error) {
	err = opts.Stats.DoStage(stats.StageRead, func() error {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		var reader io.Reader = file
		if rewritable := opts.Stats.Rewritable(); rewritable != nil {
			pr := &progress.Reader{Reader: file, Rewritable: *rewritable}
			if info, err := file.Stat(); err == nil {
				pr.Total = info.Size()
			}
			reader = pr
		}

		result, err = parse(reader, path)
		return err
	})
	return
}

// output determines the output path, making sure the input is not overwritten accidentally.
func (opts *Options) output(input string) (string, error) {
	path, err := ieograph.OutputPath(input, opts.Output, opts.Format)
	if err != nil {
		return "", err
	}
	return ieograph.AvoidOverwrite(opts.prompter(), input, path, opts.MaxAttempts)
}

// build creates a new graph and calls f with a builder adding to it.
// Errors returned by f are prefixed with the input path.
// The graph is only returned when f succeeds.
func (opts *Options) build(input string, total int, f func(builder *crid.Builder, done func(n int)) error) (g *graph.Graph, products map[crid.ProductType]int, err error) {
	var builder *crid.Builder
	err = opts.Stats.DoStage(stats.StageBootstrap, func() error {
		g, err = graph.New(opts.engine())
		if err != nil {
			return err
		}
		builder, err = crid.NewBuilder(g)
		return err
	})
	if err != nil {
		if g != nil {
			err = errors.Join(err, g.Close())
		}
		return nil, nil, err
	}

	err = opts.Stats.DoStage(stats.StageMap, func() error {
		if err := f(builder, func(n int) {
			opts.Stats.SetCT(n, total)
		}); err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		return nil
	})
	opts.Stats.Log("mapped records", "graph", g.Stats(), "databases", builder.Databases())
	if err != nil {
		return nil, nil, errors.Join(err, g.Close())
	}
	return g, builder.Products, nil
}

// write serializes g to path, and exports it into the databases when requested.
func (opts *Options) write(ctx context.Context, g *graph.Graph, path string) error {
	triples, err := g.Triples()
	if err != nil {
		return err
	}

	var status io.Writer
	if rewritable := opts.Stats.Rewritable(); rewritable != nil {
		status = rewritable.Writer
	}

	if err := opts.Stats.DoStage(stats.StageSerialize, func() error {
		return serialize.WriteFile(path, opts.Format, triples, status)
	}); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	if opts.SQL != nil {
		if err := opts.Stats.DoStage(stats.StageExportSQL, func() error {
			return opts.SQL.Export(ctx, triples)
		}); err != nil {
			return err
		}
	}

	if opts.Cypher != nil {
		return opts.Stats.DoStage(stats.StageExportGraph, func() error {
			return opts.Cypher.Export(ctx, triples)
		})
	}
	return nil
}

// finish writes g and closes it.
func (opts *Options) finish(ctx context.Context, g *graph.Graph, path string, result *Result) error {
	err := opts.write(ctx, g, path)
	result.Output = path
	result.Graph = g.Stats()
	result.Stages = opts.Stats.All()
	return errors.Join(err, g.Close())
}
