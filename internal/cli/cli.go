// Package cli implements the flags and setup shared by all commands.
package cli

//spellchecker:words context errors flag github ieograph internal convert exporter prompt registry serialize stats profile
import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/FAU-CDI/ieograph"
	"github.com/FAU-CDI/ieograph/internal/convert"
	"github.com/FAU-CDI/ieograph/internal/exporter"
	"github.com/FAU-CDI/ieograph/internal/prompt"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/serialize"
	"github.com/FAU-CDI/ieograph/internal/stats"
	"github.com/pkg/profile"
)

// cspell:words mysql sqlite memgraph

// Flags holds the command line flags common to all commands.
type Flags struct {
	Format     serialize.Format
	Batch      bool
	Registries string
	Cache      string

	SQLite string
	MySQL  string

	Bolt     string
	BoltAuth string

	DebugProfile string
	DebugListen  string

	Legal bool
}

// Register registers all flags with the given flag set.
func (flags *Flags) Register(set *flag.FlagSet) {
	set.BoolVar(&flags.Legal, "legal", flags.Legal, "Display legal notices and exit")

	set.Var(&flags.Format, "format", "Output format, one of xml, json-ld, n3 or nt")
	set.Var(&flags.Format, "f", "Shorthand for -format")

	set.BoolVar(&flags.Batch, "batch", flags.Batch, "Never ask for missing information, fail instead")
	set.StringVar(&flags.Registries, "registries", flags.Registries, "Read additional registries from the given toml or yaml file")
	set.StringVar(&flags.Cache, "cache", flags.Cache, "While building the graph, cache triples in the given directory as opposed to memory")

	set.StringVar(&flags.SQLite, "sqlite", flags.SQLite, "Additionally export triples into an sqlite database at the given path")
	set.StringVar(&flags.MySQL, "mysql", flags.MySQL, "Additionally export triples into a mysql database. Use a connection string of the form `username:password@host/database`")

	set.StringVar(&flags.Bolt, "bolt", flags.Bolt, "Additionally export triples into a neo4j or memgraph database at the given bolt uri")
	set.StringVar(&flags.BoltAuth, "bolt-auth", flags.BoltAuth, "Credentials for -bolt of the form `username:password`")

	set.StringVar(&flags.DebugProfile, "debug-profile", flags.DebugProfile, "write out a debugging profile to the given path")
	set.StringVar(&flags.DebugListen, "debug-listen", flags.DebugListen, "start a profiling server on the given address")
}

// Parse parses the command line arguments of the current process.
// When -legal was given, it prints the legal notices and exits.
func (flags *Flags) Parse() []string {
	flags.Register(flag.CommandLine)
	flag.Parse()

	if flags.Legal {
		fmt.Print(ieograph.LegalText())
		os.Exit(0)
	}
	return flag.Args()
}

// Prompter returns the prompter to use for the given flags.
func (flags *Flags) Prompter() prompt.Prompter {
	if flags.Batch {
		return prompt.Batch{}
	}
	return &prompt.Terminal{In: os.Stdin, Out: os.Stderr}
}

// Options builds conversion options from the flags.
// The caller should close the returned options.
func (flags *Flags) Options(ctx context.Context, st *stats.Stats) (opts convert.Options, err error) {
	p := flags.Prompter()

	table := registry.DefaultTable()
	if flags.Registries != "" {
		if err := table.LoadTable(flags.Registries); err != nil {
			return opts, fmt.Errorf("failed to load registries: %w", err)
		}
	}

	sql, err := exporter.Open(flags.SQLite, flags.MySQL)
	if err != nil {
		return opts, err
	}

	var cypher *exporter.Cypher
	if flags.Bolt != "" {
		cypher, err = exporter.OpenCypher(ctx, flags.Bolt, flags.BoltAuth)
		if err != nil {
			if sql != nil {
				err = errors.Join(err, sql.Close())
			}
			return opts, err
		}
	}

	return convert.Options{
		Format: flags.Format,

		Resolver: &registry.Resolver{
			Table:       table,
			Prompter:    p,
			MaxAttempts: prompt.DefaultMaxAttempts,
		},
		Prompter:    p,
		MaxAttempts: prompt.DefaultMaxAttempts,

		Cache:  flags.Cache,
		SQL:    sql,
		Cypher: cypher,

		Stats: st,
	}, nil
}

// Debug starts the profiler and debug server, if requested.
// The returned function stops the profiler.
func (flags *Flags) Debug(st *stats.Stats) (stop func()) {
	if flags.DebugListen != "" {
		go ListenDebug(flags.DebugListen, st)
	}
	if flags.DebugProfile == "" {
		return func() {}
	}
	return profile.Start(profile.ProfilePath(flags.DebugProfile)).Stop
}

var errWrongUsage = errors.New("wrong usage")

// Usage logs the usage of the command, followed by the error, and exits.
func Usage(st *stats.Stats, usage string, err error) {
	st.Log("Usage: " + usage)
	flag.PrintDefaults()
	st.LogFatal("parse arguments", errors.Join(errWrongUsage, err))
}
