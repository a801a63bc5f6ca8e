// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemaref Authors
// Source: github.com/schemaref/schemaref

// schemaref generates per-type reference docs from JSON Schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/schemaref/schemaref"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/schemaref/schemaref"
	_buildTime string
)

// cliOptions describes schemaref CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate reference documents from a JSON Schema"`
	Example  exampleCommand  `command:"example" description:"Generate an example payload from a JSON Schema"`
}

// resolveFlags groups reference resolution flags shared by subcommands.
type resolveFlags struct {
	SearchPath []string `short:"p" long:"search-path" description:"Directory searched for external schema references (repeatable, ordered)"`
	Debug      bool     `short:"d" long:"debug" description:"Enable debug-level resolution logging"`
}

// generateCommand runs the documentation generation flow.
type generateCommand struct {
	runner *cliRunner

	Args struct {
		Input     string `positional-arg-name:"input" description:"Root schema file (JSON or YAML)" required:"yes"`
		OutputDir string `positional-arg-name:"output-dir" description:"Output directory (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	ResolveFlags resolveFlags `group:"Reference Resolution"`

	Style            string   `short:"s" long:"style" description:"Output markup dialect" choice:"Markdown" choice:"AsciiDoctor" default:"Markdown"`
	Checkmark        string   `long:"checkmark" description:"Glyph marking required properties in the summary table"`
	MustKeyword      string   `long:"must-keyword" description:"Wording used in constraint sentences (for example: shall)"`
	WriteTOC         bool     `short:"t" long:"toc" description:"Prepend a table of contents to the root document"`
	HeaderLevel      int      `short:"l" long:"header-level" description:"Starting heading depth" default:"1"`
	SuppressWarnings bool     `short:"q" long:"suppress-warnings" description:"Suppress in-document schema warnings"`
	SchemaBasePath   string   `long:"schema-base-path" description:"Base path for links back to source schema files"`
	AutoLink         string   `long:"auto-link" description:"Description auto-linking mode" choice:"off" choice:"aggressive" choice:"codeQuoteOnly" default:"aggressive"`
	EmbedMode        string   `long:"embed-mode" description:"Raw schema embedding mode" choice:"none" choice:"writeIncludeStatements" choice:"referenceIncludeDocument" default:"none"`
	IgnorableTypes   []string `short:"i" long:"ignore-type" description:"Type title excluded from generated documentation (repeatable)"`
	Concurrency      int      `long:"write-concurrency" description:"Bounded concurrency for document writes" default:"4"`
}

// Execute runs the generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// exampleCommand runs the example payload generation flow.
type exampleCommand struct {
	runner *cliRunner

	Args struct {
		Input  string `positional-arg-name:"input" description:"Root schema file (JSON or YAML)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	ResolveFlags resolveFlags `group:"Reference Resolution"`

	Mode   string `short:"m" long:"mode" description:"Property coverage" choice:"all" choice:"required" default:"all"`
	Format string `short:"f" long:"format" description:"Payload encoding" choice:"json" choice:"yaml" default:"json"`
}

// Execute runs the example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
	logger      *logrus.Logger
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemaref"
	}

	logger := logrus.New()
	logger.SetOutput(stderr)

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
		logger:      logger,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate executes the schema-to-documents flow.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	if command.ResolveFlags.Debug {
		runner.logger.SetLevel(logrus.DebugLevel)
	}

	schemaBytes, err := os.ReadFile(command.Args.Input)
	if err != nil {
		return fmt.Errorf("%w %q: %w", schemaref.ErrReadSchemaFile, command.Args.Input, err)
	}

	docs, err := schemaref.Generate(schemaBytes, schemaref.Options{
		FileName:               filepath.Base(command.Args.Input),
		SearchPath:             searchPathWithInputDir(command.ResolveFlags.SearchPath, command.Args.Input),
		StyleMode:              schemaref.StyleMode(command.Style),
		Checkmark:              command.Checkmark,
		MustKeyword:            command.MustKeyword,
		WriteTOC:               command.WriteTOC,
		HeaderLevel:            command.HeaderLevel,
		SuppressWarnings:       command.SuppressWarnings,
		SchemaRelativeBasePath: command.SchemaBasePath,
		AutoLink:               schemaref.AutoLinkMode(command.AutoLink),
		EmbedMode:              schemaref.EmbedMode(command.EmbedMode),
		IgnorableTypes:         command.IgnorableTypes,
		Debug:                  command.ResolveFlags.Debug,
		Logger:                 runner.logger,
	})
	if err != nil {
		return fmt.Errorf("generate documentation: %w", err)
	}

	if strings.TrimSpace(command.Args.OutputDir) == "" {
		for _, doc := range docs {
			if _, err := io.WriteString(runner.stdout, doc.Body); err != nil {
				return fmt.Errorf("write document to stdout: %w", err)
			}
		}

		return nil
	}

	if err := schemaref.WriteDocuments(command.Args.OutputDir, docs, command.Concurrency); err != nil {
		return err
	}

	runner.logger.Debugf("wrote %d documents to %q", len(docs), command.Args.OutputDir)
	return nil
}

// runExample executes the schema-to-example flow.
func (runner *cliRunner) runExample(command *exampleCommand) error {
	if command.ResolveFlags.Debug {
		runner.logger.SetLevel(logrus.DebugLevel)
	}

	schemaBytes, err := os.ReadFile(command.Args.Input)
	if err != nil {
		return fmt.Errorf("%w %q: %w", schemaref.ErrReadSchemaFile, command.Args.Input, err)
	}

	payload, err := schemaref.GenerateExample(schemaBytes,
		schemaref.ExampleMode(command.Mode),
		schemaref.ExampleFormat(command.Format),
		schemaref.ResolveOptions{
			FileName:   filepath.Base(command.Args.Input),
			SearchPath: searchPathWithInputDir(command.ResolveFlags.SearchPath, command.Args.Input),
			Logger:     runner.logger,
		})
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	if strings.TrimSpace(command.Args.Output) == "" {
		if _, err := runner.stdout.Write(payload); err != nil {
			return fmt.Errorf("write example to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(command.Args.Output, payload, 0o600); err != nil {
		return fmt.Errorf("write example file %q: %w", command.Args.Output, err)
	}

	return nil
}

// searchPathWithInputDir appends the input schema's directory so sibling
// schema files resolve without explicit flags.
func searchPathWithInputDir(searchPath []string, input string) []string {
	dir := filepath.Dir(input)
	for _, entry := range searchPath {
		if entry == dir {
			return searchPath
		}
	}

	return append(append([]string{}, searchPath...), dir)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Example.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate one reference document per referenced type.
Reads the root schema from the input file; writes documents to the output
directory, or concatenated to stdout when the directory is omitted.

Examples:
> $ %s generate root.schema.json docs/
> $ %s generate -t -s AsciiDoctor root.schema.json docs/
> $ %s generate --ignore-type Extras root.schema.json > reference.md
`, programName, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate an example payload document from the root schema.
Declared defaults, examples and enumeration values are preferred over typed
placeholders.

Examples:
> $ %s example root.schema.json > example.json
> $ %s example -m required -f yaml root.schema.json example.yaml
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
