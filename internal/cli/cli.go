package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/notesmerge/internal/app"
	"github.com/vk/notesmerge/internal/join"
	"github.com/vk/notesmerge/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// DotenvFile is read from the working directory before flags are resolved.
const DotenvFile = ".env"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	env, err := app.LoadEnv(DotenvFile)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return ParseWithEnv(args, output, env)
}

// ParseWithEnv is Parse with an explicit environment. Environment values only
// fill flags that were not given on the command line.
func ParseWithEnv(args []string, output io.Writer, env app.Env) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("notesmerge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
notesmerge - Merge per-course grade files into a promotion report.

Usage:
  notesmerge [options] COURSE [COURSE...]
  notesmerge [options] -all

Arguments:
  COURSE
    Course code. Grades are read from <data-dir>/notes_<COURSE>.csv.

Files:
  <data-dir>/liste_etudiants.csv   id|LAST- FIRST|profile|group
  <data-dir>/notes_<COURSE>.csv    id|score
  <data-dir>/notes.hcl             optional settings file

Environment:
  NOTES_DATA_DIR, NOTES_CONFIG, NOTES_STRATEGY, NOTES_OUTPUT, NOTES_FORMAT,
  NOTES_ENCODING, NOTES_LOG_LEVEL, NOTES_LOG_FORMAT override unset flags.
  A .env file in the working directory is read too.

Options:
`)
		flagSet.PrintDefaults()
	}

	dataDirFlag := flagSet.String("data-dir", app.DefaultDataDir, "Directory holding the roster and grade files.")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file. Defaults to <data-dir>/"+app.DefaultSettingsFile+" when present.")
	strategyFlag := flagSet.String("strategy", "", "Join strategy: "+oneOf(join.Names())+". Defaults to the settings value, 'hash'.")
	outputFlag := flagSet.String("output", "", "Report path. Defaults to the settings value, 'notes_etudiants.csv'.")
	formatFlag := flagSet.String("format", "", "Report format: "+oneOf(formatNames())+". Defaults to the settings value, 'csv'.")
	separatorFlag := flagSet.String("separator", "", "Field separator of inputs and the csv report. Defaults to '|'.")
	encodingFlag := flagSet.String("encoding", "", "Input encoding: 'utf-8', 'latin-1' or 'windows-1252'. Defaults to 'utf-8'.")
	allFlag := flagSet.Bool("all", false, "Merge every grade file found in the data directory.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	courses := flagSet.Args()
	if len(courses) == 0 && !*allFlag {
		slog.Debug("No course provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := app.Config{
		DataDir:    *dataDirFlag,
		ConfigPath: *configFlag,
		Courses:    courses,
		All:        *allFlag,
		Strategy:   strings.ToLower(*strategyFlag),
		Output:     *outputFlag,
		Format:     strings.ToLower(*formatFlag),
		Separator:  *separatorFlag,
		Encoding:   *encodingFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	env.Apply(&cfg, explicit)
	slog.Debug("Environment overrides applied.", "explicit_flags", len(explicit))

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func formatNames() []string {
	formats := report.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// oneOf renders names as "'a', 'b' or 'c'".
func oneOf(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
