package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/notesmerge/internal/config"
	"github.com/vk/notesmerge/internal/ctxlog"
	"github.com/vk/notesmerge/internal/ingest"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// settingsFile is the top-level structure of a settings file for decoding.
type settingsFile struct {
	Separator        *string         `hcl:"separator,optional"`
	Encoding         *string         `hcl:"encoding,optional"`
	RosterFile       *string         `hcl:"roster_file,optional"`
	GradeFilePattern *string         `hcl:"grade_file_pattern,optional"`
	OutputFile       *string         `hcl:"output_file,optional"`
	OutputFormat     *string         `hcl:"output_format,optional"`
	Strategy         *string         `hcl:"strategy,optional"`
	Courses          *[]string       `hcl:"courses,optional"`
	Profiles         hcl.Expression  `hcl:"profiles,optional"`
	AbsentLabel      *string         `hcl:"absent_label,optional"`
	Mentions         []*mentionBlock `hcl:"mention,block"`
}

// mentionBlock is one `mention "<label>" { below = n }` block.
type mentionBlock struct {
	Label string   `hcl:"label,label"`
	Below *float64 `hcl:"below,optional"`
}

// Load parses the settings file at path and overlays it onto config.Default().
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ingest.MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("error accessing settings file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root settingsFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	settings, err := l.translate(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	logger.Debug("HCL settings loading complete.",
		"courses", len(settings.Courses),
		"profiles", len(settings.Profiles),
		"mention_bands", len(settings.Mentions),
	)
	return settings, nil
}
