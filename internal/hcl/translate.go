package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/notesmerge/internal/config"
	"github.com/vk/notesmerge/internal/ctxlog"
	"github.com/vk/notesmerge/internal/model"
	"github.com/vk/notesmerge/internal/result"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translate overlays the decoded file onto the stock settings.
func (l *Loader) translate(ctx context.Context, root *settingsFile) (*config.Settings, error) {
	s := config.Default()

	if root.Separator != nil {
		sep, err := config.ParseSeparator(*root.Separator)
		if err != nil {
			return nil, err
		}
		s.Separator = sep
	}
	overlay(&s.Encoding, root.Encoding)
	overlay(&s.RosterFile, root.RosterFile)
	overlay(&s.GradeFilePattern, root.GradeFilePattern)
	overlay(&s.OutputFile, root.OutputFile)
	overlay(&s.OutputFormat, root.OutputFormat)
	overlay(&s.Strategy, root.Strategy)
	if root.Courses != nil {
		s.Courses = append([]string(nil), (*root.Courses)...)
	}
	if root.AbsentLabel != nil {
		s.AbsentLabel = result.Mention(*root.AbsentLabel)
	}

	if isExprDefined(ctx, root.Profiles, "profiles") {
		profiles, err := decodeProfiles(root.Profiles)
		if err != nil {
			return nil, err
		}
		s.Profiles = profiles
	}

	if len(root.Mentions) > 0 {
		table, err := translateMentions(root.Mentions)
		if err != nil {
			return nil, err
		}
		s.Mentions = table
	}
	return s, nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// decodeProfiles evaluates the profiles expression as a map of strings. Numeric
// values are converted, so `"1" = 2024` yields the track name "2024".
func decodeProfiles(expr hcl.Expression) (model.Profiles, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, errors.New("profiles must not be null")
	}

	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("cannot convert profiles of type %s to map(string): %w", val.Type().FriendlyName(), err)
	}

	var out map[string]string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return model.Profiles(out), nil
}

// translateMentions builds the band table; only the final block may be open.
func translateMentions(blocks []*mentionBlock) (result.Table, error) {
	table := make(result.Table, 0, len(blocks))
	for i, b := range blocks {
		if b.Below == nil {
			if i != len(blocks)-1 {
				return nil, fmt.Errorf("mention %q has no `below` bound but is not the last band", b.Label)
			}
			table = append(table, result.Band{Below: config.OpenBand, Mention: result.Mention(b.Label)})
			continue
		}
		table = append(table, result.Band{Below: *b.Below, Mention: result.Mention(b.Label)})
	}
	return table, nil
}

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional expression fields with
// zero-width placeholder expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
