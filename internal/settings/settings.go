package settings

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/pairmaxgo/internal/ctxlog"
)

// Settings holds the file-based defaults for the CLI wrapper. A nil Target
// means the file does not override the target sum.
type Settings struct {
	Target    *int
	LogLevel  string
	LogFormat string
}

// hclSettingsFile is the top-level structure of a settings file for decoding.
type hclSettingsFile struct {
	Problem *hclProblemBlock `hcl:"problem,block"`
	Logging *hclLoggingBlock `hcl:"logging,block"`
}

// hclProblemBlock keeps the target as a raw expression so simple arithmetic
// like `target = 4 + 4` works in the file.
type hclProblemBlock struct {
	Target hcl.Expression `hcl:"target,optional"`
}

type hclLoggingBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Load parses a single HCL settings file into a Settings value.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var parsed hclSettingsFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	loaded := &Settings{}
	if parsed.Problem != nil && parsed.Problem.Target != nil {
		target, err := evalTarget(parsed.Problem.Target)
		if err != nil {
			return nil, fmt.Errorf("invalid target in settings file %s: %w", path, err)
		}
		loaded.Target = &target
	}
	if parsed.Logging != nil {
		loaded.LogLevel = parsed.Logging.Level
		loaded.LogFormat = parsed.Logging.Format
	}

	logger.Debug("Settings file loaded.", "has_target", loaded.Target != nil)
	return loaded, nil
}

// evalTarget evaluates the target expression down to a Go int. The expression
// is evaluated without an EvalContext, so literals and arithmetic are accepted
// but variables are not.
func evalTarget(expr hcl.Expression) (int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}

	number, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("target must be a number: %w", err)
	}

	var target int
	if err := gocty.FromCtyValue(number, &target); err != nil {
		return 0, fmt.Errorf("target must be a whole number: %w", err)
	}
	return target, nil
}
