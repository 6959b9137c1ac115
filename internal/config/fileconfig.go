package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the on-disk configuration this module accepts, covering the
// subset of RunConfig that's reasonable to pin in a project file: thresholds
// and walker filters. CLI flags (spec.md 6) always override these values.
type FileConfig struct {
	Thresholds RefactoringThresholds
	Exclude    []string
	Languages  []string
	IncludeHidden bool
	MaxFileSizeMB int
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Thresholds:    DefaultThresholds(),
		MaxFileSizeMB: DefaultMaxFileSizeBytes / (1024 * 1024),
	}
}

// Load reads a config file and dispatches on its extension: ".kdl" through
// sblinch/kdl-go (the teacher's own native format), ".toml" through
// pelletier/go-toml. An empty path or a missing file returns the defaults
// with no error — an absent config file is not a fatal condition. Any other
// extension is an error.
func Load(path string) (FileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".kdl":
		return loadKDL(data, cfg)
	case ".toml":
		return loadTOML(data, cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q (expected .kdl or .toml)", path)
	}
}

// tomlFileConfig mirrors FileConfig with struct tags go-toml needs; kept
// separate so FileConfig itself stays free of format-specific tags.
type tomlFileConfig struct {
	MaxComplexityScore      *float64 `toml:"max_complexity_score"`
	MaxCyclomaticComplexity *int     `toml:"max_cyclomatic_complexity"`
	MaxLinesOfCode          *int     `toml:"max_lines_of_code"`
	MaxFunctions            *int     `toml:"max_functions"`
	Exclude                 []string `toml:"exclude"`
	Languages               []string `toml:"languages"`
	IncludeHidden           *bool    `toml:"include_hidden"`
	MaxFileSizeMB           *int     `toml:"max_file_size_mb"`
}

func loadTOML(data []byte, cfg FileConfig) (FileConfig, error) {
	var t tomlFileConfig
	if err := toml.Unmarshal(data, &t); err != nil {
		return cfg, fmt.Errorf("parse TOML config: %w", err)
	}
	if t.MaxComplexityScore != nil {
		cfg.Thresholds.MaxComplexityScore = *t.MaxComplexityScore
	}
	if t.MaxCyclomaticComplexity != nil {
		cfg.Thresholds.MaxCyclomaticComplexity = *t.MaxCyclomaticComplexity
	}
	if t.MaxLinesOfCode != nil {
		cfg.Thresholds.MaxLinesOfCode = *t.MaxLinesOfCode
	}
	if t.MaxFunctions != nil {
		cfg.Thresholds.MaxFunctions = *t.MaxFunctions
	}
	if len(t.Exclude) > 0 {
		cfg.Exclude = t.Exclude
	}
	if len(t.Languages) > 0 {
		cfg.Languages = t.Languages
	}
	if t.IncludeHidden != nil {
		cfg.IncludeHidden = *t.IncludeHidden
	}
	if t.MaxFileSizeMB != nil {
		cfg.MaxFileSizeMB = *t.MaxFileSizeMB
	}
	return cfg, nil
}

// loadKDL parses a ".codelens.kdl"-style file shaped like:
//
//	thresholds {
//	    max_complexity_score 10.0
//	    max_cyclomatic_complexity 20
//	    max_lines_of_code 500
//	    max_functions 20
//	}
//	exclude "vendor/**" "**/*.gen.go"
//	languages "go" "rust"
//	include_hidden false
//	max_file_size_mb 10
//
// Adapted from the teacher's internal/config/kdl_config.go node-walking
// style.
func loadKDL(data []byte, cfg FileConfig) (FileConfig, error) {
	doc, err := kdl.Parse(bytes.NewReader(data))
	if err != nil {
		return cfg, fmt.Errorf("parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch kdlNodeName(n) {
		case "thresholds":
			for _, cn := range n.Children {
				switch kdlNodeName(cn) {
				case "max_complexity_score":
					if v, ok := kdlFirstFloatArg(cn); ok {
						cfg.Thresholds.MaxComplexityScore = v
					}
				case "max_cyclomatic_complexity":
					if v, ok := kdlFirstIntArg(cn); ok {
						cfg.Thresholds.MaxCyclomaticComplexity = v
					}
				case "max_lines_of_code":
					if v, ok := kdlFirstIntArg(cn); ok {
						cfg.Thresholds.MaxLinesOfCode = v
					}
				case "max_functions":
					if v, ok := kdlFirstIntArg(cn); ok {
						cfg.Thresholds.MaxFunctions = v
					}
				}
			}
		case "exclude":
			if args := kdlStringArgs(n); len(args) > 0 {
				cfg.Exclude = args
			}
		case "languages":
			if args := kdlStringArgs(n); len(args) > 0 {
				cfg.Languages = args
			}
		case "include_hidden":
			if b, ok := kdlFirstBoolArg(n); ok {
				cfg.IncludeHidden = b
			}
		case "max_file_size_mb":
			if v, ok := kdlFirstIntArg(n); ok {
				cfg.MaxFileSizeMB = v
			}
		}
	}

	return cfg, nil
}

func kdlNodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func kdlFirstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func kdlFirstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func kdlFirstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func kdlStringArgs(n *document.Node) []string {
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
