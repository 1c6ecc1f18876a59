package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
	"github.com/osse101/BrandishRewards_Go/internal/validation"
)

//go:embed rules.schema.json
var ruleSchema []byte

// Loader reads, validates and compiles rules files
type Loader interface {
	Load(path string) (*RuleCatalog, error)
	Parse(data []byte, format string) (*RuleCatalog, error)
}

type ruleLoader struct {
	schemas validation.SchemaValidator
	structs *validation.StructValidator
	opts    Options
}

// NewLoader creates a loader with the embedded rules schema registered
func NewLoader(opts Options) (Loader, error) {
	schemas := validation.NewSchemaValidator()
	if err := schemas.RegisterSchema(RuleSchemaID, ruleSchema); err != nil {
		return nil, fmt.Errorf("register rules schema: %w", err)
	}
	return &ruleLoader{
		schemas: schemas,
		structs: validation.GetStructValidator(),
		opts:    opts,
	}, nil
}

// Load reads and compiles the rules file at path using a fresh loader
func Load(path string, opts Options) (*RuleCatalog, error) {
	l, err := NewLoader(opts)
	if err != nil {
		return nil, err
	}
	return l.Load(path)
}

// FormatFromPath infers the rules format from the file extension
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and compiles the rules file at path
func (l *ruleLoader) Load(path string) (*RuleCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadRulesFailed, path, err)
	}
	c, err := l.Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the rules schema and the definition tags,
// then compiles it into a catalog
func (l *ruleLoader) Parse(data []byte, format string) (*RuleCatalog, error) {
	doc, raw, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	if err := l.schemas.ValidateDocument(doc, RuleSchemaID); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgSchemaFailed, domain.ErrInvalidRules, err)
	}

	var def RulesDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgParseRulesFailed, domain.ErrInvalidRules, err)
	}

	if err := l.structs.ValidateStruct(def); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDefinitionFailed, domain.ErrInvalidRules, validation.Summarize(err))
	}

	c, err := compile(&def, l.opts)
	if err != nil {
		return nil, err
	}

	logger.Info(LogMsgRulesLoaded,
		"version", c.Version,
		"tables", len(c.tables),
		"tiers", len(c.Tiers.Tiers()),
		"ranks", len(c.Ladder.Ranks()),
		"items", len(c.Items.Kinds()))
	return c, nil
}

// decode returns the document as JSON values for schema validation, plus the
// JSON encoding used to decode the definition structs
func decode(data []byte, format string) (any, []byte, error) {
	switch format {
	case FormatJSON:
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("%w: "+ErrMsgParseRulesFailed, domain.ErrInvalidRules, err)
		}
		return doc, data, nil
	case FormatYAML:
		var node any
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, nil, fmt.Errorf("%w: "+ErrMsgParseRulesFailed, domain.ErrInvalidRules, err)
		}
		raw, err := json.Marshal(node)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: "+ErrMsgParseRulesFailed, domain.ErrInvalidRules, err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, nil, fmt.Errorf("%w: "+ErrMsgParseRulesFailed, domain.ErrInvalidRules, err)
		}
		return doc, raw, nil
	default:
		return nil, nil, fmt.Errorf("%w: "+ErrMsgUnknownFormat, domain.ErrInvalidRules, format)
	}
}
