package tier

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/WashRewards_Go/internal/domain"
	"github.com/osse101/WashRewards_Go/internal/validation"
)

// SchemaName is the name the embedded tier schema is registered under
const SchemaName = "tiers.schema.json"

//go:embed schemas/tiers.schema.json
var tierSchema []byte

// Config represents the JSON configuration for the tier table
type Config struct {
	Version     string              `json:"version" validate:"required"`
	Description string              `json:"description,omitempty"`
	Tiers       []domain.TierConfig `json:"tiers" validate:"required,min=1,dive"`
}

// Loader handles loading and validating tier configuration
type Loader interface {
	Load(path string) (*Table, error)
	Parse(data []byte) (*Table, error)
}

type tierLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &tierLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(),
	}
}

// Load reads a tier JSON file and builds a Table from it
func (l *tierLoader) Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	table, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse validates a tier JSON document against the schema and the tier invariants
func (l *tierLoader) Parse(data []byte) (*Table, error) {
	if err := l.schemaValidator.RegisterSchema(SchemaName, tierSchema); err != nil {
		return nil, fmt.Errorf("failed to register tier schema: %w", err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.validateConfig(&config); err != nil {
		return nil, err
	}

	table, err := NewTable(config.Tiers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return table, nil
}

func (l *tierLoader) validateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Tiers) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNoTiersDefined)
	}

	if err := l.validate.Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("%w: %s failed %q validation", domain.ErrInvalidConfig, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	return nil
}

// DefaultTiers returns the built-in tier table used when no tier file is configured
func DefaultTiers() []domain.TierConfig {
	return []domain.TierConfig{
		{
			ID:        TierBronze,
			Name:      "Bronze",
			Threshold: 0,
			Benefits:  domain.TierBenefits{PointsMultiplier: 1.0, DiscountPercent: 0},
			Icon:      "🥉",
		},
		{
			ID:        TierSilver,
			Name:      "Silver",
			Threshold: 500,
			Benefits:  domain.TierBenefits{PointsMultiplier: 1.25, DiscountPercent: 5},
			Icon:      "🥈",
		},
		{
			ID:        TierGold,
			Name:      "Gold",
			Threshold: 2000,
			Benefits:  domain.TierBenefits{PointsMultiplier: 1.5, DiscountPercent: 10},
			Icon:      "🥇",
		},
		{
			ID:        TierPlatinum,
			Name:      "Platinum",
			Threshold: 5000,
			Benefits:  domain.TierBenefits{PointsMultiplier: 2.0, DiscountPercent: 15},
			Icon:      "💎",
		},
	}
}

// DefaultTable returns the built-in tiers as a Table
func DefaultTable() *Table {
	return MustNewTable(DefaultTiers())
}
