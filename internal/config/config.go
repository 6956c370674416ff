package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/roomies/pkg/core/solver"
)

const (
	defaultSubjectPrefix  = "roomies"
	defaultAssignmentsTab = "Assignments"
	defaultGmailUserID    = "me"
)

// SolverConfig holds the search settings used when no CLI flag overrides them
type SolverConfig struct {
	MaxRoomSize         int            `yaml:"maxRoomSize" validate:"required,min=1"`
	Iterations          int            `yaml:"iterations" validate:"min=0"`
	ChunkSize           int            `yaml:"chunkSize,omitempty" validate:"min=1"`
	HintRefreshInterval int            `yaml:"hintRefreshInterval,omitempty" validate:"min=1"`
	Workers             int            `yaml:"workers,omitempty" validate:"min=0"`
	Weights             *WeightsConfig `yaml:"weights,omitempty"`
}

// WeightsConfig overrides individual composite score weights. Keys left out
// keep their default value.
type WeightsConfig struct {
	ImbalancePenalty           *int `yaml:"imbalancePenalty,omitempty" validate:"omitempty,min=0"`
	ChoiceMultiplier           *int `yaml:"choiceMultiplier,omitempty" validate:"omitempty,min=0"`
	WithoutChoicePenalty       *int `yaml:"withoutChoicePenalty,omitempty" validate:"omitempty,min=0"`
	ChoicelessImbalancePenalty *int `yaml:"choicelessImbalancePenalty,omitempty" validate:"omitempty,min=0"`
}

// Resolve overlays the configured weights on solver.DefaultWeights
func (w *WeightsConfig) Resolve() solver.Weights {
	weights := solver.DefaultWeights()
	if w == nil {
		return weights
	}

	overlay := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	overlay(&weights.ImbalancePenalty, w.ImbalancePenalty)
	overlay(&weights.ChoiceMultiplier, w.ChoiceMultiplier)
	overlay(&weights.WithoutChoicePenalty, w.WithoutChoicePenalty)
	overlay(&weights.ChoicelessImbalancePenalty, w.ChoicelessImbalancePenalty)

	return weights
}

// InputConfig locates the people list in Google Sheets
type InputConfig struct {
	PeopleSheetID string `yaml:"peopleSheetID,omitempty"`
	PeopleTab     string `yaml:"peopleTab,omitempty" validate:"required_with=PeopleSheetID"`
}

// OutputConfig locates the sheet assignments are published to
type OutputConfig struct {
	AssignmentsSheetID string `yaml:"assignmentsSheetID,omitempty"`
	AssignmentsTab     string `yaml:"assignmentsTab,omitempty"`
}

// DatabaseConfig configures the run history store
type DatabaseConfig struct {
	URL string `yaml:"url,omitempty" validate:"omitempty,url"`
}

// EventsConfig configures progress events. Events are disabled without a NATS URL.
type EventsConfig struct {
	NatsURL       string `yaml:"natsURL,omitempty" validate:"omitempty,url"`
	SubjectPrefix string `yaml:"subjectPrefix,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint. Disabled without a listen address.
type MetricsConfig struct {
	ListenAddr string `yaml:"listenAddr,omitempty" validate:"omitempty,hostname_port"`
}

// EmailConfig configures report emails
type EmailConfig struct {
	GmailUserID string   `yaml:"gmailUserID,omitempty"`
	GmailSender string   `yaml:"gmailSender,omitempty" validate:"omitempty,email"`
	Recipients  []string `yaml:"recipients,omitempty" validate:"dive,email"`
}

// Config represents the application configuration
type Config struct {
	Solver   SolverConfig   `yaml:"solver"`
	Input    InputConfig    `yaml:"input,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Database DatabaseConfig `yaml:"database,omitempty"`
	Events   EventsConfig   `yaml:"events,omitempty"`
	Metrics  MetricsConfig  `yaml:"metrics,omitempty"`
	Email    EmailConfig    `yaml:"email,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates roomies_config.<env>.yaml.
// It looks for the config file in the current directory first, then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findFile(envFileName("roomies_config", env, "yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, fills in defaults and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills every optional setting left unset
func (c *Config) ApplyDefaults() {
	if c.Solver.ChunkSize == 0 {
		c.Solver.ChunkSize = solver.DefaultChunkSize
	}
	if c.Solver.HintRefreshInterval == 0 {
		c.Solver.HintRefreshInterval = solver.DefaultHintRefreshInterval
	}
	if c.Events.SubjectPrefix == "" {
		c.Events.SubjectPrefix = defaultSubjectPrefix
	}
	if c.Output.AssignmentsTab == "" {
		c.Output.AssignmentsTab = defaultAssignmentsTab
	}
	if c.Email.GmailUserID == "" {
		c.Email.GmailUserID = defaultGmailUserID
	}
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// SolveConfig converts the solver settings into a solver configuration
func (c *Config) SolveConfig() solver.SolveConfig {
	opts := solver.SearchOptions{
		Iterations:          c.Solver.Iterations,
		ChunkSize:           c.Solver.ChunkSize,
		HintRefreshInterval: c.Solver.HintRefreshInterval,
		Workers:             c.Solver.Workers,
	}
	if c.Solver.Weights != nil {
		opts.Weights = c.Solver.Weights.Resolve()
	}

	return solver.SolveConfig{
		MaxRoomSize: c.Solver.MaxRoomSize,
		Search:      opts,
	}
}

// envFileName returns "<base>.<env>.<ext>", or "<base>.<ext>" without an env
func envFileName(base, env, ext string) string {
	if env == "" {
		return base + "." + ext
	}
	return base + "." + env + "." + ext
}

// findFile looks for name in the current directory, then the home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
