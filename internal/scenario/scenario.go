package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/nextpiece/internal/game"
)

// Scenario defines a scripted game.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Config overrides the default capacities and alphabet.
	Config *ConfigOverrides `yaml:"config,omitempty"`

	// Sequence lists the kinds the source produces, replayed cyclically.
	// Defaults to the alphabet in order.
	Sequence []string `yaml:"sequence,omitempty"`

	// Steps are applied in order after the queue is pre-filled.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state.
	Assertions []Assertion `yaml:"assertions"`
}

// ConfigOverrides holds optional game settings.
type ConfigOverrides struct {
	QueueCapacity   int    `yaml:"queue_capacity,omitempty"`
	ReserveCapacity int    `yaml:"reserve_capacity,omitempty"`
	Kinds           string `yaml:"kinds,omitempty"`
}

// Step applies one action, named either by Action or by menu Code.
type Step struct {
	// Action is an action name ("play", "reserve", ...).
	Action string `yaml:"action,omitempty"`

	// Code is a raw menu code, including invalid ones.
	Code *int `yaml:"code,omitempty"`

	// Expect validates the step result. Nil means "must succeed".
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected result of a step.
type Expect struct {
	// Error is the expected error code (e.g. "FULL_DESTINATION").
	// Empty means the step must succeed.
	Error string `yaml:"error,omitempty"`

	// Piece is the expected played/reserved/used piece (e.g. "I0").
	Piece string `yaml:"piece,omitempty"`

	// Generated is the expected refill piece.
	Generated string `yaml:"generated,omitempty"`
}

// Assertion validates the final state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "queue": queue pieces front to back equal Pieces
	// - "reserve": reserve pieces top to bottom equal Pieces
	// - "queue_len": queue length equals Count
	// - "reserve_len": reserve length equals Count
	// - "next_id": the next generated id equals Count
	Type string `yaml:"type"`

	// Pieces are compact piece labels (used by queue, reserve).
	Pieces []string `yaml:"pieces,omitempty"`

	// Count is the expected number (used by queue_len, reserve_len, next_id).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertQueue      = "queue"
	AssertReserve    = "reserve"
	AssertQueueLen   = "queue_len"
	AssertReserveLen = "reserve_len"
	AssertNextID     = "next_id"
)

var knownErrorCodes = map[string]bool{
	string(game.ErrCodeEmptySource):        true,
	string(game.ErrCodeFullDestination):    true,
	string(game.ErrCodeDestinationNotFull): true,
	string(game.ErrCodeInsufficientSource): true,
	string(game.ErrCodeInvalidSelection):   true,
}

// Load reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse parses scenario YAML with strict field validation.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &s, nil
}

// validate checks that required fields are present and valid.
func validate(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}

	return nil
}

func validateStep(index int, step *Step) error {
	switch {
	case step.Action == "" && step.Code == nil:
		return fmt.Errorf("steps[%d]: one of action or code is required", index)
	case step.Action != "" && step.Code != nil:
		return fmt.Errorf("steps[%d]: action and code are mutually exclusive", index)
	}

	if step.Action != "" {
		if _, ok := game.SelectionFor(game.Action(step.Action)); !ok {
			return fmt.Errorf("steps[%d]: unknown action %q", index, step.Action)
		}
	}

	if step.Expect != nil && step.Expect.Error != "" && !knownErrorCodes[step.Expect.Error] {
		return fmt.Errorf("steps[%d].expect: unknown error code %q", index, step.Expect.Error)
	}

	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertQueue, AssertReserve:
		// An empty pieces list asserts an empty container.
	case AssertQueueLen, AssertReserveLen, AssertNextID:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
