package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of angler actions plus the assertions
// that must hold afterwards.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Store is the backend every angler starts with: memory (default),
	// sqlite or broken.
	Store string `yaml:"store,omitempty"`

	// Strict makes anglers return store failures from LogCatch.
	Strict bool `yaml:"strict,omitempty"`

	Steps      []Step      `yaml:"steps"`
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one angler action.
type Step struct {
	Action   string  `yaml:"action"`
	Angler   string  `yaml:"angler"`
	Location string  `yaml:"location,omitempty"` // start
	Species  string  `yaml:"species,omitempty"`  // log
	Weight   float64 `yaml:"weight,omitempty"`   // log
	Store    string  `yaml:"store,omitempty"`    // swap_store

	// Expect is the required outcome of a log step. Empty means any.
	Expect string `yaml:"expect,omitempty"`
}

// Assertion checks session or durable state after all steps ran.
type Assertion struct {
	Type   string `yaml:"type"`
	Angler string `yaml:"angler,omitempty"`

	// Count is used by session_count and summary.
	Count *int `yaml:"count,omitempty"`

	// Weight is used by session_weight and summary.
	Weight *float64 `yaml:"weight,omitempty"`

	// Species is the expected newest-first species list (records).
	// An empty angler lists the records of every angler.
	Species []string `yaml:"species,omitempty"`
}

// Step actions.
const (
	ActionStart     = "start"
	ActionLog       = "log"
	ActionEnd       = "end"
	ActionSwapStore = "swap_store"
)

// Assertion types.
const (
	AssertSessionCount  = "session_count"
	AssertSessionWeight = "session_weight"
	AssertSummary       = "summary"
	AssertRecords       = "records"
)

// Store kinds a scenario can use. StoreBroken fails every operation.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreBroken = "broken"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Store {
	case "", StoreMemory, StoreSQLite, StoreBroken:
	default:
		return fmt.Errorf("store must be memory, sqlite or broken, got %q", s.Store)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i]); err != nil {
			return err
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

func validateStep(index int, st *Step) error {
	if st.Angler == "" {
		return fmt.Errorf("steps[%d]: angler is required", index)
	}

	switch st.Action {
	case ActionStart:
		if st.Location == "" {
			return fmt.Errorf("steps[%d]: location is required for start", index)
		}
	case ActionLog:
		if st.Species == "" {
			return fmt.Errorf("steps[%d]: species is required for log", index)
		}
	case ActionEnd:
	case ActionSwapStore:
		switch st.Store {
		case StoreMemory, StoreSQLite, StoreBroken:
		default:
			return fmt.Errorf("steps[%d]: store must be memory, sqlite or broken for swap_store", index)
		}
	case "":
		return fmt.Errorf("steps[%d]: action is required", index)
	default:
		return fmt.Errorf("steps[%d]: unknown action %q", index, st.Action)
	}

	switch st.Expect {
	case "", OutcomeOK, OutcomeNotFishing, OutcomeError:
	default:
		return fmt.Errorf("steps[%d]: unknown expect %q", index, st.Expect)
	}
	if st.Expect != "" && st.Action != ActionLog {
		return fmt.Errorf("steps[%d]: expect is only valid for log", index)
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertSessionCount:
		if a.Angler == "" || a.Count == nil {
			return fmt.Errorf("assertions[%d]: angler and count are required for session_count", index)
		}
	case AssertSessionWeight:
		if a.Angler == "" || a.Weight == nil {
			return fmt.Errorf("assertions[%d]: angler and weight are required for session_weight", index)
		}
	case AssertSummary:
		if a.Angler == "" || a.Count == nil || a.Weight == nil {
			return fmt.Errorf("assertions[%d]: angler, count and weight are required for summary", index)
		}
	case AssertRecords:
		if a.Species == nil {
			return fmt.Errorf("assertions[%d]: species is required for records", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
