package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = errors.New("invalid scenario")

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*ScenarioConfig, error) {
	var sc ScenarioConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the scenario before any roster is built from it.
func (sc *ScenarioConfig) Validate() error {
	if len(sc.Teams) != 2 {
		return fmt.Errorf("%w: need exactly 2 teams, got %d", ErrInvalidScenario, len(sc.Teams))
	}
	if sc.MaxRounds < 0 {
		return fmt.Errorf("%w: max_rounds cannot be negative", ErrInvalidScenario)
	}
	for i := range sc.Teams {
		if err := sc.Teams[i].validate(); err != nil {
			return err
		}
	}
	if a, b := sc.Teams[0].DisplayName(), sc.Teams[1].DisplayName(); a == b {
		return fmt.Errorf("%w: both teams are named %q", ErrInvalidScenario, a)
	}
	return nil
}

func (t *TeamDef) validate() error {
	switch strings.ToLower(t.Policy) {
	case "", PolicyClassic, PolicySequential, PolicyTactical:
	default:
		return fmt.Errorf("%w: team %q: unknown policy %q", ErrInvalidScenario, t.Name, t.Policy)
	}
	if len(t.Members) == 0 || len(t.Members) > maxTeamSize {
		return fmt.Errorf("%w: team %q: needs 1..%d members, got %d", ErrInvalidScenario, t.Name, maxTeamSize, len(t.Members))
	}
	leaders := 0
	for _, m := range t.Members {
		if m.Leader {
			leaders++
		}
		if err := m.validate(); err != nil {
			return err
		}
	}
	if leaders > 1 {
		return fmt.Errorf("%w: team %q: %d leaders", ErrInvalidScenario, t.Name, leaders)
	}
	return nil
}

func (m *MemberDef) validate() error {
	hasStats := m.Health != 0 || m.Speed != 0
	switch strings.ToLower(m.Kind) {
	case KindGunfighter:
		if hasStats {
			return fmt.Errorf("%w: member %q: gunfighters take no health or speed", ErrInvalidScenario, m.Name)
		}
	case KindBlade:
		switch rank := strings.ToLower(m.Rank); rank {
		case "young", "trained", "old":
			if hasStats {
				return fmt.Errorf("%w: member %q: rank %q has fixed stats", ErrInvalidScenario, m.Name, rank)
			}
		case "", "custom":
			if rank == "" && !hasStats {
				return nil
			}
			if m.Health <= 0 || m.Speed < 0 {
				return fmt.Errorf("%w: member %q: custom stats need health > 0 and speed >= 0", ErrInvalidScenario, m.Name)
			}
		default:
			return fmt.Errorf("%w: member %q: unknown rank %q", ErrInvalidScenario, m.Name, m.Rank)
		}
	default:
		return fmt.Errorf("%w: member %q: unknown kind %q", ErrInvalidScenario, m.Name, m.Kind)
	}
	return nil
}

// DisplayName is the team's name, or its leader's name when unnamed.
func (t *TeamDef) DisplayName() string {
	if t.Name != "" || len(t.Members) == 0 {
		return t.Name
	}
	return t.Members[t.LeaderIndex()].Name
}

// LeaderIndex is the index of the member flagged leader, or 0.
func (t *TeamDef) LeaderIndex() int {
	for i, m := range t.Members {
		if m.Leader {
			return i
		}
	}
	return 0
}
