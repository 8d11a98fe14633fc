package combat

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"skirmish/internal/logger"
)

// DefaultMaxRounds bounds an encounter when the options leave it unset.
const DefaultMaxRounds = 200

type EncounterOptions struct {
	MaxRounds int
	Record    bool
}

type EncounterResult struct {
	Winner    string         `json:"winner,omitempty"`
	Draw      bool           `json:"draw"`
	Rounds    int            `json:"rounds"`
	Survivors map[string]int `json:"survivors"`
	Teams     []RosterReport `json:"teams"`
	Events    []Event        `json:"events,omitempty"`
}

// RunEncounter alternates attacks, first then second, until one roster has no
// living member or MaxRounds full rounds have been played. A round limit with
// both sides standing is a draw. Results are keyed by roster name, so the two
// names must differ.
func RunEncounter(first, second *Roster, opts EncounterOptions) (EncounterResult, error) {
	if first == nil || second == nil {
		return EncounterResult{}, fmt.Errorf("encounter: %w", ErrNilRoster)
	}
	if first == second {
		return EncounterResult{}, fmt.Errorf("encounter: %w", ErrSelfAttack)
	}
	if first.Name == second.Name {
		return EncounterResult{}, fmt.Errorf("encounter %q: %w", first.Name, ErrDuplicateTeamName)
	}
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = DefaultMaxRounds
	}

	var events []Event
	if opts.Record {
		emit := func(ev Event) { events = append(events, ev) }
		prevFirst, prevSecond := first.Emit, second.Emit
		first.Emit, second.Emit = emit, emit
		defer func() { first.Emit, second.Emit = prevFirst, prevSecond }()
	}

	log := logger.Component("encounter").WithFields(logrus.Fields{
		"first":  first.Name,
		"second": second.Name,
	})
	log.WithField("max_rounds", opts.MaxRounds).Info("encounter started")

	rounds := 0
	for rounds < opts.MaxRounds && first.StillAlive() > 0 && second.StillAlive() > 0 {
		rounds++
		if err := first.Attack(second); err != nil {
			return EncounterResult{}, fmt.Errorf("round %d: %w", rounds, err)
		}
		if second.StillAlive() == 0 {
			break
		}
		if err := second.Attack(first); err != nil {
			return EncounterResult{}, fmt.Errorf("round %d: %w", rounds, err)
		}
	}

	res := EncounterResult{
		Rounds: rounds,
		Survivors: map[string]int{
			first.Name:  first.StillAlive(),
			second.Name: second.StillAlive(),
		},
		Teams:  []RosterReport{first.Describe(), second.Describe()},
		Events: events,
	}
	switch {
	case first.StillAlive() > 0 && second.StillAlive() == 0:
		res.Winner = first.Name
	case second.StillAlive() > 0 && first.StillAlive() == 0:
		res.Winner = second.Name
	default:
		res.Draw = true
	}

	log.WithFields(logrus.Fields{
		"rounds": rounds,
		"winner": res.Winner,
		"draw":   res.Draw,
	}).Info("encounter finished")
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
