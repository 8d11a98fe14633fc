package combat

import (
	"fmt"
	"strings"

	"skirmish/internal/config"
)

// BuildCombatant creates the combatant described by md.
func BuildCombatant(md config.MemberDef) (Combatant, error) {
	pos := Vec2{X: md.Spawn.X, Y: md.Spawn.Y}
	switch strings.ToLower(md.Kind) {
	case config.KindGunfighter:
		return NewGunfighter(md.Name, pos), nil
	case config.KindBlade:
		rank := strings.ToLower(md.Rank)
		if rank == "" || rank == RankCustom {
			if md.Health == 0 && md.Speed == 0 && rank == "" {
				return NewTrainedBladeFighter(md.Name, pos), nil
			}
			return NewBladeFighter(md.Name, md.Health, pos, md.Speed)
		}
		return NewRankedBladeFighter(md.Name, rank, pos)
	}
	return nil, fmt.Errorf("member %q kind %q: %w", md.Name, md.Kind, ErrUnsupportedCombatant)
}

// BuildRoster creates the roster described by td. The member flagged as leader
// founds the roster and the rest join in file order.
func BuildRoster(td config.TeamDef) (*Roster, error) {
	if len(td.Members) == 0 {
		return nil, fmt.Errorf("team %q: %w", td.Name, ErrNilCombatant)
	}
	variant, err := ParseVariant(td.Policy)
	if err != nil {
		return nil, fmt.Errorf("team %q: %w", td.Name, err)
	}
	members := make([]Combatant, len(td.Members))
	for i, md := range td.Members {
		c, err := BuildCombatant(md)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", td.Name, err)
		}
		members[i] = c
	}

	li := td.LeaderIndex()
	r, err := NewVariantRoster(variant, members[li])
	if err != nil {
		return nil, fmt.Errorf("team %q: %w", td.Name, err)
	}
	if td.Name != "" {
		r.Name = td.Name
	}
	for i, c := range members {
		if i == li {
			continue
		}
		if err := r.Add(c); err != nil {
			return nil, fmt.Errorf("team %q: %w", td.Name, err)
		}
	}
	return r, nil
}

// BuildEncounter creates both rosters of a validated scenario.
func BuildEncounter(sc *config.ScenarioConfig) (*Roster, *Roster, error) {
	if err := sc.Validate(); err != nil {
		return nil, nil, err
	}
	first, err := BuildRoster(sc.Teams[0])
	if err != nil {
		return nil, nil, err
	}
	second, err := BuildRoster(sc.Teams[1])
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}
