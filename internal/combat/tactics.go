package combat

import "fmt"

// tactic decides where new members sit and how a roster spends its round.
type tactic interface {
	slotFor(r *Roster, c Combatant) int
	order(r *Roster) []int
	engage(r *Roster, enemies *Roster) error
}

func tacticFor(v Variant) (tactic, error) {
	switch v {
	case VariantClassic:
		return classicTactic{}, nil
	case VariantSequential:
		return sequentialTactic{}, nil
	case VariantTactical:
		return smartTactic{}, nil
	}
	return nil, fmt.Errorf("roster variant %v: %w", v, ErrInvalidArgument)
}

// classicTactic packs gunfighters from slot 0 up and blade-fighters from slot 9 down.
type classicTactic struct{}

func (classicTactic) slotFor(r *Roster, c Combatant) int {
	if isGunfighter(c) {
		return r.gunfighters
	}
	return TeamSize - 1 - r.BladeFighters()
}

func (classicTactic) order(r *Roster) []int {
	return append(frontSlots(r), backSlots(r)...)
}

func (t classicTactic) engage(r *Roster, enemies *Roster) error {
	return engageSticky(r, enemies, t.order(r))
}

// frontSlots are the gunfighter slots, 0 upward.
func frontSlots(r *Roster) []int {
	out := make([]int, 0, r.gunfighters)
	for i := 0; i < r.gunfighters; i++ {
		out = append(out, i)
	}
	return out
}

// backSlots are the blade-fighter slots, TeamSize-1 downward.
func backSlots(r *Roster) []int {
	n := r.BladeFighters()
	out := make([]int, 0, n)
	for i := TeamSize - 1; i >= TeamSize-n; i-- {
		out = append(out, i)
	}
	return out
}

// sequentialTactic seats members in arrival order.
type sequentialTactic struct{}

func (sequentialTactic) slotFor(r *Roster, _ Combatant) int { return r.count }

func (sequentialTactic) order(r *Roster) []int {
	out := make([]int, r.count)
	for i := range out {
		out[i] = i
	}
	return out
}

func (t sequentialTactic) engage(r *Roster, enemies *Roster) error {
	return engageSticky(r, enemies, t.order(r))
}

// engageSticky walks order against one shared target picked by the leader. When
// the target dies the leader picks again; with no enemy left the round ends.
func engageSticky(r *Roster, enemies *Roster, order []int) error {
	target := enemies.NearestTo(r.Leader().Position())
	if target == nil {
		return nil
	}
	for _, i := range order {
		m := r.slots[i]
		if !m.IsAlive() {
			continue
		}
		if err := r.act(m, target); err != nil {
			return err
		}
		if target.IsAlive() {
			continue
		}
		fallen := target.Name()
		target = enemies.NearestTo(r.Leader().Position())
		if target == nil {
			return nil
		}
		r.emit(EventRetarget, map[string]any{"fallen": fallen, "target": target.Name()})
	}
	return nil
}

// smartTactic keeps classic seating and picks a target per actor.
type smartTactic struct {
	classicTactic
}

// engage sends blade-fighters (back block) at whoever is nearest to each of them,
// then has gunfighters (front block) shoot the weakest living enemy.
func (smartTactic) engage(r *Roster, enemies *Roster) error {
	for _, i := range backSlots(r) {
		m := r.slots[i]
		if !m.IsAlive() {
			continue
		}
		target := enemies.NearestTo(m.Position())
		if target == nil {
			return nil
		}
		if err := r.act(m, target); err != nil {
			return err
		}
	}
	for _, i := range frontSlots(r) {
		m := r.slots[i]
		if !m.IsAlive() {
			continue
		}
		target := enemies.Weakest()
		if target == nil {
			return nil
		}
		if err := r.act(m, target); err != nil {
			return err
		}
	}
	return nil
}
