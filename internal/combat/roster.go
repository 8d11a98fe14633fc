package combat

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"skirmish/internal/logger"
)

// TeamSize is the fixed capacity of every roster.
const TeamSize = 10

type Variant int

const (
	VariantClassic Variant = iota
	VariantSequential
	VariantTactical
)

func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantSequential:
		return "sequential"
	case VariantTactical:
		return "tactical"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return VariantClassic, nil
	case "sequential":
		return VariantSequential, nil
	case "tactical", "smart":
		return VariantTactical, nil
	}
	return 0, fmt.Errorf("unknown roster policy %q: %w", s, ErrInvalidArgument)
}

// Event types emitted by a roster during Attack.
const (
	EventFire       = "Fire"
	EventReload     = "Reload"
	EventSlash      = "Slash"
	EventAdvance    = "Advance"
	EventRetarget   = "Retarget"
	EventSuccession = "Succession"
	EventDefeated   = "Defeated"
)

// Roster is a bounded team of combatants with one leader. Members are never
// removed; the leader is tracked by slot index.
type Roster struct {
	Name string
	Emit func(Event)

	variant     Variant
	tactic      tactic
	slots       [TeamSize]Combatant
	count       int
	gunfighters int
	leader      int
	round       int
}

// NewRoster builds a roster that packs gunfighters from the front, blade-fighters
// from the back, and fights a sticky target chosen by its leader.
func NewRoster(leader Combatant) (*Roster, error) {
	return newRoster(VariantClassic, leader)
}

// NewSequentialRoster seats members in arrival order and otherwise fights like NewRoster.
func NewSequentialRoster(leader Combatant) (*Roster, error) {
	return newRoster(VariantSequential, leader)
}

// NewTacticalRoster seats members like NewRoster; blade-fighters go for the enemy
// nearest to them and gunfighters for the weakest living enemy.
func NewTacticalRoster(leader Combatant) (*Roster, error) {
	return newRoster(VariantTactical, leader)
}

// NewVariantRoster builds a roster of the given variant.
func NewVariantRoster(v Variant, leader Combatant) (*Roster, error) {
	return newRoster(v, leader)
}

func newRoster(v Variant, leader Combatant) (*Roster, error) {
	t, err := tacticFor(v)
	if err != nil {
		return nil, err
	}
	r := &Roster{variant: v, tactic: t, leader: -1}
	if isNil(leader) {
		return nil, fmt.Errorf("new %s roster: %w", v, ErrNilCombatant)
	}
	if leader.IsLeader() {
		return nil, fmt.Errorf("new %s roster led by %s: %w", v, leader.Name(), ErrAlreadyLeader)
	}
	if err := r.checkAdd(leader); err != nil {
		return nil, err
	}
	if err := leader.BecomeLeader(); err != nil {
		return nil, err
	}
	idx, err := r.enlist(leader)
	if err != nil {
		return nil, err
	}
	r.leader = idx
	r.Name = leader.Name()
	return r, nil
}

// Add enlists c. A combatant can belong to one roster in its lifetime.
func (r *Roster) Add(c Combatant) error {
	if err := r.checkAdd(c); err != nil {
		return err
	}
	_, err := r.enlist(c)
	return err
}

func (r *Roster) checkAdd(c Combatant) error {
	if isNil(c) {
		return fmt.Errorf("add to %s: %w", r.Name, ErrNilCombatant)
	}
	if r.count == TeamSize {
		return fmt.Errorf("add %s to %s: %w", c.Name(), r.Name, ErrRosterFull)
	}
	if r.Contains(c) {
		return fmt.Errorf("add %s to %s: %w", c.Name(), r.Name, ErrAlreadyMember)
	}
	if c.InTeam() {
		return fmt.Errorf("add %s to %s: %w", c.Name(), r.Name, ErrAlreadyEnlisted)
	}
	if !isGunfighter(c) && !isBladeFighter(c) {
		return fmt.Errorf("add %s to %s: %w", c.Name(), r.Name, ErrUnsupportedCombatant)
	}
	return nil
}

func (r *Roster) enlist(c Combatant) (int, error) {
	idx := r.tactic.slotFor(r, c)
	if err := c.JoinTeam(); err != nil {
		return -1, err
	}
	r.slots[idx] = c
	r.count++
	if isGunfighter(c) {
		r.gunfighters++
	}
	return idx, nil
}

// Attack runs one round of this roster's members against enemies.
func (r *Roster) Attack(enemies *Roster) error {
	if enemies == nil {
		return fmt.Errorf("%s attack: %w", r.Name, ErrNilRoster)
	}
	if enemies == r {
		return fmt.Errorf("%s attack: %w", r.Name, ErrSelfAttack)
	}
	if r.StillAlive() == 0 {
		return fmt.Errorf("%s attack: %w", r.Name, ErrRosterDefeated)
	}
	if enemies.StillAlive() == 0 {
		return fmt.Errorf("%s attack on %s: %w", r.Name, enemies.Name, ErrEnemyDefeated)
	}

	r.round++
	if err := r.ensureLeader(); err != nil {
		return err
	}
	if err := r.tactic.engage(r, enemies); err != nil {
		return err
	}
	if enemies.StillAlive() == 0 {
		r.emit(EventDefeated, map[string]any{"enemy": enemies.Name})
		r.log().WithField("enemy", enemies.Name).Info("enemy team defeated")
	}
	return nil
}

// ensureLeader promotes the living member nearest to a dead leader's last position.
func (r *Roster) ensureLeader() error {
	old := r.slots[r.leader]
	if old.IsAlive() {
		return nil
	}
	idx := r.nearestSlot(old.Position())
	if idx < 0 {
		return fmt.Errorf("%s succession: %w", r.Name, ErrRosterDefeated)
	}
	next := r.slots[idx]
	if err := next.BecomeLeader(); err != nil {
		return err
	}
	r.leader = idx
	r.emit(EventSuccession, map[string]any{"from": old.Name(), "to": next.Name()})
	r.log().WithFields(logrus.Fields{
		"old_leader": old.Name(),
		"new_leader": next.Name(),
	}).Info("leader succeeded")
	return nil
}

// act performs one member's turn against target: shoot or reload, slash or advance.
func (r *Roster) act(m, target Combatant) error {
	if g, ok := m.AsGunfighter(); ok {
		if !g.HasAmmo() {
			if err := g.Reload(); err != nil {
				return err
			}
			r.emit(EventReload, map[string]any{"actor": g.Name()})
			return nil
		}
		if err := g.Fire(target); err != nil {
			return err
		}
		r.emit(EventFire, map[string]any{
			"actor": g.Name(), "target": target.Name(), "dmg": ShotDamage,
			"hp": target.Health(), "ammo": g.Ammo(),
		})
		return nil
	}
	if b, ok := m.AsBladeFighter(); ok {
		if !b.InReach(target) {
			from := b.Position()
			if err := b.Advance(target); err != nil {
				return err
			}
			to := b.Position()
			r.emit(EventAdvance, map[string]any{
				"actor": b.Name(), "target": target.Name(),
				"from": []float64{from.X, from.Y}, "to": []float64{to.X, to.Y},
			})
			return nil
		}
		if err := b.Slash(target); err != nil {
			return err
		}
		r.emit(EventSlash, map[string]any{
			"actor": b.Name(), "target": target.Name(), "dmg": SlashDamage, "hp": target.Health(),
		})
		return nil
	}
	return fmt.Errorf("%s: %w", m.Name(), ErrUnsupportedCombatant)
}

// nearestSlot returns the slot of the living member closest to pos, or -1.
// Slots are scanned 0..TeamSize-1 and ties keep the earlier slot.
func (r *Roster) nearestSlot(pos Vec2) int {
	best := -1
	bestDist := 0.0
	for i, m := range r.slots {
		if m == nil || !m.IsAlive() {
			continue
		}
		d := Distance(pos, m.Position())
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// NearestTo returns the living member closest to pos, or nil when none is alive.
func (r *Roster) NearestTo(pos Vec2) Combatant {
	if idx := r.nearestSlot(pos); idx >= 0 {
		return r.slots[idx]
	}
	return nil
}

// Weakest returns the living member with the lowest health, earliest slot first.
func (r *Roster) Weakest() Combatant {
	var weakest Combatant
	for _, m := range r.slots {
		if m == nil || !m.IsAlive() {
			continue
		}
		if weakest == nil || m.Health() < weakest.Health() {
			weakest = m
		}
	}
	return weakest
}

func (r *Roster) StillAlive() int {
	alive := 0
	for _, m := range r.slots {
		if m != nil && m.IsAlive() {
			alive++
		}
	}
	return alive
}

func (r *Roster) Contains(c Combatant) bool {
	if isNil(c) {
		return false
	}
	for _, m := range r.slots {
		if m != nil && m.character() == c.character() {
			return true
		}
	}
	return false
}

func (r *Roster) Count() int         { return r.count }
func (r *Roster) Gunfighters() int   { return r.gunfighters }
func (r *Roster) BladeFighters() int { return r.count - r.gunfighters }
func (r *Roster) Variant() Variant   { return r.variant }
func (r *Roster) Round() int         { return r.round }
func (r *Roster) Leader() Combatant  { return r.slots[r.leader] }

// Slot returns the combatant seated at i, or nil for an empty or out-of-range slot.
func (r *Roster) Slot(i int) Combatant {
	if i < 0 || i >= TeamSize {
		return nil
	}
	return r.slots[i]
}

// Members lists the roster in its scan order: front block then back block for
// classic and tactical rosters, arrival order for sequential ones.
func (r *Roster) Members() []Combatant {
	order := r.tactic.order(r)
	out := make([]Combatant, 0, len(order))
	for _, i := range order {
		out = append(out, r.slots[i])
	}
	return out
}

// RosterReport is a snapshot of a roster for rendering elsewhere.
type RosterReport struct {
	Name    string   `json:"name"`
	Variant string   `json:"variant"`
	Leader  string   `json:"leader"`
	Count   int      `json:"count"`
	Alive   int      `json:"alive"`
	Members []Report `json:"members"`
}

func (r *Roster) Describe() RosterReport {
	rep := RosterReport{
		Name:    r.Name,
		Variant: r.variant.String(),
		Leader:  r.Leader().Name(),
		Count:   r.count,
		Alive:   r.StillAlive(),
	}
	for _, m := range r.Members() {
		rep.Members = append(rep.Members, m.Describe())
	}
	return rep
}

func (r *Roster) emit(typ string, payload map[string]any) {
	if r.Emit == nil {
		return
	}
	r.Emit(Event{Round: r.round, Team: r.Name, Type: typ, Payload: payload})
}

func (r *Roster) log() *logrus.Entry {
	return logger.Component("roster").WithFields(logrus.Fields{
		"team":  r.Name,
		"round": r.round,
	})
}

func isGunfighter(c Combatant) bool {
	_, ok := c.AsGunfighter()
	return ok
}

func isBladeFighter(c Combatant) bool {
	_, ok := c.AsBladeFighter()
	return ok
}
