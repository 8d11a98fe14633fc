package combat

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"skirmish/internal/logger"
)

const (
	GunfighterHealth = 110
	MaxAmmo          = 6
	ShotDamage       = 10

	SlashDamage = 40
	MeleeRange  = 1.0
)

// Blade-fighter ranks and their fixed (health, speed) presets.
const (
	RankYoung   = "young"
	RankTrained = "trained"
	RankOld     = "old"
	RankCustom  = "custom"
)

type bladePreset struct {
	health int
	speed  int
}

var bladePresets = map[string]bladePreset{
	RankYoung:   {health: 100, speed: 14},
	RankTrained: {health: 120, speed: 12},
	RankOld:     {health: 150, speed: 8},
}

func combatLog(actor Combatant) *logrus.Entry {
	return logger.Component("combat").WithFields(logrus.Fields{
		"actor":        actor.Name(),
		"actor_health": actor.Health(),
	})
}

type Gunfighter struct {
	Character
	ammo int
}

func NewGunfighter(name string, pos Vec2) *Gunfighter {
	return &Gunfighter{
		Character: Character{name: name, health: GunfighterHealth, pos: pos},
		ammo:      MaxAmmo,
	}
}

func (g *Gunfighter) Kind() Kind                            { return KindGunfighter }
func (g *Gunfighter) AsGunfighter() (*Gunfighter, bool)     { return g, true }
func (g *Gunfighter) AsBladeFighter() (*BladeFighter, bool) { return nil, false }

func (g *Gunfighter) character() *Character {
	if g == nil {
		return nil
	}
	return &g.Character
}

func (g *Gunfighter) Ammo() int     { return g.ammo }
func (g *Gunfighter) HasAmmo() bool { return g.ammo > 0 }

// Fire shoots target for ShotDamage. With an empty cylinder the call validates
// and then does nothing.
func (g *Gunfighter) Fire(target Combatant) error {
	if err := checkTarget(&g.Character, target, "fire at", true); err != nil {
		return err
	}
	if !g.HasAmmo() {
		return nil
	}
	g.ammo--
	if err := target.Hit(ShotDamage); err != nil {
		return err
	}
	combatLog(g).WithFields(logrus.Fields{
		"target":    target.Name(),
		"damage":    ShotDamage,
		"hp_after":  target.Health(),
		"ammo_left": g.ammo,
	}).Debug("shot fired")
	return nil
}

func (g *Gunfighter) Reload() error {
	if !g.IsAlive() {
		return fmt.Errorf("%s cannot reload: %w", g.name, ErrActorDead)
	}
	g.ammo = MaxAmmo
	combatLog(g).Debug("reloaded")
	return nil
}

func (g *Gunfighter) Describe() Report {
	r := g.report(KindGunfighter)
	r.Ammo = g.ammo
	return r
}

type BladeFighter struct {
	Character
	speed int
	rank  string
}

// NewBladeFighter builds a blade-fighter with custom stats.
func NewBladeFighter(name string, health int, pos Vec2, speed int) (*BladeFighter, error) {
	ch, err := newCharacter(name, health, pos)
	if err != nil {
		return nil, err
	}
	if speed < 0 {
		return nil, fmt.Errorf("blade-fighter %q with speed %d: %w", name, speed, ErrNegativeSpeed)
	}
	return &BladeFighter{Character: ch, speed: speed, rank: RankCustom}, nil
}

func NewYoungBladeFighter(name string, pos Vec2) *BladeFighter {
	return newRanked(name, RankYoung, pos)
}

func NewTrainedBladeFighter(name string, pos Vec2) *BladeFighter {
	return newRanked(name, RankTrained, pos)
}

func NewOldBladeFighter(name string, pos Vec2) *BladeFighter {
	return newRanked(name, RankOld, pos)
}

// NewRankedBladeFighter builds a preset blade-fighter by rank name.
func NewRankedBladeFighter(name, rank string, pos Vec2) (*BladeFighter, error) {
	if _, ok := bladePresets[rank]; !ok {
		return nil, fmt.Errorf("blade-fighter %q: unknown rank %q: %w", name, rank, ErrInvalidArgument)
	}
	return newRanked(name, rank, pos), nil
}

func newRanked(name, rank string, pos Vec2) *BladeFighter {
	p := bladePresets[rank]
	return &BladeFighter{
		Character: Character{name: name, health: p.health, pos: pos},
		speed:     p.speed,
		rank:      rank,
	}
}

func (b *BladeFighter) Kind() Kind                            { return KindBladeFighter }
func (b *BladeFighter) AsGunfighter() (*Gunfighter, bool)     { return nil, false }
func (b *BladeFighter) AsBladeFighter() (*BladeFighter, bool) { return b, true }

func (b *BladeFighter) character() *Character {
	if b == nil {
		return nil
	}
	return &b.Character
}

func (b *BladeFighter) Speed() int   { return b.speed }
func (b *BladeFighter) Rank() string { return b.rank }

// InReach reports whether target stands within melee range.
func (b *BladeFighter) InReach(target Combatant) bool {
	return distanceTo(b, target) <= MeleeRange
}

// Slash cuts target for SlashDamage when it is within melee range; out of range
// the swing misses silently.
func (b *BladeFighter) Slash(target Combatant) error {
	if err := checkTarget(&b.Character, target, "slash", true); err != nil {
		return err
	}
	if !b.InReach(target) {
		return nil
	}
	if err := target.Hit(SlashDamage); err != nil {
		return err
	}
	combatLog(b).WithFields(logrus.Fields{
		"target":   target.Name(),
		"damage":   SlashDamage,
		"hp_after": target.Health(),
	}).Debug("slash landed")
	return nil
}

// Advance moves up to speed units toward target. Dead targets may still be approached.
func (b *BladeFighter) Advance(target Combatant) error {
	if err := checkTarget(&b.Character, target, "advance on", false); err != nil {
		return err
	}
	dest := target.Position()
	if b.pos.Equal(dest) {
		return nil
	}
	next, err := MoveTowards(b.pos, dest, float64(b.speed))
	if err != nil {
		return err
	}
	from := b.pos
	b.pos = next
	combatLog(b).WithFields(logrus.Fields{
		"target": target.Name(),
		"from":   from.String(),
		"to":     next.String(),
	}).Debug("advanced")
	return nil
}

func (b *BladeFighter) Describe() Report {
	r := b.report(KindBladeFighter)
	r.Rank = b.rank
	r.Speed = b.speed
	return r
}
