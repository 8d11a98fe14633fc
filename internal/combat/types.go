package combat

import "fmt"

type Event struct {
	Round   int            `json:"round"`
	Team    string         `json:"team,omitempty"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Kind int

const (
	KindGunfighter Kind = iota
	KindBladeFighter
)

func (k Kind) String() string {
	switch k {
	case KindGunfighter:
		return "gunfighter"
	case KindBladeFighter:
		return "blade"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Combatant is implemented by *Gunfighter and *BladeFighter only.
type Combatant interface {
	Name() string
	Health() int
	IsAlive() bool
	Position() Vec2
	SetPosition(Vec2)
	Hit(damage int) error
	JoinTeam() error
	BecomeLeader() error
	InTeam() bool
	IsLeader() bool

	Kind() Kind
	AsGunfighter() (*Gunfighter, bool)
	AsBladeFighter() (*BladeFighter, bool)
	Describe() Report

	character() *Character
}

// Report is a snapshot of one combatant for rendering elsewhere.
type Report struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Rank     string `json:"rank,omitempty"`
	Health   int    `json:"health"`
	Alive    bool   `json:"alive"`
	Leader   bool   `json:"leader"`
	Position Vec2   `json:"position"`
	Ammo     int    `json:"ammo,omitempty"`
	Speed    int    `json:"speed,omitempty"`
}

// Character carries the state shared by every combatant.
type Character struct {
	name   string
	health int
	pos    Vec2
	inTeam bool
	leader bool
}

func newCharacter(name string, health int, pos Vec2) (Character, error) {
	if health < 0 {
		return Character{}, fmt.Errorf("character %q with health %d: %w", name, health, ErrNegativeHealth)
	}
	return Character{name: name, health: health, pos: pos}, nil
}

func (c *Character) Name() string       { return c.name }
func (c *Character) Health() int        { return c.health }
func (c *Character) IsAlive() bool      { return c.health > 0 }
func (c *Character) Position() Vec2     { return c.pos }
func (c *Character) SetPosition(p Vec2) { c.pos = p }
func (c *Character) InTeam() bool       { return c.inTeam }
func (c *Character) IsLeader() bool     { return c.leader }

// Hit applies damage, clamping health at zero. Dead characters ignore hits.
func (c *Character) Hit(damage int) error {
	if damage < 0 {
		return fmt.Errorf("hit %s for %d: %w", c.name, damage, ErrNegativeDamage)
	}
	if !c.IsAlive() || damage == 0 {
		return nil
	}
	c.health -= damage
	if c.health < 0 {
		c.health = 0
	}
	return nil
}

// JoinTeam marks the character as a team member. Membership is permanent.
func (c *Character) JoinTeam() error {
	if c.inTeam {
		return fmt.Errorf("%s: %w", c.name, ErrAlreadyInTeam)
	}
	c.inTeam = true
	return nil
}

func (c *Character) BecomeLeader() error {
	if c.leader {
		return fmt.Errorf("%s: %w", c.name, ErrAlreadyLeader)
	}
	c.leader = true
	return nil
}

func (c *Character) report(kind Kind) Report {
	return Report{
		Name:     c.name,
		Kind:     kind.String(),
		Health:   c.health,
		Alive:    c.IsAlive(),
		Leader:   c.leader,
		Position: c.pos,
	}
}

// distanceTo is the distance between two combatants' current positions.
func distanceTo(a, b Combatant) float64 {
	return Distance(a.Position(), b.Position())
}

// isNil reports whether c is nil, including a nil *Gunfighter or *BladeFighter
// held in the interface.
func isNil(c Combatant) bool {
	return c == nil || c.character() == nil
}

// checkTarget runs the precondition set shared by every offensive action.
func checkTarget(self *Character, target Combatant, verb string, requireLiveTarget bool) error {
	if isNil(target) {
		return fmt.Errorf("%s cannot %s: %w", self.name, verb, ErrNilTarget)
	}
	if target.character() == self {
		return fmt.Errorf("%s cannot %s: %w", self.name, verb, ErrSelfTarget)
	}
	if !self.IsAlive() {
		return fmt.Errorf("%s cannot %s: %w", self.name, verb, ErrActorDead)
	}
	if requireLiveTarget && !target.IsAlive() {
		return fmt.Errorf("%s cannot %s %s: %w", self.name, verb, target.Name(), ErrTargetDead)
	}
	return nil
}
