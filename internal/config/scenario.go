package config

type ScenarioConfig struct {
	Name      string    `yaml:"name"`
	Note      string    `yaml:"note"`
	MaxRounds int       `yaml:"max_rounds"`
	Teams     []TeamDef `yaml:"teams"`
}

type TeamDef struct {
	Name    string      `yaml:"name"`
	Policy  string      `yaml:"policy"`
	Members []MemberDef `yaml:"members"`
}

type MemberDef struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Rank   string  `yaml:"rank"`
	Health int     `yaml:"health"`
	Speed  int     `yaml:"speed"`
	Spawn  Vec2Def `yaml:"spawn"`
	Leader bool    `yaml:"leader"`
}

type Vec2Def struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Member kinds and roster policies accepted in scenario files.
const (
	KindGunfighter = "gunfighter"
	KindBlade      = "blade"

	PolicyClassic    = "classic"
	PolicySequential = "sequential"
	PolicyTactical   = "tactical"
)

const maxTeamSize = 10

// DefaultScenario is the built-in demo: a classic posse against a tactical clan.
func DefaultScenario() *ScenarioConfig {
	return &ScenarioConfig{
		Name:      "dusty-crossroads",
		Note:      "built-in demo",
		MaxRounds: 200,
		Teams: []TeamDef{
			{
				Name:   "Posse",
				Policy: PolicyClassic,
				Members: []MemberDef{
					{Name: "Tom", Kind: KindGunfighter, Spawn: Vec2Def{X: 0, Y: 0}, Leader: true},
					{Name: "Ann", Kind: KindGunfighter, Spawn: Vec2Def{X: 1, Y: 2}},
					{Name: "Rei", Kind: KindBlade, Rank: "young", Spawn: Vec2Def{X: 2, Y: -1}},
					{Name: "Ken", Kind: KindBlade, Rank: "old", Spawn: Vec2Def{X: -1, Y: 3}},
				},
			},
			{
				Name:   "Clan",
				Policy: PolicyTactical,
				Members: []MemberDef{
					{Name: "Sushi", Kind: KindBlade, Rank: "trained", Spawn: Vec2Def{X: 20, Y: 4}, Leader: true},
					{Name: "Hana", Kind: KindBlade, Rank: "young", Spawn: Vec2Def{X: 22, Y: 0}},
					{Name: "Jack", Kind: KindGunfighter, Spawn: Vec2Def{X: 25, Y: 6}},
					{Name: "Mo", Kind: KindGunfighter, Spawn: Vec2Def{X: 24, Y: -3}},
				},
			},
		},
	}
}
