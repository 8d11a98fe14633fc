package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenario = `
name: canyon
max_rounds: 50
teams:
  - name: Posse
    policy: classic
    members:
      - {name: Ann, kind: gunfighter, spawn: {x: 0, y: 0}}
      - {name: Bo, kind: blade, rank: custom, health: 100, speed: 10, spawn: {x: 1, y: 1}, leader: true}
  - name: Clan
    policy: tactical
    members:
      - {name: Rei, kind: blade, rank: young, spawn: {x: 9, y: 9}}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, sampleScenario))
	require.NoError(t, err)

	assert.Equal(t, "canyon", sc.Name)
	assert.Equal(t, 50, sc.MaxRounds)
	require.Len(t, sc.Teams, 2)

	posse := sc.Teams[0]
	assert.Equal(t, "classic", posse.Policy)
	require.Len(t, posse.Members, 2)
	assert.Equal(t, MemberDef{
		Name: "Bo", Kind: "blade", Rank: "custom", Health: 100, Speed: 10,
		Spawn: Vec2Def{X: 1, Y: 1}, Leader: true,
	}, posse.Members[1])
	assert.Equal(t, 1, posse.LeaderIndex())
	assert.Equal(t, 0, sc.Teams[1].LeaderIndex())
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := map[string]string{
		"one team": `
teams:
  - name: alone
    members: [{name: a, kind: gunfighter}]
`,
		"unknown policy": `
teams:
  - {name: a, policy: chaotic, members: [{name: a, kind: gunfighter}]}
  - {name: b, members: [{name: b, kind: gunfighter}]}
`,
		"unknown kind": `
teams:
  - {name: a, members: [{name: a, kind: wizard}]}
  - {name: b, members: [{name: b, kind: gunfighter}]}
`,
		"unknown rank": `
teams:
  - {name: a, members: [{name: a, kind: blade, rank: ancient}]}
  - {name: b, members: [{name: b, kind: gunfighter}]}
`,
		"two leaders": `
teams:
  - {name: a, members: [{name: a, kind: gunfighter, leader: true}, {name: c, kind: gunfighter, leader: true}]}
  - {name: b, members: [{name: b, kind: gunfighter}]}
`,
		"empty team": `
teams:
  - {name: a, members: []}
  - {name: b, members: [{name: b, kind: gunfighter}]}
`,
		"negative rounds": `
max_rounds: -1
teams:
  - {name: a, members: [{name: a, kind: gunfighter}]}
  - {name: b, members: [{name: b, kind: gunfighter}]}
`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, body))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestLoadScenario_TooManyMembers(t *testing.T) {
	sc := DefaultScenario()
	for i := 0; i < maxTeamSize; i++ {
		sc.Teams[0].Members = append(sc.Teams[0].Members, MemberDef{Name: "extra", Kind: KindGunfighter})
	}
	assert.ErrorIs(t, sc.Validate(), ErrInvalidScenario)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadScenario_BadYAML(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, "teams: [unclosed"))
	assert.Error(t, err)
}

func TestDefaultScenarioIsValid(t *testing.T) {
	assert.NoError(t, DefaultScenario().Validate())
}

func TestValidate_DuplicateTeamNames(t *testing.T) {
	named := DefaultScenario()
	named.Teams[1].Name = named.Teams[0].Name
	assert.ErrorIs(t, named.Validate(), ErrInvalidScenario)

	unnamed := DefaultScenario()
	unnamed.Teams[0].Name = ""
	unnamed.Teams[1].Name = ""
	unnamed.Teams[1].Members[0].Name = "Tom"
	assert.Equal(t, "Tom", unnamed.Teams[0].DisplayName())
	assert.ErrorIs(t, unnamed.Validate(), ErrInvalidScenario, "leader names stand in for missing team names")

	unnamed.Teams[1].Members[0].Name = "Sushi"
	assert.NoError(t, unnamed.Validate())
}

func TestValidate_MemberStats(t *testing.T) {
	tests := []struct {
		name    string
		member  MemberDef
		wantErr bool
	}{
		{"plain gunfighter", MemberDef{Kind: KindGunfighter}, false},
		{"gunfighter with health", MemberDef{Kind: KindGunfighter, Health: 50}, true},
		{"gunfighter with speed", MemberDef{Kind: KindGunfighter, Speed: 3}, true},
		{"preset rank", MemberDef{Kind: KindBlade, Rank: "old"}, false},
		{"preset rank with stats", MemberDef{Kind: KindBlade, Rank: "young", Health: 80}, true},
		{"default blade", MemberDef{Kind: KindBlade}, false},
		{"implied custom", MemberDef{Kind: KindBlade, Health: 60, Speed: 4}, false},
		{"custom without stats", MemberDef{Kind: KindBlade, Rank: "custom"}, true},
		{"custom without health", MemberDef{Kind: KindBlade, Rank: "custom", Speed: 4}, true},
		{"custom negative speed", MemberDef{Kind: KindBlade, Rank: "custom", Health: 60, Speed: -1}, true},
		{"custom still", MemberDef{Kind: KindBlade, Rank: "custom", Health: 60}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := DefaultScenario()
			tt.member.Name = "extra"
			sc.Teams[0].Members = append(sc.Teams[0].Members, tt.member)
			err := sc.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidScenario)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
