package combat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEncounter_Duel(t *testing.T) {
	ann := NewGunfighter("Ann", Vec2{0, 0})
	bo, err := NewBladeFighter("Bo", 100, Vec2{0, 0}, 10)
	require.NoError(t, err)
	r1 := mustRoster(t, NewRoster, ann)
	r2 := mustRoster(t, NewRoster, bo)

	res, err := RunEncounter(r1, r2, EncounterOptions{Record: true})
	require.NoError(t, err)

	// each round: Ann shoots for 10, Bo slashes for 40
	assert.Equal(t, 3, res.Rounds)
	assert.Equal(t, "Bo", res.Winner)
	assert.False(t, res.Draw)
	assert.Equal(t, 70, bo.Health())
	assert.Equal(t, 0, ann.Health())
	assert.Equal(t, map[string]int{"Ann": 0, "Bo": 1}, res.Survivors)
	require.Len(t, res.Teams, 2)
	assert.Equal(t, 0, res.Teams[0].Alive)

	require.NotEmpty(t, res.Events)
	assert.Equal(t, "Ann", res.Events[0].Team)
	assert.Equal(t, EventFire, res.Events[0].Type)
	assert.Equal(t, EventDefeated, res.Events[len(res.Events)-1].Type)
	assert.Nil(t, r1.Emit)
	assert.Nil(t, r2.Emit)
}

func TestRunEncounter_RoundLimitIsDraw(t *testing.T) {
	g := NewGunfighter("g", Vec2{0, 0})
	k := NewOldBladeFighter("k", Vec2{100, 0})
	r1 := mustRoster(t, NewRoster, g)
	r2 := mustRoster(t, NewRoster, k)

	res, err := RunEncounter(r1, r2, EncounterOptions{MaxRounds: 1})
	require.NoError(t, err)

	assert.True(t, res.Draw)
	assert.Empty(t, res.Winner)
	assert.Equal(t, 1, res.Rounds)
	assert.Empty(t, res.Events)
	assert.Equal(t, 140, k.Health())
	assert.Equal(t, Vec2{92, 0}, k.Position())
}

func TestRunEncounter_FirstStrikeCanEndIt(t *testing.T) {
	g := NewGunfighter("g", Vec2{0, 0})
	k := NewYoungBladeFighter("k", Vec2{0, 0})
	require.NoError(t, k.Hit(95))
	r1 := mustRoster(t, NewSequentialRoster, g)
	r2 := mustRoster(t, NewRoster, k)

	res, err := RunEncounter(r1, r2, EncounterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "g", res.Winner)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, GunfighterHealth, g.Health())
}

func TestRunEncounter_InvalidRosters(t *testing.T) {
	r := mustRoster(t, NewRoster, NewGunfighter("g", Vec2{}))

	_, err := RunEncounter(nil, r, EncounterOptions{})
	assert.ErrorIs(t, err, ErrNilRoster)
	_, err = RunEncounter(r, r, EncounterOptions{})
	assert.ErrorIs(t, err, ErrSelfAttack)
}

func TestRunEncounter_AlreadyDefeatedSide(t *testing.T) {
	r1 := mustRoster(t, NewRoster, NewGunfighter("g", Vec2{}))
	k := NewYoungBladeFighter("k", Vec2{})
	r2 := mustRoster(t, NewRoster, k)
	require.NoError(t, k.Hit(1000))

	res, err := RunEncounter(r1, r2, EncounterOptions{})
	require.NoError(t, err, "a defeated side ends the encounter before any attack")
	assert.Equal(t, 0, res.Rounds)
	assert.Equal(t, "g", res.Winner)
}

func TestMarshalPretty(t *testing.T) {
	res := EncounterResult{Winner: "Posse", Rounds: 4, Survivors: map[string]int{"Posse": 2}}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(MarshalPretty(res), &decoded))
	assert.Equal(t, "Posse", decoded["winner"])
	assert.Equal(t, float64(4), decoded["rounds"])
	assert.NotContains(t, decoded, "events")
}

func TestRunEncounter_SameTeamNames(t *testing.T) {
	r1 := mustRoster(t, NewRoster, NewGunfighter("X", Vec2{}))
	r2 := mustRoster(t, NewRoster, NewGunfighter("X", Vec2{5, 0}))

	_, err := RunEncounter(r1, r2, EncounterOptions{})
	assert.ErrorIs(t, err, ErrDuplicateTeamName)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, r1.Round(), "no attack before validation passes")

	r2.Name = "Y"
	res, err := RunEncounter(r1, r2, EncounterOptions{MaxRounds: 1})
	require.NoError(t, err)
	assert.Len(t, res.Survivors, 2)
}
