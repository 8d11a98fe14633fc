package combat

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
)

var (
	ErrNegativeStep   = fmt.Errorf("%w: step distance cannot be negative", ErrInvalidArgument)
	ErrNegativeHealth = fmt.Errorf("%w: health cannot be negative", ErrInvalidArgument)
	ErrNegativeSpeed  = fmt.Errorf("%w: speed cannot be negative", ErrInvalidArgument)
	ErrNegativeDamage = fmt.Errorf("%w: damage cannot be negative", ErrInvalidArgument)
	ErrNilTarget      = fmt.Errorf("%w: nil target", ErrInvalidArgument)
	ErrSelfTarget     = fmt.Errorf("%w: combatant cannot target itself", ErrInvalidArgument)

	ErrAlreadyInTeam = fmt.Errorf("%w: combatant is already in a team", ErrIllegalState)
	ErrAlreadyLeader = fmt.Errorf("%w: combatant is already a leader", ErrIllegalState)
	ErrActorDead     = fmt.Errorf("%w: dead combatants cannot act", ErrIllegalState)
	ErrTargetDead    = fmt.Errorf("%w: target is already dead", ErrIllegalState)
)

var (
	ErrNilCombatant         = fmt.Errorf("%w: nil combatant", ErrInvalidArgument)
	ErrUnsupportedCombatant = fmt.Errorf("%w: combatant is neither a gunfighter nor a blade-fighter", ErrInvalidArgument)
	ErrNilRoster            = fmt.Errorf("%w: nil enemy team", ErrInvalidArgument)
	ErrSelfAttack           = fmt.Errorf("%w: team cannot attack itself", ErrInvalidArgument)
	ErrDuplicateTeamName    = fmt.Errorf("%w: teams in an encounter need distinct names", ErrInvalidArgument)

	ErrRosterFull      = fmt.Errorf("%w: there is no place in the team", ErrIllegalState)
	ErrAlreadyMember   = fmt.Errorf("%w: combatant is already in this team", ErrIllegalState)
	ErrAlreadyEnlisted = fmt.Errorf("%w: combatant has already been added to a team", ErrIllegalState)
	ErrRosterDefeated  = fmt.Errorf("%w: team is dead", ErrIllegalState)
	ErrEnemyDefeated   = fmt.Errorf("%w: enemy team is dead", ErrIllegalState)
)
