package roles

// Role is the resolved identity of an actor. It comes from the access-code
// boundary and is the only identity the engines ever see.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleTeam  Role = "team"
	RoleNone  Role = "none"
)

// Parse maps a stored role string back to a Role. Anything unrecognized is
// treated as unauthenticated.
func Parse(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleTeam:
		return RoleTeam
	}
	return RoleNone
}

// Entity is the kind of record an action targets.
type Entity string

const (
	EntityDocument Entity = "document"
	EntityTicket   Entity = "ticket"
	EntityLinks    Entity = "links"
)

// Action is a mutation an actor may attempt against an entity kind.
type Action string

const (
	ActionCreate        Action = "create"
	ActionEdit          Action = "edit"
	ActionDelete        Action = "delete" // hard delete
	ActionHide          Action = "hide"   // soft delete (team-view removal)
	ActionRestore       Action = "restore"
	ActionToggleVisible Action = "toggle_visible"
	ActionTogglePin     Action = "toggle_pin"
	ActionToggleStatus  Action = "toggle_status"
	ActionMoveToDone    Action = "move_to_done"
)

// Can reports whether a role is permitted to perform an action on an entity
// kind. This is a pure capability matrix evaluated on the client side of the
// store; it gates usability, it is not a security boundary.
func Can(role Role, entity Entity, action Action) bool {
	switch role {
	case RoleAdmin:
		// Admin is a superset everywhere except the team-only soft-delete
		// flag, which admins only inspect and restore.
		if entity == EntityTicket && action == ActionHide {
			return false
		}
		return true
	case RoleTeam:
		if entity != EntityTicket {
			return false
		}
		switch action {
		case ActionCreate, ActionEdit, ActionHide:
			return true
		}
		return false
	}
	return false
}
