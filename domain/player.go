package domain

// Player identifies a poker player. Players are equal when their
// identifiers are equal, which makes Player usable as a map key.
type Player string

// String returns the player's identifier.
func (p Player) String() string {
	return string(p)
}
