package models

import "alxtravel/src/types"

// User mirrors the identity owned by the external auth subsystem. Role marks
// whether the user hosts listings or books them.
type User struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Username  string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"size:254" json:"email"`
	FirstName string     `gorm:"size:150" json:"first_name"`
	LastName  string     `gorm:"size:150" json:"last_name"`
	Role      types.Role `gorm:"size:10;default:'guest';not null" json:"role"`

	types.Timestamps
}

func (u *User) IsHost() bool {
	return u.Role == types.ROLE_HOST
}
