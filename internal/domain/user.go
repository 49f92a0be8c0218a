package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvatarURL is assigned to every new profile until the user picks one.
const DefaultAvatarURL = "https://upload.wikimedia.org/wikipedia/commons/0/0b/Netflix-avatar.png"

// Plan is a subscription tier.
type Plan string

const (
	PlanBasic    Plan = "Basic"
	PlanStandard Plan = "Standard"
	PlanPremium  Plan = "Premium"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanBasic, PlanStandard, PlanPremium:
		return true
	}
	return false
}

type Profile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	Plan         Plan      `json:"plan"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the account view returned to clients. The password hash
// never leaves the service layer.
type PublicUser struct {
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
	Plan    Plan    `json:"plan"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		Email:   u.Email,
		Profile: u.Profile,
		Plan:    u.Plan,
	}
}
