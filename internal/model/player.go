package model

// Player is a playable character definition served to the game client.
type Player struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Health           int     `json:"health"`
	RegenerateHealth int     `json:"regenerate_health"`
	Speed            float64 `json:"speed"`
	Jump             float64 `json:"jump"`
	IsDead           bool    `json:"is_dead"`
	Armor            int     `json:"armor"`
	HitSpeed         int     `json:"hit_speed"`
	// Image is a reference to stored artwork (e.g. /static/uploads/player_1.png).
	// Empty when no artwork has been uploaded yet.
	Image string `json:"image,omitempty"`
}

// PlayerPatch is a partial update to a Player. Nil fields are left
// unchanged. The identity is deliberately not patchable.
type PlayerPatch struct {
	Name             *string  `json:"name,omitempty"`
	Health           *int     `json:"health,omitempty"`
	RegenerateHealth *int     `json:"regenerate_health,omitempty"`
	Speed            *float64 `json:"speed,omitempty"`
	Jump             *float64 `json:"jump,omitempty"`
	IsDead           *bool    `json:"is_dead,omitempty"`
	Armor            *int     `json:"armor,omitempty"`
	HitSpeed         *int     `json:"hit_speed,omitempty"`
	Image            *string  `json:"image,omitempty"`
}

// GetID returns the player's identity.
func (p Player) GetID() int {
	return p.ID
}

// WithID returns a copy of the player with the given identity.
func (p Player) WithID(id int) Player {
	p.ID = id
	return p
}

// Apply merges the patch over the player, leaving nil fields unchanged.
func (p Player) Apply(patch PlayerPatch) Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Health != nil {
		p.Health = *patch.Health
	}
	if patch.RegenerateHealth != nil {
		p.RegenerateHealth = *patch.RegenerateHealth
	}
	if patch.Speed != nil {
		p.Speed = *patch.Speed
	}
	if patch.Jump != nil {
		p.Jump = *patch.Jump
	}
	if patch.IsDead != nil {
		p.IsDead = *patch.IsDead
	}
	if patch.Armor != nil {
		p.Armor = *patch.Armor
	}
	if patch.HitSpeed != nil {
		p.HitSpeed = *patch.HitSpeed
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	return p
}

// Validate checks the player's field constraints.
func (p Player) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Health < 0 {
		return &ValidationError{Field: "health", Reason: "must not be negative"}
	}
	if p.RegenerateHealth < 0 {
		return &ValidationError{Field: "regenerate_health", Reason: "must not be negative"}
	}
	if p.Speed <= 0 {
		return &ValidationError{Field: "speed", Reason: "must be positive"}
	}
	if p.Jump <= 0 {
		return &ValidationError{Field: "jump", Reason: "must be positive"}
	}
	if p.Armor < 0 {
		return &ValidationError{Field: "armor", Reason: "must not be negative"}
	}
	if p.HitSpeed < 0 {
		return &ValidationError{Field: "hit_speed", Reason: "must not be negative"}
	}
	return nil
}
