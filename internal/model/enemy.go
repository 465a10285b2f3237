package model

// Enemy is a hostile entity definition served to the game client.
type Enemy struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Speed    float64 `json:"speed"`
	Jump     float64 `json:"jump"`
	HitSpeed int     `json:"hit_speed"`
	Health   int     `json:"health"`
	// Type is a free-form category (e.g. "goblin").
	Type string `json:"type"`
	// Spawn is the spawn interval in seconds.
	Spawn float64 `json:"spawn"`
	// ProbabilitySpawn is the per-interval spawn probability, in [0, 1].
	ProbabilitySpawn float64 `json:"probability_spawn"`
	Image            string  `json:"image,omitempty"`
}

// EnemyPatch is a partial update to an Enemy. Nil fields are left
// unchanged. The identity is deliberately not patchable.
type EnemyPatch struct {
	Name             *string  `json:"name,omitempty"`
	Speed            *float64 `json:"speed,omitempty"`
	Jump             *float64 `json:"jump,omitempty"`
	HitSpeed         *int     `json:"hit_speed,omitempty"`
	Health           *int     `json:"health,omitempty"`
	Type             *string  `json:"type,omitempty"`
	Spawn            *float64 `json:"spawn,omitempty"`
	ProbabilitySpawn *float64 `json:"probability_spawn,omitempty"`
	Image            *string  `json:"image,omitempty"`
}

// GetID returns the enemy's identity.
func (e Enemy) GetID() int {
	return e.ID
}

// WithID returns a copy of the enemy with the given identity.
func (e Enemy) WithID(id int) Enemy {
	e.ID = id
	return e
}

// Apply merges the patch over the enemy, leaving nil fields unchanged.
func (e Enemy) Apply(patch EnemyPatch) Enemy {
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Speed != nil {
		e.Speed = *patch.Speed
	}
	if patch.Jump != nil {
		e.Jump = *patch.Jump
	}
	if patch.HitSpeed != nil {
		e.HitSpeed = *patch.HitSpeed
	}
	if patch.Health != nil {
		e.Health = *patch.Health
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Spawn != nil {
		e.Spawn = *patch.Spawn
	}
	if patch.ProbabilitySpawn != nil {
		e.ProbabilitySpawn = *patch.ProbabilitySpawn
	}
	if patch.Image != nil {
		e.Image = *patch.Image
	}
	return e
}

// Validate checks the enemy's field constraints.
func (e Enemy) Validate() error {
	if e.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if e.Speed <= 0 {
		return &ValidationError{Field: "speed", Reason: "must be positive"}
	}
	if e.Jump <= 0 {
		return &ValidationError{Field: "jump", Reason: "must be positive"}
	}
	if e.HitSpeed < 0 {
		return &ValidationError{Field: "hit_speed", Reason: "must not be negative"}
	}
	if e.Health < 0 {
		return &ValidationError{Field: "health", Reason: "must not be negative"}
	}
	if e.Type == "" {
		return &ValidationError{Field: "type", Reason: "must not be empty"}
	}
	if e.Spawn <= 0 {
		return &ValidationError{Field: "spawn", Reason: "must be positive"}
	}
	if e.ProbabilitySpawn < 0 || e.ProbabilitySpawn > 1 {
		return &ValidationError{Field: "probability_spawn", Reason: "must be between 0 and 1"}
	}
	return nil
}
