package request

import "github.com/pixelforge/gamevault/internal/model"

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	Name             string  `json:"name"`
	Health           int     `json:"health"`
	RegenerateHealth int     `json:"regenerate_health"`
	Speed            float64 `json:"speed"`
	Jump             float64 `json:"jump"`
	IsDead           bool    `json:"is_dead"`
	Armor            int     `json:"armor"`
	HitSpeed         int     `json:"hit_speed"`
	Image            string  `json:"image,omitempty"`
}

// ToModel converts the request to a player draft (no identity yet)
func (r CreatePlayerRequest) ToModel() model.Player {
	return model.Player{
		Name:             r.Name,
		Health:           r.Health,
		RegenerateHealth: r.RegenerateHealth,
		Speed:            r.Speed,
		Jump:             r.Jump,
		IsDead:           r.IsDead,
		Armor:            r.Armor,
		HitSpeed:         r.HitSpeed,
		Image:            r.Image,
	}
}

// CreateEnemyRequest is the request body for creating an enemy
type CreateEnemyRequest struct {
	Name             string  `json:"name"`
	Speed            float64 `json:"speed"`
	Jump             float64 `json:"jump"`
	HitSpeed         int     `json:"hit_speed"`
	Health           int     `json:"health"`
	Type             string  `json:"type"`
	Spawn            float64 `json:"spawn"`
	ProbabilitySpawn float64 `json:"probability_spawn"`
	Image            string  `json:"image,omitempty"`
}

// ToModel converts the request to an enemy draft (no identity yet)
func (r CreateEnemyRequest) ToModel() model.Enemy {
	return model.Enemy{
		Name:             r.Name,
		Speed:            r.Speed,
		Jump:             r.Jump,
		HitSpeed:         r.HitSpeed,
		Health:           r.Health,
		Type:             r.Type,
		Spawn:            r.Spawn,
		ProbabilitySpawn: r.ProbabilitySpawn,
		Image:            r.Image,
	}
}

// UpdatePlayerRequest is the request body for a partial player update.
// The identity is not part of the patch and cannot be changed.
type UpdatePlayerRequest = model.PlayerPatch

// UpdateEnemyRequest is the request body for a partial enemy update.
type UpdateEnemyRequest = model.EnemyPatch
