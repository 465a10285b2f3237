package response

import "github.com/pixelforge/gamevault/internal/model"

// Player represents a player in API responses
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
	Image            string  `json:"image,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:               p.ID,
		Name:             p.Name,
		Health:           p.Health,
		RegenerateHealth: p.RegenerateHealth,
		Speed:            p.Speed,
		Jump:             p.Jump,
		IsDead:           p.IsDead,
		Armor:            p.Armor,
		HitSpeed:         p.HitSpeed,
		Image:            p.Image,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Enemy represents an enemy in API responses
type Enemy struct {
	ID               int     `json:"id"`
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

// EnemyFromModel converts a model.Enemy to a response Enemy
func EnemyFromModel(e model.Enemy) Enemy {
	return Enemy{
		ID:               e.ID,
		Name:             e.Name,
		Speed:            e.Speed,
		Jump:             e.Jump,
		HitSpeed:         e.HitSpeed,
		Health:           e.Health,
		Type:             e.Type,
		Spawn:            e.Spawn,
		ProbabilitySpawn: e.ProbabilitySpawn,
		Image:            e.Image,
	}
}

// EnemiesFromModel converts a slice of enemies
func EnemiesFromModel(enemies []model.Enemy) []Enemy {
	out := make([]Enemy, len(enemies))
	for i, e := range enemies {
		out[i] = EnemyFromModel(e)
	}
	return out
}
