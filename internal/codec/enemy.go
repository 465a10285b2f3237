package codec

import (
	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/store"
)

// DefaultEnemyType substitutes for a missing or empty stored type.
const DefaultEnemyType = "unknown"

var enemyFields = []string{
	"id", "name", "speed", "jump", "hit_speed", "health", "type",
	"spawn", "probability_spawn", "image",
}

type enemyCodec struct{}

// Enemy returns the codec for the Enemy entity kind.
func Enemy() Codec[model.Enemy] {
	return enemyCodec{}
}

func (enemyCodec) Fields() []string {
	return enemyFields
}

func (enemyCodec) Encode(e model.Enemy) store.Row {
	return store.Row{
		"id":                formatInt(e.ID),
		"name":              e.Name,
		"speed":             formatFloat(e.Speed),
		"jump":              formatFloat(e.Jump),
		"hit_speed":         formatInt(e.HitSpeed),
		"health":            formatInt(e.Health),
		"type":              e.Type,
		"spawn":             formatFloat(e.Spawn),
		"probability_spawn": formatFloat(e.ProbabilitySpawn),
		"image":             e.Image,
	}
}

func (enemyCodec) Decode(row store.Row) (model.Enemy, error) {
	var e model.Enemy
	var err error

	if e.ID, err = parseInt(row, "id"); err != nil {
		return model.Enemy{}, err
	}
	if e.Speed, err = parseFloat(row, "speed"); err != nil {
		return model.Enemy{}, err
	}
	if e.Jump, err = parseFloat(row, "jump"); err != nil {
		return model.Enemy{}, err
	}
	if e.HitSpeed, err = parseInt(row, "hit_speed"); err != nil {
		return model.Enemy{}, err
	}
	if e.Health, err = parseInt(row, "health"); err != nil {
		return model.Enemy{}, err
	}
	if e.Spawn, err = parseFloat(row, "spawn"); err != nil {
		return model.Enemy{}, err
	}
	if e.ProbabilitySpawn, err = parseFloat(row, "probability_spawn"); err != nil {
		return model.Enemy{}, err
	}

	e.Name = stringOr(row, "name", DefaultName)
	e.Type = stringOr(row, "type", DefaultEnemyType)
	e.Image = stringOr(row, "image", "")

	return e, nil
}
