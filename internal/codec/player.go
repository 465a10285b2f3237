package codec

import (
	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/store"
)

// DefaultName substitutes for a missing or empty stored name.
const DefaultName = "Unknown"

var playerFields = []string{
	"id", "name", "health", "regenerate_health", "speed", "jump",
	"is_dead", "armor", "hit_speed", "image",
}

type playerCodec struct{}

// Player returns the codec for the Player entity kind.
func Player() Codec[model.Player] {
	return playerCodec{}
}

func (playerCodec) Fields() []string {
	return playerFields
}

func (playerCodec) Encode(p model.Player) store.Row {
	return store.Row{
		"id":                formatInt(p.ID),
		"name":              p.Name,
		"health":            formatInt(p.Health),
		"regenerate_health": formatInt(p.RegenerateHealth),
		"speed":             formatFloat(p.Speed),
		"jump":              formatFloat(p.Jump),
		"is_dead":           formatBool(p.IsDead),
		"armor":             formatInt(p.Armor),
		"hit_speed":         formatInt(p.HitSpeed),
		"image":             p.Image,
	}
}

func (playerCodec) Decode(row store.Row) (model.Player, error) {
	var p model.Player
	var err error

	if p.ID, err = parseInt(row, "id"); err != nil {
		return model.Player{}, err
	}
	if p.Health, err = parseInt(row, "health"); err != nil {
		return model.Player{}, err
	}
	if p.RegenerateHealth, err = parseInt(row, "regenerate_health"); err != nil {
		return model.Player{}, err
	}
	if p.Speed, err = parseFloat(row, "speed"); err != nil {
		return model.Player{}, err
	}
	if p.Jump, err = parseFloat(row, "jump"); err != nil {
		return model.Player{}, err
	}
	if p.IsDead, err = parseBool(row, "is_dead"); err != nil {
		return model.Player{}, err
	}
	if p.Armor, err = parseInt(row, "armor"); err != nil {
		return model.Player{}, err
	}
	if p.HitSpeed, err = parseInt(row, "hit_speed"); err != nil {
		return model.Player{}, err
	}

	// Lenient for optional text fields, matching partially-written files.
	p.Name = stringOr(row, "name", DefaultName)
	p.Image = stringOr(row, "image", "")

	return p, nil
}
