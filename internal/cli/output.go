package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayerList(v)
	case Enemy:
		o.printEnemy(v)
	case []Enemy:
		o.printEnemyList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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
	Image            string  `json:"image"`
}

// Enemy response type (matches API)
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
	Image            string  `json:"image"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	status := "alive"
	if p.IsDead {
		status = "dead"
	}
	fmt.Printf("Player: %s (id %d)\n", p.Name, p.ID)
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Health: %d (+%d regen)\n", p.Health, p.RegenerateHealth)
	fmt.Printf("Armor: %d\n", p.Armor)
	fmt.Printf("Speed: %g  Jump: %g  Hit speed: %d\n", p.Speed, p.Jump, p.HitSpeed)
	if p.Image != "" {
		fmt.Printf("Artwork: %s\n", p.Image)
	}
}

func (o *Output) printPlayerList(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	for _, p := range players {
		status := "alive"
		if p.IsDead {
			status = "dead"
		}
		fmt.Printf("%4d  %-20s  hp=%-5d armor=%-4d %s\n", p.ID, p.Name, p.Health, p.Armor, status)
	}
}

func (o *Output) printEnemy(e Enemy) {
	fmt.Printf("Enemy: %s (id %d)\n", e.Name, e.ID)
	fmt.Printf("Type: %s\n", e.Type)
	fmt.Printf("Health: %d\n", e.Health)
	fmt.Printf("Speed: %g  Jump: %g  Hit speed: %d\n", e.Speed, e.Jump, e.HitSpeed)
	fmt.Printf("Spawn: %g (probability %g)\n", e.Spawn, e.ProbabilitySpawn)
	if e.Image != "" {
		fmt.Printf("Artwork: %s\n", e.Image)
	}
}

func (o *Output) printEnemyList(list []Enemy) {
	if len(list) == 0 {
		fmt.Println("No enemies")
		return
	}
	for _, e := range list {
		fmt.Printf("%4d  %-20s  %-12s hp=%-5d spawn=%g\n", e.ID, e.Name, e.Type, e.Health, e.ProbabilitySpawn)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
