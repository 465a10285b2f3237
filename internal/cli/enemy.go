package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEnemyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enemy",
		Short: "Enemy management commands",
	}

	cmd.AddCommand(newEnemyListCmd())
	cmd.AddCommand(newEnemyGetCmd())
	cmd.AddCommand(newEnemyCreateCmd())
	cmd.AddCommand(newEnemyUpdateCmd())
	cmd.AddCommand(newEnemyDeleteCmd())
	cmd.AddCommand(newEnemyDeletedCmd())
	cmd.AddCommand(newEnemyRestoreCmd())
	cmd.AddCommand(newEnemyPurgeCmd())

	return cmd
}

func newEnemyListCmd() *cobra.Command {
	var enemyType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all enemies",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/enemies"
			if enemyType != "" {
				path = "/api/v1/enemies/filter?type=" + enemyType
			}

			var result []Enemy
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&enemyType, "type", "", "Only list enemies of this type")

	return cmd
}

func newEnemyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one enemy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Enemy

			if err := client.Get("/api/v1/enemies/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEnemyCreateCmd() *cobra.Command {
	var (
		name      string
		enemyType string
		health    int
		speed     float64
		jump      float64
		hitSpeed  int
		spawn     float64
		probSpawn float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new enemy",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":              name,
				"type":              enemyType,
				"health":            health,
				"speed":             speed,
				"jump":              jump,
				"hit_speed":         hitSpeed,
				"spawn":             spawn,
				"probability_spawn": probSpawn,
			}
			var result Enemy

			if err := client.Post("/api/v1/enemies", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Enemy name (required)")
	cmd.Flags().StringVar(&enemyType, "type", "", "Enemy type (required)")
	cmd.Flags().IntVar(&health, "health", 50, "Health points")
	cmd.Flags().Float64Var(&speed, "speed", 1.0, "Movement speed")
	cmd.Flags().Float64Var(&jump, "jump", 1.0, "Jump strength")
	cmd.Flags().IntVar(&hitSpeed, "hit-speed", 1, "Attack speed")
	cmd.Flags().Float64Var(&spawn, "spawn", 1.0, "Spawn rate")
	cmd.Flags().Float64Var(&probSpawn, "probability-spawn", 0.5, "Spawn probability between 0 and 1")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newEnemyUpdateCmd() *cobra.Command {
	var (
		name      string
		enemyType string
		health    int
		speed     float64
		jump      float64
		hitSpeed  int
		spawn     float64
		probSpawn float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields on an enemy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags the user set become part of the patch.
			patch := map[string]any{}
			if cmd.Flags().Changed("name") {
				patch["name"] = name
			}
			if cmd.Flags().Changed("type") {
				patch["type"] = enemyType
			}
			if cmd.Flags().Changed("health") {
				patch["health"] = health
			}
			if cmd.Flags().Changed("speed") {
				patch["speed"] = speed
			}
			if cmd.Flags().Changed("jump") {
				patch["jump"] = jump
			}
			if cmd.Flags().Changed("hit-speed") {
				patch["hit_speed"] = hitSpeed
			}
			if cmd.Flags().Changed("spawn") {
				patch["spawn"] = spawn
			}
			if cmd.Flags().Changed("probability-spawn") {
				patch["probability_spawn"] = probSpawn
			}
			if len(patch) == 0 {
				return fmt.Errorf("no fields to update")
			}

			var result Enemy
			if err := client.Patch("/api/v1/enemies/"+args[0], patch, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Enemy name")
	cmd.Flags().StringVar(&enemyType, "type", "", "Enemy type")
	cmd.Flags().IntVar(&health, "health", 0, "Health points")
	cmd.Flags().Float64Var(&speed, "speed", 0, "Movement speed")
	cmd.Flags().Float64Var(&jump, "jump", 0, "Jump strength")
	cmd.Flags().IntVar(&hitSpeed, "hit-speed", 0, "Attack speed")
	cmd.Flags().Float64Var(&spawn, "spawn", 0, "Spawn rate")
	cmd.Flags().Float64Var(&probSpawn, "probability-spawn", 0, "Spawn probability between 0 and 1")

	return cmd
}

func newEnemyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Move an enemy to the deletion history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Enemy

			if err := client.Delete("/api/v1/enemies/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted enemy %d (%s)", result.ID, result.Name))
			return nil
		},
	}
}

func newEnemyDeletedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleted",
		Short: "List the deletion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Enemy

			if err := client.Get("/api/v1/enemies/deleted", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEnemyRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a deleted enemy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Enemy

			if err := client.Post("/api/v1/enemies/"+args[0]+"/revive", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEnemyPurgeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Move every enemy to the deletion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("--confirm is required: purge moves every enemy to the deletion history")
			}

			var result []Enemy
			if err := client.Delete("/api/v1/enemies?confirm=true", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Purged %d enemies", len(result)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the purge")

	return cmd
}
