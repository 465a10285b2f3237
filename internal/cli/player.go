package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerDeletedCmd())
	cmd.AddCommand(newPlayerRestoreCmd())
	cmd.AddCommand(newPlayerPurgeCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerCreateCmd() *cobra.Command {
	var (
		name     string
		health   int
		regen    int
		speed    float64
		jump     float64
		armor    int
		hitSpeed int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":              name,
				"health":            health,
				"regenerate_health": regen,
				"speed":             speed,
				"jump":              jump,
				"armor":             armor,
				"hit_speed":         hitSpeed,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&health, "health", 100, "Health points")
	cmd.Flags().IntVar(&regen, "regen", 1, "Health regeneration per tick")
	cmd.Flags().Float64Var(&speed, "speed", 1.0, "Movement speed")
	cmd.Flags().Float64Var(&jump, "jump", 1.0, "Jump strength")
	cmd.Flags().IntVar(&armor, "armor", 0, "Armor points")
	cmd.Flags().IntVar(&hitSpeed, "hit-speed", 1, "Attack speed")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var (
		name     string
		health   int
		regen    int
		speed    float64
		jump     float64
		armor    int
		hitSpeed int
		isDead   bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields on a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags the user set become part of the patch.
			patch := map[string]any{}
			if cmd.Flags().Changed("name") {
				patch["name"] = name
			}
			if cmd.Flags().Changed("health") {
				patch["health"] = health
			}
			if cmd.Flags().Changed("regen") {
				patch["regenerate_health"] = regen
			}
			if cmd.Flags().Changed("speed") {
				patch["speed"] = speed
			}
			if cmd.Flags().Changed("jump") {
				patch["jump"] = jump
			}
			if cmd.Flags().Changed("armor") {
				patch["armor"] = armor
			}
			if cmd.Flags().Changed("hit-speed") {
				patch["hit_speed"] = hitSpeed
			}
			if cmd.Flags().Changed("dead") {
				patch["is_dead"] = isDead
			}
			if len(patch) == 0 {
				return fmt.Errorf("no fields to update")
			}

			var result Player
			if err := client.Patch("/api/v1/players/"+args[0], patch, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().IntVar(&health, "health", 0, "Health points")
	cmd.Flags().IntVar(&regen, "regen", 0, "Health regeneration per tick")
	cmd.Flags().Float64Var(&speed, "speed", 0, "Movement speed")
	cmd.Flags().Float64Var(&jump, "jump", 0, "Jump strength")
	cmd.Flags().IntVar(&armor, "armor", 0, "Armor points")
	cmd.Flags().IntVar(&hitSpeed, "hit-speed", 0, "Attack speed")
	cmd.Flags().BoolVar(&isDead, "dead", false, "Dead flag")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Move a player to the deletion history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Delete("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted player %d (%s)", result.ID, result.Name))
			return nil
		},
	}
}

func newPlayerDeletedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleted",
		Short: "List the deletion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players/deleted", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a deleted player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Post("/api/v1/players/"+args[0]+"/revive", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerPurgeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Move every player to the deletion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("--confirm is required: purge moves every player to the deletion history")
			}

			var result []Player
			if err := client.Delete("/api/v1/players?confirm=true", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Purged %d players", len(result)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the purge")

	return cmd
}
