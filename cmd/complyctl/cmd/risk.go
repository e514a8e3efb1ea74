package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"complyd/internal/risk"
)

// riskInput is the JSON document the risk subcommand consumes. It mirrors
// the POST /v1/risk/assess request body.
type riskInput struct {
	EntityType string        `json:"entity_type"`
	EntityID   string        `json:"entity_id"`
	Factors    []risk.Factor `json:"factors"`
	Context    *risk.Context `json:"context,omitempty"`
}

var riskCmd = &cobra.Command{
	Use:   "risk [file]",
	Short: "Assess entity risk from a factors document (stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(fileArg(args))
		if err != nil {
			return err
		}

		var input riskInput
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			return fmt.Errorf("parse risk input: %w", err)
		}
		for i, f := range input.Factors {
			if f.Likelihood < 1 || f.Likelihood > 5 || f.Impact < 1 || f.Impact > 5 {
				return fmt.Errorf("factors[%d]: likelihood and impact must be between 1 and 5", i)
			}
		}

		assessment, err := risk.NewScorer().Score(input.EntityType, input.EntityID, input.Factors, input.Context)
		if err != nil {
			return err
		}
		return printJSON(assessment)
	},
}

func init() {
	rootCmd.AddCommand(riskCmd)
}
