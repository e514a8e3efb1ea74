package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"complyd/internal/regulation"
	"complyd/internal/rules"
	ruleshandler "complyd/internal/rules/handler"
)

var checkFrameworks []string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check content against regulatory frameworks (stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(fileArg(args))
		if err != nil {
			return err
		}

		catalog := regulation.NewCatalog()
		if len(checkFrameworks) == 0 {
			checkFrameworks = catalog.IDs()
		}

		eval, err := rules.NewEngine(catalog).Evaluate(content, checkFrameworks)
		if err != nil {
			return err
		}
		return printJSON(ruleshandler.FromEvaluation(eval, checkFrameworks))
	},
}

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the supported regulatory frameworks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := regulation.NewCatalog()
		for _, fw := range catalog.Frameworks() {
			fmt.Printf("%-8s %s (%s), %d requirements\n", fw.ID, fw.Name, fw.Jurisdiction, len(fw.Requirements))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkFrameworks, "frameworks", nil, "framework ids to evaluate (default: all)")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(frameworksCmd)
}
