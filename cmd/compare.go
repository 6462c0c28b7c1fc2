package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"token-bridge/core/reconcile"
	comparefeature "token-bridge/feature/compare"

	"github.com/spf13/cobra"
)

var (
	compareMode   string
	compareStatus string
	compareStrict bool
	compareJSON   bool
	compareFail   bool
)

// compareCmd compares a variable snapshot file with a token document file.
var compareCmd = &cobra.Command{
	Use:   "compare <snapshot.json> <tokens.json|tokens.yaml>",
	Short: "Compare design-tool variables with design tokens",
	Long: `Classifies every variable and token as synced, needs-sync, variable-only
or token-only.

Examples:
  token-bridge compare variables.json tokens.json --mode Dark
  token-bridge compare variables.json tokens.yaml --status needs-sync --fail-on-drift`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := readSnapshotFile(args[0])
		if err != nil {
			return err
		}
		doc, err := readDocumentFile(args[1])
		if err != nil {
			return err
		}
		status, err := comparefeature.ParseStatus(compareStatus)
		if err != nil {
			return err
		}

		svc := comparefeature.NewService(nil, nil, nil, comparefeature.Options{
			DefaultMode: compareMode,
			Strict:      compareStrict,
		}, cliLogger())
		result, _, err := svc.Compare(cmd.Context(), snapshot, comparefeature.Request{Document: doc}.TokenList(), "")
		if err != nil {
			return err
		}

		out := comparefeature.FilterStatus(result, status)
		if compareJSON {
			if err := renderJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
		} else {
			renderCompareTable(cmd.OutOrStdout(), out)
		}

		if compareFail && result.Summary.Synced != result.Summary.Total {
			return fmt.Errorf("%d of %d items are not synced", result.Summary.Total-result.Summary.Synced, result.Summary.Total)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareMode, "mode", "", "Variable mode to compare (default: first mode found)")
	compareCmd.Flags().StringVar(&compareStatus, "status", "", "Only list items with this status")
	compareCmd.Flags().BoolVar(&compareStrict, "strict", false, "Fail when match keys are duplicated")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Output JSON")
	compareCmd.Flags().BoolVar(&compareFail, "fail-on-drift", false, "Exit non-zero unless everything is synced")
}

func readSnapshotFile(path string) (*reconcile.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snapshot reconcile.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &snapshot, nil
}
