package cmd

import (
	"fmt"
	"os"

	"token-bridge/core/config"
	"token-bridge/core/gitrepo"
	"token-bridge/core/tokens"
	tokenfeature "token-bridge/feature/tokens"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	tokensRef     string
	tokensRepo    string
	tokensKind    string
	tokensJSON    bool
	tokensHistory int
)

// tokensCmd is the parent command for token document operations.
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Inspect design token documents",
}

// tokensFlattenCmd flattens a token document from a file or a git revision.
var tokensFlattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "List every token of a document",
	Long: `Flattens a JSON or YAML token document into its leaf tokens.

The document is read from a file, or from the configured git repository when
--ref is given (the path defaults to repo.tokens_path).

Examples:
  token-bridge tokens flatten tokens.json --kind color
  token-bridge tokens flatten --ref v1.2.0
  token-bridge tokens flatten design/tokens.yaml --ref main --repo ../design-system`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var doc tokens.Document
		if tokensRef != "" {
			repo, repoCfg, err := openTokenRepo()
			if err != nil {
				return err
			}
			path := repoCfg.TokensPath
			if len(args) == 1 {
				path = args[0]
			}
			d, info, err := repo.ReadDocument(tokensRef, path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s@%s (%s)\n", path, info.Hash[:8], info.Message)
			doc = d
		} else {
			if len(args) == 0 {
				return fmt.Errorf("a document file or --ref is required")
			}
			d, err := readDocumentFile(args[0])
			if err != nil {
				return err
			}
			doc = d
		}

		toks := tokens.Flatten(doc)
		flat := tokenfeature.Filter(tokenfeature.Flattened{
			Tokens:  toks,
			Summary: tokens.Summarize(toks),
		}, tokens.Kind(tokensKind))

		if tokensJSON {
			return renderJSON(cmd.OutOrStdout(), flat)
		}
		renderTokensTable(cmd.OutOrStdout(), flat.Tokens)
		return nil
	},
}

// tokensHistoryCmd lists the commits that touched a token document.
var tokensHistoryCmd = &cobra.Command{
	Use:   "history [path]",
	Short: "List commits that changed a token document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, repoCfg, err := openTokenRepo()
		if err != nil {
			return err
		}
		path := repoCfg.TokensPath
		if len(args) == 1 {
			path = args[0]
		}
		ref := tokensRef
		if ref == "" {
			ref = repoCfg.Ref
		}

		commits, err := repo.History(ref, path, tokensHistory)
		if err != nil {
			return err
		}
		if tokensJSON {
			return renderJSON(cmd.OutOrStdout(), commits)
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"commit", "date", "author", "message"})
		for _, c := range commits {
			t.AppendRow(table.Row{c.Hash[:8], c.When.Format("2006-01-02 15:04"), c.Author, c.Message})
		}
		t.Render()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tokensCmd)
	tokensCmd.AddCommand(tokensFlattenCmd, tokensHistoryCmd)

	tokensCmd.PersistentFlags().StringVar(&tokensRepo, "repo", "", "Git repository path (default: repo.path)")
	tokensCmd.PersistentFlags().StringVar(&tokensRef, "ref", "", "Git revision to read (branch, tag or hash)")
	tokensCmd.PersistentFlags().BoolVar(&tokensJSON, "json", false, "Output JSON")
	tokensFlattenCmd.Flags().StringVar(&tokensKind, "kind", "", "Only list tokens of this type")
	tokensHistoryCmd.Flags().IntVar(&tokensHistory, "limit", 20, "Maximum number of commits")
}

func openTokenRepo() (*gitrepo.Repository, gitrepo.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, gitrepo.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	repoCfg := cfg.Repo
	if tokensRepo != "" {
		repoCfg.Path = tokensRepo
	}
	if repoCfg.Path == "" {
		return nil, repoCfg, fmt.Errorf("no repository configured: set REPO_PATH or pass --repo")
	}
	repo, err := gitrepo.Open(repoCfg.Path)
	if err != nil {
		return nil, repoCfg, err
	}
	return repo, repoCfg, nil
}

func readDocumentFile(path string) (tokens.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := tokens.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
