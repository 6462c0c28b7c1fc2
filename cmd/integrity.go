package cmd

import (
	"context"
	"errors"
	"fmt"

	"token-bridge/core/config"
	"token-bridge/core/database"
	"token-bridge/core/logger"
	"token-bridge/core/storage"
	"token-bridge/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and the snapshot database",
	Long:  `Checks the bucket folder structure, parses every stored token document and verifies the snapshot table schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// documentsCmd represents the integrity documents command
var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Parse every stored token document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the snapshot database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, documentsCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runDocuments, runSchema bool) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if runSchema {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Engine.DocumentPrefix, db, logg)
	failed := false

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag:
			logg.Info("Fixing missing folders...", zap.Strings("missing", missing))
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run 'integrity structure --fix' to create missing folders.")
			failed = true
		}
	}

	if runDocuments {
		logg.Info("Checking token documents...", zap.String("prefix", cfg.Engine.DocumentPrefix))
		report, err := svc.CheckDocuments(ctx)
		if err != nil {
			return fmt.Errorf("documents check failed: %w", err)
		}

		for _, doc := range report.Documents {
			switch {
			case doc.Error != "":
				logg.Error("Invalid document", zap.String("object", doc.Object), zap.String("error", doc.Error))
			case len(doc.UnknownKinds) > 0:
				logg.Warn("Unknown token types", zap.String("object", doc.Object), zap.Strings("types", doc.UnknownKinds))
			}
		}
		logg.Info("Documents checked", zap.Int("checked", report.Checked), zap.Int("invalid", report.Invalid))
		failed = failed || report.Invalid > 0
	}

	if runSchema {
		logg.Info("Checking snapshot schema...")
		report, err := svc.CheckSchema()
		switch {
		case errors.Is(err, integrity.ErrNoDatabase):
			logg.Warn("Schema check skipped", zap.Error(err))
		case err != nil:
			return fmt.Errorf("schema check failed: %w", err)
		case report.Matched:
			logg.Info("Snapshot schema matches its model.")
		default:
			failed = true
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return errors.New("integrity checks reported problems")
	}
	return nil
}
