package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/logger"
	"committee-tracker-backend/internal/seed"

	"github.com/spf13/cobra"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.open(); err != nil {
				return err
			}
			defer e.close()

			if err := database.Migrate(e.db); err != nil {
				return err
			}
			logger.WithContext(cmd.Context()).Info("Schema migrated")
			return nil
		},
	}
}

func seedCmd(e *env) *cobra.Command {
	var (
		file string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load divisions, departments, faculty, committees and assignments from YAML",
		Long: `Seed loads a YAML document through the same services the API uses, so
every listed committee member is admitted only if the committee's slot
requirements still allow it. Entries that already exist are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (dir == "") {
				return errors.New("exactly one of --file or --dir is required")
			}

			var (
				doc *seed.Document
				err error
			)
			if file != "" {
				doc, err = seed.LoadFile(file)
			} else {
				doc, err = seed.LoadDir(dir)
			}
			if err != nil {
				return err
			}

			if err := e.open(); err != nil {
				return err
			}
			defer e.close()

			if err := database.Migrate(e.db); err != nil {
				return err
			}

			s := e.services()
			summary, err := seed.NewSeeder(s.SenateDivisions, s.Departments, s.Faculty, s.Committees, s.Assignments).
				Load(cmd.Context(), doc)
			if err != nil {
				return err
			}
			return printJSON(cmd, summary)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed YAML file")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of seed YAML files, merged in lexical order")
	return cmd
}

func ledgerCmd(e *env) *cobra.Command {
	var committeeID uint

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print the slot ledger of a committee as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if committeeID == 0 {
				return errors.New("--committee is required")
			}
			if err := e.open(); err != nil {
				return err
			}
			defer e.close()

			ledger, err := e.services().Committees.GetLedger(cmd.Context(), committeeID)
			if err != nil {
				return fmt.Errorf("committee %d: %w", committeeID, err)
			}
			return printJSON(cmd, ledger)
		},
	}

	cmd.Flags().UintVar(&committeeID, "committee", 0, "Committee ID")
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
