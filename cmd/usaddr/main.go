package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	usaddr "github.com/usaddr-parse"
	"github.com/usaddr-parse/internal/config"
	"github.com/usaddr-parse/internal/db"
	"github.com/usaddr-parse/internal/debug"
	"github.com/usaddr-parse/internal/web"
)

var modelPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "usaddr",
		Short: "US address parsing and tagging",
		Long:  `Parses unstructured US address strings into labeled components using a trained sequence labeling model`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			if modelPath == "" {
				modelPath = usaddr.DefaultModelPath()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "path to the trained model file (default $USADDR_MODEL or ./usaddr.model)")

	rootCmd.AddCommand(createParseCmd())
	rootCmd.AddCommand(createTagCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createBatchCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createParseCmd creates the parse subcommand
func createParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [address]",
		Short: "Print the (token, label) pairs for an address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			parser := usaddr.NewParserFromModel(modelPath)

			tagged, err := parser.Parse(args[0])
			if err != nil {
				log.Fatalf("Failed to parse address: %v", err)
			}
			for _, pair := range tagged {
				fmt.Printf("%-30s %s\n", pair.Label, pair.Token)
			}
		},
	}
}

// createTagCmd creates the tag subcommand
func createTagCmd() *cobra.Command {
	var mappings []string
	var asJSON bool

	tagCmd := &cobra.Command{
		Use:   "tag [address]",
		Short: "Reassemble an address into labeled components",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			parser := usaddr.NewParserFromModel(modelPath)

			remap, err := parseMappings(mappings)
			if err != nil {
				log.Fatalf("Invalid --map value: %v", err)
			}

			components, addressType, err := parser.Tag(args[0], remap)
			if err != nil {
				log.Fatalf("Failed to tag address: %v", err)
			}

			if asJSON {
				payload := struct {
					Components  []usaddr.TaggedComponent `json:"components"`
					AddressType string                   `json:"address_type"`
				}{components, addressType}
				out, _ := json.MarshalIndent(payload, "", "  ")
				fmt.Println(string(out))
				return
			}

			for _, component := range components {
				fmt.Printf("%-30s %s\n", component.Label, component.Value)
			}
			fmt.Printf("\nAddress type: %s\n", addressType)
		},
	}
	tagCmd.Flags().StringArrayVar(&mappings, "map", nil, "label remapping as Original=Replacement (repeatable)")
	tagCmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON output")
	return tagCmd
}

// createServeCmd creates the serve subcommand
func createServeCmd() *cobra.Command {
	var configFile string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parsing API over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := web.DefaultConfig()
			if configFile != "" {
				loaded, err := web.LoadConfig(configFile)
				if err != nil {
					log.Fatalf("Failed to load config: %v", err)
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("model") {
				cfg.Model.Path = modelPath
			}

			parser := usaddr.NewParserFromModel(cfg.Model.Path)
			server := web.NewServer(cfg, parser)
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		},
	}
	serveCmd.Flags().StringVar(&configFile, "config", "", "path to JSON server configuration")
	return serveCmd
}

// createBatchCmd creates the batch subcommand, which tags addresses straight
// out of a Postgres table and writes the components back.
func createBatchCmd() *cobra.Command {
	var (
		table      string
		idColumn   string
		addrColumn string
		limit      int
		verbose    bool
	)

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Tag addresses from a Postgres table",
		Long: `Reads raw addresses from a Postgres table and writes the tagged components
back as JSON. The table needs the columns <id>, <address>, plus
address_components (jsonb) and address_type (text) for the results.
Connection settings come from the PG* environment variables.`,
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			parser := usaddr.NewParserFromModel(modelPath)
			if err := runBatch(conn, parser, table, idColumn, addrColumn, limit, verbose); err != nil {
				log.Fatalf("Batch tagging failed: %v", err)
			}
		},
	}
	batchCmd.Flags().StringVar(&table, "table", "src_address", "table holding the raw addresses")
	batchCmd.Flags().StringVar(&idColumn, "id-column", "id", "primary key column")
	batchCmd.Flags().StringVar(&addrColumn, "address-column", "raw_address", "column holding the raw address text")
	batchCmd.Flags().IntVar(&limit, "limit", 0, "number of rows to process (0 = all)")
	batchCmd.Flags().BoolVar(&verbose, "verbose", false, "log per-row progress")
	return batchCmd
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()
			fmt.Println("Database connection successful!")
		},
	}
}

// runBatch streams rows from the source table, tags each address, and writes
// the components and address type back. Rows that fail the contiguity rule
// are reported and skipped rather than aborting the run.
func runBatch(conn *db.Connection, parser *usaddr.Parser, table, idColumn, addrColumn string, limit int, verbose bool) error {
	defer debug.Timing(verbose, "batch tagging")()

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE address_components IS NULL`, idColumn, addrColumn, table)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := conn.DB.Query(query)
	if err != nil {
		return fmt.Errorf("selecting addresses: %w", err)
	}
	defer rows.Close()

	type row struct {
		id      int64
		address string
	}
	var pending []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.address); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	update := fmt.Sprintf(`UPDATE %s SET address_components = $1, address_type = $2 WHERE %s = $3`, table, idColumn)

	tagged, skipped := 0, 0
	for _, r := range pending {
		components, addressType, err := parser.Tag(r.address, nil)
		if err != nil {
			skipped++
			log.Printf("Skipping row %d: %v", r.id, err)
			continue
		}

		payload, err := json.Marshal(components)
		if err != nil {
			return fmt.Errorf("encoding components for row %d: %w", r.id, err)
		}
		if _, err := conn.DB.Exec(update, payload, addressType, r.id); err != nil {
			return fmt.Errorf("updating row %d: %w", r.id, err)
		}

		tagged++
		debug.Output(verbose, "row %d: %s -> %s", r.id, r.address, addressType)
	}

	fmt.Printf("Tagged %d addresses (%d skipped)\n", tagged, skipped)
	return nil
}

// parseMappings converts repeated Original=Replacement flags into the label
// remapping Tag applies during reconstruction.
func parseMappings(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	remap := make(map[string]string, len(values))
	for _, value := range values {
		parts := strings.SplitN(value, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("expected Original=Replacement, got %q", value)
		}
		remap[parts[0]] = parts[1]
	}
	return remap, nil
}
