// ABOUTME: Entry point for the Maestro admin console and mock backend.
// ABOUTME: Wires together store, config, API client and admin UI with CLI commands.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abmusica/maestro/internal/admin"
	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/config"
	"github.com/abmusica/maestro/internal/dialog"
	"github.com/abmusica/maestro/internal/entity"
	"github.com/abmusica/maestro/internal/list"
	"github.com/abmusica/maestro/internal/mock"
	"github.com/abmusica/maestro/internal/schema"
	"github.com/abmusica/maestro/internal/seed"
	"github.com/abmusica/maestro/internal/store"
)

var (
	port   int
	dbPath string

	listSearch   string
	listSort     string
	listDesc     bool
	listPage     int
	listPageSize int
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "maestro",
		Short: "Maestro - Console administrativo da banda",
		Long: `Maestro is the admin console of a community band management system.

It manages the band's registries:
  • Músicos e Alunos (members and music students)
  • Músicas (songs with per-instrument sheet music and MIDI files)
  • Galeria (photo and video albums)
  • Patrimônio e Instrumentos (assets and instruments)
  • Apresentações (performances)

Features:
  • Server-rendered admin UI with search, sorting and pagination
  • Self-hosted mock CRUD API with SQLite persistence
  • AI-powered realistic seed data generation
  • Request logging with correlation IDs

Quick Start:
  maestro seed          # Generate test data
  maestro serve         # Start console on port 3000
  maestro reset         # Wipe and reseed database`,
	}

	// Calculate default database path once (not per-command)
	defaultDBPath := cfg.DBPath
	if defaultDBPath == "" {
		defaultDBPath = getDefaultDBPath()
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the admin console HTTP server",
		Long: `Start the Maestro HTTP server on the specified port.

The server provides:
  • Admin UI at http://localhost:PORT/admin
  • Mock CRUD API under http://localhost:PORT/api (when mocking is enabled)
  • Health check at http://localhost:PORT/healthz

Authentication:
  The API accepts any Bearer token. Use "Bearer user:USERNAME" to pin the
  operator recorded on requests.

Environment Variables:
  MAESTRO_PORT             Server port (default: 3000)
  MAESTRO_DB_PATH          SQLite database path
  MAESTRO_API_URL          External API base URL (when mocking is disabled)
  MAESTRO_ENABLE_MOCKING   Self-host the CRUD API (default: true)
  OPENAI_API_KEY           Enable AI-powered seed data`,
		RunE: func(cmd *cobra.Command, args []string) error { return runServe(cfg) },
	}
	serveCmd.Flags().IntVarP(&port, "port", "p", cfg.Port, "Port to listen on")
	serveCmd.Flags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database path")

	seedCmd := &cobra.Command{
		Use:   "seed [resource]",
		Short: "Seed the database with test data",
		Long: `Seed the database with realistic test data for all resources or a specific one.

AI-Powered Generation:
  Set OPENAI_API_KEY to use AI for generating realistic musicians, students
  and repertoire. Falls back to static test data if no API key is provided.

Usage:
  maestro seed              # Seed every resource
  maestro seed musicians    # Seed only musicians

Available Resources:
  ` + strings.Join(entity.Slugs(), ", ") + `

Note: Seed is not idempotent. Use 'maestro reset' to clear data before reseeding.`,
		RunE: runSeed,
		Args: cobra.MaximumNArgs(1),
	}
	seedCmd.Flags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database path")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the database (wipe and reseed)",
		Long: `Delete the database file and create a fresh one with new test data.

This command:
  1. Deletes the existing database file
  2. Creates a new empty database
  3. Seeds it with fresh test data for every resource

Warning: This permanently deletes all data in the database!`,
		RunE: runReset,
	}
	resetCmd.Flags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database path")

	listCmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List a resource's records in the terminal",
		Long: `Render a resource's rows as a terminal table, with the same search,
sorting and pagination behavior as the admin UI list pages.

Usage:
  maestro list musicians
  maestro list songs --search choro --sort title --page-size 10

Available Resources:
  ` + strings.Join(entity.Slugs(), ", "),
		RunE: runList,
		Args: cobra.ExactArgs(1),
	}
	listCmd.Flags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database path")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search term")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort column name")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "Sort descending")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", list.DefaultPageSize, "Rows per page")

	rootCmd.AddCommand(serveCmd, seedCmd, resetCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// validateAndCleanDBPath validates and cleans a database path.
// Handles Unix/Linux, macOS, and Windows paths (including UNC and drive letters).
func validateAndCleanDBPath(path string) (string, error) {
	cleanPath := strings.TrimSpace(path)
	cleanPath = filepath.Clean(cleanPath)

	// Reject empty and root-like paths
	if cleanPath == "" || cleanPath == "." || cleanPath == "/" {
		return "", fmt.Errorf("database path cannot be empty, '.', or '/'")
	}

	// Windows: reject bare drive letters (e.g., "C:", "D:")
	if runtime.GOOS == "windows" && len(cleanPath) == 2 && cleanPath[1] == ':' {
		return "", fmt.Errorf("database path cannot be a bare drive letter")
	}

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("database path cannot contain '..'")
	}

	// Reject known problematic patterns
	badPatterns := []string{
		".git",
		".svn",
		"node_modules",
		".env",
		"credentials",
		"secret",
	}
	lowerPath := strings.ToLower(cleanPath)
	for _, pattern := range badPatterns {
		if strings.Contains(lowerPath, pattern) {
			return "", fmt.Errorf("database path cannot contain '%s' directory", pattern)
		}
	}

	return cleanPath, nil
}

func runServe(cfg config.Config) error {
	var err error
	dbPath, err = validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}
	cfg.Port = port

	srv, err := newServer(dbPath, cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Maestro listening on %s", addr)
	log.Printf("Admin UI: http://localhost:%d/admin", cfg.Port)
	log.Printf("Database: %s", dbPath)
	return http.ListenAndServe(addr, srv)
}

// newServer builds the full HTTP handler: the mock CRUD API (when enabled),
// the admin console on top of it, and the health check.
func newServer(dbPath string, cfg config.Config) (http.Handler, error) {
	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	var r chi.Router
	apiBase := cfg.APIURL
	if cfg.EnableMocking {
		// The console consumes its own in-process API over HTTP, the same
		// way it would consume the real backend.
		r = mock.NewRouter(s)
		apiBase = fmt.Sprintf("http://localhost:%d/api", cfg.Port)
	} else {
		r = chi.NewRouter()
		r.Use(middleware.Recoverer)
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"ok": true})
		})
	}

	client := api.NewClient(apiBase,
		api.WithProduction(cfg.Production),
		api.WithTimeout(cfg.APITimeout))
	admin.NewHandlers(s, client).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/admin", http.StatusFound)
	})

	return r, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	var err error
	dbPath, err = validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}

	var resource string
	if len(args) > 0 {
		resource = args[0]
		if _, ok := entity.Get(resource); !ok {
			return fmt.Errorf("unknown resource %q (available: %s)",
				resource, strings.Join(entity.Slugs(), ", "))
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return seedData(s, resource)
}

func runReset(cmd *cobra.Command, args []string) error {
	var err error
	dbPath, err = validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}

	// Remove existing database - ignore if file doesn't exist
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing database: %w", err)
	}

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return seedData(s, "") // Reset always seeds everything
}

func seedData(s *store.Store, resource string) error {
	if resource != "" {
		log.Printf("Seeding database with test data for resource: %s", resource)
	} else {
		log.Println("Seeding database with test data...")
	}

	generator := seed.NewGenerator()
	dataset := generator.Generate(context.Background())

	n, err := seed.Apply(s, dataset, resource)
	if err != nil {
		return err
	}
	log.Printf("Seeding complete! Created %d records", n)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	var err error
	dbPath, err = validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}

	def, ok := entity.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown resource %q (available: %s)",
			args[0], strings.Join(entity.Slugs(), ", "))
	}

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	c := newListController(s, def)
	defer c.Close()

	c.Refresh()
	waitFor(c, func() bool { return c.State() == list.Loaded || c.State() == list.Failed })
	if c.State() == list.Failed {
		return c.Err()
	}

	applyListFlags(c)
	printTable(os.Stdout, c, def)
	return nil
}

func newListController(s *store.Store, def entity.Definition) *list.Controller {
	return list.New(list.Config{
		Title:      def.Title,
		EntityName: def.Name,
		Columns:    def.Columns,
		Derive:     def.Derive,
		LoadDelay:  0,
		Debounce:   time.Millisecond,
		PageSize:   listPageSize,
		Logger:     log.New(os.Stderr, "", 0),
	}, list.Capabilities{
		List: func(ctx context.Context) ([]api.Doc, error) {
			records, err := s.ListRecords(def.Resource(), "")
			if err != nil {
				return nil, err
			}
			docs := make([]api.Doc, 0, len(records))
			for _, record := range records {
				doc, err := record.Doc()
				if err != nil {
					return nil, err
				}
				docs = append(docs, doc)
			}
			return docs, nil
		},
	}, &dialog.Script{})
}

// applyListFlags pushes the command-line flags into a loaded controller.
func applyListFlags(c *list.Controller) {
	if listSearch != "" {
		c.SetSearch(listSearch)
		waitFor(c, func() bool { return c.Search() == listSearch })
	}
	if listSort != "" {
		c.SetSort(listSort)
		if listDesc {
			c.SetSort(listSort)
		}
	}
	c.SetPageSize(listPageSize)
	// The flag is 1-based; the controller counts pages from zero.
	c.SetPage(listPage - 1)
}

// waitFor blocks until the controller reaches the wanted condition.
func waitFor(c *list.Controller, done func() bool) {
	if done() {
		return
	}
	for range c.Changes() {
		if done() {
			return
		}
	}
}

func printTable(w io.Writer, c *list.Controller, def entity.Definition) {
	cols := make([]schema.Column, 0, len(def.Columns))
	for _, col := range def.Columns {
		if col.Name != schema.ActionsColumn {
			cols = append(cols, col)
		}
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := table.Row{"ID"}
	for _, col := range cols {
		header = append(header, col.Label)
	}
	tw.AppendHeader(header)

	for _, doc := range c.Rows() {
		row := table.Row{list.DocID(doc)}
		for _, col := range cols {
			row = append(row, list.CellString(doc[col.Name]))
		}
		tw.AppendRow(row)
	}
	tw.Render()

	page, size := c.Page()
	total := c.FilteredCount()
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	fmt.Fprintf(w, "Página %d de %d (%d registros)\n", page+1, pages, total)
}

// getDefaultDBPath returns the default database path following XDG Base Directory spec
// Priority: MAESTRO_DB_PATH env var > ./maestro.db (backwards compat) > XDG_DATA_HOME/maestro/maestro.db
func getDefaultDBPath() string {
	// 1. Check environment variable first
	if envPath := os.Getenv("MAESTRO_DB_PATH"); envPath != "" {
		// Trim whitespace and clean path
		envPath = strings.TrimSpace(envPath)
		envPath = filepath.Clean(envPath)
		if envPath == "" || envPath == "." {
			log.Printf("Warning: MAESTRO_DB_PATH is invalid (empty or '.'), using default path")
		} else {
			return envPath
		}
	}

	// 2. Check for existing ./maestro.db (backwards compatibility)
	cwdPath := "./maestro.db"
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}

	// 3. Use XDG Base Directory spec (or Windows equivalent)
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil || homeDir == "" || homeDir == "/" {
			// Fallback to current directory if we can't get valid home dir
			log.Printf("Warning: Could not determine valid home directory (%q): %v, using ./maestro.db", homeDir, err)
			return cwdPath
		}

		// Use platform-appropriate data directory
		// Windows: %LOCALAPPDATA% or ~/AppData/Local
		// Unix/Linux/macOS: ~/.local/share (XDG spec)
		if runtime.GOOS == "windows" {
			dataHome = os.Getenv("LOCALAPPDATA")
			if dataHome == "" {
				dataHome = filepath.Join(homeDir, "AppData", "Local")
			}
		} else {
			// Unix/Linux/macOS - XDG Base Directory spec
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(dataHome, "maestro")
	xdgDBPath := filepath.Join(dataDir, "maestro.db")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Printf("Warning: Could not create data directory %s: %v, using ./maestro.db", dataDir, err)
		return cwdPath
	}

	// Verify we can write to the directory
	testFile := filepath.Join(dataDir, ".write-test")
	if f, err := os.Create(testFile); err != nil {
		log.Printf("Warning: Cannot write to data directory %s: %v, using ./maestro.db", dataDir, err)
		return cwdPath
	} else {
		if err := f.Close(); err != nil {
			log.Printf("Warning: Error closing test file: %v", err)
		}
		if err := os.Remove(testFile); err != nil {
			log.Printf("Warning: Could not remove test file %s: %v", testFile, err)
		}
	}

	if os.Getenv("MAESTRO_DEBUG") != "" {
		log.Printf("Using database location: %s", xdgDBPath)
	}

	return xdgDBPath
}
