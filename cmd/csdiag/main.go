package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"csdiag/internal/config"
	"csdiag/internal/crawler"
	"csdiag/internal/extractor"
	"csdiag/internal/generator"
	"csdiag/internal/storage"
	"csdiag/internal/syntax"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "csdiag",
		Short: "PlantUML class-diagram generator for C# sources",
	}
	configPath string
	dbPath     string
	outputDir  string
	singleFile bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "csdiag.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the local type index (SQLite), overrides config")

	generateCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory for .puml files, overrides config")
	generateCmd.Flags().BoolVar(&singleFile, "single", false, "Emit one combined diagram instead of one per source file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if dbPath != "" {
		cfg.Index.DB = dbPath
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	return cfg
}

func newCrawler(cfg *config.Config) *crawler.Crawler {
	ext, err := extractor.NewExtractor("csharp")
	if err != nil {
		log.Fatalf("Failed to create extractor: %v", err)
	}
	return crawler.NewCrawler(ext, cfg.Project.Ignore...)
}

func initStore(cfg *config.Config) *storage.SQLiteStore {
	store, err := storage.NewSQLiteStore(cfg.Index.DB)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	return store
}

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate PlantUML class diagrams for all C# files under a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		root := cfg.Project.Root
		if len(args) > 0 {
			root = args[0]
		}

		fmt.Printf("Scanning %s\n", root)

		cr := newCrawler(cfg)
		files := 0

		if singleFile {
			var all []*syntax.Declaration
			err := cr.ScanProject(root, func(path string, decls []*syntax.Declaration) {
				files++
				all = append(all, decls...)
			})
			if err != nil {
				log.Fatalf("Scan failed: %v", err)
			}

			out := filepath.Join(cfg.Output.Dir, "project.puml")
			if err := writeDiagram(out, all, cfg.Output.Indent); err != nil {
				log.Fatalf("Failed to write %s: %v", out, err)
			}
			fmt.Printf("Generated %s from %d files\n", out, files)
			return
		}

		err := cr.ScanProject(root, func(path string, decls []*syntax.Declaration) {
			if len(decls) == 0 {
				return
			}
			files++

			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = filepath.Base(path)
			}
			out := filepath.Join(cfg.Output.Dir, strings.TrimSuffix(rel, ".cs")+".puml")
			if err := writeDiagram(out, decls, cfg.Output.Indent); err != nil {
				log.Printf("Failed to write %s: %v", out, err)
			}
		})
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		fmt.Printf("Generated diagrams for %d files in %s\n", files, cfg.Output.Dir)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan the project and refresh the local type index",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		root := cfg.Project.Root
		if len(args) > 0 {
			root = args[0]
		}

		store := initStore(cfg)
		defer store.Close()

		cr := newCrawler(cfg)
		ctx := context.Background()
		types := 0

		err := cr.ScanProject(root, func(path string, decls []*syntax.Declaration) {
			if err := store.SaveFileDeclarations(ctx, path, decls); err != nil {
				log.Printf("Failed to index %s: %v", path, err)
				return
			}
			types += len(decls)
		})
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		fmt.Printf("Indexed %d types. Database: %s\n", types, cfg.Index.DB)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed types",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		store := initStore(cfg)
		defer store.Close()

		summaries, err := store.ListTypes(context.Background())
		if err != nil {
			log.Fatalf("Failed to list types: %v", err)
		}

		for _, t := range summaries {
			fmt.Printf("%-10s %-30s %s\n", t.Kind, t.Name, t.Filepath)
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render the PlantUML diagram of one indexed type to stdout",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		store := initStore(cfg)
		defer store.Close()

		decls, err := store.FindByName(context.Background(), args[0])
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}
		if len(decls) == 0 {
			log.Fatalf("Type %q is not in the index. Run 'csdiag scan' first.", args[0])
		}

		fmt.Print(generator.RenderDiagram(decls, cfg.Output.Indent))
	},
}

func writeDiagram(path string, decls []*syntax.Declaration, indent string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(generator.RenderDiagram(decls, indent)), 0o644)
}
