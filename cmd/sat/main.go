// sat - ACIS SAT codec CLI tool
//
// Usage:
//
//	sat fmt [file]      Parse and re-dump SAT text in canonical form
//	sat info [file]     Print header fields and entity counts
//	sat to-json [file]  Print a JSON rendering of the resolved graph
//	sat version         Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cadwire/sat/sat"
)

const toolVersion = "0.1.0"

func main() {
	var verbosity int

	root := &cobra.Command{
		Use:           "sat",
		Short:         "Inspect and rewrite ACIS SAT text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
		},
	}
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	root.AddCommand(fmtCmd(), infoCmd(), toJSONCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sat: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// readInput reads the first positional argument as a file, or stdin when
// no file (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadGraph(args []string) (*sat.Graph, error) {
	text, err := readInput(args)
	if err != nil {
		return nil, err
	}
	g, err := sat.Parse(text)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("component", "parse").
		Int("version", g.Header.Version).
		Int("entities", len(g.Entities())).
		Int("bodies", len(g.Bodies())).
		Msg("parsed SAT input")
	return g, nil
}

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse and re-dump SAT text in canonical form",
		Long: "Re-dumping normalizes continuation lines and explicit record\n" +
			"numbers to one record per line with positional pointer indices.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args)
			if err != nil {
				return err
			}
			lines, err := g.Dump()
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(lines, "\n"))
			return nil
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print header fields and entity counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args)
			if err != nil {
				return err
			}
			h := g.Header
			fmt.Printf("version:       %d\n", h.Version)
			fmt.Printf("acis version:  %s\n", h.ACISVersion)
			fmt.Printf("product id:    %s\n", h.ProductID)
			fmt.Printf("created:       %s\n", h.CreationDate.Format(time.ANSIC))
			fmt.Printf("units in mm:   %g\n", h.UnitsInMM)
			fmt.Printf("history flag:  %d\n", h.HistoryFlag)
			fmt.Printf("entities:      %d\n", len(g.Entities()))
			fmt.Printf("bodies:        %d\n", len(g.Bodies()))
			return nil
		},
	}
}

type jsonEntity struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	ID         int    `json:"id"`
	Attributes int    `json:"attributes"` // entity index, -1 for the null pointer
	Data       []any  `json:"data"`       // literal tokens and {"ref": index}
}

func toJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-json [file]",
		Short: "Print a JSON rendering of the resolved graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args)
			if err != nil {
				return err
			}
			entities := g.Entities()
			index := make(map[*sat.Entity]int, len(entities))
			for i, e := range entities {
				index[e] = i
			}
			refIndex := func(e *sat.Entity) int {
				if i, ok := index[e]; ok {
					return i
				}
				return -1
			}

			out := make([]jsonEntity, len(entities))
			for i, e := range entities {
				je := jsonEntity{
					Index:      i,
					Name:       e.Name,
					ID:         e.ID,
					Attributes: refIndex(e.Attributes),
					Data:       make([]any, 0, len(e.Data)),
				}
				for _, d := range e.Data {
					if d.IsRef() {
						je.Data = append(je.Data, map[string]int{"ref": refIndex(d.Entity())})
					} else {
						je.Data = append(je.Data, d.Literal())
					}
				}
				out[i] = je
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"version":      g.Header.Version,
				"acis_version": g.Header.ACISVersion,
				"product_id":   g.Header.ProductID,
				"units_in_mm":  g.Header.UnitsInMM,
				"entities":     out,
			})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sat %s\n", toolVersion)
		},
	}
}
