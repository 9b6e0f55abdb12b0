// woo-cli is the command line interface for the Utrecht Open Data catalogue.
//
// Usage:
//
//	woo-cli search [query] [-n limit] [-f table|json|compact] [-o file]
//	woo-cli get <dataset-id> [-f detail|json] [-o file]
//	woo-cli formats <dataset-id> [-f detail|json] [-o file]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Terminal-WOO/open-utrecht-datasets/internal/clients/utrecht"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/common"
	"github.com/Terminal-WOO/open-utrecht-datasets/internal/interfaces"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fout: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout *os.File) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("geen commando opgegeven")
	}

	config, err := common.LoadConfig("config.toml")
	if err != nil {
		return err
	}

	client := utrecht.NewClient(
		utrecht.WithBaseURL(config.Clients.Utrecht.BaseURL),
		utrecht.WithRateLimit(config.Clients.Utrecht.RateLimit),
		utrecht.WithTimeout(config.Clients.Utrecht.GetTimeout()),
		utrecht.WithUserAgent(config.Clients.Utrecht.UserAgent),
	)

	output, err := dispatch(context.Background(), client, args)
	if err != nil {
		return err
	}

	return writeOutput(stdout, outputFile(args), output)
}

// dispatch runs one subcommand and returns its rendered output.
func dispatch(ctx context.Context, client interfaces.UtrechtClient, args []string) (string, error) {
	switch args[0] {
	case "search":
		return runSearch(ctx, client, args[1:])
	case "get":
		return runGet(ctx, client, args[1:])
	case "formats":
		return runFormats(ctx, client, args[1:])
	default:
		printUsage()
		return "", fmt.Errorf("onbekend commando: %s", args[0])
	}
}

func runSearch(ctx context.Context, client interfaces.UtrechtClient, args []string) (string, error) {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	limit := fs.Int("n", 20, "maximum aantal resultaten")
	format := fs.String("f", "table", "output formaat: table, json of compact")
	fs.String("o", "", "output bestand")

	query, rest := leadingArg(args)
	if err := fs.Parse(rest); err != nil {
		return "", err
	}

	datasets, err := client.SearchDatasets(ctx, query, *limit)
	if err != nil {
		return "", fmt.Errorf("fout bij zoeken: %w", err)
	}

	switch *format {
	case "json":
		return formatJSON(datasets)
	case "compact":
		return formatCompact(datasets), nil
	case "table":
		return formatTable(datasets), nil
	default:
		return "", fmt.Errorf("onbekend formaat: %s", *format)
	}
}

func runGet(ctx context.Context, client interfaces.UtrechtClient, args []string) (string, error) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	format := fs.String("f", "detail", "output formaat: detail of json")
	fs.String("o", "", "output bestand")

	datasetID, rest := leadingArg(args)
	if datasetID == "" {
		return "", fmt.Errorf("dataset_id is verplicht")
	}
	if err := fs.Parse(rest); err != nil {
		return "", err
	}

	dataset, err := client.GetDataset(ctx, datasetID)
	if err != nil {
		return "", fmt.Errorf("fout bij ophalen dataset: %w", err)
	}

	switch *format {
	case "json":
		return formatJSON(dataset)
	case "detail":
		return formatDetailed(dataset), nil
	default:
		return "", fmt.Errorf("onbekend formaat: %s", *format)
	}
}

func runFormats(ctx context.Context, client interfaces.UtrechtClient, args []string) (string, error) {
	fs := flag.NewFlagSet("formats", flag.ContinueOnError)
	format := fs.String("f", "detail", "output formaat: detail of json")
	fs.String("o", "", "output bestand")

	datasetID, rest := leadingArg(args)
	if datasetID == "" {
		return "", fmt.Errorf("dataset_id is verplicht")
	}
	if err := fs.Parse(rest); err != nil {
		return "", err
	}

	distributions, err := client.GetDistributions(ctx, datasetID)
	if err != nil {
		return "", fmt.Errorf("fout bij ophalen formaten: %w", err)
	}

	switch *format {
	case "json":
		return formatJSON(distributions)
	case "detail":
		return formatDistributionList(distributions), nil
	default:
		return "", fmt.Errorf("onbekend formaat: %s", *format)
	}
}

// leadingArg splits the optional positional argument from the flags.
func leadingArg(args []string) (string, []string) {
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		return args[0], args[1:]
	}
	return "", args
}

// outputFile scans for the -o flag so the output destination is known at the
// top level regardless of subcommand.
func outputFile(args []string) string {
	for i, arg := range args {
		if arg == "-o" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func writeOutput(stdout *os.File, path, output string) error {
	if path == "" {
		fmt.Fprintln(stdout, output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output+"\n"), 0o644); err != nil {
		return fmt.Errorf("fout bij schrijven naar %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "Output geschreven naar %s\n", path)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Utrecht Open Data Zoeksysteem (versie %s)

Gebruik:
  woo-cli search [query] [-n limit] [-f table|json|compact] [-o bestand]
  woo-cli get <dataset-id> [-f detail|json] [-o bestand]
  woo-cli formats <dataset-id> [-f detail|json] [-o bestand]

Voorbeelden:
  woo-cli search verkeer                    Zoek naar datasets over verkeer
  woo-cli search "openbare ruimte" -n 10    Zoek max 10 resultaten
  woo-cli get DATASET_ID                    Toon details van een dataset
  woo-cli formats DATASET_ID                Toon beschikbare formaten
  woo-cli search verkeer -f json -o out.json  Exporteer naar JSON
`, common.GetVersion())
}
