// Command tiercheck validates a tier configuration file and prints the resulting table.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/WashRewards_Go/internal/config"
	"github.com/osse101/WashRewards_Go/internal/tier"
	"github.com/osse101/WashRewards_Go/internal/validation"
)

func main() {
	file := flag.String("file", config.ConfigPathTiers, "Path to tier configuration JSON")
	schema := flag.String("schema", "", "Optional extra JSON schema the file must also satisfy (absolute, or relative to the module root)")
	flag.Parse()

	if err := run(*file, *schema, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(path, schemaPath string, out io.Writer) error {
	if schemaPath != "" {
		if err := validation.NewSchemaValidator().ValidateFile(path, schemaPath); err != nil {
			return fmt.Errorf("%s does not satisfy %s: %w", path, schemaPath, err)
		}
	}

	table, err := tier.NewLoader().Load(path)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tTHRESHOLD\tMULTIPLIER\tDISCOUNT")
	for i, t := range table.Tiers() {
		p.Fprintf(tw, "%d\t%s\t%s\t%d\t%.2fx\t%d%%\n",
			i, t.ID, t.Name, t.Threshold, t.Benefits.PointsMultiplier, t.Benefits.DiscountPercent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ %s: %d tiers OK\n", path, table.Len())
	return nil
}
