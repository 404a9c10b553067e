package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"text/tabwriter"

	catalogapp "github.com/dwikikusuma/comics-storefront/internal/catalog/app"
	"github.com/dwikikusuma/comics-storefront/internal/catalog/domain"
	catalogrest "github.com/dwikikusuma/comics-storefront/internal/catalog/infra/rest"
	"github.com/dwikikusuma/comics-storefront/internal/pricing"
	"github.com/dwikikusuma/comics-storefront/pkg/config"
	"github.com/dwikikusuma/comics-storefront/pkg/logger"
	"github.com/dwikikusuma/comics-storefront/pkg/media"
	"github.com/dwikikusuma/comics-storefront/pkg/restclient"
	"github.com/dwikikusuma/comics-storefront/pkg/shutdown"
)

type options struct {
	apiURL string
	search string
	facet  string
	value  string
	view   string
	tier   string
	facets bool
}

func parseFlags(args []string, defaultAPI string) (options, error) {
	var o options
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.apiURL, "api", defaultAPI, "backend origin")
	fs.StringVar(&o.search, "search", "", "case-insensitive text search")
	fs.StringVar(&o.facet, "facet", "", "series, character or creator")
	fs.StringVar(&o.value, "value", "", "facet value to match")
	fs.StringVar(&o.view, "view", "", "all or digital")
	fs.StringVar(&o.tier, "tier", "", "subscription tier used for prices")
	fs.BoolVar(&o.facets, "facets", false, "list facet options instead of comics")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch domain.FacetKind(o.facet) {
	case "", domain.FacetSeries, domain.FacetCharacter, domain.FacetCreator:
	default:
		return options{}, fmt.Errorf("unknown facet %q", o.facet)
	}
	if o.facet == "" && o.value != "" {
		return options{}, errors.New("-value needs -facet")
	}
	return o, nil
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "catalog-cli",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Output:  os.Stderr,
	})

	opts, err := parseFlags(os.Args[1:], cfg.APIURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// no client timeout; Ctrl-C cancels ctx
	if err := run(ctx, opts, &http.Client{}, os.Stdout, log); err != nil {
		log.Error("browse failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, httpClient *http.Client, out io.Writer, log *slog.Logger) error {
	api := catalogrest.NewComicAPI(restclient.New(opts.apiURL, httpClient, log))
	svc := catalogapp.NewService(api, log)

	res, err := svc.Browse(ctx, domain.Query{
		Search: opts.search,
		Facet:  domain.Facet{Kind: domain.FacetKind(opts.facet), Value: opts.value},
		View:   domain.ParseViewMode(opts.view),
	})
	if err != nil {
		return err
	}

	if opts.facets {
		return printFacets(out, res.Facets)
	}

	locator := media.NewLocator(opts.apiURL)
	return printComics(out, res, pricing.ParseTier(opts.tier), locator)
}

func printComics(out io.Writer, res domain.BrowseResult, tier pricing.Tier, locator media.Locator) error {
	if res.Filtered {
		fmt.Fprintf(out, "%s (%d)\n\n", res.Heading, len(res.Results))
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSERIES\tCREATORS\tORIGINAL\tDIGITAL\tIMAGE")
	for _, c := range res.Results {
		q := pricing.Compute(c.ListPrice(), tier, pricing.DefaultPurchaseType(c.ComicType))
		original := pricing.Display(q.Original)
		if c.DigitalExclusive() {
			original = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Title, c.Series, c.Creators,
			original, pricing.Display(q.Digital), locator.Resolve(c.Image))
	}
	return tw.Flush()
}

func printFacets(out io.Writer, f domain.FacetOptions) error {
	groups := []struct {
		name   string
		values []string
	}{
		{"series", f.Series},
		{"character", f.Characters},
		{"creator", f.Creators},
	}
	for _, g := range groups {
		fmt.Fprintf(out, "%s:\n", g.name)
		for _, v := range g.values {
			fmt.Fprintf(out, "  %s\n", v)
		}
	}
	return nil
}
