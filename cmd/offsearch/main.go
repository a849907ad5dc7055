package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	off "github.com/openfoodfacts/openfoodfacts-go"
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stdout })).With().Timestamp().Logger()

	// Optional; credentials are only needed against staging.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to load .env file")
	}

	versionFlag := flag.String("version", "v0", "API version (v0 or v2)")
	localeFlag := flag.String("locale", "world", "locale, e.g. world, fr or fr-ca")
	sortFlag := flag.String("sort", "", "sort field")
	fieldsFlag := flag.String("fields", "", "comma-separated list of returned fields")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal().Msg("Usage: offsearch [flags] <field>:<op>:<value> ...")
	}

	version, err := off.ParseApiVersion(*versionFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid API version")
	}

	builder := off.NewBuilder(version).
		Locale(off.ParseLocale(*localeFlag)).
		Logger(log)
	if user := os.Getenv("OFF_USER"); user != "" {
		builder = builder.Auth(user, os.Getenv("OFF_PASSWORD"))
	}
	client, err := builder.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build client")
	}

	search := client.SearchBuilder()
	for _, arg := range flag.Args() {
		field, op, value, err := splitCriterion(arg)
		if err != nil {
			log.Fatal().Err(err).Str("criterion", arg).Msg("Invalid criterion")
		}
		search = search.Criteria(field, op, value)
	}
	if *sortFlag != "" {
		search = search.SortBy(*sortFlag)
	}

	output := &off.Output{Fields: *fieldsFlag}
	resp, err := client.Search(search, output)
	if err != nil {
		log.Fatal().Err(err).Msg("Search failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read response body")
	}
	log.Info().Int("status", resp.StatusCode).Msg("Search done")
	fmt.Println(string(body))
}

// splitCriterion parses a "<field>:<op>:<value>" command line argument.
func splitCriterion(arg string) (field, op, value string, err error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("expected <field>:<op>:<value>, got %q", arg)
	}
	return parts[0], parts[1], parts[2], nil
}
