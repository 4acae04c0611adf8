package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jask/karta/internal/catalog"
	"github.com/jask/karta/internal/config"
)

func newCatalogCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in transports, plans and trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return printCatalog(cmd.OutOrStdout(), catalog.Default(), cfg.UI.Currency)
		},
	}
}

func printCatalog(w io.Writer, cat *catalog.Catalog, currency string) error {
	var err error
	p := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}
	p("Transports:\n")
	for _, t := range cat.Transports() {
		p("  %-10s %s - %s\n", t.ID, t.Name, t.Description)
	}
	p("Plans:\n")
	for _, pl := range cat.Plans() {
		vip := ""
		if pl.VIP {
			vip = " [VIP]"
		}
		p("  %s: %s / %s%s\n", pl.Name, catalog.FormatPrice(pl.Price, currency), pl.Period, vip)
	}
	p("Trips:\n")
	for _, tr := range cat.Trips() {
		p("  #%d %s -> %s %s %s (%s)\n", tr.ID, tr.From, tr.To, tr.Time, catalog.FormatPrice(tr.Price, currency), tr.Kind)
	}
	return err
}
