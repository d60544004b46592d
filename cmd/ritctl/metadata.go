package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirosfoundation/go-rit/internal/credentials"
)

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages accepted by the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, lang, err := a.client()
			if err != nil {
				return err
			}
			langs, err := c.GetLanguages(cmd.Context(), lang)
			if err != nil {
				return err
			}
			for _, l := range langs {
				fmt.Fprintln(a.out, l)
			}
			return nil
		},
	}
}

func newAttributesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attributes",
		Short: "List attribute definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, lang, err := a.client()
			if err != nil {
				return err
			}
			idx, err := c.Metadata(cmd.Context(), lang)
			if err != nil {
				return err
			}

			attrs := idx.Attributes()
			rows := make([][]string, 0, len(attrs))
			for _, code := range sortedKeys(attrs) {
				attr := attrs[code]
				rows = append(rows, []string{
					attr.Code,
					attr.Name,
					string(attr.TypeValidator),
					attr.DictionaryCode,
					yesNo(idx.IsTranslatable(code)),
				})
			}
			return writeTable(a.out, []string{"Code", "Name", "Type", "Dictionary", "Translatable"}, rows)
		},
	}
}

func newCategoryCmd(a *app) *cobra.Command {
	var inherit bool

	cmd := &cobra.Command{
		Use:   "category [code]",
		Short: "List categories or show the attributes of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, lang, err := a.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(args) == 0 {
				cats, err := c.GetCategories(ctx, lang)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(cats))
				for _, code := range sortedKeys(cats) {
					cat := cats[code]
					rows = append(rows, []string{cat.Code, cat.Name, cat.ParentCode, fmt.Sprint(len(cat.AttributeCodes))})
				}
				return writeTable(a.out, []string{"Code", "Name", "Parent", "Attributes"}, rows)
			}

			cat, ok, err := c.GetCategory(ctx, args[0], inherit, lang)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("category %s not found", args[0])
			}

			attrs, err := c.GetAttributes(ctx, lang)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(cat.AttributeCodes))
			for _, code := range cat.AttributeCodes {
				attr := attrs[code]
				rows = append(rows, []string{code, attr.Name, string(attr.TypeValidator)})
			}
			fmt.Fprintf(a.out, "%s %s\n", cat.Code, cat.Name)
			return writeTable(a.out, []string{"Attribute", "Name", "Type"}, rows)
		},
	}

	cmd.Flags().BoolVar(&inherit, "inherit", false, "include attributes of parent categories")
	return cmd
}

func newDictionaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dictionary [code]",
		Short: "List dictionaries or the values of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, lang, err := a.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(args) == 0 {
				dicts, err := c.GetDictionaries(ctx, lang)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(dicts))
				for _, code := range sortedKeys(dicts) {
					d := dicts[code]
					rows = append(rows, []string{d.Code, d.Name, fmt.Sprint(len(d.Values))})
				}
				return writeTable(a.out, []string{"Code", "Name", "Values"}, rows)
			}

			title, ok, err := c.GetDictionaryTitle(ctx, args[0], lang)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("dictionary %s not found", args[0])
			}
			values, _, err := c.GetDictionaryValues(ctx, args[0], lang)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %s\n", args[0], title)
			for _, v := range values {
				fmt.Fprintln(a.out, v)
			}
			return nil
		},
	}
}

func newCertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cert",
		Short: "Show the configured client certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			cert, err := credentials.Load(cfg.Certificate, cfg.Secret)
			if err != nil {
				return err
			}
			info, err := credentials.Describe(cert)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Subject", info.Subject},
				{"Issuer", info.Issuer},
				{"Key", fmt.Sprintf("%s %d", info.Algorithm, info.KeySize)},
				{"Valid from", info.NotBefore.Format(time.RFC3339)},
				{"Valid until", info.NotAfter.Format(time.RFC3339)},
			}
			if time.Now().After(info.NotAfter) {
				rows = append(rows, []string{"Status", "EXPIRED"})
			}
			return writeTable(a.out, []string{"Field", "Value"}, rows)
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
