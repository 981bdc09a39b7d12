package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/export"
	"gascompare/internal/ranking"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank offers from a JSON file by yearly cost",
	Long:  "Reads a JSON array of offers (as printed by extract), ranks them by total cost including VAT and writes JSON, CSV or XLSX.",
	RunE:  runCompare,
}

var (
	compareInputFile   string
	compareOutputFile  string
	compareFormat      string
	compareQuery       string
	compareConsumption float64
	compareTVAFixe     float64
	compareTVAVar      float64
)

func init() {
	compareCmd.Flags().StringVarP(&compareInputFile, "in", "i", "", "Path to offers JSON file (required)")
	compareCmd.Flags().StringVarP(&compareOutputFile, "out", "o", "", "Write the result to this file instead of stdout")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "json", "Output format: json, csv or xlsx")
	compareCmd.Flags().StringVar(&compareQuery, "query", "", "Keep offers whose supplier or contract type contains this text")
	compareCmd.Flags().Float64Var(&compareConsumption, "consumption", 0, "Yearly consumption in MWh (default from config)")
	compareCmd.Flags().Float64Var(&compareTVAFixe, "tva-fixe", -1, "VAT rate on fixed charges (default from config)")
	compareCmd.Flags().Float64Var(&compareTVAVar, "tva-var", -1, "VAT rate on variable charges (default from config)")

	if err := compareCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	content, err := os.ReadFile(compareInputFile)
	if err != nil {
		return fmt.Errorf("failed to read offers file: %w", err)
	}
	var offers []domain.ExtractedOffer
	if err := json.Unmarshal(content, &offers); err != nil {
		return fmt.Errorf("failed to unmarshal offers JSON: %w", err)
	}

	params := ranking.Params{
		ConsumptionMWh: cfg.Ranking.ConsumptionMWh,
		TVAFixe:        cfg.Ranking.TVAFixe,
		TVAVar:         cfg.Ranking.TVAVar,
	}
	if compareConsumption > 0 {
		params.ConsumptionMWh = compareConsumption
	}
	if compareTVAFixe >= 0 {
		params.TVAFixe = compareTVAFixe
	}
	if compareTVAVar >= 0 {
		params.TVAVar = compareTVAVar
	}

	cmp := ranking.Compute(offers, params, compareQuery)

	out, closeOut, err := openOutput(cmd.OutOrStdout(), compareOutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	if strings.EqualFold(compareFormat, "json") {
		return writeJSON(out, cmp)
	}
	format, ok := export.ParseFormat(compareFormat)
	if !ok {
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, compareFormat)
	}
	return export.Write(out, format, cmp)
}
