package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"gascompare/internal/ranking"
)

const (
	offersSheet  = "Comparatif"
	summarySheet = "Synthèse"
)

// WriteXLSX writes cmp as a workbook with the ranked offers on the first sheet
// and the comparison parameters and summary on the second.
func WriteXLSX(out io.Writer, cmp ranking.Comparison) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), offersSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(offersSheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for r := range cmp.Offers {
		o := &cmp.Offers[r]
		values := []interface{}{
			o.Rank, o.Fournisseur, o.TypeContrat,
			o.PrixMolecule, o.CEE, o.Transport, o.TICGN,
			o.AbonnementF, o.Distribution, o.TransportAnn, o.CTA,
			round2(o.Variable), round2(o.Fixes), round2(o.HT), round2(o.TTC),
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(offersSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", r+2, err)
		}
	}

	_ = f.SetColWidth(offersSheet, "A", "A", 6)
	_ = f.SetColWidth(offersSheet, "B", "C", 24)
	_ = f.SetColWidth(offersSheet, "D", "O", 16)
	_ = f.SetPanes(offersSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	if err := writeSummary(f, cmp); err != nil {
		return err
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, cmp ranking.Comparison) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Consommation (MWh/an)", cmp.Params.ConsumptionMWh},
		{"TVA part fixe", cmp.Params.TVAFixe},
		{"TVA part variable", cmp.Params.TVAVar},
		{"Offres comparées", cmp.Summary.Count},
	}
	if cmp.Summary.Best != nil {
		rows = append(rows, []interface{}{"Meilleure offre", cmp.Summary.Best.Fournisseur, round2(cmp.Summary.Best.TTC)})
	}
	if cmp.Summary.Worst != nil {
		rows = append(rows, []interface{}{"Offre la plus chère", cmp.Summary.Worst.Fournisseur, round2(cmp.Summary.Worst.TTC)})
	}
	rows = append(rows, []interface{}{"Économie potentielle (€ TTC)", round2(cmp.Summary.PotentialSavings)})

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 30)
	_ = f.SetColWidth(summarySheet, "B", "C", 20)
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Write renders cmp in the given format.
func Write(out io.Writer, format Format, cmp ranking.Comparison) error {
	if format == FormatXLSX {
		return WriteXLSX(out, cmp)
	}
	return WriteCSV(out, cmp)
}
