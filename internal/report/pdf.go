package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/colinoflynn/crcbeagle/internal/beagle"
)

// SaveReportPDF renders the given search report into a PDF document.
func SaveReportPDF(rep *beagle.SearchReport, out string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Checksum Recovery Report", false)
	pdf.SetAuthor("crcbeagle", false)
	pdf.SetCreator("crcbeagle", false)
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	addPDFTitle(pdf, "Checksum Recovery Report")
	addSummarySection(pdf, rep)
	addGroupTableSection(pdf, rep.Groups)
	addSolutionsSection(pdf, rep)

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.OutputFileAndClose(out)
}

func addPDFTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
}

func addSummarySection(pdf *gofpdf.Fpdf, rep *beagle.SearchReport) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	items := []struct {
		label string
		value string
	}{
		{label: "Session", value: rep.SessionID},
		{label: "Started", value: rep.StartedAt.Format(time.RFC3339)},
		{label: "Check Width", value: fmt.Sprintf("%d bits", rep.Width)},
		{label: "Messages", value: strconv.Itoa(rep.Messages)},
		{label: "Length Groups", value: strconv.Itoa(len(rep.Groups))},
		{label: "Linear Code", value: linearLabel(rep.Linear)},
	}
	for _, item := range items {
		pdf.CellFormat(50, 6, item.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, item.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func addGroupTableSection(pdf *gofpdf.Fpdf, groups []beagle.GroupOutcome) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Length Groups")
	pdf.Ln(9)

	headers := []string{"Msg Len", "Members", "Pairs", "Status", "Shapes", "Solutions"}
	widths := []float64{24, 24, 20, 50, 26, 26}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, g := range groups {
		values := []string{
			strconv.Itoa(g.MessageLen),
			strconv.Itoa(g.Members),
			strconv.Itoa(g.Pairs),
			string(g.Status),
			strconv.Itoa(len(g.Shapes)),
			strconv.Itoa(len(g.Solutions)),
		}
		for i, v := range values {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func addSolutionsSection(pdf *gofpdf.Fpdf, rep *beagle.SearchReport) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Resolved Parameters")
	pdf.Ln(9)

	count := 0
	for _, g := range rep.Groups {
		for _, sol := range g.Solutions {
			count++
			pdf.SetFont("Helvetica", "B", 10)
			header := fmt.Sprintf("%d. messages of length %d (%s)", count, g.MessageLen, g.Status)
			pdf.MultiCell(0, 5, header, "", "L", false)

			line := sol.String()
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 5, line, "", "L", false)

			if png, err := ParameterQR(line, 192); err == nil {
				name := fmt.Sprintf("solution-%d", count)
				opts := gofpdf.ImageOptions{ImageType: "PNG"}
				pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
				pdf.ImageOptions(name, pdf.GetX(), pdf.GetY()+1, 28, 28, false, opts, 0, "")
				pdf.Ln(31)
			} else {
				pdf.Ln(2)
			}
		}
		for _, note := range g.Notes {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 4, fmt.Sprintf("len %d: %s", g.MessageLen, note), "", "L", false)
		}
	}
	if count == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, "No parameters resolved.", "", "L", false)
	}
}

func linearLabel(f *beagle.LinearFinding) string {
	if f == nil {
		return "not detected"
	}
	return fmt.Sprintf("%s checksum, mask 0x%02X", f.Kind, f.Mask)
}
