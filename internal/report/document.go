package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// document is a PDF under construction plus the vertical cursor y (mm).
type document struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	pageW float64
	pageH float64
	y     float64
}

func newDocument(title string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("coach-app", true)
	w, h := pdf.GetPageSize()
	return &document{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		pageW: w,
		pageH: h,
		y:     topMargin,
	}
}

func (d *document) registerImage(a *asset) {
	d.pdf.RegisterImageOptionsReader(a.name, fpdf.ImageOptions{ImageType: a.kind}, bytes.NewReader(a.data))
}

func (d *document) newPage() {
	d.pdf.AddPage()
	d.y = topMargin
}

// breakIfPast starts a new page when the cursor has gone beyond limit.
func (d *document) breakIfPast(limit float64) {
	if d.y > limit {
		d.newPage()
	}
}

func (d *document) heading(text string, size float64) {
	d.pdf.SetFont("Helvetica", "B", size)
	d.text(text)
	d.y += 10
}

func (d *document) text(s string) {
	d.pdf.Text(leftMargin, d.y, d.tr(s))
}

func (d *document) centered(s string) {
	s = d.tr(s)
	d.pdf.Text((d.pageW-d.pdf.GetStringWidth(s))/2, d.y, s)
}

// image draws a at width w, horizontally centered, and returns its height.
func (d *document) image(a *asset, w, y float64) float64 {
	info := d.pdf.GetImageInfo(a.name)
	if info == nil || info.Width() == 0 {
		return 0
	}
	h := info.Height() / info.Width() * w
	d.pdf.ImageOptions(a.name, (d.pageW-w)/2, y, w, h, false, fpdf.ImageOptions{ImageType: a.kind}, 0, "")
	return h
}

// drawWatermark runs as the page header, so every page gets it.
func (d *document) drawWatermark(wm *asset) {
	d.pdf.SetAlpha(0.1, "Normal")
	defer d.pdf.SetAlpha(1, "Normal")

	info := d.pdf.GetImageInfo(wm.name)
	if info == nil || info.Width() == 0 {
		return
	}
	h := info.Height() / info.Width() * watermarkWidth
	d.pdf.ImageOptions(wm.name, (d.pageW-watermarkWidth)/2, (d.pageH-h)/2, watermarkWidth, h,
		false, fpdf.ImageOptions{ImageType: wm.kind}, 0, "")
}

// table draws a header row and rows starting at the cursor. Before every row,
// if the cursor is past the block threshold, a new page is started and the
// header repeated.
func (d *document) table(head []string, widths []float64, rows [][]string) {
	d.breakIfPast(blockBreakY)
	d.tableHeader(head, widths)

	d.pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		if d.y > blockBreakY {
			d.newPage()
			d.tableHeader(head, widths)
			d.pdf.SetFont("Helvetica", "", 11)
		}
		d.pdf.SetXY(tableMargin, d.y)
		for i, cell := range row {
			d.pdf.CellFormat(widths[i], rowHeight, d.tr(cell), "1", 0, "L", false, 0, "")
		}
		d.y += rowHeight
	}
}

func (d *document) tableHeader(head []string, widths []float64) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetFillColor(41, 128, 185)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetXY(tableMargin, d.y)
	for i, h := range head {
		d.pdf.CellFormat(widths[i], rowHeight, d.tr(h), "1", 0, "L", true, 0, "")
	}
	d.pdf.SetTextColor(0, 0, 0)
	d.y += rowHeight
}
