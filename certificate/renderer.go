// Package certificate renders course completion certificates as PDF.
package certificate

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	customFamily   = "CertFont"
	fallbackFamily = "Times"
)

type Data struct {
	FullName   string
	CourseName string
	CourseCode string
	IssueDate  time.Time
}

// Renderer lays out a single A4 landscape page. Font and logo paths are
// optional; a missing font falls back to the core serif family.
type Renderer struct {
	FontPath     string
	BoldFontPath string
	LogoPath     string
	Locale       string
}

type phrases struct {
	title      string
	preamble   string
	completion string
	issued     string
}

var locales = map[string]phrases{
	"en": {
		title:      "Certificate of Completion",
		preamble:   "This certificate is presented to",
		completion: "for successfully completing the course",
		issued:     "Issued on",
	},
	"th": {
		title:      "เกียรติบัตร",
		preamble:   "เกียรติบัตรฉบับนี้ให้ไว้เพื่อแสดงว่า",
		completion: "ได้ผ่านการเรียนรายวิชา",
		issued:     "ให้ไว้ ณ วันที่",
	},
}

func (r *Renderer) Render(w io.Writer, data Data) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	family, translate, unicode := r.loadFonts(pdf)
	text := locales["en"]
	if unicode {
		if p, ok := locales[r.Locale]; ok {
			text = p
		}
	}
	locale := r.Locale
	if !unicode {
		locale = "en"
	}

	pageW, pageH := pdf.GetPageSize()
	drawFrame(pdf, pageW, pageH)

	y := 30.0
	if r.LogoPath != "" && fileExists(r.LogoPath) {
		const logoW = 30.0
		pdf.ImageOptions(r.LogoPath, (pageW-logoW)/2, y, logoW, 0, false,
			fpdf.ImageOptions{ReadDpi: true}, 0, "")
		if err := pdf.Error(); err != nil {
			log.Printf("[CERTIFICATE] Logo skipped: %v", err)
			pdf.ClearError()
		} else {
			y += 35
		}
	}

	line := func(txt, style string, size, height float64) {
		pdf.SetFont(family, style, size)
		pdf.SetXY(20, y)
		pdf.CellFormat(pageW-40, height, translate(txt), "", 0, "C", false, 0, "")
		y += height
	}

	line(text.title, "B", 30, 16)
	y += 4
	line(text.preamble, "", 16, 10)
	y += 2
	line(data.FullName, "B", 28, 16)
	y += 2
	line(text.completion, "", 16, 10)
	line(data.CourseName, "B", 22, 12)
	line("("+data.CourseCode+")", "", 14, 9)
	y += 6
	line(text.issued+" "+LongDate(data.IssueDate, locale), "", 14, 9)

	return pdf.Output(w)
}

// loadFonts registers the UTF-8 fonts when present. It returns the family to
// use, a text translator and whether Unicode text can be drawn.
func (r *Renderer) loadFonts(pdf *fpdf.Fpdf) (string, func(string) string, bool) {
	if r.FontPath != "" && fileExists(r.FontPath) {
		pdf.AddUTF8Font(customFamily, "", r.FontPath)
		bold := r.BoldFontPath
		if bold == "" || !fileExists(bold) {
			bold = r.FontPath
		}
		pdf.AddUTF8Font(customFamily, "B", bold)
		err := pdf.Error()
		if err == nil {
			return customFamily, func(s string) string { return s }, true
		}
		log.Printf("[CERTIFICATE] Font %s unusable, falling back to %s: %v", r.FontPath, fallbackFamily, err)
		pdf.ClearError()
	}
	return fallbackFamily, pdf.UnicodeTranslatorFromDescriptor(""), false
}

func drawFrame(pdf *fpdf.Fpdf, w, h float64) {
	pdf.SetDrawColor(30, 60, 120)
	pdf.SetLineWidth(1.5)
	pdf.Rect(8, 8, w-16, h-16, "D")
	pdf.SetLineWidth(0.5)
	pdf.Rect(12, 12, w-24, h-24, "D")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
