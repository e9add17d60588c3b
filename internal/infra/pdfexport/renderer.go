package pdfexport

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ErrRender возвращается при ошибке построения PDF
var ErrRender = errors.New("pdfexport: failed to render document")

// ClientListing данные выгрузки клиентов: строки уже отфильтрованы и отсортированы
type ClientListing struct {
	Clients     []domain.User
	Counts      domain.ClientCounts
	Query       string
	GeneratedAt time.Time
}

// Геометрия страницы A4 в пунктах
const (
	margin       = 40.0
	headerHeight = 96.0
	cardHeight   = 54.0
	tableTop     = 228.0
	rowHeight    = 22.0
	bottomLimit  = 46.0
)

type column struct {
	title string
	x     float64
	width float64
}

var columns = []column{
	{title: "Nome", x: margin + 8, width: 170},
	{title: "Email", x: 220, width: 160},
	{title: "Telefone", x: 388, width: 70},
	{title: "Tipo", x: 468, width: 90},
}

type rgb struct{ r, g, b int }

func hex(s string) rgb {
	v, _ := strconv.ParseUint(s[1:], 16, 32)
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
}

var palette = struct {
	pageBg, headerBg, primary, gold, goldSoft, cardBg, border, text, textMuted, white, rowAlt, headerMuted rgb
}{
	pageBg:      hex("#fbf8ee"),
	headerBg:    hex("#011514"),
	primary:     hex("#0a2826"),
	gold:        hex("#b7792e"),
	goldSoft:    hex("#f2d97c"),
	cardBg:      hex("#fffdf6"),
	border:      hex("#d6bf8b"),
	text:        hex("#162120"),
	textMuted:   hex("#53605e"),
	white:       hex("#ffffff"),
	rowAlt:      hex("#f9f3df"),
	headerMuted: hex("#c8d2d1"),
}

// Renderer рисует листинг клиентов в PDF
type Renderer struct {
	title string
	brand string
}

func NewRenderer(brand string) *Renderer {
	return &Renderer{title: "Relatorio de Clientes", brand: brand}
}

// FileName имя файла выгрузки на дату
func FileName(at time.Time) string {
	return fmt.Sprintf("clientes-%s.pdf", at.Format(domain.DateFormat))
}

// Render пишет PDF в w
func (r *Renderer) Render(w io.Writer, listing *ClientListing) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := pdf.GetPageSize()
	contentWidth := pageWidth - margin*2

	pdf.SetFooterFunc(func() {
		setText(pdf, palette.textMuted)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(margin, pageHeight-28)
		pdf.CellFormat(contentWidth, 10, tr(fmt.Sprintf("%s - Pagina %d", r.brand, pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	drawPage := func() float64 {
		pdf.AddPage()

		// фон и шапка
		setFill(pdf, palette.pageBg)
		pdf.Rect(0, 0, pageWidth, pageHeight, "F")
		setFill(pdf, palette.headerBg)
		pdf.Rect(margin, margin, contentWidth, headerHeight, "F")
		setDraw(pdf, palette.gold)
		pdf.SetLineWidth(4)
		pdf.Line(margin+14, margin+headerHeight-8, margin+contentWidth-14, margin+headerHeight-8)

		setText(pdf, palette.goldSoft)
		pdf.SetFont("Helvetica", "B", 20)
		pdf.SetXY(margin+20, margin+18)
		pdf.CellFormat(300, 24, tr(r.title), "", 0, "L", false, 0, "")

		setText(pdf, palette.headerMuted)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(margin+20, margin+48)
		pdf.CellFormat(280, 12, tr("Gerado em: "+listing.GeneratedAt.Format("2006-01-02 15:04")), "", 0, "L", false, 0, "")
		pdf.SetXY(margin+20, margin+62)
		pdf.CellFormat(280, 12, tr(r.brand), "", 0, "L", false, 0, "")

		if listing.Query != "" {
			setText(pdf, palette.white)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetXY(margin+contentWidth-190, margin+22)
			pdf.CellFormat(170, 12, tr(fit(pdf, "Filtro: "+listing.Query, 170)), "", 0, "R", false, 0, "")
		}

		// карточки с итогами
		cardWidth := (contentWidth - 20) / 3
		cardY := margin + headerHeight + 14
		drawCard(pdf, tr, margin, cardY, cardWidth, "Total de clientes", listing.Counts.Total)
		drawCard(pdf, tr, margin+cardWidth+10, cardY, cardWidth, "Clientes pre-pago", listing.Counts.Prepaid)
		drawCard(pdf, tr, margin+(cardWidth+10)*2, cardY, cardWidth, "Clientes pos-pago", listing.Counts.Postpaid)

		// шапка таблицы
		setFill(pdf, palette.primary)
		pdf.Rect(margin, tableTop, contentWidth, 24, "F")
		setText(pdf, palette.goldSoft)
		pdf.SetFont("Helvetica", "B", 10)
		for _, col := range columns {
			pdf.SetXY(col.x, tableTop+6)
			pdf.CellFormat(col.width, 12, tr(col.title), "", 0, "L", false, 0, "")
		}

		return tableTop + 30
	}

	y := drawPage()
	for i, client := range listing.Clients {
		if y+rowHeight > pageHeight-bottomLimit {
			y = drawPage()
		}

		if i%2 == 0 {
			setFill(pdf, palette.rowAlt)
			pdf.Rect(margin, y-2, contentWidth, rowHeight, "F")
		}

		setText(pdf, palette.text)
		pdf.SetFont("Helvetica", "", 9)
		values := []string{
			orDash(client.Name),
			orDash(client.Email),
			orDash(client.Phone),
			clientTypeLabel(&client),
		}
		for j, col := range columns {
			pdf.SetXY(col.x, y+4)
			pdf.CellFormat(col.width, 12, tr(fit(pdf, values[j], col.width)), "", 0, "L", false, 0, "")
		}

		setDraw(pdf, palette.border)
		pdf.SetLineWidth(0.3)
		pdf.Line(margin, y+rowHeight-1, margin+contentWidth, y+rowHeight-1)

		y += rowHeight
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

func drawCard(pdf *gofpdf.Fpdf, tr func(string) string, x, y, width float64, label string, value int) {
	setFill(pdf, palette.cardBg)
	setDraw(pdf, palette.border)
	pdf.SetLineWidth(0.8)
	pdf.Rect(x, y, width, cardHeight, "FD")
	setDraw(pdf, palette.goldSoft)
	pdf.SetLineWidth(0.5)
	pdf.Line(x, y+18, x+width, y+18)

	setText(pdf, palette.textMuted)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(x+12, y+4)
	pdf.CellFormat(width-24, 12, tr(label), "", 0, "L", false, 0, "")

	setText(pdf, palette.primary)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(x+12, y+24)
	pdf.CellFormat(width-24, 20, strconv.Itoa(value), "", 0, "L", false, 0, "")
}

// fit обрезает строку с многоточием под ширину колонки при текущем шрифте
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}

func clientTypeLabel(u *domain.User) string {
	if domain.ClientTypeOf(u) == domain.ClientTypePostpaid {
		return "Pos-pago"
	}
	return "Pre-pago"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func setFill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

func setDraw(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }

func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
