package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/nikolayk812/partsdepot/internal/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	templateOrderConfirmation = "order_confirmation"
	templatePartnerReceived   = "partner_received"
	templatePartnerReviewed   = "partner_reviewed"
	templateContactMessage    = "contact_message"
)

var printer = message.NewPrinter(language.English)

var funcs = template.FuncMap{
	"money": formatMoney,
}

// formatMoney renders an amount as ISO code plus grouped digits with cents,
// e.g. "MUR 1,234.50". The scale is fixed at two places because the
// currency table rounds MUR to whole rupees.
func formatMoney(m domain.Money) string {
	rounded := m.Round()
	return printer.Sprintf("%v %v",
		currency.ISO(rounded.Currency),
		number.Decimal(rounded.Amount.InexactFloat64(), number.Scale(2)))
}

type templates struct {
	t *template.Template
}

func parseTemplates() (*templates, error) {
	t, err := template.New("mail").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("template.ParseFS: %w", err)
	}

	return &templates{t: t}, nil
}

func (t *templates) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("ExecuteTemplate[%s]: %w", name, err)
	}
	return buf.String(), nil
}
