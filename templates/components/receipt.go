package components

import (
	"context"
	"fmt"
	"io"

	"legali_app_go/models"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

func money(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}

// ReceiptData is what an investment receipt shows
type ReceiptData struct {
	Investment   models.Investment
	InvestorName string
	CaseTitle    string
	LawFirm      string
}

// InvestmentReceipt renders the printable receipt for a completed investment
func InvestmentReceipt(data ReceiptData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		inv := data.Investment
		rows := [][2]string{
			{"Receipt number", inv.ReceiptNumber},
			{"Date", inv.CreatedAt.Format("January 2, 2006")},
			{"Investor", data.InvestorName},
			{"Case", data.CaseTitle},
			{"Law firm", data.LawFirm},
			{"Investment amount", money(inv.Amount)},
			{"Platform fee (2.5%)", money(inv.PlatformFee)},
			{"Total charged", money(inv.Total)},
			{"Expected return", money(inv.ExpectedReturnMin) + " - " + money(inv.ExpectedReturnMax)},
		}

		if _, err := io.WriteString(w, `<div class="receipt"><h1>Investment Receipt</h1><table>`); err != nil {
			return err
		}
		for _, row := range rows {
			if row[1] == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, `<tr><th>%s</th><td>%s</td></tr>`,
				templ.EscapeString(row[0]), templ.EscapeString(row[1])); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</table>`); err != nil {
			return err
		}
		if inv.InvestorNote != "" {
			if _, err := fmt.Fprintf(w, `<p class="note">%s</p>`, templ.EscapeString(inv.InvestorNote)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<p class="disclaimer">Litigation funding is speculative. Returns depend on case outcome and are not guaranteed.</p></div>`)
		return err
	})
}
