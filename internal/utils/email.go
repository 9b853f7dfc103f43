package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"moesjerky_back_end/internal/models"
)

// SendOrderConfirmationEmail envoie le récapitulatif de commande au client.
// Best-effort : sans SMTP_HOST configuré on ne fait rien, et l'échec d'envoi
// n'affecte jamais la commande déjà enregistrée.
func SendOrderConfirmationEmail(to string, order models.Order) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	from := os.Getenv("SHOP_EMAIL_FROM")
	if from == "" {
		from = "orders@moesjerky.shop"
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Moe's Jerky — Order #%d confirmed", order.OrderNumber))
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de la confirmation de commande à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML du récapitulatif. Le panier
// est un tableau libre venant du front : on lit item/name et qty/quantity
// sans exiger de schéma.
func GenerateOrderConfirmationHTML(order models.Order) string {
	rowsHTML := ""
	for _, line := range order.Cart {
		entry, ok := line.(map[string]interface{})
		if !ok {
			continue
		}
		rowsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
			</tr>`, cartField(entry, "item", "name"), cartField(entry, "qty", "quantity"))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thanks for your order!</h2>
		<p>Your order <strong>#%d</strong> is confirmed and being processed.</p>
		<p>Delivery date: <strong>%s</strong></p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Item</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Qty</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td style="padding: 8px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 8px; font-weight: bold;">$%.2f</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			See you soon,<br>
			<strong>The Moe's Jerky team</strong>
		</p>
	</div>
</body>
</html>`, order.OrderNumber, order.DeliveryDate, rowsHTML, order.Amount)
}

func cartField(entry map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := entry[key]; ok {
			switch val := v.(type) {
			case string:
				return val
			case float64:
				return strconv.FormatFloat(val, 'f', -1, 64)
			}
		}
	}
	return ""
}
