package utils

import (
	"fmt"
	"log"
	"strconv"

	"github.com/wneessen/go-mail"

	"github.com/KJaiswall/eco-mart-exchange-hub/internal/config"
	"github.com/KJaiswall/eco-mart-exchange-hub/internal/models"
)

// EmailSender envoie la confirmation de commande via SMTP. Construit une
// seule fois au démarrage ; un SMTP absent donne un sender nil et le
// checkout continue sans email.
type EmailSender struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewEmailSender retourne nil quand SMTP_HOST n'est pas configuré
func NewEmailSender(cfg *config.Config) *EmailSender {
	if cfg.SMTPHost == "" {
		log.Println("⚠️ SMTP non configuré, emails de confirmation désactivés")
		return nil
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	return &EmailSender{
		host: cfg.SMTPHost,
		port: port,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

func (e *EmailSender) SendOrderConfirmation(to string, order models.Order) error {
	msg := mail.NewMsg()

	if err := msg.From(e.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("🌱 Confirmation de votre commande - Eco-Mart")
	msg.SetBodyString(mail.TypeTextHTML, generateOrderConfirmationHTML(order))

	client, err := mail.NewClient(e.host,
		mail.WithPort(e.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(e.user),
		mail.WithPassword(e.pass),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

// generateOrderConfirmationHTML génère le HTML de confirmation de commande
func generateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, line := range order.Lines {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f€</td>
				<td>%.2f€</td>
			</tr>`, line.Title, line.Quantity, line.Price, line.Price*float64(line.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #2e7d32;">Merci pour votre commande !</h2>
		<p>Bonjour,</p>
		<p>Votre commande <strong>%s</strong> a bien été enregistrée.</p>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr><th>Article</th><th>Qté</th><th>Prix</th><th>Total</th></tr>
			%s
		</table>
		<p><strong>Sous-total :</strong> %.2f€</p>
		<p style="color: #2e7d32;"><strong>CO₂ économisé :</strong> %.1f kg 🌍</p>
		<p>Merci de contribuer à une électronique plus durable.</p>
	</div>
</body>
</html>`, order.ID, itemsHTML, order.Subtotal, order.TotalCarbonSaved)
}
