package email

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

// formatDate turns a 2006-01-02 date string into the long form used in
// guest-facing mail. Unparseable input is shown as-is.
func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("Monday, January 2, 2006")
}

// propertyContent carries the copy that differs between the three
// properties sharing this booking pipeline.
type propertyContent struct {
	Name         string
	Subtitle     string
	Directions   template.HTML
	Signoff      string
	Footer       string
	CheckInTime  string
	CheckOutTime string
}

func contentFor(property string) propertyContent {
	p := strings.ToLower(property)

	if strings.Contains(p, "kasbah") {
		return propertyContent{
			Name:         "The Kasbah",
			Subtitle:     "Thank you for choosing The Kasbah. We are preparing your rooms in the Draa Valley.",
			Directions:   `<p>The Kasbah is located in the Draa Valley, approximately 2 hours from Ouarzazate airport or 5 hours from Marrakech.</p><p><strong>We will coordinate your transfer details</strong> once you confirm your arrival time. Most guests arrive via private driver from Marrakech or Ouarzazate.</p>`,
			Signoff:      "The Kasbah",
			Footer:       "The Kasbah · Draa Valley · Morocco",
			CheckInTime:  "3:00 PM",
			CheckOutTime: "11:00 AM",
		}
	}

	if strings.Contains(p, "desert") || strings.Contains(p, "camp") {
		return propertyContent{
			Name:         "The Desert Camp",
			Subtitle:     "Thank you for choosing The Desert Camp. The Sahara awaits.",
			Directions:   `<p>The camp is located in the Erg Chebbi dunes near Merzouga, approximately 5 hours from Ouarzazate or 9 hours from Marrakech.</p><p><strong>We will coordinate your transfer and camel trek</strong> once you confirm your arrival time. Most guests arrive in Merzouga by mid-afternoon for the sunset camel ride to camp.</p>`,
			Signoff:      "The Desert Camp",
			Footer:       "The Desert Camp · Erg Chebbi · Sahara",
			CheckInTime:  "4:00 PM",
			CheckOutTime: "10:00 AM",
		}
	}

	// Riad and Douaria in the Marrakech Medina.
	return propertyContent{
		Name:         "Riad di Siena",
		Subtitle:     "Thank you for choosing Riad di Siena. We are preparing the house to receive you.",
		Directions:   `<p>The Medina is pedestrian-only. Have your driver drop you at <strong>Café Medina Rouge</strong> (near Koutoubia Mosque, facing Parking Bennani). From there, it's a 2-minute walk to our door at 35–37 Derb Fhal Zefriti.</p><p>We can arrange a private driver from the airport for 200 MAD — just message Zahra. You can also use the taxi services at the airport counter.</p>`,
		Signoff:      "The Riad",
		Footer:       "Riad di Siena · 35–37 Derb Fhal Zefriti · Marrakech Medina",
		CheckInTime:  "3:00 PM",
		CheckOutTime: "11:00 AM",
	}
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
