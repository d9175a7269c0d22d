package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLAlternative_ParagraphsAndBreaks(t *testing.T) {
	body := "Hello Jamie,\n\nBOOKING DETAILS:\nDate: Thursday\nDogs: Rex (1 dog)\n\nBest regards,\nAlex\n"

	got := htmlAlternative(body)

	assert.Equal(t,
		"<html><body>"+
			"<p>Hello Jamie,</p>"+
			"<p>BOOKING DETAILS:<br>Date: Thursday<br>Dogs: Rex (1 dog)</p>"+
			"<p>Best regards,<br>Alex</p>"+
			"</body></html>",
		got)
}

func TestHTMLAlternative_EscapesCustomerText(t *testing.T) {
	got := htmlAlternative("Reason:\n<script>alert(1)</script> & more")

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; more")
}
