package mailer

import (
	"fmt"
	"html"
	"strings"

	"github.com/caninecompadre/booking-service/internal/domain"
)

const (
	longDateFormat    = "Monday, January 2, 2006"
	subjectDateFormat = "January 2 2006"
	signature         = "Best regards,\nAlex\nCanine Compadre"
)

func dogsLine(dogs []*domain.Dog, count int) string {
	names := make([]string, 0, len(dogs))
	for _, d := range dogs {
		names = append(names, d.Name)
	}
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%s (%d dog%s)", strings.Join(names, ", "), count, plural)
}

// htmlAlternative renders the plain-text body as simple HTML: blank
// lines separate paragraphs, single line breaks stay as breaks. The
// text is escaped, so customer-supplied reasons cannot inject markup.
func htmlAlternative(body string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, paragraph := range strings.Split(strings.TrimRight(body, "\n"), "\n\n") {
		lines := strings.Split(paragraph, "\n")
		for i, line := range lines {
			lines[i] = html.EscapeString(line)
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>"))
		b.WriteString("</p>")
	}
	b.WriteString("</body></html>")
	return b.String()
}

// SendBookingConfirmation emails the customer after a group walk booking
// is reserved. A multi-date booking gets a single email covering every walk.
func (c *Client) SendBookingConfirmation(bookings []*domain.GroupBooking, dogs []*domain.Dog) error {
	if len(bookings) == 0 {
		return nil
	}
	first := bookings[0]

	var subject string
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", first.Customer.Name)

	if len(bookings) == 1 {
		subject = fmt.Sprintf("Group Walk Confirmed - %s", first.BookingDate.Format(subjectDateFormat))
		b.WriteString("Great news! Your group walk booking has been confirmed.\n\n")
		b.WriteString("BOOKING DETAILS:\n")
		fmt.Fprintf(&b, "Date & Time: %s at %s\n", first.BookingDate.Format(longDateFormat), first.TimeSlot.Display())
		fmt.Fprintf(&b, "Dogs: %s\n", dogsLine(dogs, first.DogCount))
		fmt.Fprintf(&b, "Pickup Address: %s, %s\n", first.Customer.Address, first.Customer.Postcode)
		fmt.Fprintf(&b, "Booking ID: #%d\n\n", first.ID)
	} else {
		subject = fmt.Sprintf("Multiple Group Walk Bookings Confirmed - %d walks for %s", len(bookings), first.Customer.Name)
		fmt.Fprintf(&b, "Great news! All %d of your group walk bookings have been confirmed.\n\n", len(bookings))
		b.WriteString("CONFIRMED WALKS:\n")
		for _, bk := range bookings {
			fmt.Fprintf(&b, "- %s at %s (booking #%d)\n", bk.BookingDate.Format(longDateFormat), bk.TimeSlot.Display(), bk.ID)
		}
		fmt.Fprintf(&b, "\nDogs: %s\n", dogsLine(dogs, first.DogCount))
		fmt.Fprintf(&b, "Pickup Address: %s, %s\n\n", first.Customer.Address, first.Customer.Postcode)
	}

	b.WriteString("WHAT TO EXPECT:\n")
	b.WriteString("- Alex will arrive at your address at the scheduled time\n")
	b.WriteString("- Your dogs will enjoy a fun group walk with other friendly dogs\n")
	b.WriteString("- The walk typically lasts 1 hour\n")
	b.WriteString("- We'll send updates if there are any changes to the schedule\n\n")
	fmt.Fprintf(&b, "If you have any questions or need to make changes to your booking, please contact us at %s\n\n", c.from)
	b.WriteString("Thank you for choosing Canine Compadre!\n\n")
	b.WriteString(signature)

	return c.Send(first.Customer.Email, subject, b.String(), htmlAlternative(b.String()))
}

// SendBookingCancellation emails the customer when staff close their slot.
func (c *Client) SendBookingCancellation(booking *domain.GroupBooking, dogs []*domain.Dog, reason string) error {
	subject := fmt.Sprintf("Important: Your Group Walk Booking on %s has been Cancelled",
		booking.BookingDate.Format(subjectDateFormat))

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", booking.Customer.Name)
	b.WriteString("We sincerely apologize, but we need to cancel your group walk booking due to unforeseen circumstances.\n\n")
	b.WriteString("CANCELLED BOOKING DETAILS:\n")
	fmt.Fprintf(&b, "- Date: %s\n", booking.BookingDate.Format(longDateFormat))
	fmt.Fprintf(&b, "- Time: %s\n", booking.TimeSlot.Display())
	fmt.Fprintf(&b, "- Dogs: %s\n", dogsLine(dogs, booking.DogCount))
	fmt.Fprintf(&b, "- Booking ID: #%d\n\n", booking.ID)
	b.WriteString("REASON FOR CANCELLATION:\n")
	fmt.Fprintf(&b, "%s\n\n", reason)
	b.WriteString("We understand this is inconvenient and apologize for any disruption to your plans. To make this right, we'd like to offer you priority booking for an alternative date.\n\n")
	fmt.Fprintf(&b, "Contact us directly at %s if you need assistance rebooking.\n\n", c.from)
	b.WriteString(signature)

	return c.Send(booking.Customer.Email, subject, b.String(), htmlAlternative(b.String()))
}

// SendRequestReceived acknowledges a new individual walk request.
func (c *Client) SendRequestReceived(req *domain.IndividualRequest, dogs []*domain.Dog) error {
	subject := fmt.Sprintf("Individual Walk Request Received - #%d", req.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", req.Customer.Name)
	b.WriteString("Thank you for submitting your individual walk request. We have received your request and will review it shortly.\n\n")
	b.WriteString("REQUEST DETAILS:\n")
	fmt.Fprintf(&b, "Preferred Date: %s\n", req.PreferredDate.Format(longDateFormat))
	fmt.Fprintf(&b, "Preferred Time: %s\n", req.PreferredTimeText)
	fmt.Fprintf(&b, "Dogs: %s\n", dogsLine(dogs, req.DogCount))
	fmt.Fprintf(&b, "Address: %s, %s\n", req.Customer.Address, req.Customer.Postcode)
	fmt.Fprintf(&b, "Request ID: #%d\n\n", req.ID)
	b.WriteString("REASON FOR INDIVIDUAL WALK:\n")
	fmt.Fprintf(&b, "%s\n\n", req.Reason)
	b.WriteString("WHAT HAPPENS NEXT:\n")
	b.WriteString("1. Alex will review your request within 24 hours\n")
	fmt.Fprintf(&b, "2. You'll receive an email with the decision at %s\n", req.Customer.Email)
	b.WriteString("3. If approved, we'll confirm the exact date and time\n")
	b.WriteString("4. Payment will be arranged when the walk is confirmed\n\n")
	b.WriteString("Thank you for considering Canine Compadre for your dog's individual walking needs!\n\n")
	b.WriteString(signature)

	return c.Send(req.Customer.Email, subject, b.String(), htmlAlternative(b.String()))
}

// SendRequestDecision emails the customer after a staff review.
func (c *Client) SendRequestDecision(req *domain.IndividualRequest, dogs []*domain.Dog) error {
	var subject string
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", req.Customer.Name)

	if req.Status == domain.RequestApproved {
		subject = fmt.Sprintf("Individual Walk Approved - %s", req.ConfirmedDate.Format(subjectDateFormat))
		b.WriteString("Excellent news! Your individual walk request has been APPROVED.\n\n")
		b.WriteString("CONFIRMED BOOKING DETAILS:\n")
		fmt.Fprintf(&b, "Date: %s\n", req.ConfirmedDate.Format(longDateFormat))
		fmt.Fprintf(&b, "Time: %s\n", *req.ConfirmedTimeText)
		fmt.Fprintf(&b, "Dogs: %s\n", dogsLine(dogs, req.DogCount))
		fmt.Fprintf(&b, "Address: %s, %s\n", req.Customer.Address, req.Customer.Postcode)
		fmt.Fprintf(&b, "Request ID: #%d\n\n", req.ID)
		if req.AdminResponse != nil && *req.AdminResponse != "" {
			b.WriteString("ALEX'S MESSAGE:\n")
			fmt.Fprintf(&b, "%s\n\n", *req.AdminResponse)
		}
		b.WriteString("WHAT HAPPENS NEXT:\n")
		b.WriteString("- Alex will arrive at your address at the confirmed time\n")
		b.WriteString("- Please have your dogs ready for pickup\n")
		b.WriteString("- The walk will be tailored to your dog's specific needs\n")
		b.WriteString("- Payment can be made on the day of the walk\n\n")
		b.WriteString("Thank you for choosing Canine Compadre!\n\n")
	} else {
		subject = fmt.Sprintf("Individual Walk Request - Update on #%d", req.ID)
		b.WriteString("Thank you for your individual walk request. After careful consideration, we are unable to accommodate your request at this time.\n\n")
		b.WriteString("REQUEST DETAILS:\n")
		fmt.Fprintf(&b, "Requested Date: %s\n", req.PreferredDate.Format(longDateFormat))
		fmt.Fprintf(&b, "Requested Time: %s\n", req.PreferredTimeText)
		fmt.Fprintf(&b, "Dogs: %s\n", dogsLine(dogs, req.DogCount))
		fmt.Fprintf(&b, "Request ID: #%d\n\n", req.ID)
		if req.AdminResponse != nil && *req.AdminResponse != "" {
			b.WriteString("ALEX'S MESSAGE:\n")
			fmt.Fprintf(&b, "%s\n\n", *req.AdminResponse)
		}
		b.WriteString("ALTERNATIVE OPTIONS:\n")
		b.WriteString("- Consider booking a group walk if your dog is sociable with other dogs\n")
		b.WriteString("- Contact us to discuss alternative dates or times\n")
		b.WriteString("- We may be able to accommodate your request in the future\n\n")
		b.WriteString("Thank you for considering Canine Compadre.\n\n")
	}
	b.WriteString(signature)

	return c.Send(req.Customer.Email, subject, b.String(), htmlAlternative(b.String()))
}

// SendAdminNewBooking notifies staff about fresh group walk bookings.
func (c *Client) SendAdminNewBooking(bookings []*domain.GroupBooking, dogs []*domain.Dog) error {
	if len(bookings) == 0 || c.adminAddress == "" {
		return nil
	}
	first := bookings[0]

	var subject string
	if len(bookings) == 1 {
		subject = fmt.Sprintf("New Group Walk Booking - %s", first.BookingDate.Format(subjectDateFormat))
	} else {
		subject = fmt.Sprintf("NEW: %d Group Walk Bookings - %s", len(bookings), first.Customer.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New group walk booking from %s.\n\n", first.Customer.Name)
	for _, bk := range bookings {
		fmt.Fprintf(&b, "- #%d: %s at %s, %d dog(s)\n", bk.ID, bk.BookingDate.Format(longDateFormat), bk.TimeSlot.Display(), bk.DogCount)
	}
	fmt.Fprintf(&b, "\nDogs: %s\n", dogsLine(dogs, first.DogCount))
	fmt.Fprintf(&b, "Contact: %s / %s\n", first.Customer.Email, first.Customer.Phone)
	fmt.Fprintf(&b, "Pickup: %s, %s\n", first.Customer.Address, first.Customer.Postcode)

	return c.Send(c.adminAddress, subject, b.String(), "")
}

// SendAdminNewRequest notifies staff about a fresh individual walk request.
func (c *Client) SendAdminNewRequest(req *domain.IndividualRequest, dogs []*domain.Dog) error {
	if c.adminAddress == "" {
		return nil
	}

	subject := fmt.Sprintf("New Individual Walk Request - %s", req.Customer.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "New individual walk request #%d from %s.\n\n", req.ID, req.Customer.Name)
	fmt.Fprintf(&b, "Preferred Date: %s\n", req.PreferredDate.Format(longDateFormat))
	fmt.Fprintf(&b, "Preferred Time: %s\n", req.PreferredTimeText)
	fmt.Fprintf(&b, "Dogs: %s\n", dogsLine(dogs, req.DogCount))
	fmt.Fprintf(&b, "Reason: %s\n", req.Reason)
	fmt.Fprintf(&b, "Contact: %s / %s\n", req.Customer.Email, req.Customer.Phone)
	fmt.Fprintf(&b, "Pickup: %s, %s\n", req.Customer.Address, req.Customer.Postcode)

	return c.Send(c.adminAddress, subject, b.String(), "")
}
