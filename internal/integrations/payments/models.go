package payments

// IntentStatus mirrors the Stripe payment intent lifecycle states the booking
// flow cares about.
type IntentStatus string

const (
	StatusSucceeded IntentStatus = "succeeded"
)

// Intent is the slice of a Stripe payment intent the service consumes.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	AmountCents  int64
	Currency     string
}

// Succeeded reports whether the payment has been captured.
func (i *Intent) Succeeded() bool {
	return i.Status == StatusSucceeded
}

// CreateIntentParams describes the charge for one sub-service booking.
type CreateIntentParams struct {
	AmountCents    int64
	Currency       string
	Description    string
	SubServiceID   string
	SubServiceName string
}
