package dto

// PaymentIntentRequest asks the gateway for a client-confirmable charge.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the gateway client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// RecordPaymentRequest is posted after the client confirms the charge. The
// matching cart entries are cleared in the same transaction.
type RecordPaymentRequest struct {
	TransactionID    string   `json:"transaction_id"`
	Amount           float64  `json:"amount"`
	ClassIDs         []string `json:"class_ids"`
	InstructorEmails []string `json:"instructor_emails"`
}

// UpdateOrderRequest drives the admin-side enrollment transaction.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}
