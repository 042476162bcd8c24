package domain

// NotificationType identifies the kind of event being pushed to a recipient.
type NotificationType string

const (
	NotificationNewMatch           NotificationType = "new_match"
	NotificationNewInvestment      NotificationType = "new_investment"
	NotificationFundingGoalReached NotificationType = "funding_goal_reached"
)

// Notification is a fire-and-forget message handed to the dispatcher.
// Delivery is best-effort; no guarantee is required by this core.
type Notification struct {
	ID          string            `json:"id"`
	Type        NotificationType  `json:"type"`
	RecipientID string            `json:"recipientId"`
	Payload     map[string]string `json:"payload,omitempty"`
}
