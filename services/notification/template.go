package notification

import "strings"

// Default reminder template. Placeholders are substituted at dispatch time so
// the delivery worker receives a finished message.
const reminderTemplate = "Hi {{name}}! {{from}} will be by {{address}} on {{date}} to scoop. " +
	"Please make sure gates are unlocked and dogs are inside. Love the service? {{review_link}}"

// ReminderMessage holds the values substituted into the reminder template.
type ReminderMessage struct {
	Name       string
	Address    string
	Date       string
	From       string
	ReviewLink string
}

// RenderReminder fills the reminder template.
func RenderReminder(msg ReminderMessage) string {
	r := strings.NewReplacer(
		"{{name}}", msg.Name,
		"{{address}}", msg.Address,
		"{{date}}", msg.Date,
		"{{from}}", msg.From,
		"{{review_link}}", msg.ReviewLink,
	)
	return strings.TrimSpace(r.Replace(reminderTemplate))
}
