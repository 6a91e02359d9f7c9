package redis

const (
	// KeyPrefixReminder is the prefix for reminder document keys
	KeyPrefixReminder = "reminderd:reminder:"
	// KeyAllReminders is the key for the set of all reminder IDs
	KeyAllReminders = "reminderd:reminders:all"

	// KeyPrefixStatusCheck is the prefix for status check document keys
	KeyPrefixStatusCheck = "reminderd:status_check:"
	// KeyAllStatusChecks is the key for the set of all status check IDs
	KeyAllStatusChecks = "reminderd:status_checks:all"
)

// ReminderKey returns the Redis key for a reminder by ID
func ReminderKey(id string) string {
	return KeyPrefixReminder + id
}

// StatusCheckKey returns the Redis key for a status check by ID
func StatusCheckKey(id string) string {
	return KeyPrefixStatusCheck + id
}
