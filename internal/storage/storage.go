package storage

// User identifies who triggered a record.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
}

// Recorder abstracts the bot's append-only log.
// Record appends one line; records must come back out in call order.
// A nil user means the record is not tied to anyone.
type Recorder interface {
	Record(message string, user *User) error
}
