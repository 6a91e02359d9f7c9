package seed

// File represents the top-level structure of the seed YAML file.
type File struct {
	Reminders []Entry `yaml:"reminders"`
}

// Entry is one reminder definition in the seed file.
type Entry struct {
	ID              string `yaml:"id,omitempty"` // optional fixed id, generated when empty
	Text            string `yaml:"text"`
	IntervalMinutes int    `yaml:"interval_minutes"`
	IsActive        bool   `yaml:"is_active,omitempty"`
}
