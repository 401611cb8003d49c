package entity

import "time"

type Company struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Name        string    `db:"name"`
	Industry    string    `db:"industry"`
	Website     string    `db:"website"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// AgentConfig is the voice-agent setup for one company: what the practice
// agent sounds like and which script it pushes back with.
type AgentConfig struct {
	ID             string    `db:"id"`
	CompanyID      string    `db:"company_id"`
	AgentName      string    `db:"agent_name"`
	VoiceID        string    `db:"voice_id"`
	Greeting       string    `db:"greeting"`
	SalesScript    string    `db:"sales_script"`
	ObjectionStyle string    `db:"objection_style"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
