package business

import "time"

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Industry    string `json:"industry" validate:"max=100"`
	Website     string `json:"website" validate:"omitempty,url,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Industry    string `json:"industry" validate:"max=100"`
	Website     string `json:"website" validate:"omitempty,url,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AgentConfigRequest struct {
	AgentName      string `json:"agent_name" validate:"required,min=1,max=100"`
	VoiceID        string `json:"voice_id" validate:"required,max=100"`
	Greeting       string `json:"greeting" validate:"max=1000"`
	SalesScript    string `json:"sales_script" validate:"max=10000"`
	ObjectionStyle string `json:"objection_style" validate:"omitempty,oneof=soft neutral aggressive"`
}

type AgentConfigResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	AgentName      string    `json:"agent_name"`
	VoiceID        string    `json:"voice_id"`
	Greeting       string    `json:"greeting"`
	SalesScript    string    `json:"sales_script"`
	ObjectionStyle string    `json:"objection_style"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
