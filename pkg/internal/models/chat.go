package models

type ChatMessage struct {
	BaseModel

	Content  string `json:"content"`
	Language string `json:"language"`

	CompanyID uint    `json:"company_id"`
	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}
