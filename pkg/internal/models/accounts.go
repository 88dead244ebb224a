package models

const (
	RoleMember = iota
	RoleManager
	RoleAdmin
)

type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Email  string `json:"email" gorm:"uniqueIndex"`
	Avatar string `json:"avatar"`

	Memberships []CompanyMember `json:"memberships" gorm:"foreignKey:AccountID"`
}

type Company struct {
	BaseModel

	Alias       string `json:"alias" gorm:"uniqueIndex" validate:"lowercase,alphanum"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Members []CompanyMember `json:"members" gorm:"foreignKey:CompanyID"`
	Surveys []Survey        `json:"surveys" gorm:"foreignKey:CompanyID"`
	Prizes  []Prize         `json:"prizes" gorm:"foreignKey:CompanyID"`
}

type CompanyMember struct {
	BaseModel

	Role      int     `json:"role"`
	CompanyID uint    `json:"company_id"`
	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}
