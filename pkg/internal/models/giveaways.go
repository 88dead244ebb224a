package models

type Prize struct {
	BaseModel

	Name        string `json:"name"`
	Description string `json:"description"`
	Rank        *int   `json:"rank"`

	CompanyID uint `json:"company_id"`
}

// GiveawayWinner rows are append-only, one row per prize assigned during
// a single draw. Re-running a draw appends a fresh batch instead of
// replacing the previous one.
type GiveawayWinner struct {
	BaseModel

	WinnerName  string `json:"winner_name"`
	WinnerEmail string `json:"winner_email"`
	WinnerPhone string `json:"winner_phone"`
	Rank        int    `json:"rank"`

	SurveyID   uint  `json:"survey_id"`
	PrizeID    uint  `json:"prize_id"`
	Prize      Prize `json:"prize"`
	ResponseID uint  `json:"response_id"`
}
