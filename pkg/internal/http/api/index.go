package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		companies := api.Group("/companies").Name("Companies API")
		{
			companies.Post("/", createCompany)
			companies.Get("/:companyId", getCompany)
			companies.Get("/:companyId/members", listCompanyMembers)
			companies.Post("/:companyId/members", addCompanyMember)

			companies.Get("/:companyId/surveys", listSurveys)
			companies.Post("/:companyId/surveys", createSurvey)

			companies.Get("/:companyId/prizes", listPrizes)
			companies.Post("/:companyId/prizes", createPrize)
			companies.Put("/:companyId/prizes/:prizeId", updatePrize)
			companies.Delete("/:companyId/prizes/:prizeId", deletePrize)

			companies.Get("/:companyId/chat", listChatMessages)
			companies.Post("/:companyId/chat", sendChatMessage)
			companies.Get("/:companyId/chat/stream", streamChatEvents)
		}

		surveys := api.Group("/surveys").Name("Surveys API")
		{
			surveys.Get("/:surveyId", getSurvey)
			surveys.Put("/:surveyId", updateSurvey)
			surveys.Delete("/:surveyId", deleteSurvey)

			surveys.Post("/:surveyId/responses", submitResponse)
			surveys.Get("/:surveyId/responses", listResponses)
			surveys.Get("/:surveyId/responses/export", exportResponses)

			surveys.Get("/:surveyId/analysis", getSurveyAnalysis)
			surveys.Get("/:surveyId/digest", getSurveyDigest)

			surveys.Get("/:surveyId/participants", listParticipants)
			surveys.Get("/:surveyId/giveaways", listGiveawayWinners)
			surveys.Post("/:surveyId/giveaways", drawGiveaway)
			surveys.Get("/:surveyId/giveaways/export", exportGiveawayWinners)
		}
	}
}
