package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/database"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ErrNoEligibleParticipants is reported when a draw finds an empty
// participant pool, nothing is persisted in that case.
var ErrNoEligibleParticipants = errors.New("survey has no eligible participants to draw from")

// ErrDrawInProgress rejects a second operator triggering a draw for a
// survey that is already drawing.
var ErrDrawInProgress = errors.New("a draw is already in progress for this survey")

var drawingSurveys sync.Map

// SortPrizesForDraw establishes draw order: ascending by rank with
// unranked prizes after all ranked ones, ties keep their list order.
func SortPrizesForDraw(prizes []models.Prize) []models.Prize {
	sorted := make([]models.Prize, len(prizes))
	copy(sorted, prizes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rank == nil {
			return false
		}
		if sorted[j].Rank == nil {
			return true
		}
		return *sorted[i].Rank < *sorted[j].Rank
	})

	return sorted
}

// AllocateWinners pairs a fair shuffle of the participant pool with the
// rank-sorted prize list. No participant wins twice within one call and
// each assigned prize yields exactly one winner, so the result holds
// min(len(participants), len(prizes)) records.
func AllocateWinners(surveyId uint, participants []Participant, prizes []models.Prize, rng *rand.Rand) ([]models.GiveawayWinner, error) {
	if len(participants) == 0 {
		return nil, ErrNoEligibleParticipants
	}

	pool := make([]Participant, len(participants))
	copy(pool, participants)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	var winners []models.GiveawayWinner
	for idx, prize := range SortPrizesForDraw(prizes) {
		if idx >= len(pool) {
			// More prizes than participants, the rest go unassigned
			break
		}

		winner := pool[idx]
		winners = append(winners, models.GiveawayWinner{
			WinnerName:  winner.Name,
			WinnerEmail: winner.Email,
			WinnerPhone: winner.Phone,
			Rank:        len(winners) + 1,
			SurveyID:    surveyId,
			PrizeID:     prize.ID,
			Prize:       prize,
			ResponseID:  winner.ResponseID,
		})
	}

	if len(winners) == 0 {
		return nil, ErrNoEligibleParticipants
	}

	return winners, nil
}

// missingPrizeIds reports which requested prize ids the lookup did not
// return, so a draw over someone else's (or a deleted) prize fails
// loudly instead of quietly shrinking the prize list.
func missingPrizeIds(requested []uint, prizes []models.Prize) []uint {
	loaded := lo.Map(prizes, func(prize models.Prize, index int) uint {
		return prize.ID
	})

	return lo.Without(lo.Uniq(requested), loaded...)
}

// DrawGiveaway resolves the participant pool of a survey and runs one
// draw over the given prizes, persisting the winners as a single batch.
// Draws are deliberately not idempotent: every invocation reshuffles
// and appends a fresh batch of history rows. Concurrent draws for the
// same survey are rejected instead of interleaved.
func DrawGiveaway(survey models.Survey, prizeIds []uint) ([]models.GiveawayWinner, error) {
	if _, busy := drawingSurveys.LoadOrStore(survey.ID, true); busy {
		return nil, ErrDrawInProgress
	}
	defer drawingSurveys.Delete(survey.ID)

	questions, err := ListSurveyQuestions(survey.ID)
	if err != nil {
		return nil, fmt.Errorf("unable to load questions: %v", err)
	}
	responses, err := ListAllResponses(survey.ID)
	if err != nil {
		return nil, fmt.Errorf("unable to load responses: %v", err)
	}

	participants, err := ResolveParticipants(questions, responses)
	if err != nil {
		return nil, err
	}

	var prizes []models.Prize
	if err := database.C.Where("id IN ? AND company_id = ?", prizeIds, survey.CompanyID).Find(&prizes).Error; err != nil {
		return nil, fmt.Errorf("unable to load prizes: %v", err)
	}
	if missing := missingPrizeIds(prizeIds, prizes); len(missing) > 0 {
		return nil, fmt.Errorf("prizes %v were not found in this company", missing)
	}
	if len(prizes) == 0 {
		return nil, fmt.Errorf("no prizes were selected for the draw")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	winners, err := AllocateWinners(survey.ID, participants, prizes, rng)
	if err != nil {
		return nil, err
	}

	// One batch, the computed winners are discarded whenever the write
	// fails and the operator has to trigger a whole new draw.
	if err := database.C.Omit("Prize").Create(&winners).Error; err != nil {
		return nil, fmt.Errorf("unable to persist winners: %v", err)
	}

	log.Info().Uint("survey", survey.ID).Int("winners", len(winners)).Msg("Giveaway draw has been sealed.")

	return winners, nil
}

func ListGiveawayWinners(surveyId uint) ([]models.GiveawayWinner, error) {
	var winners []models.GiveawayWinner
	err := database.C.Where("survey_id = ?", surveyId).
		Preload("Prize").
		Order("created_at DESC, rank ASC").
		Find(&winners).Error

	return winners, err
}
