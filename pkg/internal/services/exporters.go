package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/samber/lo"
)

// ExportResponsesCSV renders a survey's responses in wide format, one
// row per response and one column per question in position order.
// Multi-valued answers are joined with "; ".
func ExportResponsesCSV(questions []models.Question, responses []models.Response) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := append([]string{"response_id", "submitted_at"}, lo.Map(questions, func(item models.Question, index int) string {
		return item.Text
	})...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, response := range responses {
		row := make([]string, 0, 2+len(questions))
		row = append(row, itoa(response.ID), response.CreatedAt.UTC().Format(time.RFC3339))
		for _, question := range questions {
			answer, ok := FindAnswer(response, question.ID)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, answer.Value.Display())
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportWinnersCSV renders the draw history of a survey.
func ExportWinnersCSV(winners []models.GiveawayWinner) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"drawn_at", "rank", "prize", "winner_name", "winner_email", "winner_phone"}); err != nil {
		return nil, err
	}
	for _, winner := range winners {
		rec := []string{
			winner.CreatedAt.UTC().Format(time.RFC3339),
			itoa(uint(winner.Rank)),
			winner.Prize.Name,
			winner.WinnerName,
			winner.WinnerEmail,
			winner.WinnerPhone,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
