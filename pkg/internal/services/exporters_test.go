package services

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
)

func TestExportResponsesCSV(t *testing.T) {
	questions := []models.Question{
		question(1, models.QuestionTypeShortText, "Nome Completo"),
		question(2, models.QuestionTypeCheckbox, "Channels?"),
		question(3, models.QuestionTypeRating, "Score?"),
	}
	responses := []models.Response{
		response(10,
			models.Answer{QuestionID: 1, Value: models.TextValue("Ana Silva")},
			models.Answer{QuestionID: 2, Value: models.PicksValue([]string{"A", "B"})},
			models.Answer{QuestionID: 3, Value: models.ScoreValue(9)},
		),
		response(11,
			models.Answer{QuestionID: 1, Value: models.TextValue("Bruno Costa")},
		),
	}

	out, err := ExportResponsesCSV(questions, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}

	header := records[0]
	if header[2] != "Nome Completo" || header[3] != "Channels?" || header[4] != "Score?" {
		t.Errorf("unexpected header: %v", header)
	}

	first := records[1]
	if first[2] != "Ana Silva" || first[3] != "A; B" || first[4] != "9" {
		t.Errorf("unexpected first row: %v", first)
	}

	second := records[2]
	if second[3] != "" || second[4] != "" {
		t.Errorf("unanswered questions should render empty cells: %v", second)
	}
}

func TestExportWinnersCSV(t *testing.T) {
	winners := []models.GiveawayWinner{
		{
			WinnerName: "Ana Silva",
			Rank:       1,
			Prize:      models.Prize{Name: "Headset"},
			ResponseID: 10,
		},
	}

	out, err := ExportWinnersCSV(winners)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row, got %d", len(records))
	}
	if records[1][1] != "1" || records[1][2] != "Headset" || records[1][3] != "Ana Silva" {
		t.Errorf("unexpected row: %v", records[1])
	}
}
