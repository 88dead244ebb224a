package services

import (
	"encoding/json"
	"testing"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
)

func question(id uint, kind string, text string) models.Question {
	return models.Question{
		BaseModel: models.BaseModel{ID: id},
		Text:      text,
		Type:      kind,
	}
}

func response(id uint, answers ...models.Answer) models.Response {
	return models.Response{
		BaseModel: models.BaseModel{ID: id},
		Answers:   answers,
	}
}

func chartData(t *testing.T, analysis QuestionAnalysis) []ChartDataItem {
	t.Helper()
	data, ok := analysis.Data.([]ChartDataItem)
	if !ok {
		t.Fatalf("expected chart data, got %T", analysis.Data)
	}
	return data
}

func textData(t *testing.T, analysis QuestionAnalysis) []string {
	t.Helper()
	data, ok := analysis.Data.([]string)
	if !ok {
		t.Fatalf("expected text data, got %T", analysis.Data)
	}
	return data
}

func TestAnalyzeSurveyRatingBuckets(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeRating, "How likely are you to recommend us?")}
	responses := []models.Response{
		response(1, models.Answer{QuestionID: 1, Value: models.ScoreValue(5)}),
		response(2, models.Answer{QuestionID: 1, Value: models.ScoreValue(5)}),
		response(3, models.Answer{QuestionID: 1, Value: models.ScoreValue(3)}),
	}

	analyses := AnalyzeSurvey(questions, responses)
	if len(analyses) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(analyses))
	}

	data := chartData(t, analyses[0])
	want := []ChartDataItem{{Name: "5", Value: 2}, {Name: "3", Value: 1}}
	if len(data) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(data))
	}
	for idx, item := range want {
		if data[idx] != item {
			t.Errorf("bucket %d: expected %+v, got %+v", idx, item, data[idx])
		}
	}
}

func TestAnalyzeSurveyCheckboxFanOut(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeCheckbox, "Which channels do you use?")}
	responses := []models.Response{
		response(1, models.Answer{QuestionID: 1, Value: models.PicksValue([]string{"A", "B"})}),
		response(2, models.Answer{QuestionID: 1, Value: models.PicksValue([]string{"A"})}),
	}

	data := chartData(t, AnalyzeSurvey(questions, responses)[0])

	counts := map[string]int{}
	for _, item := range data {
		counts[item.Name] = item.Value
	}
	if counts["A"] != 2 || counts["B"] != 1 {
		t.Errorf("expected A=2 B=1, got %v", counts)
	}
}

func TestAnalyzeSurveyTextFiltering(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeShortText, "Anything else?")}
	responses := []models.Response{
		response(1, models.Answer{QuestionID: 1, Value: models.TextValue("")}),
		response(2, models.Answer{QuestionID: 1, Value: models.TextValue("   ")}),
		response(3, models.Answer{QuestionID: 1, Value: models.TextValue("Great service")}),
		response(4),
	}

	data := textData(t, AnalyzeSurvey(questions, responses)[0])
	if len(data) != 1 || data[0] != "Great service" {
		t.Errorf("expected only the non-blank answer, got %v", data)
	}
}

func TestAnalyzeSurveyFrequencyCompleteness(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeMultipleChoice, "Favorite color?")}
	responses := []models.Response{
		response(1, models.Answer{QuestionID: 1, Value: models.TextValue("Red")}),
		response(2, models.Answer{QuestionID: 1, Value: models.TextValue("Blue")}),
		response(3, models.Answer{QuestionID: 1, Value: models.TextValue("Red")}),
		response(4),
	}

	data := chartData(t, AnalyzeSurvey(questions, responses)[0])

	var total int
	for _, item := range data {
		total += item.Value
	}
	if total != 3 {
		t.Errorf("bucket totals should equal answered count, expected 3 got %d", total)
	}
}

func TestAnalyzeSurveyEmptyAndUnknown(t *testing.T) {
	questions := []models.Question{
		question(1, models.QuestionTypeRating, "Score?"),
		question(2, "matrix", "Unsupported kind"),
	}

	analyses := AnalyzeSurvey(questions, nil)

	if data := chartData(t, analyses[0]); len(data) != 0 {
		t.Errorf("question without answers should yield empty data, got %v", data)
	}
	if data := chartData(t, analyses[1]); len(data) != 0 {
		t.Errorf("unknown question type should yield empty data, got %v", data)
	}
}

func TestAnalysisSnapshotKeepsShape(t *testing.T) {
	questions := []models.Question{
		question(1, models.QuestionTypeRating, "Score?"),
		question(2, models.QuestionTypeShortText, "Anything else?"),
		question(3, "matrix", "Unsupported kind"),
	}
	responses := []models.Response{
		response(1,
			models.Answer{QuestionID: 1, Value: models.ScoreValue(5)},
			models.Answer{QuestionID: 2, Value: models.TextValue("Great service")},
		),
	}

	fresh := AnalyzeSurvey(questions, responses)
	restored := restoreAnalyses(snapshotAnalyses(fresh))

	if len(restored) != len(fresh) {
		t.Fatalf("expected %d analyses after round-trip, got %d", len(fresh), len(restored))
	}
	chartData(t, restored[0])
	textData(t, restored[1])
	if data := chartData(t, restored[2]); len(data) != 0 {
		t.Errorf("unsupported kind should restore as empty chart data, got %v", data)
	}

	freshRaw, err := json.Marshal(fresh)
	if err != nil {
		t.Fatal(err)
	}
	restoredRaw, err := json.Marshal(restored)
	if err != nil {
		t.Fatal(err)
	}
	if string(freshRaw) != string(restoredRaw) {
		t.Errorf("round-trip changed the serialized analysis:\nfresh:    %s\nrestored: %s", freshRaw, restoredRaw)
	}
}

func TestAnalyzeSurveyMismatchedValueShapes(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeRating, "Score?")}
	responses := []models.Response{
		// Text where a score is declared, stored before validation existed
		response(1, models.Answer{QuestionID: 1, Value: models.TextValue("five")}),
		response(2, models.Answer{QuestionID: 1, Value: models.ScoreValue(7)}),
	}

	data := chartData(t, AnalyzeSurvey(questions, responses)[0])
	total := 0
	for _, item := range data {
		total += item.Value
	}
	if total != 2 {
		t.Errorf("expected both observed answers bucketed, got %v", data)
	}
}
