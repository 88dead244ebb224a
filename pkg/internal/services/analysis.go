package services

import (
	"context"
	"fmt"
	"time"

	localCache "github.com/pixelnegociosdigitais/datascope/pkg/internal/cache"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
)

type ChartDataItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// QuestionAnalysis carries the question together with its chart-ready
// data. Data is a []ChartDataItem for choice-like questions and a
// []string of non-blank answers for the text kinds.
type QuestionAnalysis struct {
	models.Question

	Data any `json:"data"`
}

// AnalyzeSurvey folds the collected responses into one analysis per
// question. It never fails, answers whose stored shape does not match
// the question's declared type are simply not counted.
func AnalyzeSurvey(questions []models.Question, responses []models.Response) []QuestionAnalysis {
	analyses := make([]QuestionAnalysis, 0, len(questions))
	for _, question := range questions {
		analyses = append(analyses, QuestionAnalysis{
			Question: question,
			Data:     analyzeQuestion(question, responses),
		})
	}

	return analyses
}

func analyzeQuestion(question models.Question, responses []models.Response) any {
	switch question.Type {
	case models.QuestionTypeMultipleChoice, models.QuestionTypeCheckbox, models.QuestionTypeRating:
		return buildFrequencyTable(question, responses)
	case models.QuestionTypeShortText, models.QuestionTypeLongText,
		models.QuestionTypeEmail, models.QuestionTypePhone:
		return collectTextAnswers(question, responses)
	default:
		return []ChartDataItem{}
	}
}

// Buckets are emitted in first-seen order, the dashboard does not
// expect any particular sort.
func buildFrequencyTable(question models.Question, responses []models.Response) []ChartDataItem {
	buckets := make([]ChartDataItem, 0)
	indexes := make(map[string]int)

	push := func(name string) {
		if idx, ok := indexes[name]; ok {
			buckets[idx].Value++
			return
		}
		indexes[name] = len(buckets)
		buckets = append(buckets, ChartDataItem{Name: name, Value: 1})
	}

	for _, response := range responses {
		answer, ok := FindAnswer(response, question.ID)
		if !ok {
			continue
		}

		switch question.Type {
		case models.QuestionTypeCheckbox:
			// Every picked option counts towards its own bucket
			for _, pick := range answer.Value.Picks {
				push(pick)
			}
		default:
			if answer.Value.Text != nil || answer.Value.Score != nil {
				push(answer.Value.Display())
			}
		}
	}

	return buckets
}

func collectTextAnswers(question models.Question, responses []models.Response) []string {
	texts := make([]string, 0)
	for _, response := range responses {
		answer, ok := FindAnswer(response, question.ID)
		if !ok {
			continue
		}
		if text := answer.Value.GetText(); len(text) > 0 {
			texts = append(texts, text)
		}
	}

	return texts
}

// analysisSnapshot is the cacheable form of a QuestionAnalysis. The
// cache codec only keeps typed fields intact, an `any` field would come
// back as generic maps and leak differently-cased keys to the API, so
// the two data shapes are stored side by side and folded back on read.
type analysisSnapshot struct {
	Question models.Question `json:"question"`
	Items    []ChartDataItem `json:"items"`
	Texts    []string        `json:"texts"`
	Textual  bool            `json:"textual"`
}

func snapshotAnalyses(analyses []QuestionAnalysis) []analysisSnapshot {
	snapshots := make([]analysisSnapshot, 0, len(analyses))
	for _, analysis := range analyses {
		snapshot := analysisSnapshot{Question: analysis.Question}
		switch data := analysis.Data.(type) {
		case []string:
			snapshot.Texts = data
			snapshot.Textual = true
		case []ChartDataItem:
			snapshot.Items = data
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}

func restoreAnalyses(snapshots []analysisSnapshot) []QuestionAnalysis {
	analyses := make([]QuestionAnalysis, 0, len(snapshots))
	for _, snapshot := range snapshots {
		analysis := QuestionAnalysis{Question: snapshot.Question}
		if snapshot.Textual {
			if snapshot.Texts == nil {
				snapshot.Texts = make([]string, 0)
			}
			analysis.Data = snapshot.Texts
		} else {
			if snapshot.Items == nil {
				snapshot.Items = make([]ChartDataItem, 0)
			}
			analysis.Data = snapshot.Items
		}
		analyses = append(analyses, analysis)
	}

	return analyses
}

func GetAnalysisCacheKey(surveyId uint) string {
	return fmt.Sprintf("survey-analysis#%d", surveyId)
}

func GetAnalysisCacheTag(surveyId uint) string {
	return fmt.Sprintf("survey#%d", surveyId)
}

// GetSurveyAnalysisWithCache serves the analysis of a survey out of the
// cache when a snapshot is still warm, otherwise it loads the question
// and response sets and aggregates them on the spot.
func GetSurveyAnalysisWithCache(survey models.Survey) ([]QuestionAnalysis, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	key := GetAnalysisCacheKey(survey.ID)
	if snapshot, err := marshal.Get(ctx, key, new([]analysisSnapshot)); err == nil {
		return restoreAnalyses(*snapshot.(*[]analysisSnapshot)), nil
	}

	questions, err := ListSurveyQuestions(survey.ID)
	if err != nil {
		return nil, fmt.Errorf("unable to load questions: %v", err)
	}
	responses, err := ListAllResponses(survey.ID)
	if err != nil {
		return nil, fmt.Errorf("unable to load responses: %v", err)
	}

	analyses := AnalyzeSurvey(questions, responses)

	_ = marshal.Set(
		ctx,
		key,
		snapshotAnalyses(analyses),
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"survey-analysis", GetAnalysisCacheTag(survey.ID)}),
	)

	return analyses, nil
}

// InvalidateSurveyAnalysis drops the cached snapshot of a survey, used
// whenever its question set or response set changes.
func InvalidateSurveyAnalysis(surveyId uint) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if err := marshal.Invalidate(ctx, store.WithInvalidateTags([]string{GetAnalysisCacheTag(surveyId)})); err != nil {
		log.Warn().Err(err).Uint("survey", surveyId).Msg("Unable to invalidate survey analysis cache...")
	}
}
