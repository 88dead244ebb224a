package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/samber/lo"
)

func prize(id uint, rank *int) models.Prize {
	return models.Prize{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Prize",
		Rank:      rank,
	}
}

func TestMissingPrizeIds(t *testing.T) {
	prizes := []models.Prize{prize(1, nil), prize(2, nil)}

	cases := []struct {
		name      string
		requested []uint
		want      []uint
	}{
		{name: "all found", requested: []uint{1, 2}, want: nil},
		{name: "foreign prize reported", requested: []uint{1, 2, 9}, want: []uint{9}},
		{name: "duplicates collapse", requested: []uint{9, 9, 1}, want: []uint{9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := missingPrizeIds(tc.requested, prizes)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for idx := range tc.want {
				if got[idx] != tc.want[idx] {
					t.Errorf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestSortPrizesForDraw(t *testing.T) {
	prizes := []models.Prize{
		prize(1, nil),
		prize(2, lo.ToPtr(2)),
		prize(3, lo.ToPtr(1)),
		prize(4, lo.ToPtr(2)),
		prize(5, nil),
	}

	sorted := SortPrizesForDraw(prizes)

	wantOrder := []uint{3, 2, 4, 1, 5}
	for idx, id := range wantOrder {
		if sorted[idx].ID != id {
			t.Fatalf("position %d: expected prize #%d, got #%d", idx, id, sorted[idx].ID)
		}
	}
}

func TestAllocateWinnersNoRepeats(t *testing.T) {
	participants := []Participant{
		{ResponseID: 1, Name: "P1"},
		{ResponseID: 2, Name: "P2"},
		{ResponseID: 3, Name: "P3"},
	}
	prizes := []models.Prize{
		prize(1, lo.ToPtr(1)),
		prize(2, lo.ToPtr(2)),
		prize(3, lo.ToPtr(3)),
	}

	for seed := int64(0); seed < 20; seed++ {
		winners, err := AllocateWinners(77, participants, prizes, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		seen := map[uint]bool{}
		for _, winner := range winners {
			if seen[winner.ResponseID] {
				t.Fatalf("seed %d: response #%d won twice", seed, winner.ResponseID)
			}
			seen[winner.ResponseID] = true
		}
	}
}

func TestAllocateWinnersBoundAndRanks(t *testing.T) {
	participants := []Participant{
		{ResponseID: 1, Name: "P1"},
		{ResponseID: 2, Name: "P2"},
		{ResponseID: 3, Name: "P3"},
	}
	prizes := []models.Prize{
		prize(10, lo.ToPtr(1)),
		prize(20, lo.ToPtr(2)),
	}

	winners, err := AllocateWinners(77, participants, prizes, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(winners) != 2 {
		t.Fatalf("expected min(participants, prizes) = 2 winners, got %d", len(winners))
	}

	for idx, winner := range winners {
		if winner.Rank != idx+1 {
			t.Errorf("winner %d: expected rank %d, got %d", idx, idx+1, winner.Rank)
		}
	}
	if winners[0].PrizeID != 10 || winners[1].PrizeID != 20 {
		t.Errorf("winners should follow prize draw order, got %d then %d", winners[0].PrizeID, winners[1].PrizeID)
	}
	if winners[0].SurveyID != 77 {
		t.Errorf("winners should carry the survey id, got %d", winners[0].SurveyID)
	}
}

func TestAllocateWinnersMorePrizesThanParticipants(t *testing.T) {
	participants := []Participant{{ResponseID: 1, Name: "P1"}}
	prizes := []models.Prize{
		prize(10, lo.ToPtr(1)),
		prize(20, lo.ToPtr(2)),
	}

	winners, err := AllocateWinners(77, participants, prizes, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(winners) != 1 {
		t.Fatalf("leftover prizes should stay unassigned, expected 1 winner got %d", len(winners))
	}
	if winners[0].PrizeID != 10 {
		t.Errorf("the ranked-first prize should be drawn first, got #%d", winners[0].PrizeID)
	}
}

func TestAllocateWinnersEmptyPool(t *testing.T) {
	prizes := []models.Prize{prize(10, lo.ToPtr(1))}

	winners, err := AllocateWinners(77, nil, prizes, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoEligibleParticipants) {
		t.Fatalf("expected ErrNoEligibleParticipants, got %v", err)
	}
	if len(winners) != 0 {
		t.Errorf("expected no winners, got %d", len(winners))
	}
}

func TestAllocateWinnersShuffleIsFair(t *testing.T) {
	participants := []Participant{
		{ResponseID: 1, Name: "P1"},
		{ResponseID: 2, Name: "P2"},
		{ResponseID: 3, Name: "P3"},
	}
	prizes := []models.Prize{prize(10, lo.ToPtr(1))}

	rng := rand.New(rand.NewSource(42))
	hits := map[uint]int{}
	for i := 0; i < 3000; i++ {
		winners, err := AllocateWinners(77, participants, prizes, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hits[winners[0].ResponseID]++
	}

	// Every participant should land in a loose band around 1/3
	for id, count := range hits {
		if count < 800 || count > 1200 {
			t.Errorf("response #%d won %d of 3000 draws, shuffle looks biased", id, count)
		}
	}
}
