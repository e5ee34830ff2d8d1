package emergency

import (
	"testing"
	"time"

	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 1, PriorityRank(constvars.TriageLevelCritical))
	assert.Equal(t, 2, PriorityRank(constvars.TriageLevelUrgent))
	assert.Equal(t, 3, PriorityRank(constvars.TriageLevelLessUrgent))
	assert.Equal(t, 4, PriorityRank(constvars.TriageLevelNonUrgent))
	assert.Equal(t, 5, PriorityRank("resuscitation"))
	assert.Equal(t, 5, PriorityRank(""))
}

func TestIsActiveStatus(t *testing.T) {
	active := []string{
		constvars.CaseStatusRegistered,
		constvars.CaseStatusTriage,
		constvars.CaseStatusInTreatment,
		constvars.CaseStatusObservation,
	}
	for _, status := range active {
		assert.True(t, IsActiveStatus(status), status)
	}

	closed := []string{
		constvars.CaseStatusAdmitted,
		constvars.CaseStatusDischarged,
		constvars.CaseStatusTransferred,
		"",
	}
	for _, status := range closed {
		assert.False(t, IsActiveStatus(status), status)
	}
}

func makeQueueCase(caseNumber, triageLevel string, arrival time.Time) models.EmergencyCase {
	return models.EmergencyCase{
		CaseNumber:  caseNumber,
		TriageLevel: triageLevel,
		ArrivalTime: arrival,
		Status:      constvars.CaseStatusTriage,
	}
}

func TestSortByPriority_RanksBeforeArrival(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	cases := []models.EmergencyCase{
		makeQueueCase("ER202603140003", constvars.TriageLevelNonUrgent, base),
		makeQueueCase("ER202603140002", constvars.TriageLevelUrgent, base.Add(30*time.Minute)),
		makeQueueCase("ER202603140001", constvars.TriageLevelCritical, base.Add(2*time.Hour)),
	}

	SortByPriority(cases)

	assert.Equal(t, "ER202603140001", cases[0].CaseNumber)
	assert.Equal(t, "ER202603140002", cases[1].CaseNumber)
	assert.Equal(t, "ER202603140003", cases[2].CaseNumber)
}

func TestSortByPriority_ArrivalBreaksTies(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	cases := []models.EmergencyCase{
		makeQueueCase("late", constvars.TriageLevelUrgent, base.Add(time.Hour)),
		makeQueueCase("early", constvars.TriageLevelUrgent, base),
	}

	SortByPriority(cases)

	assert.Equal(t, "early", cases[0].CaseNumber)
	assert.Equal(t, "late", cases[1].CaseNumber)
}

func TestSortByPriority_UnknownLevelGoesLast(t *testing.T) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	cases := []models.EmergencyCase{
		makeQueueCase("mystery", "resuscitation", base),
		makeQueueCase("routine", constvars.TriageLevelNonUrgent, base.Add(3*time.Hour)),
	}

	SortByPriority(cases)

	assert.Equal(t, "routine", cases[0].CaseNumber)
	assert.Equal(t, "mystery", cases[1].CaseNumber)
}
