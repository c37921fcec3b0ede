package stats

import (
	"math"
	"reflect"
	"testing"

	"amyza-admin/app/models"
)

func student(id, code, first, last string) *models.Student {
	return &models.Student{ID: id, StudentCode: code, FirstName: first, LastName: last, BatchID: "batch-1", IsActive: true}
}

func score(studentID string, tech, comm, att float64) *models.PerformanceScore {
	return &models.PerformanceScore{
		ID:                   "score-" + studentID,
		StudentID:            studentID,
		TechnicalScore:       tech,
		CommunicationScore:   comm,
		AttendancePercentage: att,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name             string
		tech, comm, att  float64
		weights          Weights
		want             float64
	}{
		{"equal thirds", 8, 6, 90, DefaultWeights(), (8 + 6 + 9) / 3.0},
		{"second scenario", 9, 9, 70, DefaultWeights(), (9 + 9 + 7) / 3.0},
		{"zero weights fall back to default", 6, 6, 60, Weights{}, 6},
		{"custom weighting", 10, 0, 0, Weights{Technical: 2, Communication: 1, Attendance: 1}, 5},
		{"out of range sub-scores clamp", 12, -3, 150, DefaultWeights(), (10 + 0 + 10) / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallScore(tt.tech, tt.comm, tt.att, tt.weights)
			if !almostEqual(got, tt.want) {
				t.Errorf("OverallScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankStudents(t *testing.T) {
	students := []*models.Student{
		student("s1", "AMZ-001", "Alice", "Kintu"),
		student("s2", "AMZ-002", "Brian", "Okello"),
	}
	scores := []*models.PerformanceScore{
		score("s1", 8, 6, 90),
		score("s2", 9, 9, 70),
	}

	ranked := RankStudents(students, scores, DefaultWeights(), TieBreakInsertion)
	if len(ranked) != 2 {
		t.Fatalf("len(ranked) = %d, want 2", len(ranked))
	}
	// (9+9+7)/3 = 8.33 beats (8+6+9)/3 = 7.67
	if ranked[0].Student.ID != "s2" || ranked[0].Rank != 1 {
		t.Errorf("rank 1 = %s (rank %d), want s2 rank 1", ranked[0].Student.ID, ranked[0].Rank)
	}
	if ranked[1].Student.ID != "s1" || ranked[1].Rank != 2 {
		t.Errorf("rank 2 = %s (rank %d), want s1 rank 2", ranked[1].Student.ID, ranked[1].Rank)
	}
}

func TestRanksAreDenseAndMonotonic(t *testing.T) {
	students := []*models.Student{
		student("s1", "AMZ-001", "Alice", "Kintu"),
		student("s2", "AMZ-002", "Brian", "Okello"),
		student("s3", "AMZ-003", "Clare", "Nabirye"),
		student("s4", "AMZ-004", "Dan", "Ssali"),
	}
	scores := []*models.PerformanceScore{
		score("s1", 5, 5, 50),
		score("s2", 9, 9, 90),
		score("s3", 5, 5, 50), // tie with s1
	}

	ranked := RankStudents(students, scores, DefaultWeights(), TieBreakInsertion)
	if len(ranked) != len(students) {
		t.Fatalf("len(ranked) = %d, want %d", len(ranked), len(students))
	}
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Errorf("ranked[%d].Rank = %d, want %d", i, r.Rank, i+1)
		}
		if i > 0 && ranked[i-1].OverallScore < r.OverallScore {
			t.Errorf("scores not monotonically non-increasing at rank %d", r.Rank)
		}
	}
	// Unscored student ranks last with zero score
	last := ranked[len(ranked)-1]
	if last.Student.ID != "s4" || last.Scored || last.OverallScore != 0 {
		t.Errorf("last = %s scored=%v score=%v, want unscored s4 at 0", last.Student.ID, last.Scored, last.OverallScore)
	}
}

func TestRankStudentsIdempotent(t *testing.T) {
	students := []*models.Student{
		student("s1", "AMZ-001", "Alice", "Kintu"),
		student("s2", "AMZ-002", "Brian", "Okello"),
		student("s3", "AMZ-003", "Clare", "Nabirye"),
	}
	scores := []*models.PerformanceScore{
		score("s1", 7, 7, 70),
		score("s2", 7, 7, 70),
		score("s3", 4, 8, 60),
	}

	first := RankStudents(students, scores, DefaultWeights(), TieBreakInsertion)
	second := RankStudents(students, scores, DefaultWeights(), TieBreakInsertion)
	if !reflect.DeepEqual(first, second) {
		t.Error("RankStudents() not idempotent over unchanged input")
	}
}

func TestTieBreakModes(t *testing.T) {
	students := []*models.Student{
		student("s1", "AMZ-002", "Brian", "Okello"),
		student("s2", "AMZ-001", "Alice", "Kintu"),
	}
	scores := []*models.PerformanceScore{
		score("s1", 7, 7, 70),
		score("s2", 7, 7, 70),
	}

	tests := []struct {
		tie       TieBreak
		wantFirst string
	}{
		{TieBreakInsertion, "s1"},
		{TieBreakStudentCode, "s2"}, // AMZ-001 before AMZ-002
		{TieBreakName, "s2"},        // Alice before Brian
	}
	for _, tt := range tests {
		ranked := RankStudents(students, scores, DefaultWeights(), tt.tie)
		if ranked[0].Student.ID != tt.wantFirst {
			t.Errorf("tie break %q: first = %s, want %s", tt.tie, ranked[0].Student.ID, tt.wantFirst)
		}
	}
}

func TestTopPerformer(t *testing.T) {
	students := []*models.Student{
		student("s1", "AMZ-001", "Alice", "Kintu"),
		student("s2", "AMZ-002", "Brian", "Okello"),
	}

	// Nobody scored: no top performer, never a false one.
	ranked := RankStudents(students, nil, DefaultWeights(), TieBreakInsertion)
	if _, ok := TopPerformer(ranked); ok {
		t.Error("TopPerformer() reported a top performer for an unscored roster")
	}

	ranked = RankStudents(students, []*models.PerformanceScore{score("s2", 8, 8, 80)}, DefaultWeights(), TieBreakInsertion)
	top, ok := TopPerformer(ranked)
	if !ok || top.Student.ID != "s2" {
		t.Errorf("TopPerformer() = %v ok=%v, want s2", top.Student, ok)
	}
}

func TestModuleProgress(t *testing.T) {
	tests := []struct {
		name    string
		status  models.BatchStatus
		current int
		want    int
	}{
		{"upcoming is zero", models.BatchUpcoming, 1, 0},
		{"completed is full", models.BatchCompleted, 2, 100},
		{"active module one", models.BatchActive, 1, 0},
		{"active module two", models.BatchActive, 2, 33},
		{"active module three", models.BatchActive, 3, 67},
		{"module out of bounds clamps", models.BatchActive, 9, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModuleProgress(tt.status, tt.current, models.TotalModules); got != tt.want {
				t.Errorf("ModuleProgress(%s, %d) = %d, want %d", tt.status, tt.current, got, tt.want)
			}
		})
	}
}
