package stats

import (
	"math"
	"sort"

	"amyza-admin/app/models"
)

// Weights configures the composition of the overall score. The weighting is a
// business policy, not a constant: the default is equal thirds, but a cohort
// may tune it without code changes.
type Weights struct {
	Technical     float64 `json:"technical"`
	Communication float64 `json:"communication"`
	Attendance    float64 `json:"attendance"`
}

// DefaultWeights returns the equal-thirds weighting observed in production.
func DefaultWeights() Weights {
	return Weights{Technical: 1, Communication: 1, Attendance: 1}
}

func (w Weights) total() float64 {
	return w.Technical + w.Communication + w.Attendance
}

// TieBreak selects how students with equal overall scores are ordered.
// Upstream never specified a rule beyond stability, so it stays configurable.
type TieBreak string

const (
	// TieBreakInsertion keeps equal scores in input order (stable sort).
	TieBreakInsertion TieBreak = "insertion"
	// TieBreakStudentCode orders equal scores by student code ascending.
	TieBreakStudentCode TieBreak = "student_code"
	// TieBreakName orders equal scores alphabetically by name.
	TieBreakName TieBreak = "name"
)

// clamp bounds a sub-score to its valid range instead of letting an
// out-of-range row distort the composite.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OverallScore composes the three sub-scores into one 0-10 score. The
// attendance percentage is rescaled to the common 0-10 scale by dividing by
// 10. Weights with a zero total fall back to the default equal thirds.
func OverallScore(technical, communication, attendancePct float64, w Weights) float64 {
	if w.total() <= 0 {
		w = DefaultWeights()
	}
	technical = clamp(technical, 0, 10)
	communication = clamp(communication, 0, 10)
	attendance := clamp(attendancePct, 0, 100) / 10

	weighted := w.Technical*technical + w.Communication*communication + w.Attendance*attendance
	return weighted / w.total()
}

// Ranked is a student with their derived overall score and rank.
type Ranked struct {
	Student      *models.Student `json:"student"`
	OverallScore float64         `json:"overall_score"`
	Rank         int             `json:"rank"`
	Scored       bool            `json:"scored"`
}

// RankStudents derives each student's overall score from their recorded
// sub-scores and orders them descending. Ranks are the dense 1..n sequence
// over all ranked students. A student with no score row scores 0 and ranks
// last, but is flagged unscored so superlatives can exclude them.
func RankStudents(students []*models.Student, scores []*models.PerformanceScore, w Weights, tie TieBreak) []Ranked {
	byStudent := make(map[string]*models.PerformanceScore, len(scores))
	for _, s := range scores {
		if s != nil {
			byStudent[s.StudentID] = s
		}
	}

	ranked := make([]Ranked, 0, len(students))
	for _, st := range students {
		if st == nil {
			continue
		}
		r := Ranked{Student: st}
		if sc, ok := byStudent[st.ID]; ok {
			r.OverallScore = OverallScore(sc.TechnicalScore, sc.CommunicationScore, sc.AttendancePercentage, w)
			r.Scored = true
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OverallScore != ranked[j].OverallScore {
			return ranked[i].OverallScore > ranked[j].OverallScore
		}
		switch tie {
		case TieBreakStudentCode:
			return ranked[i].Student.StudentCode < ranked[j].Student.StudentCode
		case TieBreakName:
			return ranked[i].Student.FullName() < ranked[j].Student.FullName()
		default:
			return false // stable sort keeps insertion order
		}
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// TopPerformer returns the highest-ranked student with a real score. A roster
// where nobody has been scored has no top performer; a zero score must never
// be reported as one.
func TopPerformer(ranked []Ranked) (Ranked, bool) {
	for _, r := range ranked {
		if r.Scored && r.OverallScore > 0 {
			return r, true
		}
	}
	return Ranked{}, false
}

// ModuleProgress derives a batch's completion percentage from its status and
// 1-based current module. Progress is never stored; it is always a function
// of current state.
func ModuleProgress(status models.BatchStatus, currentModule, totalModules int) int {
	switch status {
	case models.BatchUpcoming:
		return 0
	case models.BatchCompleted:
		return 100
	}
	if totalModules <= 0 {
		return 0
	}
	if currentModule < 1 {
		currentModule = 1
	}
	if currentModule > totalModules {
		currentModule = totalModules
	}
	return int(math.Round(float64(currentModule-1) / float64(totalModules) * 100))
}
