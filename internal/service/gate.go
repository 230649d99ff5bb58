package service

import "github.com/DanRulev/vocamission.git/internal/models"

type GateState string

const (
	GateLocked    GateState = "LOCKED"
	GateAvailable GateState = "AVAILABLE"
	GateCompleted GateState = "COMPLETED"
)

var prerequisites = map[models.ActivityType]models.ActivityType{
	models.ActivityWordQuiz: models.ActivityWordStudy,
	models.ActivityOXQuiz:   models.ActivityWordStudy,
	models.ActivityExamQuiz: models.ActivityWordQuiz,
}

// Prerequisite returns the activity that must be completed first, or "".
func Prerequisite(activity models.ActivityType) models.ActivityType {
	return prerequisites[activity]
}

// Gate decides how an activity is offered. A completed activity stays
// completed whatever happened to its prerequisite; retry lets it through for
// one session and is only set after the server record was deleted. An
// unreadable prerequisite does not lock: the activity is offered and the
// server stays the judge.
func Gate(snap Snapshot, activity models.ActivityType, retry bool) GateState {
	if snap.Done[activity] {
		if retry {
			return GateAvailable
		}
		return GateCompleted
	}
	if pre := Prerequisite(activity); pre != "" && !snap.Done[pre] && !snap.Stale[pre] {
		return GateLocked
	}
	return GateAvailable
}
