package service

import (
	"context"

	"github.com/DanRulev/vocamission.git/internal/models"
	"golang.org/x/sync/errgroup"
)

// Activities lists the daily activities in the order they are taken.
var Activities = []models.ActivityType{
	models.ActivityWordStudy,
	models.ActivityWordQuiz,
	models.ActivityOXQuiz,
	models.ActivityExamQuiz,
}

type Dashboard struct {
	User   models.User
	Status Snapshot
	Gates  map[models.ActivityType]GateState
}

type DashboardS struct {
	status  *StatusS
	account *AccountS
}

func NewDashboardService(status *StatusS, account *AccountS) *DashboardS {
	return &DashboardS{status: status, account: account}
}

// Dashboard reads the profile and today's status concurrently.
func (d *DashboardS) Dashboard(ctx context.Context, userID int64) (Dashboard, error) {
	token, err := d.account.Token(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	var (
		user models.User
		snap Snapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = d.account.Me(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap, err = d.status.Snapshot(gctx, token, Activities...)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, d.account.authErr(ctx, userID, err)
	}

	gates := make(map[models.ActivityType]GateState, len(Activities))
	for _, a := range Activities {
		gates[a] = Gate(snap, a, false)
	}

	return Dashboard{User: user, Status: snap, Gates: gates}, nil
}
