package note

import (
	"context"
	"errors"
	"fmt"

	dom "github.com/foundrylabs/daybrief/internal/domain"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardTaskLimit    = 10
	dashboardInsightLimit = 5
)

// Dashboard assembles the founder's landing view: today's note if present,
// open insights, top active tasks, and today's calendar. Results are cached
// briefly per founder; concurrent misses collapse onto one assembly.
func (s *Service) Dashboard(ctx context.Context, founder dom.Founder) (dom.Dashboard, error) {
	if s.dash == nil {
		return s.buildDashboard(ctx, founder)
	}

	v, err, _ := s.sf.Do("dashboard|"+founder.ID, func() (interface{}, error) {
		if cached, err := s.dash.Get(ctx, founder.ID); err == nil && cached != nil {
			return *cached, nil
		}
		d, err := s.buildDashboard(ctx, founder)
		if err != nil {
			return dom.Dashboard{}, err
		}
		_ = s.dash.Set(ctx, founder.ID, &d)
		return d, nil
	})
	if err != nil {
		return dom.Dashboard{}, err
	}
	return v.(dom.Dashboard), nil
}

func (s *Service) buildDashboard(ctx context.Context, founder dom.Founder) (dom.Dashboard, error) {
	today := StartOfDay(s.now(), s.loc)
	d := dom.Dashboard{Founder: founder}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.notes.FindByDate(gctx, founder.ID, today)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		d.Note = &n
		return nil
	})
	g.Go(func() error {
		var err error
		d.Insights, err = s.insights.ListActive(gctx, founder.ID, dashboardInsightLimit)
		return err
	})
	g.Go(func() error {
		var err error
		d.Tasks, err = s.context.ActiveTasks(gctx, founder.ID, dashboardTaskLimit)
		return err
	})
	g.Go(func() error {
		var err error
		d.Events, err = s.context.EventsForDay(gctx, founder.ID, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return dom.Dashboard{}, fmt.Errorf("assemble dashboard: %w", err)
	}
	return d, nil
}
