package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"wander/internal/models/db_models"
	"wander/internal/services"
	"wander/pkg/events"
	"wander/pkg/utils"
)

type JourneyServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *memDocRepo
	coins   services.CoinServiceInterface
	history services.HistoryServiceInterface
	bus     events.CoinBus
	svc     services.JourneyServiceInterface
}

func (s *JourneyServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = newMemDocRepo()
	s.coins = services.NewCoinService(s.repo)
	s.history = services.NewHistoryService(s.repo)
	s.bus = events.NewCoinBus()
	s.svc = services.NewJourneyService(s.repo, s.coins, s.history, s.bus)
}

func TestJourneyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JourneyServiceTestSuite))
}

func (s *JourneyServiceTestSuite) threeStopRoute() []db_models.TravelPlace {
	return []db_models.TravelPlace{
		place("a", "A", "Bangkok", 13.75, 100.50, 4.0),
		place("b", "B", "Bangkok", 13.76, 100.51, 4.5),
		place("c", "C", "Bangkok", 13.77, 100.52, 5.0),
	}
}

func (s *JourneyServiceTestSuite) start(route []db_models.TravelPlace) *db_models.ActiveJourney {
	journey, err := s.svc.Start(s.ctx, "u1", route, "", services.DurationDayTrip, "Bangkok")
	s.Require().NoError(err)
	s.Require().NotNil(journey)
	return journey
}

func (s *JourneyServiceTestSuite) balance() int {
	profile, err := s.coins.Profile(s.ctx, "u1")
	s.Require().NoError(err)
	return profile.TotalCoins
}

func (s *JourneyServiceTestSuite) TestStart() {
	journey := s.start(s.threeStopRoute())

	s.NotEmpty(journey.ID)
	s.True(journey.IsActive)
	s.Equal(0, journey.CurrentPlaceIndex)
	s.Len(journey.Places, 3)
	for _, p := range journey.Places {
		s.False(p.Visited)
		s.Zero(p.CoinsEarned)
	}

	stored := s.repo.journey(s.T(), "u1")
	s.Require().NotNil(stored)
	s.Equal(journey.ID, stored.ID)
}

func (s *JourneyServiceTestSuite) TestStart_EmptyRoute() {
	_, err := s.svc.Start(s.ctx, "u1", nil, "", "", "")

	s.ErrorIs(err, utils.ErrEmptyRoute)
}

func (s *JourneyServiceTestSuite) TestStart_RejectedWhileActive() {
	first := s.start(s.threeStopRoute())

	_, err := s.svc.Start(s.ctx, "u1", s.threeStopRoute(), "", "", "Bangkok")

	s.ErrorIs(err, utils.ErrJourneyActive)
	stored := s.repo.journey(s.T(), "u1")
	s.Require().NotNil(stored)
	s.Equal(first.ID, stored.ID)
}

func (s *JourneyServiceTestSuite) TestActive_NoneStarted() {
	_, err := s.svc.Active(s.ctx, "u1")

	s.ErrorIs(err, utils.ErrNoActiveJourney)
}

func (s *JourneyServiceTestSuite) TestCheckIn_CreditsPerPhotoAndAdvances() {
	s.start(s.threeStopRoute())

	resp, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1", "p2"})

	s.Require().NoError(err)
	s.Equal(20, resp.CoinsEarned)
	s.False(resp.Completed)
	s.Nil(resp.Summary)
	s.True(resp.Journey.Places[0].Visited)
	s.NotEmpty(resp.Journey.Places[0].VisitDate)
	s.Equal(1, resp.Journey.CurrentPlaceIndex)
	s.Equal(20, s.balance())
}

func (s *JourneyServiceTestSuite) TestCheckIn_NoPhotosRefused() {
	s.start(s.threeStopRoute())

	_, err := s.svc.CheckIn(s.ctx, "u1", "a", nil)

	s.ErrorIs(err, utils.ErrPhotoRequired)
	s.Zero(s.balance())
	stored := s.repo.journey(s.T(), "u1")
	s.False(stored.Places[0].Visited)
}

func (s *JourneyServiceTestSuite) TestCheckIn_ExtraPhotosDropped() {
	s.start(s.threeStopRoute())

	resp, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1", "p2", "p3", "p4", "p5"})

	s.Require().NoError(err)
	s.Equal(30, resp.CoinsEarned)
	s.Equal([]string{"p1", "p2", "p3"}, resp.Journey.Places[0].UserPhotos)
}

func (s *JourneyServiceTestSuite) TestCheckIn_TwiceRefused() {
	s.start(s.threeStopRoute())
	_, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1"})
	s.Require().NoError(err)

	_, err = s.svc.CheckIn(s.ctx, "u1", "a", []string{"p2"})

	s.ErrorIs(err, utils.ErrAlreadyVisited)
	s.Equal(10, s.balance())
}

func (s *JourneyServiceTestSuite) TestCheckIn_UnknownPlace() {
	s.start(s.threeStopRoute())

	_, err := s.svc.CheckIn(s.ctx, "u1", "nope", []string{"p1"})

	s.ErrorIs(err, utils.ErrPlaceNotFound)
}

func (s *JourneyServiceTestSuite) TestCheckIn_AdvanceSkipsVisited() {
	s.start(s.threeStopRoute())

	// Visit the middle stop out of order; the index stays on the
	// current stop.
	resp, err := s.svc.CheckIn(s.ctx, "u1", "b", []string{"p1"})
	s.Require().NoError(err)
	s.Equal(0, resp.Journey.CurrentPlaceIndex)

	// Visiting the current stop then jumps over b straight to c.
	resp, err = s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1"})
	s.Require().NoError(err)
	s.Equal(2, resp.Journey.CurrentPlaceIndex)
}

func (s *JourneyServiceTestSuite) TestCheckIn_NeverAdvancesBackward() {
	s.start(s.threeStopRoute())
	_, err := s.svc.Navigate(s.ctx, "u1", 2)
	s.Require().NoError(err)

	resp, err := s.svc.CheckIn(s.ctx, "u1", "c", []string{"p1"})

	s.Require().NoError(err)
	s.Equal(2, resp.Journey.CurrentPlaceIndex)
	s.False(resp.Journey.Places[0].Visited)
}

func (s *JourneyServiceTestSuite) TestCheckIn_CompletionBonusOnce() {
	s.start(s.threeStopRoute())

	_, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1"})
	s.Require().NoError(err)
	_, err = s.svc.CheckIn(s.ctx, "u1", "b", []string{"p1", "p2"})
	s.Require().NoError(err)
	resp, err := s.svc.CheckIn(s.ctx, "u1", "c", []string{"p1"})
	s.Require().NoError(err)

	s.True(resp.Completed)
	s.Require().NotNil(resp.Summary)
	s.Equal(3, resp.Summary.PlacesVisited)
	s.Equal(4, resp.Summary.TotalPhotos)
	s.Equal(140, resp.Summary.TotalCoins)
	// 10 + 20 + 10 photo coins plus the one-time 100 bonus.
	s.Equal(140, s.balance())
}

func (s *JourneyServiceTestSuite) TestCheckIn_PublishesCoinEvents() {
	events1, cancel := s.bus.Subscribe()
	defer cancel()
	s.start(s.threeStopRoute())

	_, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1", "p2"})
	s.Require().NoError(err)

	select {
	case ev := <-events1:
		s.Equal(20, ev.Amount)
	case <-time.After(time.Second):
		s.Fail("expected a coin event")
	}
}

func (s *JourneyServiceTestSuite) TestCheckIn_SurvivesStorageFailure() {
	s.start(s.threeStopRoute())
	s.repo.failPuts = true
	s.repo.putErr = errors.New("connection reset")

	resp, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1"})

	s.Require().NoError(err)
	s.Equal(10, resp.CoinsEarned)
	s.True(resp.Journey.Places[0].Visited)
}

func (s *JourneyServiceTestSuite) TestNavigate() {
	s.start(s.threeStopRoute())

	journey, err := s.svc.Navigate(s.ctx, "u1", 2)

	s.Require().NoError(err)
	s.Equal(2, journey.CurrentPlaceIndex)
	for _, p := range journey.Places {
		s.False(p.Visited)
	}
	s.Zero(s.balance())
}

func (s *JourneyServiceTestSuite) TestNavigate_OutOfRange() {
	s.start(s.threeStopRoute())

	_, err := s.svc.Navigate(s.ctx, "u1", 3)

	s.ErrorIs(err, utils.ErrInvalidIndex)
}

func (s *JourneyServiceTestSuite) TestAbandon_ArchivesPartialProgress() {
	s.start(s.threeStopRoute())
	_, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1"})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Abandon(s.ctx, "u1"))

	_, err = s.svc.Active(s.ctx, "u1")
	s.ErrorIs(err, utils.ErrNoActiveJourney)

	archived, err := s.history.List(s.ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(archived, 1)
	s.False(archived[0].Journey.Completed)
	s.Equal(1, archived[0].Visited)
	s.NotEmpty(archived[0].Journey.EndDate)
	// No completion bonus for an abandoned journey.
	s.Equal(10, s.balance())
}

func (s *JourneyServiceTestSuite) TestFinish_RequiresAllVisited() {
	s.start(s.threeStopRoute())
	_, err := s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1"})
	s.Require().NoError(err)

	err = s.svc.Finish(s.ctx, "u1")

	s.ErrorIs(err, utils.ErrJourneyNotDone)
	_, err = s.svc.Active(s.ctx, "u1")
	s.NoError(err)
}

func (s *JourneyServiceTestSuite) TestFinish_ArchivesCompleted() {
	s.start(s.threeStopRoute())
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.svc.CheckIn(s.ctx, "u1", id, []string{"p1"})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.svc.Finish(s.ctx, "u1"))

	archived, err := s.history.List(s.ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(archived, 1)
	s.True(archived[0].Journey.Completed)
	s.Equal(3, archived[0].Visited)

	// Finishing again has nothing to act on.
	s.ErrorIs(s.svc.Finish(s.ctx, "u1"), utils.ErrNoActiveJourney)
}

func (s *JourneyServiceTestSuite) TestProgress() {
	s.start(s.threeStopRoute())

	progress, err := s.svc.Progress(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(0, progress.Visited)
	s.Equal(3, progress.Total)
	s.Equal(0, progress.Percentage)

	_, err = s.svc.CheckIn(s.ctx, "u1", "a", []string{"p1"})
	s.Require().NoError(err)

	progress, err = s.svc.Progress(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(1, progress.Visited)
	s.Equal(33, progress.Percentage)
}

func (s *JourneyServiceTestSuite) TestJourneysAreIsolatedPerUser() {
	s.start(s.threeStopRoute())

	otherRoute := []db_models.TravelPlace{place("z", "Z", "Hanoi", 21.02, 105.85, 4.0)}
	_, err := s.svc.Start(s.ctx, "u2", otherRoute, "", "", "Hanoi")
	s.Require().NoError(err)

	_, err = s.svc.CheckIn(s.ctx, "u2", "z", []string{"p1"})
	s.Require().NoError(err)

	journey, err := s.svc.Active(s.ctx, "u1")
	s.Require().NoError(err)
	for _, p := range journey.Places {
		s.False(p.Visited)
	}
	s.Zero(s.balance())
}
