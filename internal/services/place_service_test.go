package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"wander/internal/models/db_models"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/utils"
)

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Place), args.Error(1)
}

func (m *MockPlaceRepository) List(ctx context.Context, city string, page, pageSize int) ([]db_models.Place, error) {
	args := m.Called(ctx, city, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Place), args.Error(1)
}

func (m *MockPlaceRepository) SearchByNameAndCity(ctx context.Context, name, city string, page, pageSize int) ([]db_models.Place, error) {
	args := m.Called(ctx, name, city, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Place), args.Error(1)
}

type MockPlaceEmbeddingRepository struct {
	mock.Mock
}

func (m *MockPlaceEmbeddingRepository) ListByVector(vector pgvector.Vector, excludePlaceID string) ([]repositories.PlaceEmbeddingRow, error) {
	args := m.Called(vector, excludePlaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.PlaceEmbeddingRow), args.Error(1)
}

func (m *MockPlaceEmbeddingRepository) CreatePlaceEmbedding(embedding db_models.PlaceEmbedding) error {
	args := m.Called(embedding)
	return args.Error(0)
}

type MockEmbeddingClient struct {
	mock.Mock
}

func (m *MockEmbeddingClient) Embed(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

type PlaceServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	placeRepo     *MockPlaceRepository
	docRepo       *memDocRepo
	embeddingRepo *MockPlaceEmbeddingRepository
	embedder      *MockEmbeddingClient
	svc           services.PlaceServiceInterface
}

func (s *PlaceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.placeRepo = new(MockPlaceRepository)
	s.docRepo = newMemDocRepo()
	s.embeddingRepo = new(MockPlaceEmbeddingRepository)
	s.embedder = new(MockEmbeddingClient)
	s.svc = services.NewPlaceService(s.placeRepo, s.docRepo, s.embeddingRepo, s.embedder)
}

func TestPlaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlaceServiceTestSuite))
}

func catalogPlace(name, city string) *db_models.Place {
	return &db_models.Place{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        name,
		Description: "desc of " + name,
		Latitude:    13.75,
		Longitude:   100.50,
		City:        city,
		Country:     "Thailand",
		Rating:      4.2,
		Tags:        []string{"culture"},
		IsActive:    true,
	}
}

func (s *PlaceServiceTestSuite) TestGetPlaceByID() {
	stored := catalogPlace("Wat Arun", "Bangkok")
	s.placeRepo.On("GetByID", s.ctx, stored.ID.String()).Return(stored, nil)

	resp, err := s.svc.GetPlaceByID(s.ctx, stored.ID.String())

	s.Require().NoError(err)
	s.Equal(stored.ID.String(), resp.ID)
	s.Equal("Wat Arun", resp.Name)
	s.Equal(13.75, resp.Lat)
	s.Equal([]string{"culture"}, resp.Tags)
	s.placeRepo.AssertExpectations(s.T())
}

func (s *PlaceServiceTestSuite) TestGetPlaceByID_NotFound() {
	s.placeRepo.On("GetByID", s.ctx, "missing").Return(nil, nil)

	_, err := s.svc.GetPlaceByID(s.ctx, "missing")

	s.ErrorIs(err, utils.ErrPlaceNotFound)
}

func (s *PlaceServiceTestSuite) TestGetPlaceByID_RepoFailure() {
	s.placeRepo.On("GetByID", s.ctx, "any").Return(nil, errors.New("timeout"))

	_, err := s.svc.GetPlaceByID(s.ctx, "any")

	s.ErrorIs(err, utils.ErrDatabaseError)
}

func (s *PlaceServiceTestSuite) TestListPlaces() {
	s.placeRepo.On("List", s.ctx, "Bangkok", 1, 20).
		Return([]db_models.Place{*catalogPlace("A", "Bangkok"), *catalogPlace("B", "Bangkok")}, nil)

	out, err := s.svc.ListPlaces(s.ctx, "Bangkok", 1, 20)

	s.Require().NoError(err)
	s.Len(out, 2)
	s.Equal("A", out[0].Name)
}

func (s *PlaceServiceTestSuite) TestSearchPlaces() {
	s.placeRepo.On("SearchByNameAndCity", s.ctx, "wat", "all", 1, 20).
		Return([]db_models.Place{*catalogPlace("Wat Pho", "Bangkok")}, nil)

	out, err := s.svc.SearchPlaces(s.ctx, "wat", "all", 1, 20)

	s.Require().NoError(err)
	s.Len(out, 1)
	s.Equal("Wat Pho", out[0].Name)
}

func (s *PlaceServiceTestSuite) TestLikedPlaces_EmptyWithoutDocument() {
	liked, err := s.svc.LikedPlaces(s.ctx, "u1")

	s.NoError(err)
	s.Empty(liked)
	s.NotNil(liked)
}

func (s *PlaceServiceTestSuite) TestLikedPlaces() {
	s.docRepo.seedLiked(s.T(), "u1", []db_models.TravelPlace{
		place("a", "A", "Bangkok", 13.75, 100.50, 4.0),
	})

	liked, err := s.svc.LikedPlaces(s.ctx, "u1")

	s.Require().NoError(err)
	s.Len(liked, 1)
	s.Equal("a", liked[0].ID)
}

func (s *PlaceServiceTestSuite) TestSimilarPlaces() {
	stored := catalogPlace("Wat Arun", "Bangkok")
	vector := pgvector.NewVector([]float32{0.1, 0.2, 0.3})
	s.placeRepo.On("GetByID", s.ctx, stored.ID.String()).Return(stored, nil)
	s.embedder.On("Embed", s.ctx, "Wat Arun: desc of Wat Arun").Return(vector, nil)
	s.embeddingRepo.On("ListByVector", vector, stored.ID.String()).
		Return([]repositories.PlaceEmbeddingRow{
			{
				PlaceEmbedding: db_models.PlaceEmbedding{
					PlaceID:     "near-1",
					Name:        "Wat Pho",
					City:        "Bangkok",
					Tags:        []string{"temple"},
				},
				Similarity: 0.92,
			},
		}, nil)

	out, err := s.svc.SimilarPlaces(s.ctx, stored.ID.String())

	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal("near-1", out[0].ID)
	s.Equal("Wat Pho", out[0].Name)
	s.Equal(0.92, out[0].Similarity)
	s.embedder.AssertExpectations(s.T())
	s.embeddingRepo.AssertExpectations(s.T())
}

func (s *PlaceServiceTestSuite) TestSimilarPlaces_EmbedderFailure() {
	stored := catalogPlace("Wat Arun", "Bangkok")
	s.placeRepo.On("GetByID", s.ctx, stored.ID.String()).Return(stored, nil)
	s.embedder.On("Embed", s.ctx, mock.Anything).
		Return(pgvector.Vector{}, errors.New("quota exceeded"))

	_, err := s.svc.SimilarPlaces(s.ctx, stored.ID.String())

	s.ErrorIs(err, utils.ErrSuggestFailed)
	s.embeddingRepo.AssertNotCalled(s.T(), "ListByVector")
}

func (s *PlaceServiceTestSuite) TestSimilarPlaces_UnknownPlace() {
	s.placeRepo.On("GetByID", s.ctx, "missing").Return(nil, nil)

	_, err := s.svc.SimilarPlaces(s.ctx, "missing")

	s.ErrorIs(err, utils.ErrPlaceNotFound)
	s.embedder.AssertNotCalled(s.T(), "Embed")
}
