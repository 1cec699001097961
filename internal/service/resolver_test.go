package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"outage_notifier/internal/domain"
	"outage_notifier/internal/service/mocks"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and trims", "  ABOVYAN  ", "abovyan"},
		{"strips english street token", "Abovyan street", "abovyan"},
		{"strips russian street token", "ул. Абовяна", "абовяна"},
		{"strips armenian street token", "Աբովյան փողոց", "աբովյան"},
		{"strips token with trailing comma", "Baghramyan avenue,", "baghramyan"},
		{"keeps multiword names", "Vanadzor Taron district", "vanadzor taron"},
		{"empty input", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

type ResolverTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	searcher *mocks.MockSimilaritySearcher
	resolver *Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.searcher = mocks.NewMockSimilaritySearcher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.resolver = NewResolver(s.searcher, 0.45, 5, logger)
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestResolve_EmptyTextSkipsSearch() {
	candidates, err := s.resolver.Resolve(context.Background(), "  ", "")
	s.NoError(err)
	s.Nil(candidates)
}

func (s *ResolverTestSuite) TestResolve_RanksByScoreThenSpecificityThenID() {
	ctx := context.Background()

	hits := []domain.ScoredPlace{
		{Node: domain.PlaceNode{ID: 10, Kind: domain.KindRegion}, Score: 0.8},
		{Node: domain.PlaceNode{ID: 11, Kind: domain.KindStreet}, Score: 0.8},
		{Node: domain.PlaceNode{ID: 3, Kind: domain.KindStreet}, Score: 0.9},
		{Node: domain.PlaceNode{ID: 5, Kind: domain.KindStreet}, Score: 0.8},
	}
	s.searcher.EXPECT().Similarity(ctx, "abovyan", nil, 5).Return(hits, nil)

	candidates, err := s.resolver.Resolve(ctx, "Abovyan", "")
	s.Require().NoError(err)
	s.Require().Len(candidates, 4)

	// Highest score first, then streets beat regions on a tie, then lower id.
	s.Equal(int64(3), candidates[0].Node.ID)
	s.Equal(int64(5), candidates[1].Node.ID)
	s.Equal(int64(11), candidates[2].Node.ID)
	s.Equal(int64(10), candidates[3].Node.ID)
}

func (s *ResolverTestSuite) TestResolve_ThresholdGatesAcceptance() {
	ctx := context.Background()

	hits := []domain.ScoredPlace{
		{Node: domain.PlaceNode{ID: 1, Kind: domain.KindStreet}, Score: 0.45},
		{Node: domain.PlaceNode{ID: 2, Kind: domain.KindStreet}, Score: 0.449},
	}
	s.searcher.EXPECT().Similarity(ctx, "abovyan", nil, 5).Return(hits, nil)

	candidates, err := s.resolver.Resolve(ctx, "Abovyan", "")
	s.Require().NoError(err)
	s.Require().Len(candidates, 2)

	s.True(candidates[0].Accepted, "score at the threshold is accepted")
	s.False(candidates[1].Accepted, "score below the threshold is a suggestion only")
}

func (s *ResolverTestSuite) TestResolve_StreetHintAdmitsAreas() {
	ctx := context.Background()

	s.searcher.EXPECT().
		Similarity(ctx, "abovyan", []domain.PlaceKind{domain.KindStreet, domain.KindArea}, 5).
		Return(nil, nil)

	_, err := s.resolver.Resolve(ctx, "Abovyan", domain.KindStreet)
	s.NoError(err)
}

func (s *ResolverTestSuite) TestResolve_RegionHintScopesToRegions() {
	ctx := context.Background()

	s.searcher.EXPECT().
		Similarity(ctx, "lori", []domain.PlaceKind{domain.KindRegion}, 5).
		Return(nil, nil)

	_, err := s.resolver.Resolve(ctx, "Lori", domain.KindRegion)
	s.NoError(err)
}

func (s *ResolverTestSuite) TestResolve_SearchError() {
	ctx := context.Background()

	s.searcher.EXPECT().Similarity(ctx, "abovyan", nil, 5).Return(nil, errors.New("db down"))

	_, err := s.resolver.Resolve(ctx, "Abovyan", "")
	s.Error(err)
	s.Contains(err.Error(), "similarity search")
}
