package searchservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yhw923/zenkeeper/internal/config"
	"github.com/yhw923/zenkeeper/internal/search"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockSearchClient) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockSearchClient(ctrl)
	service := New(&config.Config{TimeValueRate: 10030}, client)
	return service, client
}

func TestService_Search(t *testing.T) {
	t.Run("explicit name drives the query", func(t *testing.T) {
		service, client := NewMock(t)

		client.EXPECT().
			Search(gomock.Any(), "galaxy s24").
			Return([]search.Item{
				{Title: "Galaxy S24", Link: "https://smartstore.naver.com/x/1", LPrice: "80000", Shipping: "3000", MallName: "seller"},
			}, nil)

		query, candidates, err := service.Search(context.Background(), "", "galaxy s24", 100000)

		assert.NoError(t, err)
		assert.Equal(t, "galaxy s24", query)
		assert.Len(t, candidates, 1)
		assert.Equal(t, 83000, candidates[0].TotalPrice)
		assert.Equal(t, "naver", candidates[0].Mall)
	})

	t.Run("query derived from URL when name is empty", func(t *testing.T) {
		service, client := NewMock(t)

		client.EXPECT().
			Search(gomock.Any(), "QLED55Q80").
			Return([]search.Item{}, nil)

		query, candidates, err := service.Search(context.Background(), "https://prod.example.com/item/QLED55Q80", "", 100000)

		assert.NoError(t, err)
		assert.Equal(t, "QLED55Q80", query)
		assert.Empty(t, candidates)
	})

	t.Run("no derivable query fails before the provider is called", func(t *testing.T) {
		service, _ := NewMock(t)

		_, _, err := service.Search(context.Background(), "https://example.com/about/company", "", 100000)

		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("upstream failure is surfaced, not an empty result", func(t *testing.T) {
		service, client := NewMock(t)

		client.EXPECT().
			Search(gomock.Any(), "galaxy s24").
			Return(nil, search.ErrUpstream)

		_, candidates, err := service.Search(context.Background(), "", "galaxy s24", 100000)

		assert.ErrorIs(t, err, search.ErrUpstream)
		assert.Nil(t, candidates)
	})
}

func TestService_Suggest(t *testing.T) {
	service, _ := NewMock(t)

	assert.Equal(t, "QLED55Q80", service.Suggest("https://prod.example.com/item/QLED55Q80"))
	assert.Equal(t, "", service.Suggest("https://example.com/"))
}

func TestService_Search_Coalesced(t *testing.T) {
	service, client := NewMock(t)

	// The second identical call may reuse the first upstream response.
	client.EXPECT().
		Search(gomock.Any(), "galaxy s24").
		Return([]search.Item{
			{LPrice: "80000", Shipping: "0", Link: "https://a.example.com"},
		}, nil).
		MinTimes(1).
		MaxTimes(2)

	_, first, err := service.Search(context.Background(), "", "galaxy s24", 100000)
	assert.NoError(t, err)
	_, second, err := service.Search(context.Background(), "", "galaxy s24", 100000)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Search_ErrorNotCached(t *testing.T) {
	service, client := NewMock(t)

	gomock.InOrder(
		client.EXPECT().Search(gomock.Any(), "galaxy s24").Return(nil, errors.New("boom")),
		client.EXPECT().Search(gomock.Any(), "galaxy s24").Return([]search.Item{}, nil),
	)

	_, _, err := service.Search(context.Background(), "", "galaxy s24", 100000)
	assert.Error(t, err)

	_, _, err = service.Search(context.Background(), "", "galaxy s24", 100000)
	assert.NoError(t, err)
}
