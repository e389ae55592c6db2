package ledgerservice

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yhw923/zenkeeper/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestExportCSV(t *testing.T) {
	service, repo, userRepo := NewMock(t)

	recordedAt, _ := time.Parse(csvTimeLayout, "2025-01-02 10:30")
	userRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{
		ID:           7,
		Login:        "alice",
		PasswordHash: "$2a$10$secret",
		PasswordHint: "first pet",
	}, nil)
	repo.EXPECT().FindByUserID(gomock.Any(), 7).Return([]domain.SavingsRecord{
		{ID: 1, UserID: 7, Marketplace: "naver", Title: "TV 55 inch", Paid: 83000, Saved: 17000, Score: 17.0, WaitCost: 5508, RecordedAt: recordedAt},
	}, nil)

	var buf bytes.Buffer
	err := service.ExportCSV(context.Background(), 7, &buf)

	assert.NoError(t, err)
	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, utf8BOM))

	lines := strings.Split(strings.TrimSpace(string(out[len(utf8BOM):])), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Equal(t, "2025-01-02 10:30,alice,naver,TV 55 inch,83000,17000,17.0,5508,,first pet", lines[1])
}

func TestImportCSV(t *testing.T) {
	service, repo, _ := NewMock(t)

	input := string(utf8BOM) + strings.Join([]string{
		"timestamp,user_id,marketplace,title,paid,saved,score,wait_cost,password,password_hint",
		"2025-01-02 10:30,alice,naver,TV 55 inch,83000,17000,99.9,5508,p1,first pet",
		"2025-01-03 11:00,alice,coupang,HDMI cable,8000,2000,20.0,0,p1,first pet",
		"truncated,row",
		"2025-01-04 12:00,alice,naver,Broken,abc,2000,0.0,0,p1,first pet",
		"2025-01-05 13:00,alice,naver,Wrong credential,5000,1000,16.7,0,p2,first pet",
	}, "\n")

	var saved []domain.SavingsRecord
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *domain.SavingsRecord) (*domain.SavingsRecord, error) {
			saved = append(saved, *record)
			return record, nil
		}).
		Times(2)

	imported, skipped, err := service.ImportCSV(context.Background(), 7, strings.NewReader(input))

	assert.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Equal(t, 3, skipped)

	assert.Equal(t, 7, saved[0].UserID)
	assert.Equal(t, "TV 55 inch", saved[0].Title)
	// score is recomputed from paid/saved, not trusted from the file
	assert.Equal(t, 17.0, saved[0].Score)
	assert.Equal(t, 5508, saved[0].WaitCost)
	assert.Equal(t, "2025-01-02 10:30", saved[0].RecordedAt.Format(csvTimeLayout))
	assert.Equal(t, "HDMI cable", saved[1].Title)
}

func TestImportCSV_EmptyFile(t *testing.T) {
	service, _, _ := NewMock(t)

	imported, skipped, err := service.ImportCSV(context.Background(), 7, strings.NewReader(""))

	assert.NoError(t, err)
	assert.Zero(t, imported)
	assert.Zero(t, skipped)
}
