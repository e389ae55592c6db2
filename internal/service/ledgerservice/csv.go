package ledgerservice

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/yhw923/zenkeeper/internal/domain"
	"go.uber.org/zap"
)

// Legacy ledger interchange format: UTF-8 with BOM, header first, fixed
// column order. Earlier versions of the tool used this file as the store
// itself; it survives here as the import/export format.
var csvHeader = []string{
	"timestamp", "user_id", "marketplace", "title",
	"paid", "saved", "score", "wait_cost", "password", "password_hint",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const csvTimeLayout = "2006-01-02 15:04"

// ExportCSV streams the caller's records in the legacy column order. The
// password column is always empty: credentials never leave the server.
func (s *Service) ExportCSV(ctx context.Context, userID int, w io.Writer) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("unknown user %d", userID)
	}
	records, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.RecordedAt.Format(csvTimeLayout),
			user.Login,
			r.Marketplace,
			r.Title,
			strconv.Itoa(r.Paid),
			strconv.Itoa(r.Saved),
			strconv.FormatFloat(r.Score, 'f', 1, 64),
			strconv.Itoa(r.WaitCost),
			"",
			user.PasswordHint,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV ingests a legacy ledger file into the caller's account.
// Malformed rows are skipped, never fatal; rows whose password column
// differs from the file's first data row are skipped too, since a legacy
// file was only ever valid with one credential throughout. Scores are
// recomputed from paid/saved and stored wait costs are kept.
func (s *Service) ImportCSV(ctx context.Context, userID int, r io.Reader) (imported, skipped int, err error) {
	br := bufio.NewReader(r)
	if peek, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(peek, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	filePassword := ""
	passwordSeen := false

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(row) > 0 && row[0] == csvHeader[0] {
			continue
		}
		if len(row) != len(csvHeader) {
			skipped++
			continue
		}

		paid, perr := strconv.Atoi(row[4])
		saved, serr := strconv.Atoi(row[5])
		if perr != nil || serr != nil {
			skipped++
			continue
		}

		if !passwordSeen {
			filePassword = row[8]
			passwordSeen = true
		} else if row[8] != filePassword {
			zap.L().Warn("import row with inconsistent password skipped", zap.String("user", row[1]))
			skipped++
			continue
		}

		waitCost := 0
		if n, err := strconv.Atoi(row[7]); err == nil {
			waitCost = n
		}
		recordedAt, terr := time.Parse(csvTimeLayout, row[0])
		if terr != nil {
			recordedAt = time.Now()
		}

		record := &domain.SavingsRecord{
			UserID:      userID,
			Marketplace: row[2],
			Title:       row[3],
			Paid:        paid,
			Saved:       saved,
			Score:       domain.EfficiencyScore(paid, saved),
			WaitCost:    waitCost,
			RecordedAt:  recordedAt,
		}
		if _, err := s.repo.Save(ctx, record); err != nil {
			return imported, skipped, err
		}
		imported++
	}

	zap.L().Info("ledger import finished", zap.Int("imported", imported), zap.Int("skipped", skipped))
	return imported, skipped, nil
}
