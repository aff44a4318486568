// Package export renders admin reports as spreadsheet files.
package export

import (
	"bytes"
	"fmt"

	"rewear/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReportWriter renders marketplace reports as xlsx workbooks.
type ReportWriter interface {
	// WriteMarketplaceReport renders an items and trades summary workbook.
	WriteMarketplaceReport(items []*entity.Item, trades []*entity.Trade) ([]byte, error)
}

type xlsxReportWriter struct{}

// NewXLSXReportWriter constructs the excelize-backed report writer.
func NewXLSXReportWriter() ReportWriter {
	return &xlsxReportWriter{}
}

const (
	itemsSheet  = "Items"
	tradesSheet = "Trades"
)

func (w *xlsxReportWriter) WriteMarketplaceReport(items []*entity.Item, trades []*entity.Trade) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeItems(f, items); err != nil {
		return nil, err
	}
	if err := w.writeTrades(f, trades); err != nil {
		return nil, err
	}

	// Drop the default sheet created by excelize
	if f.GetSheetName(0) == "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, errors.Wrap(err, "delete default sheet")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}

func (w *xlsxReportWriter) writeItems(f *excelize.File, items []*entity.Item) error {
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return errors.Wrap(err, "new items sheet")
	}

	header := []any{"ID", "Title", "Category", "Condition", "Points", "Status", "Flagged", "Created At"}
	if err := f.SetSheetRow(itemsSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "write items header")
	}

	for i, item := range items {
		row := []any{
			item.ID.String(),
			item.Title,
			item.Category,
			string(item.Condition),
			item.Points,
			string(item.Status),
			item.Flagged,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(itemsSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write items row %d", i+2)
		}
	}
	return nil
}

func (w *xlsxReportWriter) writeTrades(f *excelize.File, trades []*entity.Trade) error {
	if _, err := f.NewSheet(tradesSheet); err != nil {
		return errors.Wrap(err, "new trades sheet")
	}

	header := []any{"ID", "Item ID", "Buyer ID", "Seller ID", "Kind", "Offer Amount", "Status", "Created At"}
	if err := f.SetSheetRow(tradesSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "write trades header")
	}

	for i, trade := range trades {
		row := []any{
			trade.ID.String(),
			trade.ItemID.String(),
			trade.BuyerID.String(),
			trade.SellerID.String(),
			string(trade.Kind),
			trade.OfferAmount,
			string(trade.Status),
			trade.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(tradesSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write trades row %d", i+2)
		}
	}
	return nil
}
