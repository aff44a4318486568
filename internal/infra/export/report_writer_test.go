package export

import (
	"bytes"
	"testing"
	"time"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXReportWriter_WriteMarketplaceReport(t *testing.T) {
	writer := NewXLSXReportWriter()

	items := []*entity.Item{
		{
			ID:        uuid.New(),
			Title:     "Wool Coat",
			Category:  "outerwear",
			Condition: entity.ConditionGood,
			Points:    150,
			Status:    entity.ItemStatusApproved,
			CreatedAt: time.Now(),
		},
	}
	trades := []*entity.Trade{
		{
			ID:          uuid.New(),
			ItemID:      items[0].ID,
			BuyerID:     uuid.New(),
			SellerID:    uuid.New(),
			Kind:        entity.TradeKindBuy,
			OfferAmount: 150,
			Status:      entity.TradeStatusAccepted,
			CreatedAt:   time.Now(),
		},
	}

	data, err := writer.WriteMarketplaceReport(items, trades)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Items", "Trades"}, f.GetSheetList())

	title, err := f.GetCellValue("Items", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Wool Coat", title)

	kind, err := f.GetCellValue("Trades", "E2")
	require.NoError(t, err)
	assert.Equal(t, "buy", kind)
}

func TestXLSXReportWriter_EmptyReport(t *testing.T) {
	writer := NewXLSXReportWriter()

	data, err := writer.WriteMarketplaceReport(nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
