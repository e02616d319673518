package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/vegatek/stocktake/internal/core/services"
	"github.com/vegatek/stocktake/test/helpers"
	"github.com/vegatek/stocktake/test/mocks"
)

func TestCountSession_ExportExcel(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockCatalogGateway(ctrl)
	store := mocks.NewMockCountStore(ctrl)

	items := helpers.CreateTestCountItems(2)
	store.EXPECT().Load(gomock.Any()).Return(items, nil)

	session := services.NewCountSession(gateway, store, helpers.TestLogger(), services.SessionOptions{})
	require.NoError(t, session.Start(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, session.ExportExcel(&buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Stock Count", sheet.Name)
	require.Equal(t, len(items)+1, sheet.MaxRow)

	header, err := sheet.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Stock Code", header.GetCell(0).Value)
	assert.Equal(t, "Quantity", header.GetCell(2).Value)
	assert.Equal(t, "Month", header.GetCell(7).Value)

	for i, item := range items {
		row, err := sheet.Row(i + 1)
		require.NoError(t, err)
		assert.Equal(t, item.StockCode, row.GetCell(0).Value)
		assert.Equal(t, item.StockName, row.GetCell(1).Value)
		assert.Equal(t, item.Quantity.String(), row.GetCell(2).Value)
		assert.Equal(t, item.DepotName, row.GetCell(3).Value)
		assert.Equal(t, "2025", row.GetCell(6).Value)
		assert.Equal(t, "3", row.GetCell(7).Value)
	}
}

func TestCountSession_ExportExcel_EmptyListStillProducesHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockCatalogGateway(ctrl)
	store := mocks.NewMockCountStore(ctrl)

	session := services.NewCountSession(gateway, store, helpers.TestLogger(), services.SessionOptions{})

	var buf bytes.Buffer
	require.NoError(t, session.ExportExcel(&buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Equal(t, 1, file.Sheets[0].MaxRow)
}
