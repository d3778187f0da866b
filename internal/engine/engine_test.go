package engine

import (
	"context"
	"testing"

	"github.com/kfujino/elastilens/internal/common"
	"github.com/kfujino/elastilens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `product_id,discount_rate,list_price,demand_change,elasticity
B0SAMPLE01,-0.09,1500,-0.884,-9.825
B0SAMPLE01,-0.06,1500,-0.837,-13.954
B0SAMPLE01,-0.05,1500,-0.9,-17.992
B0SAMPLE01,-0.2,1500,3.552,17.758
B0SAMPLE02,-0.2,3000,8.105,40.525
B0SAMPLE03,-0.06,1800,1.008,16.804
B0SAMPLE03,-0.07,1800,0.774,11.051
B0SAMPLE04,-0.12,1539,-0.694,-5.784
B0SAMPLE04,-0.05,1545,-0.773,-15.459`

func sampleInput() Input {
	return Input{
		Data:       []byte(sampleCSV),
		Names:      "B0SAMPLE01\tWidget A",
		Thresholds: model.DefaultThresholds(),
	}
}

func TestEngine_Run(t *testing.T) {
	result, err := New().Run(context.Background(), sampleInput())
	require.NoError(t, err)

	rows := result.Report.Rows
	require.Len(t, rows, 4)

	assert.Equal(t, model.CategoryA, rows[0].Category)
	assert.Equal(t, "Widget A", rows[0].DisplayName)
	assert.Equal(t, model.CategoryA, rows[1].Category)
	assert.Equal(t, model.CategoryB, rows[2].Category)
	assert.Equal(t, model.CategoryC, rows[3].Category)

	require.Len(t, result.Chart.Series, 4)
	assert.Equal(t, "Widget A (A)", result.Chart.Series[0].Name)
	assert.Equal(t, "B0SAMPLE02 (A)", result.Chart.Series[1].Name)
}

func TestEngine_Run_InvalidInput(t *testing.T) {
	in := sampleInput()
	in.Data = []byte("product_id,discount_rate,list_price,demand_change,elasticity\nB0X,bad,1,1,1")

	_, err := New().Run(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}

func TestEngine_Run_Reentrant(t *testing.T) {
	e := New()
	first, err := e.Run(context.Background(), sampleInput())
	require.NoError(t, err)
	second, err := e.Run(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, first.Report.Rows, second.Report.Rows)
}

func TestEngine_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, sampleInput())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_RefreshKeepsLastResultOnFailure(t *testing.T) {
	session := NewSession(New())

	_, ok := session.Last()
	assert.False(t, ok)

	require.NoError(t, session.Refresh(context.Background(), sampleInput()))
	result, ok := session.Last()
	require.True(t, ok)
	require.Len(t, result.Report.Rows, 4)

	bad := sampleInput()
	bad.Data = []byte("garbage")
	err := session.Refresh(context.Background(), bad)
	require.Error(t, err)

	// The previous result survives the failed refresh.
	kept, ok := session.Last()
	require.True(t, ok)
	assert.Equal(t, result, kept)
}
