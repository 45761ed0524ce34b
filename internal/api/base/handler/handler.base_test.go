package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseSortWithOrder_PreservesKeyOrder(t *testing.T) {
	got := parseSortWithOrder(`{"sort": {"createdAt": -1, "clickCount": 1}}`)
	require.Len(t, got, 2)
	assert.Equal(t, bson.E{Key: "createdAt", Value: -1}, got[0])
	assert.Equal(t, bson.E{Key: "clickCount", Value: 1}, got[1])
}

func TestParseSortWithOrder_RejectsInvalidValues(t *testing.T) {
	// Chỉ chấp nhận 1 hoặc -1, giá trị khác bị bỏ qua
	got := parseSortWithOrder(`{"sort": {"createdAt": -1, "clickCount": 5, "label": "asc"}}`)
	require.Len(t, got, 1)
	assert.Equal(t, "createdAt", got[0].Key)
}

func TestParseSortWithOrder_NoSort(t *testing.T) {
	assert.Empty(t, parseSortWithOrder(`{"limit": 10}`))
	assert.Empty(t, parseSortWithOrder(`not json`))
}

type srcInput struct {
	Label      string
	ClickCount int64
	Ignored    string
}

type dstModel struct {
	Label      string
	ClickCount int64
	Extra      bool
}

func TestCopyMatchingFields(t *testing.T) {
	src := &srcInput{Label: "chiến dịch A", ClickCount: 12, Ignored: "x"}
	dst := &dstModel{}

	require.NoError(t, copyMatchingFields(src, dst))
	assert.Equal(t, "chiến dịch A", dst.Label)
	assert.Equal(t, int64(12), dst.ClickCount)
	assert.False(t, dst.Extra)
}

func TestCopyMatchingFields_SkipsIncompatibleTypes(t *testing.T) {
	type src struct{ Label []string }
	type dst struct{ Label int64 }

	d := &dst{}
	require.NoError(t, copyMatchingFields(&src{Label: []string{"x"}}, d))
	// Kiểu không tương thích: bỏ qua, không panic
	assert.Zero(t, d.Label)
}

func TestCopyMatchingFields_ConvertsCompatibleTypes(t *testing.T) {
	type src struct{ Credits int }
	type dst struct{ Credits int64 }

	d := &dst{}
	require.NoError(t, copyMatchingFields(&src{Credits: 7}, d))
	assert.Equal(t, int64(7), d.Credits)
}
